package buffer

import "testing"

var (
	charLeft  = Move{Unit: MoveChar, Dir: DirLeft}
	charRight = Move{Unit: MoveChar, Dir: DirRight}
	wordLeft  = Move{Unit: MoveWord, Dir: DirLeft}
	wordRight = Move{Unit: MoveWord, Dir: DirRight}
)

func TestMove_DocumentBoundariesAreNoOps(t *testing.T) {
	d := mustDoc(t, "ab\nhello world", 5)

	if got := d.Move(Cursor{}, charLeft); got != (Cursor{}) {
		t.Fatalf("left from doc start: got %v, want (0,0,0)", got)
	}
	if got := d.Move(Cursor{}, wordLeft); got != (Cursor{}) {
		t.Fatalf("word-left from doc start: got %v, want (0,0,0)", got)
	}

	end := d.EndCursor()
	if got := d.Move(end, charRight); got != end {
		t.Fatalf("right from doc end: got %v, want %v", got, end)
	}
	if got := d.Move(end, wordRight); got != end {
		t.Fatalf("word-right from doc end: got %v, want %v", got, end)
	}
}

func TestMove_CharWithinParagraph(t *testing.T) {
	d := mustDoc(t, "abc", 10)
	c := Cursor{Line: 0, Paragraph: 0, Char: 1}
	if got, want := d.Move(c, charRight), (Cursor{Line: 0, Paragraph: 0, Char: 2}); got != want {
		t.Fatalf("right: got %v, want %v", got, want)
	}
	if got, want := d.Move(c, charLeft), (Cursor{Line: 0, Paragraph: 0, Char: 0}); got != want {
		t.Fatalf("left: got %v, want %v", got, want)
	}
}

func TestMove_CharCrossesParagraphBoundary(t *testing.T) {
	d := mustDoc(t, "hello world", 5)

	endOfFirst := Cursor{Line: 0, Paragraph: 0, Char: 5}
	startOfSecond := Cursor{Line: 0, Paragraph: 1, Char: 0}

	if got := d.Move(endOfFirst, charRight); got != startOfSecond {
		t.Fatalf("right over wrap: got %v, want %v", got, startOfSecond)
	}
	if got := d.Move(startOfSecond, charLeft); got != endOfFirst {
		t.Fatalf("left over wrap: got %v, want %v", got, endOfFirst)
	}
}

func TestMove_CharCrossesLineBoundary(t *testing.T) {
	d := mustDoc(t, "hello world\nab", 5)

	if got, want := d.Move(Cursor{Line: 0, Paragraph: 1, Char: 5}, charRight), (Cursor{Line: 1, Paragraph: 0, Char: 0}); got != want {
		t.Fatalf("right over newline: got %v, want %v", got, want)
	}
	// Backward lands at the end of the previous line's last paragraph.
	if got, want := d.Move(Cursor{Line: 1, Paragraph: 0, Char: 0}, charLeft), (Cursor{Line: 0, Paragraph: 1, Char: 5}); got != want {
		t.Fatalf("left over newline: got %v, want %v", got, want)
	}
}

func TestMove_CharThroughEmptyLines(t *testing.T) {
	d := mustDoc(t, "a\n\nb", 5)

	c := Cursor{Line: 0, Paragraph: 0, Char: 1}
	want := []Cursor{
		{Line: 1, Paragraph: 0, Char: 0},
		{Line: 2, Paragraph: 0, Char: 0},
		{Line: 2, Paragraph: 0, Char: 1},
		{Line: 2, Paragraph: 0, Char: 1},
	}
	for i, w := range want {
		c = d.Move(c, charRight)
		if c != w {
			t.Fatalf("step %d: got %v, want %v", i, c, w)
		}
	}
}

func TestMove_WordHopsToSpaces(t *testing.T) {
	d := mustDoc(t, "foo bar baz", 20)

	c := Cursor{}
	for i, want := range []int{3, 7, 11} {
		c = d.Move(c, wordRight)
		if c.Char != want || c.Paragraph != 0 || c.Line != 0 {
			t.Fatalf("word-right step %d: got %v, want char %d", i, c, want)
		}
	}
	for i, want := range []int{7, 3, 0} {
		c = d.Move(c, wordLeft)
		if c.Char != want {
			t.Fatalf("word-left step %d: got %v, want char %d", i, c, want)
		}
	}
}

func TestMove_WordOverflowCrossesBoundaryOnce(t *testing.T) {
	d := mustDoc(t, "hello world\nnext line", 5)

	// Forward from a paragraph end steps over the wrap only.
	if got, want := d.Move(Cursor{Line: 0, Paragraph: 0, Char: 5}, wordRight), (Cursor{Line: 0, Paragraph: 1, Char: 0}); got != want {
		t.Fatalf("word-right at paragraph end: got %v, want %v", got, want)
	}
	// Backward from a paragraph start lands at the previous paragraph's end.
	if got, want := d.Move(Cursor{Line: 0, Paragraph: 1, Char: 0}, wordLeft), (Cursor{Line: 0, Paragraph: 0, Char: 5}); got != want {
		t.Fatalf("word-left at paragraph start: got %v, want %v", got, want)
	}
	// And across manual lines.
	if got, want := d.Move(Cursor{Line: 0, Paragraph: 1, Char: 5}, wordRight), (Cursor{Line: 1, Paragraph: 0, Char: 0}); got != want {
		t.Fatalf("word-right at line end: got %v, want %v", got, want)
	}
}

func TestMove_WordWithoutSpaceGoesToParagraphEdge(t *testing.T) {
	d := mustDoc(t, "abcdef", 10)
	if got, want := d.Move(Cursor{Char: 2}, wordRight), (Cursor{Char: 6}); got != want {
		t.Fatalf("word-right: got %v, want %v", got, want)
	}
	if got, want := d.Move(Cursor{Char: 4}, wordLeft), (Cursor{Char: 0}); got != want {
		t.Fatalf("word-left: got %v, want %v", got, want)
	}
}

func TestMove_ClampsMalformedCursorAndIgnoresUnknownDir(t *testing.T) {
	d := mustDoc(t, "abc", 10)
	if got, want := d.Move(Cursor{Line: 3, Paragraph: 2, Char: 99}, charLeft), (Cursor{Char: 2}); got != want {
		t.Fatalf("move from malformed cursor: got %v, want %v", got, want)
	}
	if got, want := d.Move(Cursor{Char: 1}, Move{Unit: MoveChar, Dir: MoveDir(9)}), (Cursor{Char: 1}); got != want {
		t.Fatalf("unknown dir: got %v, want %v", got, want)
	}
}

func TestMoveDir_Delta(t *testing.T) {
	if DirLeft.Delta() != -1 || DirRight.Delta() != 1 || MoveDir(5).Delta() != 0 {
		t.Fatalf("unexpected deltas: left=%d right=%d other=%d", DirLeft.Delta(), DirRight.Delta(), MoveDir(5).Delta())
	}
}
