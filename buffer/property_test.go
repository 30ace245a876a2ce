package buffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/iw2rmb/wrapfield/internal/grapheme"
)

// ===========================================================================
// Property-Based Tests (using pgregory.net/rapid)
// ===========================================================================

func lineTextGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-z ]{0,40}`)
}

func TestProperty_WrapIsIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := lineTextGen().Draw(rt, "text")
		width := rapid.IntRange(1, 12).Draw(rt, "width")

		first, err := WrapText(text, width, CellMeasurer{})
		require.NoError(rt, err)
		second, err := WrapText(strings.Join(first, " "), width, CellMeasurer{})
		require.NoError(rt, err)

		require.Equal(rt, first, second, "rewrapping joined paragraphs must not move boundaries")
		require.Equal(rt, text, strings.Join(first, " "), "joined paragraphs must reproduce the line")
	})
}

func TestProperty_WrapNeverOverflowsExceptSingleWords(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := lineTextGen().Draw(rt, "text")
		width := rapid.IntRange(1, 12).Draw(rt, "width")

		paragraphs, err := WrapText(text, width, CellMeasurer{})
		require.NoError(rt, err)
		require.NotEmpty(rt, paragraphs, "wrap must yield at least one paragraph")

		for i, p := range paragraphs {
			if (CellMeasurer{}).Width(p) <= width {
				continue
			}
			require.NotContains(rt, p, " ", "paragraph %d %q overflows and is not a single word", i, p)
		}
	})
}

func TestProperty_OffsetRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := lineTextGen().Draw(rt, "text")
		width := rapid.IntRange(1, 12).Draw(rt, "width")

		l, err := NewWrappedLine(text, width, CellMeasurer{})
		require.NoError(rt, err)

		for p, para := range l.Paragraphs() {
			for c := 0; c <= grapheme.Count(para); c++ {
				off := l.FlatOffset(p, c)
				gotP, gotC, ok := l.ParagraphAndChar(off)
				require.True(rt, ok, "offset %d must be in range", off)
				require.Equal(rt, p, gotP, "paragraph for offset %d", off)
				require.Equal(rt, c, gotC, "char for offset %d", off)
			}
		}
		require.Equal(rt, grapheme.Count(text), l.Len(), "flattened length counts separators as characters")
	})
}

func TestProperty_ViewRowMonotonic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringMatching(`[a-z \n]{0,60}`).Draw(rt, "text")
		width := rapid.IntRange(1, 8).Draw(rt, "width")

		d, err := New(text, Options{Width: width})
		require.NoError(rt, err)

		prev := -1
		for li := 0; li < d.LineCount(); li++ {
			l := d.Line(li)
			for p := 0; p < l.NumParagraphs(); p++ {
				row := d.ViewRow(Cursor{Line: li, Paragraph: p})
				require.GreaterOrEqual(rt, row, prev, "view row must not decrease at (%d,%d)", li, p)
				prev = row
			}
		}
		require.Equal(rt, prev+1, d.TotalRows(), "last row index must be TotalRows-1")
	})
}

func TestProperty_TypingKeepsCursorOnSameCharacter(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := lineTextGen().Draw(rt, "text")
		width := rapid.IntRange(1, 6).Draw(rt, "width")

		d, err := New("", Options{Width: width})
		require.NoError(rt, err)

		c := Cursor{}
		for i, ch := range grapheme.Split(text) {
			c = d.InsertChar(c, ch)
			l := d.Line(0)
			require.Equal(rt, i+1, l.FlatOffset(c.Paragraph, c.Char), "cursor must sit after the typed character")
			require.Equal(rt, c, d.ClampCursor(c), "cursor must stay valid")
		}
		require.Equal(rt, text, d.Text())
	})
}

func TestProperty_InsertAnywhereKeepsCursorAfterInsertedCharacter(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := lineTextGen().Draw(rt, "text")
		width := rapid.IntRange(1, 6).Draw(rt, "width")
		off := rapid.IntRange(0, len(text)).Draw(rt, "offset")
		ch := rapid.SampledFrom([]string{"x", " ", "é"}).Draw(rt, "char")

		d, err := New(text, Options{Width: width})
		require.NoError(rt, err)

		p, char, ok := d.Line(0).ParagraphAndChar(off)
		require.True(rt, ok, "offset %d must be inside the line", off)

		c := d.InsertChar(Cursor{Paragraph: p, Char: char}, ch)
		require.Equal(rt, text[:off]+ch+text[off:], d.Text())
		require.Equal(rt, off+1, d.Line(0).FlatOffset(c.Paragraph, c.Char), "cursor must sit after the inserted character")
		require.Equal(rt, c, d.ClampCursor(c), "cursor must stay valid")
	})
}

func TestProperty_CombiningMarksKeepOffsetsAligned(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringMatching(`[a-c \x{301}]{0,30}`).Draw(rt, "text")
		width := rapid.IntRange(1, 6).Draw(rt, "width")
		width2 := rapid.IntRange(1, 12).Draw(rt, "width2")

		d, err := New(text, Options{Width: width})
		require.NoError(rt, err)
		require.Equal(rt, grapheme.Count(text), d.Line(0).Len(), "flattened length must count characters of the raw text")

		end, err := d.RewrapAll(d.EndCursor(), width2, nil)
		require.NoError(rt, err)
		require.Equal(rt, d.EndCursor(), end, "end cursor must stay at the end after a rewrap")
		require.Equal(rt, text, d.Text())
	})
}

func TestProperty_MoveRightThenLeftReturns(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringMatching(`[a-z \n]{1,40}`).Draw(rt, "text")
		width := rapid.IntRange(1, 8).Draw(rt, "width")

		d, err := New(text, Options{Width: width})
		require.NoError(rt, err)

		c := Cursor{}
		for steps := 0; steps < 200; steps++ {
			next := d.Move(c, Move{Unit: MoveChar, Dir: DirRight})
			if next == c {
				require.Equal(rt, d.EndCursor(), c, "right move may only stall at document end")
				return
			}
			require.Equal(rt, c, d.Move(next, Move{Unit: MoveChar, Dir: DirLeft}), "left must undo right")
			c = next
		}
	})
}
