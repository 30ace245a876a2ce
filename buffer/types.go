package buffer

import "fmt"

// Cursor points into a Document by (line, paragraph, char).
//
// Invariants for a Cursor produced by this package:
//   - 0 <= Line < Document.LineCount()
//   - 0 <= Paragraph < NumParagraphs of that line
//   - 0 <= Char <= grapheme length of that paragraph
type Cursor struct {
	Line      int
	Paragraph int
	Char      int
}

func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d, %d, %d)", c.Line, c.Paragraph, c.Char)
}

// CompareCursor orders cursors in document order.
func CompareCursor(a, b Cursor) int {
	switch {
	case a.Line != b.Line:
		return cmpInt(a.Line, b.Line)
	case a.Paragraph != b.Paragraph:
		return cmpInt(a.Paragraph, b.Paragraph)
	default:
		return cmpInt(a.Char, b.Char)
	}
}

// Point is a position relative to the text field's top-left corner, in the
// same units the Measurer reports.
type Point struct {
	X int
	Y int
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
