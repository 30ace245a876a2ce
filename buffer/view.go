package buffer

import (
	"sort"

	"github.com/iw2rmb/wrapfield/internal/grapheme"
)

// A view row is one rendered paragraph. Row indices are derived from line
// paragraph counts and never stored on the Cursor.

func (d *Document) ensureRows() {
	if d.rowsValid && len(d.rowStarts) == len(d.lines)+1 {
		return
	}
	starts := d.rowStarts[:0]
	row := 0
	for _, l := range d.lines {
		starts = append(starts, row)
		row += l.NumParagraphs()
	}
	d.rowStarts = append(starts, row)
	d.rowsValid = true
}

// TotalRows returns the number of view rows in the document.
func (d *Document) TotalRows() int {
	d.ensureRows()
	return d.rowStarts[len(d.lines)]
}

// ViewRow returns the view row that c is on.
func (d *Document) ViewRow(c Cursor) int {
	c = d.ClampCursor(c)
	d.ensureRows()
	return d.rowStarts[c.Line] + c.Paragraph
}

// RowToPosition maps a vertical coordinate to the (line, paragraph) drawn
// there. pixelY is relative to the top of the text area; scroll is the index
// of the first visible row. ok is false when the row is outside the document.
func (d *Document) RowToPosition(scroll, pixelY, rowHeight int) (line, paragraph int, ok bool) {
	if rowHeight <= 0 {
		rowHeight = 1
	}
	target := scroll + floorDiv(pixelY, rowHeight)

	d.ensureRows()
	if target < 0 || target >= d.rowStarts[len(d.lines)] {
		return 0, 0, false
	}

	// First line whose end row is past target.
	line = sort.Search(len(d.lines), func(i int) bool {
		return d.rowStarts[i+1] > target
	})
	return line, target - d.rowStarts[line], true
}

// HitTest maps a point inside the text field to a cursor. padding is the
// inset of the text area from the field's top-left corner. Points below the
// last row snap to EndCursor; points above the text area map to the first
// visible row.
func (d *Document) HitTest(scroll int, pt Point, rowHeight, padding int) Cursor {
	relX := pt.X - padding
	relY := pt.Y - padding
	if relY < 0 {
		relY = 0
	}

	line, paragraph, ok := d.RowToPosition(scroll, relY, rowHeight)
	if !ok {
		return d.EndCursor()
	}
	return Cursor{
		Line:      line,
		Paragraph: paragraph,
		Char:      d.charAtX(d.lines[line].paragraphs[paragraph], relX),
	}
}

// charAtX returns the index of the character whose extent contains x, or the
// paragraph length when x is past the end. Clicking a character puts the
// cursor before it, never after it.
func (d *Document) charAtX(paragraph string, x int) int {
	clusters := grapheme.Split(paragraph)
	prefix := ""
	for i, cl := range clusters {
		prefix += cl
		if d.measure.Width(prefix) > x {
			return i
		}
	}
	return len(clusters)
}

// VisibleRows returns how many rows fit in viewportHeight; always at least 1.
func VisibleRows(viewportHeight, rowHeight int) int {
	if rowHeight <= 0 {
		rowHeight = 1
	}
	return max(1, viewportHeight/rowHeight)
}

// ClampScroll clamps scroll to [0, max(0, TotalRows()-visibleRows)].
func (d *Document) ClampScroll(scroll, visibleRows int) int {
	maxScroll := max(0, d.TotalRows()-max(1, visibleRows))
	return clampInt(scroll, 0, maxScroll)
}

// FollowCursor returns scroll adjusted so that c's row is visible, then
// clamped.
func (d *Document) FollowCursor(scroll int, c Cursor, visibleRows int) int {
	visibleRows = max(1, visibleRows)
	row := d.ViewRow(c)
	if row >= scroll+visibleRows {
		scroll = row - visibleRows + 1
	}
	if row < scroll {
		scroll = row
	}
	return d.ClampScroll(scroll, visibleRows)
}

// PrefixWidth returns the rendered width of the first char characters of
// paragraph.
func PrefixWidth(paragraph string, char int, m Measurer) int {
	if m == nil {
		m = CellMeasurer{}
	}
	left, _ := grapheme.SplitAt(paragraph, char)
	return m.Width(left)
}
