package editor

import "github.com/iw2rmb/wrapfield/buffer"

// ViewportState is a host-facing snapshot of the field's scroll state.
type ViewportState struct {
	// TopRow is the view row drawn at the top of the text area.
	TopRow int
	// VisibleRows is the number of rows the text area holds.
	VisibleRows int
	// TotalRows is the number of view rows in the document.
	TotalRows int
}

func (m Model) ViewportState() ViewportState {
	return ViewportState{
		TopRow:      m.scroll,
		VisibleRows: m.visibleRows(),
		TotalRows:   m.doc.TotalRows(),
	}
}

// ScreenToDoc maps field-local cell coordinates (frame included) to a
// cursor.
func (m Model) ScreenToDoc(x, y int) buffer.Cursor {
	f := m.cfg.Style.frame(false)
	pt := buffer.Point{X: x - f.GetBorderLeftSize(), Y: y - f.GetBorderTopSize()}
	return m.doc.HitTest(m.scroll, pt, 1, m.cfg.Padding)
}

// DocToScreen maps a cursor to field-local cell coordinates. ok is false
// when the cursor's row is scrolled out of view.
func (m Model) DocToScreen(c buffer.Cursor) (x, y int, ok bool) {
	c = m.doc.ClampCursor(c)
	row := m.doc.ViewRow(c) - m.scroll
	if row < 0 || row >= m.visibleRows() {
		return 0, 0, false
	}
	f := m.cfg.Style.frame(false)
	prefix := buffer.PrefixWidth(m.doc.Paragraph(c.Line, c.Paragraph), c.Char, m.doc.Measurer())
	x = f.GetBorderLeftSize() + m.cfg.Padding + prefix
	y = f.GetBorderTopSize() + m.cfg.Padding + row
	return x, y, true
}

// contentWidth is the text-area width: the field minus frame and padding.
func (m Model) contentWidth() int {
	f := m.cfg.Style.frame(false)
	w := m.width - f.GetHorizontalBorderSize() - 2*m.cfg.Padding
	return max(1, w)
}

func (m Model) contentHeight() int {
	f := m.cfg.Style.frame(false)
	return m.height - f.GetVerticalBorderSize() - 2*m.cfg.Padding
}

func (m Model) visibleRows() int {
	return buffer.VisibleRows(m.contentHeight(), 1)
}
