package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/wrapfield/buffer"
)

// Mouse coordinates are field-local: (0,0) is the frame's top-left cell.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonWheelUp:
		if msg.Action == tea.MouseActionPress && m.mouseInBounds(msg.X, msg.Y) {
			m.scrollBy(-m.cfg.ScrollStep)
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if msg.Action == tea.MouseActionPress && m.mouseInBounds(msg.X, msg.Y) {
			m.scrollBy(m.cfg.ScrollStep)
		}
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if !m.mouseInBounds(msg.X, msg.Y) {
			if m.focused {
				return m.Blur(), nil
			}
			return m, nil
		}

		m.focused = true
		p := m.ScreenToDoc(msg.X, msg.Y)
		if _, ok := m.sel.Anchor(); !ok || !msg.Shift {
			anchor := p
			if msg.Shift {
				anchor = m.cursor
			}
			m.sel = buffer.AnchorAt(anchor)
		}
		m.cursor = p
		m.dragging = true
		m.followCursor()
		return m.resetBlink()

	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		m.cursor = m.ScreenToDoc(x, y)
		m.followCursor()

	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		if a, ok := m.sel.Anchor(); ok && a == m.cursor {
			m.sel = buffer.Selection{}
		}
	}

	return m, nil
}

func (m *Model) scrollBy(rows int) {
	m.scroll = m.doc.ClampScroll(m.scroll+rows, m.visibleRows())
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.width <= 0 || m.height <= 0 {
		return false
	}
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	return min(max(x, 0), max(m.width-1, 0)), min(max(y, 0), max(m.height-1, 0))
}
