package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/wrapfield/buffer"
	"github.com/iw2rmb/wrapfield/internal/grapheme"
	"github.com/iw2rmb/wrapfield/internal/log"
)

var (
	charLeft  = buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirLeft}
	charRight = buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirRight}
	wordLeft  = buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft}
	wordRight = buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight}
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Pasted text is always inserted literally.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.insert(string(msg.Runes))
		return m.resetBlink()
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.SelectWordLeft):
		m.extend(wordLeft)
	case key.Matches(msg, km.SelectWordRight):
		m.extend(wordRight)
	case key.Matches(msg, km.SelectLeft):
		m.extend(charLeft)
	case key.Matches(msg, km.SelectRight):
		m.extend(charRight)

	case key.Matches(msg, km.WordLeft):
		m.move(wordLeft)
	case key.Matches(msg, km.WordRight):
		m.move(wordRight)
	case key.Matches(msg, km.Left):
		m.move(charLeft)
	case key.Matches(msg, km.Right):
		m.move(charRight)

	case key.Matches(msg, km.Enter):
		m.sel = buffer.Selection{}
		m.cursor = m.doc.SplitLine(m.cursor)
		m.version++
		m.followCursor()

	case key.Matches(msg, km.Blur):
		return m.Blur(), nil

	case msg.Type == tea.KeySpace:
		m.insert(" ")

	case msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 0:
		s := string(msg.Runes)
		if !printable(s) {
			log.Debug(log.CatEditor, "Dropped non-printable input", "runes", len(msg.Runes))
			return m, nil
		}
		m.insert(s)

	default:
		return m, nil
	}

	return m.resetBlink()
}

func (m *Model) move(mv buffer.Move) {
	m.sel = buffer.Selection{}
	m.cursor = m.doc.Move(m.cursor, mv)
	m.followCursor()
}

// extend moves the cursor, anchoring the selection at the old position when
// no anchor is set yet.
func (m *Model) extend(mv buffer.Move) {
	if _, ok := m.sel.Anchor(); !ok {
		m.sel = buffer.AnchorAt(m.cursor)
	}
	m.cursor = m.doc.Move(m.cursor, mv)
	m.followCursor()
}

func (m *Model) insert(s string) {
	m.sel = buffer.Selection{}
	m.cursor = m.doc.InsertText(m.cursor, s)
	m.version++
	m.followCursor()
}

func printable(s string) bool {
	for _, cl := range grapheme.Split(s) {
		if cl != "\n" && !grapheme.IsPrintable(cl) {
			return false
		}
	}
	return true
}
