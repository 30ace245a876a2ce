package editor

import "github.com/iw2rmb/wrapfield/buffer"

type ChangeEvent struct {
	// Version increments on every text mutation.
	Version uint64
	Cursor  buffer.Cursor
	Anchor  struct {
		Cursor buffer.Cursor
		Active bool
	}

	Text string
}

func (m Model) buildChangeEvent() ChangeEvent {
	ev := ChangeEvent{
		Version: m.version,
		Cursor:  m.cursor,
		Text:    m.doc.Text(),
	}
	ev.Anchor.Cursor, ev.Anchor.Active = m.sel.Anchor()
	return ev
}

// snapshot captures what OnChange compares across an update.
type snapshot struct {
	version uint64
	cursor  buffer.Cursor
	sel     buffer.Selection
}

func (m Model) snapshot() snapshot {
	return snapshot{version: m.version, cursor: m.cursor, sel: m.sel}
}

func (m Model) notifyIfChanged(before snapshot) {
	if m.cfg.OnChange == nil || m.snapshot() == before {
		return
	}
	m.cfg.OnChange(m.buildChangeEvent())
}
