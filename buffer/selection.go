package buffer

// Selection is an optional selection anchor. The zero value holds no anchor.
type Selection struct {
	anchor Cursor
	active bool
}

// AnchorAt returns a Selection anchored at c.
func AnchorAt(c Cursor) Selection {
	return Selection{anchor: c, active: true}
}

// Anchor returns the anchor and whether one is set.
func (s Selection) Anchor() (Cursor, bool) {
	return s.anchor, s.active
}

// Range returns the anchor and cursor in document order. ok is false when no
// anchor is set or the range is empty.
func (s Selection) Range(cursor Cursor) (start, end Cursor, ok bool) {
	if !s.active || s.anchor == cursor {
		return Cursor{}, Cursor{}, false
	}
	if CompareCursor(s.anchor, cursor) <= 0 {
		return s.anchor, cursor, true
	}
	return cursor, s.anchor, true
}
