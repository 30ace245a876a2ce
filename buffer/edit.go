package buffer

import (
	"strings"

	"github.com/iw2rmb/wrapfield/internal/grapheme"
)

// InsertChar inserts one typed character at c and returns the new cursor.
// A newline in any form splits the line.
func (d *Document) InsertChar(c Cursor, ch string) Cursor {
	if ch = normalizeNewlines(ch); strings.Contains(ch, "\n") {
		return d.InsertText(c, ch)
	}
	if ch == "" {
		return d.ClampCursor(c)
	}
	return d.insertInline(d.ClampCursor(c), ch)
}

// InsertText inserts s at c. Newlines in s split lines.
func (d *Document) InsertText(c Cursor, s string) Cursor {
	c = d.ClampCursor(c)
	for i, part := range strings.Split(normalizeNewlines(s), "\n") {
		if i > 0 {
			c = d.SplitLine(c)
		}
		if part != "" {
			c = d.insertInline(c, part)
		}
	}
	return c
}

// insertInline splices s into the cursor's paragraph, then re-wraps the line.
// The new cursor is counted over the joined text up to the end of s, so an
// inserted mark that merges with a neighbouring character still lands after
// it.
func (d *Document) insertInline(c Cursor, s string) Cursor {
	line := d.lines[c.Line]
	left, right := grapheme.SplitAt(line.paragraphs[c.Paragraph], c.Char)

	before := append(append([]string(nil), line.paragraphs[:c.Paragraph]...), left+s)
	off := grapheme.Count(strings.Join(before, " "))

	line.paragraphs[c.Paragraph] = left + s + right
	next := line.rewrapAt(c.Line, off, d.width, d.measure)
	d.invalidateRows()
	return next
}

// SplitLine inserts a manual line break at c. Both halves are re-wrapped and
// the cursor moves to the start of the right half.
func (d *Document) SplitLine(c Cursor) Cursor {
	c = d.ClampCursor(c)
	leftText, rightText := d.lines[c.Line].Split(c.Paragraph, c.Char)

	lines := make([]*Line, 0, len(d.lines)+1)
	lines = append(lines, d.lines[:c.Line]...)
	lines = append(lines,
		newWrappedLine(leftText, d.width, d.measure),
		newWrappedLine(rightText, d.width, d.measure),
	)
	lines = append(lines, d.lines[c.Line+1:]...)

	d.lines = lines
	d.invalidateRows()
	return Cursor{Line: c.Line + 1}
}
