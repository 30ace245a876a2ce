package buffer

import (
	"fmt"
	"strings"
)

// Options configures a Document.
type Options struct {
	// Width is the wrap width in Measurer units. Must be positive.
	Width int
	// Measurer defaults to CellMeasurer.
	Measurer Measurer
}

// Document is an ordered list of Lines, wrapped to a single width.
type Document struct {
	lines   []*Line
	width   int
	measure Measurer

	// rowStarts[i] is the first view row of line i; rowStarts[len(lines)] is
	// the total row count. Rebuilt on demand after any mutation.
	rowStarts []int
	rowsValid bool
}

// New builds a Document with one Line per newline-delimited segment of text.
func New(text string, opt Options) (*Document, error) {
	if opt.Width <= 0 {
		return nil, fmt.Errorf("width %d: %w", opt.Width, ErrInvalidMaxWidth)
	}
	if opt.Measurer == nil {
		opt.Measurer = CellMeasurer{}
	}

	d := &Document{width: opt.Width, measure: opt.Measurer}
	for _, s := range strings.Split(normalizeNewlines(text), "\n") {
		d.lines = append(d.lines, newWrappedLine(s, d.width, d.measure))
	}
	return d, nil
}

func (d *Document) Width() int { return d.width }

func (d *Document) Measurer() Measurer { return d.measure }

func (d *Document) LineCount() int { return len(d.lines) }

// Line returns a copy of line i, or nil when i is out of range.
func (d *Document) Line(i int) *Line {
	if i < 0 || i >= len(d.lines) {
		return nil
	}
	return d.lines[i].clone()
}

// Paragraph returns the text of one view row, or "" when out of range.
func (d *Document) Paragraph(line, paragraph int) string {
	if line < 0 || line >= len(d.lines) {
		return ""
	}
	return d.lines[line].Paragraph(paragraph)
}

// Text returns the raw document text, lines joined by '\n'.
func (d *Document) Text() string {
	var sb strings.Builder
	for i, l := range d.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.Text())
	}
	return sb.String()
}

// IsEmpty reports whether the document holds a single empty line.
func (d *Document) IsEmpty() bool {
	return len(d.lines) == 1 && len(d.lines[0].paragraphs) == 1 && d.lines[0].paragraphs[0] == ""
}

// EndCursor returns the position after the last character of the document.
func (d *Document) EndCursor() Cursor {
	line := len(d.lines) - 1
	paragraph := d.lines[line].NumParagraphs() - 1
	return Cursor{Line: line, Paragraph: paragraph, Char: d.lines[line].paragraphLen(paragraph)}
}

// ClampCursor forces c into the document's bounds.
func (d *Document) ClampCursor(c Cursor) Cursor {
	line := clampInt(c.Line, 0, len(d.lines)-1)
	l := d.lines[line]
	paragraph := clampInt(c.Paragraph, 0, l.NumParagraphs()-1)
	char := clampInt(c.Char, 0, l.paragraphLen(paragraph))
	return Cursor{Line: line, Paragraph: paragraph, Char: char}
}

// RewrapAll re-flows every line to maxWidth. The line holding c carries the
// cursor through the re-flow; the returned cursor is c in the new layout.
// A nil m keeps the current Measurer.
func (d *Document) RewrapAll(c Cursor, maxWidth int, m Measurer) (Cursor, error) {
	if maxWidth <= 0 {
		return c, fmt.Errorf("rewrap to width %d: %w", maxWidth, ErrInvalidMaxWidth)
	}
	if m != nil {
		d.measure = m
	}
	d.width = maxWidth

	c = d.ClampCursor(c)
	for i, l := range d.lines {
		if i == c.Line {
			c = l.rewrapCarrying(c, d.width, d.measure)
			continue
		}
		l.paragraphs = wrapWords(Words(l.Text()), d.width, d.measure)
	}
	d.invalidateRows()
	return c, nil
}

func (d *Document) invalidateRows() {
	d.rowsValid = false
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
