package buffer

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/wrapfield/internal/grapheme"
	"github.com/iw2rmb/wrapfield/internal/log"
)

// Line is one manual (user-entered) line, held as the paragraphs it wraps to.
// A Line always has at least one paragraph; an empty line is [""].
type Line struct {
	paragraphs []string
}

// NewWrappedLine returns a line holding text wrapped to maxWidth.
func NewWrappedLine(text string, maxWidth int, m Measurer) (*Line, error) {
	paragraphs, err := WrapText(text, maxWidth, m)
	if err != nil {
		return nil, err
	}
	return &Line{paragraphs: paragraphs}, nil
}

func newWrappedLine(text string, maxWidth int, m Measurer) *Line {
	return &Line{paragraphs: wrapWords(Words(text), maxWidth, m)}
}

func (l *Line) String() string {
	return fmt.Sprintf("Line(%d paragraphs, %d chars)", len(l.paragraphs), l.Len())
}

// Paragraphs returns a copy of the line's paragraphs.
func (l *Line) Paragraphs() []string {
	return append([]string(nil), l.paragraphs...)
}

func (l *Line) NumParagraphs() int { return len(l.paragraphs) }

// Paragraph returns paragraph i, or "" when i is out of range.
func (l *Line) Paragraph(i int) string {
	if i < 0 || i >= len(l.paragraphs) {
		return ""
	}
	return l.paragraphs[i]
}

func (l *Line) paragraphLen(i int) int {
	return grapheme.Count(l.Paragraph(i))
}

// Text returns the raw line text: paragraphs joined by the single spaces the
// wrap consumed.
func (l *Line) Text() string {
	return strings.Join(l.paragraphs, " ")
}

// Len returns the flattened length: all characters plus one separator per
// wrap boundary.
func (l *Line) Len() int {
	n := len(l.paragraphs) - 1
	for _, p := range l.paragraphs {
		n += grapheme.Count(p)
	}
	return n
}

// FlatOffset converts (paragraph, char) into a flattened offset.
func (l *Line) FlatOffset(paragraph, char int) int {
	off := 0
	for i := 0; i < paragraph && i < len(l.paragraphs); i++ {
		off += grapheme.Count(l.paragraphs[i]) + 1
	}
	return off + char
}

// ParagraphAndChar is the inverse of FlatOffset.
//
// ok is false when off lies outside [0, Len()]. The result is then clamped to
// (last paragraph, 0) for offsets past the end, or (0, 0) for negative ones.
// Reaching that path means a caller computed an offset against a stale
// layout, so it is logged.
func (l *Line) ParagraphAndChar(off int) (paragraph, char int, ok bool) {
	if off < 0 {
		log.Warn(log.CatLayout, "negative flattened offset", "offset", off, "len", l.Len())
		return 0, 0, false
	}

	cum := 0
	for i, p := range l.paragraphs {
		span := grapheme.Count(p) + 1
		if off < cum+span {
			return i, off - cum, true
		}
		cum += span
	}

	log.Warn(log.CatLayout, "flattened offset past end of line", "offset", off, "len", l.Len())
	return len(l.paragraphs) - 1, 0, false
}

// Rewrap re-flows the line to maxWidth.
func (l *Line) Rewrap(maxWidth int, m Measurer) error {
	paragraphs, err := WrapText(l.Text(), maxWidth, m)
	if err != nil {
		return err
	}
	l.paragraphs = paragraphs
	return nil
}

// RewrapCarrying re-flows the line and returns c moved to the same logical
// character in the new layout. c.Line is preserved; c must point into l.
func (l *Line) RewrapCarrying(c Cursor, maxWidth int, m Measurer) (Cursor, error) {
	if maxWidth <= 0 {
		return c, ErrInvalidMaxWidth
	}
	if m == nil {
		m = CellMeasurer{}
	}
	return l.rewrapCarrying(c, maxWidth, m), nil
}

func (l *Line) rewrapCarrying(c Cursor, maxWidth int, m Measurer) Cursor {
	return l.rewrapAt(c.Line, l.FlatOffset(c.Paragraph, c.Char), maxWidth, m)
}

// rewrapAt re-flows the line and maps off, a flattened offset into the
// line's text, onto the new layout.
func (l *Line) rewrapAt(line, off, maxWidth int, m Measurer) Cursor {
	l.paragraphs = wrapWords(Words(l.Text()), maxWidth, m)
	p, ch, _ := l.ParagraphAndChar(off)
	return Cursor{Line: line, Paragraph: p, Char: ch}
}

// Split cuts the line at (paragraph, char) and returns the raw text on each
// side. The separators between paragraphs are restored as spaces.
func (l *Line) Split(paragraph, char int) (left, right string) {
	paragraph = clampInt(paragraph, 0, len(l.paragraphs)-1)
	leftFrag, rightFrag := grapheme.SplitAt(l.paragraphs[paragraph], char)

	leftParts := append(append([]string(nil), l.paragraphs[:paragraph]...), leftFrag)
	rightParts := append([]string{rightFrag}, l.paragraphs[paragraph+1:]...)
	return strings.Join(leftParts, " "), strings.Join(rightParts, " ")
}

func (l *Line) clone() *Line {
	return &Line{paragraphs: l.Paragraphs()}
}
