package buffer

import "github.com/iw2rmb/wrapfield/internal/grapheme"

type MoveUnit int

const (
	MoveChar MoveUnit = iota
	MoveWord
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
)

// Delta returns -1 for DirLeft and +1 for DirRight.
func (d MoveDir) Delta() int {
	switch d {
	case DirLeft:
		return -1
	case DirRight:
		return 1
	default:
		return 0
	}
}

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

// Move returns c moved by m. Moving past the start or end of the document
// returns c unchanged.
//
// Word moves hop to the previous/next space inside the current paragraph; at
// a paragraph edge they step across the boundary exactly like a character
// move and do not continue into the next word.
func (d *Document) Move(c Cursor, m Move) Cursor {
	c = d.ClampCursor(c)
	dir := m.Dir.Delta()
	if dir == 0 {
		return c
	}

	paragraph := d.lines[c.Line].paragraphs[c.Paragraph]
	target := nextCharIndex(paragraph, c.Char, dir, m.Unit == MoveWord)
	if target >= 0 && target <= grapheme.Count(paragraph) {
		c.Char = target
		return c
	}
	return d.crossBoundary(c, dir)
}

// nextCharIndex returns the candidate char index. -1 and len+1 signal that
// the move overflows the paragraph.
func nextCharIndex(paragraph string, char, dir int, jumpWords bool) int {
	if !jumpWords {
		return char + dir
	}

	n := grapheme.Count(paragraph)
	if dir > 0 {
		if char >= n {
			return n + 1
		}
		if i := grapheme.IndexSpace(paragraph, char+1); i >= 0 {
			return i
		}
		return n
	}

	if char <= 0 {
		return -1
	}
	if i := grapheme.LastIndexSpace(paragraph, char); i >= 0 {
		return i
	}
	return 0
}

// crossBoundary steps into the neighbouring paragraph (or line), landing next
// to the boundary that was crossed.
func (d *Document) crossBoundary(c Cursor, dir int) Cursor {
	line := c.Line
	paragraph := c.Paragraph + dir
	if paragraph < 0 || paragraph >= d.lines[line].NumParagraphs() {
		line += dir
		if line < 0 || line >= len(d.lines) {
			return c
		}
		paragraph = 0
		if dir < 0 {
			paragraph = d.lines[line].NumParagraphs() - 1
		}
	}

	char := 0
	if dir < 0 {
		char = d.lines[line].paragraphLen(paragraph)
	}
	return Cursor{Line: line, Paragraph: paragraph, Char: char}
}
