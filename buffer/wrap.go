package buffer

import (
	"errors"
	"strings"

	"github.com/iw2rmb/wrapfield/internal/grapheme"
)

// ErrInvalidMaxWidth is returned when a wrap width is not positive.
var ErrInvalidMaxWidth = errors.New("buffer: max width must be positive")

// Words splits a line's raw text on clusters that are exactly one space.
// Consecutive, leading and trailing spaces produce empty words, so
// strings.Join(Words(s), " ") == s. A space carrying a combining mark is a
// single character and stays inside its word.
func Words(text string) []string {
	words := make([]string, 0, 1)
	var word strings.Builder
	for _, cl := range grapheme.Split(text) {
		if grapheme.IsSeparator(cl) {
			words = append(words, word.String())
			word.Reset()
			continue
		}
		word.WriteString(cl)
	}
	return append(words, word.String())
}

// Wrap greedily packs words into paragraphs no wider than maxWidth.
//
// A word that is wider than maxWidth on its own becomes its own paragraph and
// is never subdivided. The result always holds at least one paragraph, and
// joining it with single spaces reproduces strings.Join(words, " ").
func Wrap(words []string, maxWidth int, m Measurer) ([]string, error) {
	if maxWidth <= 0 {
		return nil, ErrInvalidMaxWidth
	}
	if m == nil {
		m = CellMeasurer{}
	}
	return wrapWords(words, maxWidth, m), nil
}

// WrapText wraps a single logical line.
func WrapText(text string, maxWidth int, m Measurer) ([]string, error) {
	return Wrap(Words(text), maxWidth, m)
}

func wrapWords(words []string, maxWidth int, m Measurer) []string {
	paragraphs := make([]string, 0, 1)

	// started means current holds at least one word, which may be "".
	current := ""
	started := false
	for _, word := range words {
		candidate := word
		if started {
			candidate = current + " " + word
		}

		if m.Width(candidate) <= maxWidth {
			current = candidate
			started = true
			continue
		}

		if started {
			paragraphs = append(paragraphs, current)
			current = word
			continue
		}

		// Single word wider than maxWidth with nothing buffered.
		paragraphs = append(paragraphs, word)
	}

	if started {
		paragraphs = append(paragraphs, current)
	}
	if len(paragraphs) == 0 {
		paragraphs = append(paragraphs, "")
	}
	return paragraphs
}
