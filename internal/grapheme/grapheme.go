// Package grapheme holds the grapheme-cluster helpers shared by the buffer and
// editor packages. One cluster is one "character" for cursor arithmetic.
package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// SplitAt splits text into the clusters before col and the rest.
// col is clamped to [0, Count(text)].
func SplitAt(text string, col int) (left, right string) {
	if col <= 0 {
		return "", text
	}

	state := -1
	rest := text
	for i := 0; i < col && len(rest) > 0; i++ {
		_, rest, _, state = uniseg.StepString(rest, state)
	}
	return text[:len(text)-len(rest)], rest
}

// IndexSpace returns the column of the first space cluster at or after from,
// or -1.
func IndexSpace(text string, from int) int {
	for i, c := range Split(text) {
		if i >= from && IsSeparator(c) {
			return i
		}
	}
	return -1
}

// LastIndexSpace returns the column of the last space cluster strictly before
// before, or -1.
func LastIndexSpace(text string, before int) int {
	clusters := Split(text)
	if before > len(clusters) {
		before = len(clusters)
	}
	for i := before - 1; i >= 0; i-- {
		if IsSeparator(clusters[i]) {
			return i
		}
	}
	return -1
}

// IsSeparator reports whether cluster is a bare word separator. A space
// followed by combining marks is a different character.
func IsSeparator(cluster string) bool {
	return cluster == " "
}

// IsPrintable reports whether every rune in cluster is printable, which is
// what the editor requires before inserting typed input.
func IsPrintable(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
