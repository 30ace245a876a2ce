// Package buffer implements the pure, grapheme-accurate layout model for
// wrapfield: logical lines re-flowed into width-bounded paragraphs, and the
// cursor arithmetic that keeps a position stable across re-flow.
//
// Coordinates are 0-based (Line, Paragraph, Char); Char counts grapheme
// clusters within one paragraph. A Line's flattened offset treats its
// paragraphs as one string joined by a single virtual separator, which is
// what lets a cursor survive a re-wrap.
//
// Nothing in this package is safe for concurrent use.
package buffer
