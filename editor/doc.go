// Package editor provides a Bubble Tea text field component backed by the
// buffer package.
//
// The package decodes key and mouse input into buffer operations, keeps the
// scroll offset following the cursor, and renders the visible rows with
// lipgloss. Text layout and cursor arithmetic live in buffer.
package editor
