package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	// Frame is drawn around the text area. Its border (if any) adds to the
	// inset; its own padding is ignored in favour of Config.Padding.
	Frame       lipgloss.Style
	FrameFocus  lipgloss.Style
	Text        lipgloss.Style
	Cursor      lipgloss.Style
	Selection   lipgloss.Style
	Placeholder lipgloss.Style
}

func DefaultStyle() Style {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	return Style{
		Frame:       frame,
		FrameFocus:  frame.BorderForeground(lipgloss.Color("212")),
		Text:        lipgloss.NewStyle(),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),
	}
}

// PlainStyle has no frame and no colors. Useful for embedding and tests.
func PlainStyle() Style {
	return Style{
		Cursor: lipgloss.NewStyle().Reverse(true),
	}
}

// WithColors returns s with the given colors applied. Empty strings keep the
// existing color.
func (s Style) WithColors(text, cursor, border, placeholder string) Style {
	if text != "" {
		s.Text = s.Text.Foreground(lipgloss.Color(text))
	}
	if cursor != "" {
		s.Cursor = s.Cursor.Reverse(false).Background(lipgloss.Color(cursor))
		s.FrameFocus = s.FrameFocus.BorderForeground(lipgloss.Color(cursor))
	}
	if border != "" {
		s.Frame = s.Frame.BorderForeground(lipgloss.Color(border))
	}
	if placeholder != "" {
		s.Placeholder = s.Placeholder.Foreground(lipgloss.Color(placeholder))
	}
	return s
}

func (s Style) frame(focused bool) lipgloss.Style {
	f := s.Frame
	if focused && s.FrameFocus.GetBorderStyle() != (lipgloss.Border{}) {
		f = s.FrameFocus
	}
	return f.UnsetPadding().UnsetWidth().UnsetHeight()
}
