package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/wrapfield/editor"
	"github.com/iw2rmb/wrapfield/internal/config"
	"github.com/iw2rmb/wrapfield/internal/log"
)

var quitKey = key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+c", "quit"))

// app hosts one editor field plus a help line.
type app struct {
	cfg    config.Config
	editor editor.Model
	help   help.Model
}

func newApp(cfg config.Config, text string) app {
	style := editor.DefaultStyle().WithColors(cfg.Theme.Text, cfg.Theme.Cursor, cfg.Theme.Border, cfg.Theme.Placeholder)
	a := app{cfg: cfg, help: help.New()}
	a.editor = editor.New(editor.Config{
		Text:        text,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Padding:     cfg.Padding,
		Placeholder: cfg.Placeholder,
		ScrollStep:  cfg.ScrollStep,
		BlinkPeriod: cfg.BlinkPeriod,
		Style:       style,
		Focused:     true,
		OnChange: func(ev editor.ChangeEvent) {
			log.Debug(log.CatEditor, "Changed", "version", ev.Version, "cursor", ev.Cursor.String())
		},
	})
	return a
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			return a, tea.Quit
		}
	case tea.WindowSizeMsg:
		w, h := fieldSize(a.cfg, msg.Width, msg.Height-1)
		a.help.Width = msg.Width
		a.editor = a.editor.SetSize(w, h)
		log.Debug(log.CatEditor, "Resized", "width", w, "height", h)
		return a, nil
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		a.editor.View(),
		a.help.View(helpKeys{editor: editor.DefaultKeyMap()}),
	)
}

// fieldSize applies configured sizes, falling back to the terminal size.
// One line is reserved for help.
func fieldSize(cfg config.Config, termW, termH int) (int, int) {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || w > termW {
		w = termW
	}
	if h <= 0 || h > termH {
		h = termH
	}
	return max(w, 0), max(h, 0)
}

type helpKeys struct {
	editor editor.KeyMap
}

func (k helpKeys) ShortHelp() []key.Binding {
	return append(k.editor.ShortHelp(), quitKey)
}

func (k helpKeys) FullHelp() [][]key.Binding {
	return append(k.editor.FullHelp(), []key.Binding{quitKey})
}
