package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/wrapfield/buffer"
	"github.com/iw2rmb/wrapfield/internal/log"
)

// Model is a Bubble Tea component hosting one wrapped text field.
type Model struct {
	cfg Config
	doc *buffer.Document

	cursor buffer.Cursor
	sel    buffer.Selection
	scroll int

	width, height int
	focused       bool
	dragging      bool

	blinkOn bool
	blinkID int

	version uint64
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:     cfg,
		width:   cfg.Width,
		height:  cfg.Height,
		focused: cfg.Focused,
		blinkOn: true,
	}

	doc, err := buffer.New(cfg.Text, buffer.Options{Width: m.contentWidth(), Measurer: cfg.Measurer})
	if err != nil {
		// contentWidth is never below 1.
		panic(err)
	}
	m.doc = doc
	m.cursor = doc.EndCursor()
	m.scroll = doc.FollowCursor(0, m.cursor, m.visibleRows())
	return m
}

// Document returns the hosted document. Mutating it directly bypasses
// scroll following and OnChange; call SetCursor afterwards.
func (m Model) Document() *buffer.Document { return m.doc }

func (m Model) Cursor() buffer.Cursor { return m.cursor }

func (m Model) Selection() buffer.Selection { return m.sel }

func (m Model) Scroll() int { return m.scroll }

func (m Model) Text() string { return m.doc.Text() }

func (m Model) Focused() bool { return m.focused }

func (m Model) Init() tea.Cmd { return m.blinkCmd() }

// SetCursor moves the cursor to c (clamped) and scrolls it into view.
func (m Model) SetCursor(c buffer.Cursor) Model {
	m.cursor = m.doc.ClampCursor(c)
	m.followCursor()
	return m
}

// SetSize sets the outer size of the field and re-wraps the document to the
// new text-area width.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height

	if cw := m.contentWidth(); cw != m.doc.Width() {
		c, err := m.doc.RewrapAll(m.cursor, cw, nil)
		if err != nil {
			log.ErrorErr(log.CatEditor, "Rewrap failed", err, "width", cw)
		} else {
			m.cursor = c
		}
	}
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	m.blinkOn = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	m.dragging = false
	m.sel = buffer.Selection{}
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	before := m.snapshot()

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	case blinkMsg:
		m, cmd = m.updateBlink(msg)
	}

	m.notifyIfChanged(before)
	return m, cmd
}

func (m *Model) followCursor() {
	m.scroll = m.doc.FollowCursor(m.scroll, m.cursor, m.visibleRows())
}
