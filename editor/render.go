package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/wrapfield/buffer"
	"github.com/iw2rmb/wrapfield/internal/grapheme"
)

func (m Model) View() string {
	cw := m.contentWidth()
	rows := make([]string, 0, m.visibleRows())

	if m.doc.IsEmpty() && !m.focused && m.cfg.Placeholder != "" {
		rows = append(rows, fitRow(m.cfg.Style.Placeholder.Render(m.cfg.Placeholder), cw))
	} else {
		start, end, hasSel := m.sel.Range(m.cursor)
		showCursor := m.focused && m.blinkOn
		for i := 0; i < m.visibleRows(); i++ {
			line, paragraph, ok := m.doc.RowToPosition(m.scroll, i, 1)
			if !ok {
				break
			}
			r := rowRender{
				style:      m.cfg.Style,
				width:      cw,
				line:       line,
				paragraph:  paragraph,
				text:       m.doc.Paragraph(line, paragraph),
				cursor:     m.cursor,
				showCursor: showCursor,
				selStart:   start,
				selEnd:     end,
				hasSel:     hasSel,
			}
			rows = append(rows, fitRow(r.render(), cw))
		}
	}

	blank := strings.Repeat(" ", cw)
	for len(rows) < m.visibleRows() {
		rows = append(rows, blank)
	}

	body := strings.Join(rows, "\n")
	return m.cfg.Style.frame(m.focused).Padding(m.cfg.Padding).Render(body)
}

// fitRow truncates or pads a rendered row to exactly width cells.
func fitRow(s string, width int) string {
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "")
	}
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

type spanKind int

const (
	spanText spanKind = iota
	spanSelection
	spanCursor
)

type rowRender struct {
	style           Style
	width           int
	line, paragraph int
	text            string

	cursor     buffer.Cursor
	showCursor bool

	selStart, selEnd buffer.Cursor
	hasSel           bool
}

func (r rowRender) kindAt(char int) spanKind {
	pos := buffer.Cursor{Line: r.line, Paragraph: r.paragraph, Char: char}
	if r.showCursor && pos == r.cursor {
		return spanCursor
	}
	if r.hasSel && buffer.CompareCursor(r.selStart, pos) <= 0 && buffer.CompareCursor(pos, r.selEnd) < 0 {
		return spanSelection
	}
	return spanText
}

func (r rowRender) styleFor(k spanKind) lipgloss.Style {
	switch k {
	case spanCursor:
		return r.style.Cursor
	case spanSelection:
		return r.style.Selection
	default:
		return r.style.Text
	}
}

// render groups consecutive clusters of the same kind into one styled run.
func (r rowRender) render() string {
	clusters := grapheme.Split(r.text)

	// The cursor after the last character is drawn on a blank cell. When the
	// row has no cell left for it, it takes the last visible character.
	endCursor := r.kindAt(len(clusters)) == spanCursor
	cursorOn := -1
	if endCursor && len(clusters) > 0 && ansi.StringWidth(r.text) >= r.width {
		clusters = clusters[:fitClusters(clusters, r.width)]
		cursorOn = len(clusters) - 1
		endCursor = false
	}

	var sb strings.Builder
	var run strings.Builder
	kind := spanText
	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(r.styleFor(kind).Render(run.String()))
			run.Reset()
		}
	}

	for i, cl := range clusters {
		k := r.kindAt(i)
		if i == cursorOn {
			k = spanCursor
		}
		if k != kind {
			flush()
			kind = k
		}
		run.WriteString(cl)
	}
	flush()

	if endCursor {
		sb.WriteString(r.style.Cursor.Render(" "))
	}
	return sb.String()
}

// fitClusters returns how many leading clusters fit in width cells, at
// least one.
func fitClusters(clusters []string, width int) int {
	used := 0
	for i, cl := range clusters {
		used += ansi.StringWidth(cl)
		if used > width {
			return max(1, i)
		}
	}
	return len(clusters)
}
