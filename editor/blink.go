package editor

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type blinkMsg struct {
	id   int
	time time.Time
}

// cursorVisible reports the blink phase at t: visible for the first half of
// each period. A non-positive period never blinks.
func cursorVisible(t time.Time, period time.Duration) bool {
	if period <= 0 {
		return true
	}
	half := int64(period / 2)
	if half <= 0 {
		return true
	}
	return (t.UnixNano()/half)%2 == 0
}

func (m Model) blinkCmd() tea.Cmd {
	if m.cfg.BlinkPeriod <= 0 {
		return nil
	}
	id := m.blinkID
	return tea.Tick(m.cfg.BlinkPeriod/2, func(t time.Time) tea.Msg {
		return blinkMsg{id: id, time: t}
	})
}

func (m Model) updateBlink(msg blinkMsg) (Model, tea.Cmd) {
	if msg.id != m.blinkID {
		return m, nil
	}
	m.blinkOn = cursorVisible(msg.time, m.cfg.BlinkPeriod)
	return m, m.blinkCmd()
}

// resetBlink shows the cursor immediately and restarts the tick chain, so
// the cursor does not vanish while the user is typing.
func (m Model) resetBlink() (Model, tea.Cmd) {
	m.blinkOn = true
	m.blinkID++
	return m, m.blinkCmd()
}
