package editor

import (
	"time"

	"github.com/iw2rmb/wrapfield/buffer"
)

const (
	defaultWidth      = 40
	defaultHeight     = 5
	defaultScrollStep = 3

	// Lifetime of cached text widths. Every edit measures new prefixes, so
	// entries must age out.
	defaultMeasureTTL = time.Minute
)

// Config configures the editor Model.
type Config struct {
	// Initial text.
	Text string

	// Outer size of the field in cells, frame included. Zero values fall back
	// to 40x5 until the first SetSize.
	Width, Height int

	// Inset between the frame and the text area, in cells.
	Padding int

	// Shown when the document is empty and the field is not focused.
	Placeholder string

	// Rows scrolled per mouse wheel notch. Zero means 3.
	ScrollStep int

	// Full cursor blink cycle. Zero disables blinking.
	BlinkPeriod time.Duration

	// Measurer used for wrapping and hit-testing. Nil means cell widths.
	Measurer buffer.Measurer

	KeyMap KeyMap
	Style  Style

	// Focused makes the field start focused.
	Focused bool

	// OnChange is called synchronously after an update that changed the text,
	// the cursor or the selection anchor.
	OnChange func(ChangeEvent)
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.Padding < 0 {
		c.Padding = 0
	}
	if c.ScrollStep <= 0 {
		c.ScrollStep = defaultScrollStep
	}
	if c.Measurer == nil {
		c.Measurer = buffer.NewCachedMeasurer(buffer.CellMeasurer{}, defaultMeasureTTL)
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
