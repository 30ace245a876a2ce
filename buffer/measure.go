package buffer

import (
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/patrickmn/go-cache"
	"github.com/rivo/uniseg"
)

// Measurer reports the rendered width of text in the active style.
type Measurer interface {
	Width(text string) int
}

// MeasurerFunc adapts a plain function to Measurer.
type MeasurerFunc func(text string) int

func (f MeasurerFunc) Width(text string) int { return f(text) }

// CellMeasurer measures terminal cells.
type CellMeasurer struct{}

func (CellMeasurer) Width(text string) int {
	if text == "" {
		return 0
	}
	w := runewidth.StringWidth(text)
	if w <= 0 {
		w = uniseg.StringWidth(text)
	}
	return w
}

// CachedMeasurer memoizes another Measurer. Re-flowing a line measures the
// same prefixes over and over, which is expensive for font-backed measurers.
type CachedMeasurer struct {
	next  Measurer
	ttl   time.Duration
	cache *cache.Cache
}

// NewCachedMeasurer wraps next. Entries expire after ttl and a janitor sweeps
// expired ones every 2*ttl. ttl <= 0 keeps entries until Flush, which only
// suits measurers over a bounded set of strings.
func NewCachedMeasurer(next Measurer, ttl time.Duration) *CachedMeasurer {
	if next == nil {
		next = CellMeasurer{}
	}
	c := cache.New(cache.NoExpiration, 0)
	if ttl > 0 {
		c = cache.New(ttl, 2*ttl)
	}
	return &CachedMeasurer{next: next, ttl: ttl, cache: c}
}

// TTL returns the entry lifetime, or 0 when entries never expire.
func (m *CachedMeasurer) TTL() time.Duration { return max(0, m.ttl) }

func (m *CachedMeasurer) Width(text string) int {
	if v, ok := m.cache.Get(text); ok {
		if w, ok := v.(int); ok {
			return w
		}
	}
	w := m.next.Width(text)
	m.cache.SetDefault(text, w)
	return w
}

// Flush drops all cached widths. Call it when the measured style changes.
func (m *CachedMeasurer) Flush() { m.cache.Flush() }

// Len returns the number of cached entries.
func (m *CachedMeasurer) Len() int { return m.cache.ItemCount() }
