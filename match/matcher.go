package match

import (
	"github.com/mmuldo/colormatch/colorspace"
	"github.com/mmuldo/colormatch/distance"
	"github.com/mmuldo/colormatch/palette"
)

// Matcher matches colors against a lazily built palette. It is safe for
// concurrent use.
type Matcher struct {
	index  *palette.Index
	metric distance.Metric
}

// New returns a Matcher over idx using the built-in CIEDE2000.
func New(idx *palette.Index) *Matcher {
	return NewWithMetric(idx, nil)
}

// NewWithMetric returns a Matcher over idx measuring with m. A nil m selects
// distance.CIE.
func NewWithMetric(idx *palette.Index, m distance.Metric) *Matcher {
	if m == nil {
		m = distance.CIE{}
	}
	return &Matcher{idx, m}
}

// Metric is the matcher's distance backend.
func (m *Matcher) Metric() distance.Metric {
	return m.metric
}

// Palette exposes the underlying palette, building it if needed.
func (m *Matcher) Palette() (*palette.Palette, error) {
	return m.index.Palette()
}

// Closest is Closest over the matcher's palette.
func (m *Matcher) Closest(c colorspace.RGB) (Result, error) {
	p, e := m.index.Palette()
	if e != nil {
		return Result{}, e
	}
	return closest(p, m.metric, c)
}

// ClosestHex is ClosestHex over the matcher's palette.
func (m *Matcher) ClosestHex(hex string) (Result, error) {
	p, e := m.index.Palette()
	if e != nil {
		return Result{}, e
	}
	c, e := colorspace.ParseHex(hex)
	if e != nil {
		return Result{}, e
	}
	return closest(p, m.metric, c)
}

// Nearest is Nearest over the matcher's palette.
func (m *Matcher) Nearest(c colorspace.RGB, k int) ([]Result, error) {
	p, e := m.index.Palette()
	if e != nil {
		return nil, e
	}
	return nearest(p, m.metric, c, k)
}

// Compare is Compare using the palette's converter and the matcher's metric.
func (m *Matcher) Compare(a, b colorspace.RGB) (Comparison, error) {
	p, e := m.index.Palette()
	if e != nil {
		return Comparison{}, e
	}
	return compare(p.Converter(), m.metric, a, b), nil
}
