package match

import (
	"github.com/mmuldo/colormatch/colorspace"
	"github.com/mmuldo/colormatch/distance"
	"github.com/mmuldo/colormatch/palette"
	"github.com/pkg/errors"
	"math"
	"sort"
)

// ErrEmptyPalette is returned when there is nothing to match against.
var ErrEmptyPalette = errors.New("empty palette")

// Result is a palette entry and its CIEDE2000 distance from a query color.
type Result struct {
	Entry    palette.Entry
	Distance float64
}

// Difference classifies the result's distance.
func (r Result) Difference() distance.Difference {
	return distance.Classify(r.Distance)
}

type byDistance []Result

func (rs byDistance) Len() int { return len(rs) }
func (rs byDistance) Less(i, j int) bool {
	if rs[i].Distance != rs[j].Distance {
		return rs[i].Distance < rs[j].Distance
	}
	return rs[i].Entry.Name < rs[j].Entry.Name
}
func (rs byDistance) Swap(i, j int) { rs[i], rs[j] = rs[j], rs[i] }

//**exported functions**//
// Closest returns the palette entry nearest to c. Equidistant entries resolve
// to the one whose name sorts first.
func Closest(p *palette.Palette, c colorspace.RGB) (Result, error) {
	return closest(p, distance.CIE{}, c)
}

func closest(p *palette.Palette, m distance.Metric, c colorspace.RGB) (Result, error) {
	if p.Len() == 0 {
		return Result{}, ErrEmptyPalette
	}

	q := p.Converter().Lab(c)
	best := Result{Distance: math.Inf(1)}
	for i := 0; i < p.Len(); i++ {
		e := p.At(i)
		if d := m.Distance(q, e.Lab); d < best.Distance {
			best = Result{e, d}
		}
	}

	return best, nil
}

// ClosestHex parses hex and returns its closest palette entry.
func ClosestHex(p *palette.Palette, hex string) (Result, error) {
	c, e := colorspace.ParseHex(hex)
	if e != nil {
		return Result{}, e
	}
	return Closest(p, c)
}

// Nearest returns up to k entries ordered by distance from c, ties by name.
func Nearest(p *palette.Palette, c colorspace.RGB, k int) ([]Result, error) {
	return nearest(p, distance.CIE{}, c, k)
}

func nearest(p *palette.Palette, m distance.Metric, c colorspace.RGB, k int) ([]Result, error) {
	if p.Len() == 0 {
		return nil, ErrEmptyPalette
	}
	if k <= 0 {
		return nil, errors.Errorf("invalid candidate count %d", k)
	}

	q := p.Converter().Lab(c)
	rs := make(byDistance, p.Len())
	for i := range rs {
		e := p.At(i)
		rs[i] = Result{e, m.Distance(q, e.Lab)}
	}
	sort.Sort(rs)

	if k > len(rs) {
		k = len(rs)
	}
	return rs[:k], nil
}

// Comparison is the difference between two arbitrary colors.
type Comparison struct {
	DeltaE      float64
	Description string
}

// Compare measures a against b. DeltaE is rounded to two decimals; the
// description is classified from the unrounded value.
func Compare(conv colorspace.Converter, a, b colorspace.RGB) Comparison {
	return compare(conv, distance.CIE{}, a, b)
}

func compare(conv colorspace.Converter, m distance.Metric, a, b colorspace.RGB) Comparison {
	if conv == nil {
		conv = colorspace.CIE{}
	}
	d := m.Distance(conv.Lab(a), conv.Lab(b))
	return Comparison{
		DeltaE:      math.Round(d*100) / 100,
		Description: distance.Classify(d).String(),
	}
}
