package distance

import (
	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
	"github.com/mmuldo/colormatch/colorspace"
	"github.com/pkg/errors"
	"sort"
)

// Metric measures the CIEDE2000 difference of two Lab colors. Implementations
// must be pure and safe for concurrent use.
type Metric interface {
	Distance(lab1, lab2 colorspace.Lab) float64
	Name() string
}

// reference weighting for go-chromath's delta-E
var klch = &deltae.KLChDefault

// CIE is the built-in metric, see CIEDE2000.
type CIE struct{}

func (CIE) Distance(lab1, lab2 colorspace.Lab) float64 { return CIEDE2000(lab1, lab2) }
func (CIE) Name() string                               { return "cie" }

// Chromath measures through go-chromath's deltae package.
type Chromath struct{}

func (Chromath) Distance(lab1, lab2 colorspace.Lab) float64 {
	return deltae.CIE2000(
		chromath.Lab{lab1.L, lab1.A, lab1.B},
		chromath.Lab{lab2.L, lab2.A, lab2.B},
		klch,
	)
}

func (Chromath) Name() string { return "chromath" }

var metrics = map[string]Metric{
	CIE{}.Name():      CIE{},
	Chromath{}.Name(): Chromath{},
}

// MetricByName returns the named backend; the empty name selects CIE.
func MetricByName(name string) (Metric, error) {
	if name == "" {
		return CIE{}, nil
	}
	m, ok := metrics[name]
	if !ok {
		return nil, errors.Errorf("unknown metric %q, want one of %q", name, Metrics())
	}
	return m, nil
}

// Metrics lists the available backend names in sorted order.
func Metrics() []string {
	var names []string
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
