package colorspace

import (
	"github.com/jkl1337/go-chromath"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"sort"
)

// Converter maps sRGB colors to Lab. Implementations must be pure and safe
// for concurrent use.
type Converter interface {
	Lab(RGB) Lab
	Name() string
}

var (
	// for RGB-to-Lab conversion through go-chromath
	targetIlluminant = &chromath.IlluminantRefD65
	rgb2Xyz          = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		&chromath.AdaptationBradford,
		targetIlluminant,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	lab2Xyz = chromath.NewLabTransformer(targetIlluminant)
)

// CIE is the built-in converter, see ToLab.
type CIE struct{}

func (CIE) Lab(c RGB) Lab { return ToLab(c) }
func (CIE) Name() string  { return "cie" }

// Chromath converts through go-chromath's sRGB and Lab transformers.
type Chromath struct{}

func (Chromath) Lab(c RGB) Lab {
	xyz := rgb2Xyz.Convert(chromath.RGB{float64(c.R), float64(c.G), float64(c.B)})
	lab := lab2Xyz.Invert(xyz)
	return Lab{lab.L(), lab.A(), lab.B()}
}

func (Chromath) Name() string { return "chromath" }

// Colorful converts through go-colorful, rescaling its [0,1] lightness to
// the usual [0,100] range.
type Colorful struct{}

func (Colorful) Lab(c RGB) Lab {
	l, a, b := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Lab()
	return Lab{l * 100, a * 100, b * 100}
}

func (Colorful) Name() string { return "colorful" }

var converters = map[string]Converter{
	CIE{}.Name():      CIE{},
	Chromath{}.Name(): Chromath{},
	Colorful{}.Name(): Colorful{},
}

// ConverterByName returns the named backend; the empty name selects CIE.
func ConverterByName(name string) (Converter, error) {
	if name == "" {
		return CIE{}, nil
	}
	c, ok := converters[name]
	if !ok {
		return nil, errors.Errorf("unknown converter %q, want one of %q", name, Converters())
	}
	return c, nil
}

// Converters lists the available backend names in sorted order.
func Converters() []string {
	var names []string
	for name := range converters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
