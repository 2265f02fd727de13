package colorspace

import (
	"fmt"
	"math"
)

// Lab is a CIE L*a*b* color relative to the D65 white point.
type Lab struct {
	L, A, B float64
}

func (l Lab) String() string {
	return fmt.Sprintf("lab(%.4f, %.4f, %.4f)", l.L, l.A, l.B)
}

// D65 reference white, Y normalized to 1.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

// CIE constants in their exact rational form.
const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// ToLab converts an sRGB color to CIE Lab (D65).
func ToLab(c RGB) Lab {
	r := linearize(c.R)
	g := linearize(c.G)
	b := linearize(c.B)

	// sRGB primaries, rows sum to the D65 white above
	x := 0.4124564*r + 0.3575761*g + 0.1804375*b
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b
	z := 0.0193339*r + 0.1191920*g + 0.9503041*b

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// linearize inverts the sRGB companding curve.
func linearize(v uint8) float64 {
	c := float64(v) / 255
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}
