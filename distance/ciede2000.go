// Package distance implements the CIEDE2000 color difference and a
// qualitative reading of its values.
package distance

import (
	"github.com/mmuldo/colormatch/colorspace"
	"math"
)

// Weights are the parametric factors kL, kC and kH.
type Weights struct {
	KL, KC, KH float64
}

// DefaultWeights is the reference condition kL = kC = kH = 1.
var DefaultWeights = Weights{1, 1, 1}

// 25^7
const pow25To7 = 6103515625.0

// CIEDE2000 returns the delta-E 2000 difference between two Lab colors under
// the default weights.
func CIEDE2000(lab1, lab2 colorspace.Lab) float64 {
	return CIEDE2000Weighted(lab1, lab2, DefaultWeights)
}

// CIEDE2000Weighted returns the delta-E 2000 difference between two Lab
// colors. All hue arithmetic is done in degrees.
func CIEDE2000Weighted(lab1, lab2 colorspace.Lab, w Weights) float64 {
	c1 := math.Hypot(lab1.A, lab1.B)
	c2 := math.Hypot(lab2.A, lab2.B)
	barC7 := math.Pow((c1+c2)/2, 7)
	g := 0.5 * (1 - math.Sqrt(barC7/(barC7+pow25To7)))

	a1 := (1 + g) * lab1.A
	a2 := (1 + g) * lab2.A
	cp1 := math.Hypot(a1, lab1.B)
	cp2 := math.Hypot(a2, lab2.B)
	hp1 := hueAngle(lab1.B, a1)
	hp2 := hueAngle(lab2.B, a2)

	deltaL := lab2.L - lab1.L
	deltaC := cp2 - cp1
	cProduct := cp1 * cp2

	// hue difference along the shorter arc, zero when either hue is undefined
	var deltah float64
	if cProduct != 0 {
		deltah = hp2 - hp1
		if deltah > 180 {
			deltah -= 360
		} else if deltah < -180 {
			deltah += 360
		}
	}
	deltaH := 2 * math.Sqrt(cProduct) * sinDeg(deltah/2)

	barL := (lab1.L + lab2.L) / 2
	barCp := (cp1 + cp2) / 2
	barh := meanHue(hp1, hp2, cProduct)

	t := 1 -
		0.17*cosDeg(barh-30) +
		0.24*cosDeg(2*barh) +
		0.32*cosDeg(3*barh+6) -
		0.20*cosDeg(4*barh-63)
	deltaTheta := 30 * math.Exp(-math.Pow((barh-275)/25, 2))
	barCp7 := math.Pow(barCp, 7)
	rc := 2 * math.Sqrt(barCp7/(barCp7+pow25To7))
	l50 := (barL - 50) * (barL - 50)
	sl := 1 + 0.015*l50/math.Sqrt(20+l50)
	sc := 1 + 0.045*barCp
	sh := 1 + 0.015*barCp*t
	rt := -sinDeg(2*deltaTheta) * rc

	dl := deltaL / (w.KL * sl)
	dc := deltaC / (w.KC * sc)
	dh := deltaH / (w.KH * sh)
	return math.Sqrt(dl*dl + dc*dc + dh*dh + rt*dc*dh)
}

// hueAngle returns atan2(b, a) in degrees within [0, 360), and 0 for the
// achromatic axis.
func hueAngle(b, a float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func meanHue(h1, h2, cProduct float64) float64 {
	sum := h1 + h2
	switch {
	case cProduct == 0:
		return sum
	case math.Abs(h1-h2) <= 180:
		return sum / 2
	case sum < 360:
		return (sum + 360) / 2
	default:
		return (sum - 360) / 2
	}
}

func sinDeg(d float64) float64 { return math.Sin(d * math.Pi / 180) }
func cosDeg(d float64) float64 { return math.Cos(d * math.Pi / 180) }
