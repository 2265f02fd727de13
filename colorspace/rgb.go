package colorspace

import (
	"fmt"
	"github.com/pkg/errors"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is the cause of every error returned for malformed
// hex strings or out-of-range components.
var ErrInvalidColorFormat = errors.New("invalid color format")

// RGB is an opaque 8-bit sRGB color.
type RGB struct {
	R, G, B uint8
}

// NewRGB returns the RGB value for the given components. Components outside
// [0,255] are rejected, not clamped.
func NewRGB(r, g, b int) (RGB, error) {
	for _, v := range [...]int{r, g, b} {
		if v < 0 || v > 255 {
			return RGB{}, errors.Wrapf(ErrInvalidColorFormat, "component %d out of range [0,255]", v)
		}
	}
	return RGB{uint8(r), uint8(g), uint8(b)}, nil
}

// FromColor converts any color.Color to RGB, dropping alpha.
func FromColor(c color.Color) RGB {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	r, g, b, _ := c.RGBA()
	return RGB{byte(r >> 8), byte(g >> 8), byte(b >> 8)}
}

// ParseHex parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa", case-insensitive.
// The leading '#' is optional and alpha is discarded.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")

	var digits [8]uint8
	switch len(h) {
	case 3, 4:
		for i := range h {
			d, e := nibble(h[i])
			if e != nil {
				return RGB{}, errors.Wrapf(e, "%q", s)
			}
			digits[2*i], digits[2*i+1] = d, d
		}
	case 6, 8:
		for i := range h {
			d, e := nibble(h[i])
			if e != nil {
				return RGB{}, errors.Wrapf(e, "%q", s)
			}
			digits[i] = d
		}
	default:
		return RGB{}, errors.Wrapf(ErrInvalidColorFormat, "%q: want 3, 4, 6 or 8 hex digits", s)
	}

	return RGB{
		R: digits[0]<<4 | digits[1],
		G: digits[2]<<4 | digits[3],
		B: digits[4]<<4 | digits[5],
	}, nil
}

func nibble(c byte) (uint8, error) {
	v, e := strconv.ParseUint(string(c), 16, 8)
	if e != nil {
		return 0, errors.Wrapf(ErrInvalidColorFormat, "bad hex digit %q", c)
	}
	return uint8(v), nil
}

// Hex returns the lowercase "#rrggbb" form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 0xff}.RGBA()
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
