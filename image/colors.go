package image

import (
	"github.com/esimov/colorquant"
	"github.com/mmuldo/colormatch/colorspace"
	"github.com/pkg/errors"
	"image"
	"sort"
)

// ColorCount is a color and the number of sampled pixels that have it.
type ColorCount struct {
	Color colorspace.RGB
	Count int
}

type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool {
	if ccl[i].Count != ccl[j].Count {
		return ccl[i].Count > ccl[j].Count
	}
	return ccl[i].Color.Hex() < ccl[j].Color.Hex()
}
func (ccl ColorCountList) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }

// GetColors counts the opaque colors of img, sampling every step'th pixel
// in each direction.
func GetColors(img image.Image, step int) map[colorspace.RGB]int {
	if step < 1 {
		step = 1
	}
	m := make(map[colorspace.RGB]int)

	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x += step {
		for y := b.Min.Y; y < b.Max.Y; y += step {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a != 0 {
				m[colorspace.FromColor(c)]++
			}
		}
	}

	return m
}

// RankColors orders counted colors by prevalence.
func RankColors(m map[colorspace.RGB]int) ColorCountList {
	cc := make(ColorCountList, 0, len(m))
	for k, v := range m {
		cc = append(cc, ColorCount{k, v})
	}

	sort.Sort(cc)
	return cc
}

// Dominant quantizes img down to num colors and returns them ranked by
// prevalence. Fewer than num colors come back when the image lacks variation.
func Dominant(img image.Image, num, step int) (ColorCountList, error) {
	if num < 1 {
		return nil, errors.Errorf("invalid color count %d", num)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, errors.New("empty image")
	}
	o := image.NewNRGBA(b)
	colorquant.NoDither.Quantize(img, o, num, false, true)

	return RankColors(GetColors(o, step)), nil
}
