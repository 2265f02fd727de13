package image

import (
	"github.com/mmuldo/colormatch/colorspace"
	"github.com/mmuldo/colormatch/distance"
	"image"
	"image/color"
	"sort"
)

// Merge folds together colors closer than maxDelta (CIEDE2000). Each color,
// in the list's order, absorbs every later color within range; the absorbing
// color is kept, the counts are summed and the result is re-ranked. A nil
// conv or metric selects the CIE backend.
func Merge(cc ColorCountList, conv colorspace.Converter, metric distance.Metric, maxDelta float64) ColorCountList {
	if conv == nil {
		conv = colorspace.CIE{}
	}
	if metric == nil {
		metric = distance.CIE{}
	}

	labs := make([]colorspace.Lab, len(cc))
	for i, c := range cc {
		labs[i] = conv.Lab(c.Color)
	}

	out := make(ColorCountList, 0, len(cc))
	done := make([]bool, len(cc))
	for i := range cc {
		if done[i] {
			continue
		}
		g := cc[i]
		done[i] = true

		for j := i + 1; j < len(cc); j++ {
			if done[j] {
				continue
			}
			if metric.Distance(labs[i], labs[j]) < maxDelta {
				g.Count += cc[j].Count
				done[j] = true
			}
		}
		out = append(out, g)
	}

	sort.Sort(out)
	return out
}

// Swatches lays colors out as size x size tiles, perRow to a row.
func Swatches(colors []colorspace.RGB, size, perRow int) *image.RGBA {
	if perRow < 1 {
		perRow = 1
	}
	rows := (len(colors) + perRow - 1) / perRow
	cols := perRow
	if len(colors) < perRow {
		cols = len(colors)
	}

	img := image.NewRGBA(image.Rect(0, 0, cols*size, rows*size))
	for i, c := range colors {
		x, y := (i%perRow)*size, (i/perRow)*size
		rgba := color.RGBA{c.R, c.G, c.B, 0xff}
		for w := x; w < x+size; w++ {
			for h := y; h < y+size; h++ {
				img.SetRGBA(w, h, rgba)
			}
		}
	}

	return img
}
