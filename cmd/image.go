package cmd

import (
	"github.com/flosch/pongo2"
	"github.com/mmuldo/colormatch/colorspace"
	"github.com/mmuldo/colormatch/image"
	"github.com/spf13/cobra"
	"image/png"
	"os"
)

var (
	imageColors int
	imageStep   int
	imageMerge  float64
	imageSwatch string
	imageFormat string
)

// imageCmd represents the image command
var imageCmd = &cobra.Command{
	Use:   "image <file>",
	Short: "Names the dominant colors of an image",
	Long: `Quantizes an image down to a handful of colors and names each one after
its closest palette color, most prevalent first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, e := image.Load(args[0])
		if e != nil {
			return e
		}

		cc, e := image.Dominant(i, imageColors, imageStep)
		if e != nil {
			return e
		}
		debugf("%s: %d dominant colors", args[0], len(cc))

		m, e := newMatcher()
		if e != nil {
			return e
		}
		p, e := m.Palette()
		if e != nil {
			return e
		}
		if imageMerge > 0 {
			cc = image.Merge(cc, p.Converter(), m.Metric(), imageMerge)
			debugf("%d colors after merging within dE %.2f", len(cc), imageMerge)
		}
		if imageSwatch != "" {
			if e := writeSwatches(imageSwatch, cc); e != nil {
				return e
			}
		}
		for _, c := range cc {
			r, e := m.Closest(c.Color)
			if e != nil {
				return e
			}
			ctxt := resultContext(c.Color, r)
			ctxt.Update(pongo2.Context{"count": c.Count})
			if e := render(cmd.OutOrStdout(), imageFormat, ctxt); e != nil {
				return e
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(imageCmd)

	imageCmd.Flags().IntVarP(&imageColors, "colors", "n", 8, "number of colors to quantize to")
	imageCmd.Flags().IntVar(&imageStep, "step", 5, "sample every step'th pixel")
	imageCmd.Flags().Float64Var(&imageMerge, "merge", 0, "merge colors closer than this CIEDE2000 distance")
	imageCmd.Flags().StringVar(&imageSwatch, "swatch", "", "also write the colors as a PNG swatch sheet")
	imageCmd.Flags().StringVarP(&imageFormat, "format", "f",
		"{{ query_hex }} x{{ count }} -> {{ name }} dE={{ distance|floatformat:2 }}", "pongo2 output template")
}

// writeSwatches saves cc as 200px tiles, four to a row.
func writeSwatches(path string, cc image.ColorCountList) error {
	colors := make([]colorspace.RGB, len(cc))
	for i, c := range cc {
		colors[i] = c.Color
	}

	f, e := os.Create(path)
	if e != nil {
		return e
	}
	defer f.Close()

	if e := png.Encode(f, image.Swatches(colors, 200, 4)); e != nil {
		return e
	}
	return f.Close()
}
