package cmd

import (
	"github.com/flosch/pongo2"
	"github.com/mmuldo/colormatch/colorspace"
	"github.com/spf13/cobra"
)

var compareFormat string

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <color> <color>",
	Short: "Measures the perceptual difference between two colors",
	Long: `Prints the CIEDE2000 difference between two hex colors, rounded to two
decimals, and how noticeable that difference is.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var cs [2]colorspace.RGB
		for i, arg := range args {
			c, e := colorspace.ParseHex(arg)
			if e != nil {
				return e
			}
			cs[i] = c
		}

		m, e := newMatcher()
		if e != nil {
			return e
		}
		cmp, e := m.Compare(cs[0], cs[1])
		if e != nil {
			return e
		}

		ctxt := colorContext("a_", cs[0])
		ctxt.Update(colorContext("b_", cs[1]))
		ctxt.Update(pongo2.Context{
			"deltae":      cmp.DeltaE,
			"description": cmp.Description,
		})
		return render(cmd.OutOrStdout(), compareFormat, ctxt)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVarP(&compareFormat, "format", "f",
		`{{ a_hex }} vs {{ b_hex }}: dE={{ deltae|floatformat:2 }} {{ description }}`, "pongo2 output template")
}
