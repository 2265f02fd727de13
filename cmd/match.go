package cmd

import (
	"github.com/mmuldo/colormatch/colorspace"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultMatchFormat = `{{ query_hex }} -> {{ name }} ({{ hex }}) dE={{ distance|floatformat:2 }} {{ description }}`

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <color>...",
	Short: "Finds the closest palette color",
	Long: `Finds the closest palette color for each hex color argument.

The output template is pongo2 and sees query_hex, query_rgb, query_swatch,
name, hex, rgb, swatch, distance and description.`,
	Example: `  colormatch match '#ff0000'
  colormatch match -n 3 1e40af
  colormatch match --format '{{ swatch }} {{ name }}' '#123456'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, e := newMatcher()
		if e != nil {
			return e
		}

		count := viper.GetInt("count")
		if count < 1 {
			count = 1
		}
		for _, arg := range args {
			c, e := colorspace.ParseHex(arg)
			if e != nil {
				return e
			}

			rs, e := m.Nearest(c, count)
			if e != nil {
				return e
			}
			for _, r := range rs {
				if e := render(cmd.OutOrStdout(), viper.GetString("format"), resultContext(c, r)); e != nil {
					return e
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("format", "f", defaultMatchFormat, "pongo2 output template")
	matchCmd.Flags().IntP("count", "n", 1, "number of candidates to print per color")
	viper.BindPFlag("format", matchCmd.Flags().Lookup("format"))
	viper.BindPFlag("count", matchCmd.Flags().Lookup("count"))
}
