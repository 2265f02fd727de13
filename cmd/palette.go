package cmd

import (
	"fmt"
	"github.com/flosch/pongo2"
	"github.com/spf13/cobra"
)

var paletteFormat string

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Inspects the configured palette",
}

var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists every palette color in name order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, e := newMatcher()
		if e != nil {
			return e
		}
		p, e := m.Palette()
		if e != nil {
			return e
		}

		for _, entry := range p.Entries() {
			ctxt := colorContext("", entry.RGB)
			ctxt.Update(pongo2.Context{"name": entry.Name, "lab": entry.Lab.String()})
			if e := render(cmd.OutOrStdout(), paletteFormat, ctxt); e != nil {
				return e
			}
		}
		return nil
	},
}

var paletteShowCmd = &cobra.Command{
	Use:   "show <name>...",
	Short: "Shows the named palette colors",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, e := newMatcher()
		if e != nil {
			return e
		}
		p, e := m.Palette()
		if e != nil {
			return e
		}

		for _, name := range args {
			entry, ok := p.Lookup(name)
			if !ok {
				return fmt.Errorf("no color named %q in palette", name)
			}
			ctxt := colorContext("", entry.RGB)
			ctxt.Update(pongo2.Context{"name": entry.Name, "lab": entry.Lab.String()})
			if e := render(cmd.OutOrStdout(), paletteFormat, ctxt); e != nil {
				return e
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.AddCommand(paletteListCmd, paletteShowCmd)

	paletteCmd.PersistentFlags().StringVarP(&paletteFormat, "format", "f",
		"{{ name }} {{ hex }}", "pongo2 output template (name, hex, rgb, lab, swatch)")
}
