/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/mmuldo/colormatch/colorspace"
	"github.com/mmuldo/colormatch/distance"
	"github.com/mmuldo/colormatch/match"
	"github.com/mmuldo/colormatch/palette"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"log"
	"os"
	"strings"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "colormatch",
	Short: "Names colors after their closest palette entry",
	Long: `colormatch finds the perceptually closest named palette color for
any sRGB color, using the CIEDE2000 color difference in CIE Lab space.

The built-in palette is Tailwind CSS; point the palette setting at a JSON
or YAML file of nested name->hex maps to use your own.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.colormatch.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	rootCmd.PersistentFlags().StringP("palette", "p", "", "palette file (default is the built-in Tailwind palette)")
	rootCmd.PersistentFlags().String("exclude", strings.Join(palette.DeprecatedTailwind, ","),
		"comma-separated palette families to leave out")
	rootCmd.PersistentFlags().String("converter", colorspace.CIE{}.Name(),
		fmt.Sprintf("RGB to Lab backend, one of %s", strings.Join(colorspace.Converters(), ", ")))
	rootCmd.PersistentFlags().String("metric", distance.CIE{}.Name(),
		fmt.Sprintf("CIEDE2000 backend, one of %s", strings.Join(distance.Metrics(), ", ")))

	for _, key := range []string{"palette", "exclude", "converter", "metric"} {
		viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Fatal(err)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".colormatch")
	}

	viper.SetEnvPrefix("colormatch")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		debugf("using config file %s", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		log.Fatal(err)
	}
}

// newMatcher assembles a matcher from the palette, exclude, converter and
// metric settings. The palette itself is built on first use.
func newMatcher() (*match.Matcher, error) {
	conv, e := colorspace.ConverterByName(viper.GetString("converter"))
	if e != nil {
		return nil, e
	}
	metric, e := distance.MetricByName(viper.GetString("metric"))
	if e != nil {
		return nil, e
	}

	var source palette.Group
	if path := viper.GetString("palette"); path != "" {
		source, e = palette.LoadFile(path)
		if e != nil {
			return nil, e
		}
		debugf("loaded palette %s", path)
	} else {
		source = palette.Tailwind()
	}
	source = source.Without(excludeList(viper.Get("exclude"))...)

	debugf("converter %s, metric %s, %d palette groups", conv.Name(), metric.Name(), len(source))
	return match.NewWithMetric(palette.NewIndex(source, conv), metric), nil
}

// excludeList reads the exclude setting, a comma-separated string from the
// flag or environment or a list from a config file.
func excludeList(v interface{}) []string {
	var raw []string
	switch v := v.(type) {
	case string:
		raw = strings.Split(v, ",")
	case []string:
		raw = v
	case []interface{}:
		for _, s := range v {
			raw = append(raw, fmt.Sprint(s))
		}
	}

	var names []string
	for _, name := range raw {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func debugf(format string, args ...interface{}) {
	if verbose {
		log.Printf(format, args...)
	}
}
