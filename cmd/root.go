package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/hexref/colorspace"
	"github.com/mmuldo/hexref/dataset"
	"github.com/mmuldo/hexref/logging"
	"github.com/mmuldo/hexref/naming"
	"github.com/mmuldo/hexref/palette"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hexref",
	Short: "Inspect, name and derive colours",
	Long: `hexref converts a colour between hex, RGB, HSL, CMYK and OKLCH, names it
against a curated table, derives shades, tints and harmonies, checks contrast,
and exports design-token scales.

Colours can be given as #RRGGBB (the '#' is optional), rgb(r, g, b) or
hsl(h, s%, l%).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hexref.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "output format: text or json")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn or error")

	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	setDefaults()
}

func setDefaults() {
	viper.SetDefault("output", "text")
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("naming.metric", "cie76")
	viper.SetDefault("naming.table", "curated")
	viper.SetDefault("dataset.source", dataset.DefaultSource)
	viper.SetDefault("dataset.cache", filepath.Join("~", ".hexref", "colors.db"))
	viper.SetDefault("dataset.ttl", 24*time.Hour)
	viper.SetDefault("dataset.timeout", 15*time.Second)
	viper.SetDefault("export.name", "primary")
	viper.SetDefault("export.templates", "")
}

// initConfig reads in .env, the config file and ENV variables if set.
func initConfig() {
	// a missing .env is normal
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".hexref")
	}

	viper.SetEnvPrefix("hexref")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// the config file is optional
	_ = viper.ReadInConfig()
}

func setupLogging() error {
	level, err := logging.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		return err
	}
	logging.SetLogger(logging.NewText(os.Stderr, level))
	if f := viper.ConfigFileUsed(); f != "" {
		logging.Logger().Debug("using config file", "path", f)
	}
	return nil
}

// parseColor reads a colour argument.
func parseColor(s string) (colorspace.RGB, error) {
	c, err := colorspace.Parse(s)
	if err != nil {
		return c, fmt.Errorf("%q is not a colour: %w", s, err)
	}
	return c, nil
}

// resolver builds the naming resolver selected by naming.table and
// naming.metric.
func resolver() (*naming.Resolver, error) {
	var entries []naming.Entry
	switch t := strings.ToLower(viper.GetString("naming.table")); t {
	case "curated", "":
	case "css":
		entries = naming.CSSEntries()
	default:
		return nil, fmt.Errorf("unknown naming table %q", t)
	}

	var opts []naming.Option
	switch m := strings.ToLower(viper.GetString("naming.metric")); m {
	case "cie76", "":
	case "ciede2000":
		opts = append(opts, naming.WithMetric(palette.DeltaE2000))
	default:
		return nil, fmt.Errorf("unknown naming metric %q", m)
	}
	if entries == nil {
		if len(opts) == 0 {
			return naming.NewResolver(nil), nil
		}
		entries = naming.Curated()
	}
	return naming.NewResolver(naming.NewIndex(entries, opts...)), nil
}

func expandPath(p string) (string, error) {
	return homedir.Expand(p)
}

func jsonOutput() bool {
	return strings.EqualFold(viper.GetString("output"), "json")
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
