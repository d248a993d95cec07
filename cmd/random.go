package cmd

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmuldo/hexref/colorspace"
	"github.com/mmuldo/hexref/dataset"
	"github.com/mmuldo/hexref/tui"
)

type swatchRecord struct {
	formats
	Name string `json:"name"`
}

// printSwatch shows c with name, or with its resolved display name when
// name is empty.
func printSwatch(cmd *cobra.Command, c colorspace.RGB, name string) error {
	if name == "" {
		r, err := resolver()
		if err != nil {
			return err
		}
		name = r.Resolve(c).DisplayName()
	}
	rec := swatchRecord{formats: formatsOf(c), Name: name}
	w := cmd.OutOrStdout()
	if jsonOutput() {
		return printJSON(w, rec)
	}
	fmt.Fprintln(w, tui.Swatch(c, "  "+name+"  "))
	fmt.Fprintln(w, tui.Card("Formats", rec.rows()))
	return nil
}

func newRand(cmd *cobra.Command) *rand.Rand {
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Show a random colour",
	Long: `Show a random colour. With --dataset the colour is picked from the named
colour dataset, optionally restricted with --filter.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := newRand(cmd)
		fromDataset, _ := cmd.Flags().GetBool("dataset")
		if !fromDataset {
			c := colorspace.Random(rng)
			return printSwatch(cmd, c, "")
		}

		filterFlag, _ := cmd.Flags().GetString("filter")
		f, err := dataset.ParseFilter(filterFlag)
		if err != nil {
			return err
		}
		colors, err := loadColors(cmd.Context(), false)
		if err != nil {
			return err
		}
		picked, ok := dataset.Pick(dataset.Apply(colors, f), rng)
		if !ok {
			return errors.New("no colours match the filter")
		}
		c, err := picked.RGB()
		if err != nil {
			return err
		}
		return printSwatch(cmd, c, picked.Name)
	},
}

var clockCmd = &cobra.Command{
	Use:   "clock",
	Short: "Show the hex clock colour for the current time",
	Long:  `Show the colour #HHMMSS made of the current hour, minute and second.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		c := colorspace.FromClock(now)
		if !jsonOutput() {
			fmt.Fprintln(cmd.OutOrStdout(), now.Format("15:04:05"))
		}
		return printSwatch(cmd, c, "")
	},
}

func init() {
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(clockCmd)

	randomCmd.Flags().Int64("seed", 0, "random seed (default: current time)")
	randomCmd.Flags().Bool("dataset", false, "pick from the named colour dataset")
	randomCmd.Flags().StringP("filter", "f", "all", "dataset filter: all, dark or light")
}
