package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmuldo/hexref/colorspace"
	"github.com/mmuldo/hexref/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit [color]",
	Short: "Edit a colour interactively",
	Long: `Open an interactive editor with a live preview of formats, name, contrast,
shades, tints and the complementary colour. Enter prints the chosen colour.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		initial := colorspace.Random(rng)
		if len(args) == 1 {
			c, err := parseColor(args[0])
			if err != nil {
				return err
			}
			initial = c
		}
		r, err := resolver()
		if err != nil {
			return err
		}

		c, ok, err := tui.RunEditor(initial, r, rng)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if jsonOutput() {
			return printJSON(cmd.OutOrStdout(), formatsOf(c))
		}
		fmt.Fprintln(cmd.OutOrStdout(), c.Hex())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
