package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmuldo/hexref/image"
	"github.com/mmuldo/hexref/tui"
)

// extractCmd pulls the dominant colours out of an image
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract and name the dominant colours of an image",
	Long: `Quantize a PNG, JPEG, GIF or WebP image to a small palette, rank the
colours by how much of the image they cover and name each one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := cmd.Flags().GetInt("colors")
		if err != nil {
			return err
		}
		merge, err := cmd.Flags().GetFloat64("merge")
		if err != nil {
			return err
		}
		r, err := resolver()
		if err != nil {
			return err
		}
		path, err := expandPath(args[0])
		if err != nil {
			return err
		}

		swatches, err := image.Extract(path, image.Options{Colors: n, Merge: merge, Resolver: r})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if jsonOutput() {
			return printJSON(w, swatches)
		}
		for _, s := range swatches {
			fmt.Fprintf(w, "%s %5.1f%%  %s\n", tui.Swatch(s.Color, s.Hex), s.Share*100, s.Name.DisplayName())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().IntP("colors", "n", 8, "palette size")
	extractCmd.Flags().Float64("merge", 0, "merge swatches closer than this CIEDE2000 distance")
}
