package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmuldo/hexref/colorspace"
	"github.com/mmuldo/hexref/tui"
)

// fromComponents builds a colour from numeric components in the named space.
// Out-of-range values clamp.
func fromComponents(space string, vals []float64) (colorspace.RGB, error) {
	want := 3
	if space == "cmyk" {
		want = 4
	}
	if len(vals) != want {
		return colorspace.RGB{}, fmt.Errorf("%s takes %d values, got %d", space, want, len(vals))
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return colorspace.RGB{}, fmt.Errorf("%s values must be finite, got %v", space, v)
		}
	}

	switch space {
	case "rgb":
		return colorspace.FromFloat(vals[0], vals[1], vals[2]), nil
	case "hsl":
		return colorspace.HSL{H: vals[0], S: vals[1], L: vals[2]}.RGB(), nil
	case "cmyk":
		return colorspace.CMYK{C: vals[0], M: vals[1], Y: vals[2], K: vals[3]}.RGB(), nil
	case "oklch":
		return colorspace.OKLCH{L: vals[0], C: vals[1], H: vals[2]}.RGB(), nil
	}
	return colorspace.RGB{}, fmt.Errorf("unknown colour space %q", space)
}

var convertCmd = &cobra.Command{
	Use:   "convert <rgb|hsl|cmyk|oklch> <values...>",
	Short: "Convert component values to every other format",
	Long: `Convert component values to every other format. Percent signs and commas
are optional:

  hexref convert hsl 220 60% 50%
  hexref convert cmyk 75 50 0 20
  hexref convert oklch 50.8 0.151 261`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		space := strings.ToLower(args[0])
		var vals []float64
		for _, a := range args[1:] {
			for _, f := range strings.FieldsFunc(a, func(r rune) bool { return r == ',' }) {
				v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(f), "%"), 64)
				if err != nil {
					return fmt.Errorf("%q is not a number", f)
				}
				vals = append(vals, v)
			}
		}

		c, err := fromComponents(space, vals)
		if err != nil {
			return err
		}
		rec := formatsOf(c)
		w := cmd.OutOrStdout()
		if jsonOutput() {
			return printJSON(w, rec)
		}
		fmt.Fprintln(w, tui.Card(tui.Swatch(c, c.Hex()), rec.rows()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
