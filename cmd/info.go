package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmuldo/hexref/colorspace"
	"github.com/mmuldo/hexref/meaning"
	"github.com/mmuldo/hexref/naming"
	"github.com/mmuldo/hexref/palette"
	"github.com/mmuldo/hexref/tui"
)

// formats is every textual form of one colour.
type formats struct {
	Hex   string `json:"hex"`
	RGB   string `json:"rgb"`
	HSL   string `json:"hsl"`
	CMYK  string `json:"cmyk"`
	OKLCH string `json:"oklch"`
}

func formatsOf(c colorspace.RGB) formats {
	return formats{
		Hex:   c.Hex(),
		RGB:   c.String(),
		HSL:   c.HSL().String(),
		CMYK:  c.CMYK().String(),
		OKLCH: c.OKLCH().String(),
	}
}

func (f formats) rows() [][2]string {
	return [][2]string{
		{"HEX", f.Hex},
		{"RGB", f.RGB},
		{"HSL", f.HSL},
		{"CMYK", f.CMYK},
		{"OKLCH", f.OKLCH},
	}
}

type contrast struct {
	Ratio  float64               `json:"ratio"`
	Rating colorspace.WCAGRating `json:"rating"`
}

func contrastOf(a, b colorspace.RGB) contrast {
	r := colorspace.ContrastRatio(a, b)
	return contrast{Ratio: float64(int(r*100+0.5)) / 100, Rating: colorspace.RateContrast(r)}
}

type harmony struct {
	Kind      palette.Kind `json:"kind"`
	Colors    []string     `json:"colors"`
	Vibrating bool         `json:"vibrating"`
}

type infoRecord struct {
	formats
	Name       naming.Result    `json:"name"`
	Display    string           `json:"displayName"`
	OnWhite    contrast         `json:"onWhite"`
	OnBlack    contrast         `json:"onBlack"`
	Psychology meaning.Profile  `json:"psychology"`
	Culture    meaning.Analysis `json:"culture"`
	Harmonies  []harmony        `json:"harmonies"`
	Shades     []string         `json:"shades"`
	Tints      []string         `json:"tints"`
}

func hexes(cs []colorspace.RGB) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Hex()
	}
	return out
}

func harmoniesOf(c colorspace.RGB) []harmony {
	set := palette.Harmonies(c)
	out := make([]harmony, 0, len(palette.Kinds))
	for _, k := range palette.Kinds {
		out = append(out, harmony{Kind: k, Colors: hexes(set[k]), Vibrating: palette.HasVibration(c, set[k])})
	}
	return out
}

func newInfoRecord(c colorspace.RGB, r *naming.Resolver) infoRecord {
	res := r.Resolve(c)
	return infoRecord{
		formats:    formatsOf(c),
		Name:       res,
		Display:    res.DisplayName(),
		OnWhite:    contrastOf(c, colorspace.White),
		OnBlack:    contrastOf(c, colorspace.Black),
		Psychology: meaning.Psychology(c),
		Culture:    meaning.Culture(c),
		Harmonies:  harmoniesOf(c),
		Shades:     hexes(palette.Shades(c)),
		Tints:      hexes(palette.Tints(c)),
	}
}

var infoCmd = &cobra.Command{
	Use:   "info <color>",
	Short: "Show everything known about a colour",
	Long: `Show a colour in every format together with its name, descriptor, WCAG
contrast against white and black, psychology, cultural notes, harmonies and
the shade and tint ladders.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseColor(args[0])
		if err != nil {
			return err
		}
		r, err := resolver()
		if err != nil {
			return err
		}
		rec := newInfoRecord(c, r)
		if jsonOutput() {
			return printJSON(cmd.OutOrStdout(), rec)
		}
		writeInfo(cmd.OutOrStdout(), c, rec)
		return nil
	},
}

func writeInfo(w io.Writer, c colorspace.RGB, rec infoRecord) {
	fmt.Fprintln(w, tui.Swatch(c, "  "+rec.Display+"  "))
	fmt.Fprintln(w, tui.Card("Formats", rec.rows()))

	exact := ""
	if rec.Name.Exact {
		exact = " (exact)"
	}
	fmt.Fprintln(w, tui.Card("Name", [][2]string{
		{"Nearest", fmt.Sprintf("%s %s, ΔE %.1f%s", rec.Name.Name, rec.Name.NearestHex, rec.Name.Distance, exact)},
		{"Descriptor", rec.Name.Descriptor},
	}))
	fmt.Fprintln(w, tui.Card("Contrast", [][2]string{
		{"On white", fmt.Sprintf("%.2f:1  %s", rec.OnWhite.Ratio, tui.Badges(rec.OnWhite.Rating))},
		{"On black", fmt.Sprintf("%.2f:1  %s", rec.OnBlack.Ratio, tui.Badges(rec.OnBlack.Rating))},
	}))

	p := rec.Psychology
	fmt.Fprintln(w, tui.Card("Psychology", [][2]string{
		{p.Name, p.Tone},
		{"Evokes", strings.Join(p.Emotions, ", ")},
		{"", p.Description},
	}))

	cu := rec.Culture
	rows := make([][2]string, 0, len(cu.Notes)+1)
	for _, n := range cu.Notes {
		rows = append(rows, [2]string{n.Region, n.Meaning})
	}
	rows = append(rows, [2]string{"Tip", cu.DesignTip})
	fmt.Fprintln(w, tui.Card("Culture: "+cu.Family, rows))
	for _, s := range cu.Cautions() {
		fmt.Fprintln(w, tui.Warn(s))
	}

	fmt.Fprintln(w)
	writeHarmonies(w, c)
	fmt.Fprintln(w, "Tints")
	fmt.Fprintln(w, tui.Strip(palette.Tints(c)))
	fmt.Fprintln(w, "Shades")
	fmt.Fprintln(w, tui.Strip(palette.Shades(c)))
}

func writeHarmonies(w io.Writer, c colorspace.RGB) {
	set := palette.Harmonies(c)
	for _, k := range palette.Kinds {
		fmt.Fprintln(w, string(k))
		fmt.Fprintln(w, tui.Strip(append([]colorspace.RGB{c}, set[k]...)))
		if palette.HasVibration(c, set[k]) {
			fmt.Fprintln(w, tui.Warn("may vibrate against the base colour"))
		}
	}
}

var paletteCmd = &cobra.Command{
	Use:   "palette <color>",
	Short: "Print the 50..950 scale, shades, tints and harmonies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseColor(args[0])
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()

		scale := palette.Scale(c)
		if jsonOutput() {
			steps := make(map[int]string, len(scale))
			for _, s := range scale {
				steps[s.Key] = s.Color.Hex()
			}
			return printJSON(w, struct {
				Scale     map[int]string `json:"scale"`
				Shades    []string       `json:"shades"`
				Tints     []string       `json:"tints"`
				Harmonies []harmony      `json:"harmonies"`
			}{steps, hexes(palette.Shades(c)), hexes(palette.Tints(c)), harmoniesOf(c)})
		}

		for _, s := range scale {
			fmt.Fprintf(w, "%4d %s\n", s.Key, tui.Swatch(s.Color, s.Color.Hex()))
		}
		fmt.Fprintln(w, "\nTints")
		fmt.Fprintln(w, tui.Strip(palette.Tints(c)))
		fmt.Fprintln(w, "Shades")
		fmt.Fprintln(w, tui.Strip(palette.Shades(c)))
		fmt.Fprintln(w)
		writeHarmonies(w, c)
		return nil
	},
}

var contrastCmd = &cobra.Command{
	Use:   "contrast <foreground> <background>",
	Short: "Check the WCAG contrast ratio of two colours",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fg, err := parseColor(args[0])
		if err != nil {
			return err
		}
		bg, err := parseColor(args[1])
		if err != nil {
			return err
		}
		res := contrastOf(fg, bg)
		w := cmd.OutOrStdout()
		if jsonOutput() {
			return printJSON(w, res)
		}

		fmt.Fprintln(w, tui.Sample(fg, bg, "The quick brown fox"))
		fmt.Fprintf(w, "%.2f:1  %s\n", res.Ratio, tui.Badges(res.Rating))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(contrastCmd)
}
