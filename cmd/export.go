package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/hexref/theme"
)

var (
	exportFormat string
	exportName   string
	exportOut    string
)

// exportCmd renders a design-token scale for a base colour
var exportCmd = &cobra.Command{
	Use:   "export <color>",
	Short: "Export a 50..950 scale as CSS variables, a Tailwind block or SCSS",
	Long: `Export the eleven-step 50..950 scale derived from a base colour.

The built-in templates can be overridden by placing css.tpl, tailwind.tpl or
scss.tpl in the directory named by export.templates in the config file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseColor(args[0])
		if err != nil {
			return err
		}
		exportDefaults()

		dir := viper.GetString("export.templates")
		if dir != "" {
			if dir, err = expandPath(dir); err != nil {
				return err
			}
		}

		t := theme.Create(exportName, c)
		f := theme.Format(strings.ToLower(exportFormat))
		if exportOut != "" {
			out, err := expandPath(exportOut)
			if err != nil {
				return err
			}
			return t.Write(out, f, dir)
		}

		if jsonOutput() {
			return printJSON(cmd.OutOrStdout(), t.Map())
		}
		out, err := t.Render(f, dir)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(theme.CSS), "css, tailwind or scss")
	exportCmd.Flags().StringVar(&exportName, "name", "", "token name (default from export.name)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "write to this file instead of stdout")
}

func exportDefaults() {
	if exportName == "" {
		exportName = viper.GetString("export.name")
	}
}
