package cmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/hexref/dataset"
	"github.com/mmuldo/hexref/tui"
)

// loader builds the cached dataset loader from config. The returned func
// closes the cache.
func loader() (*dataset.Loader, func(), error) {
	path, err := expandPath(viper.GetString("dataset.cache"))
	if err != nil {
		return nil, nil, err
	}
	store, err := dataset.Open(path)
	if err != nil {
		return nil, nil, err
	}
	l := &dataset.Loader{
		Store:  store,
		Client: &http.Client{Timeout: viper.GetDuration("dataset.timeout")},
		TTL:    viper.GetDuration("dataset.ttl"),
	}
	return l, func() { store.Close() }, nil
}

func loadColors(ctx context.Context, refresh bool) ([]dataset.Color, error) {
	l, closeStore, err := loader()
	if err != nil {
		return nil, err
	}
	defer closeStore()
	return l.Get(ctx, viper.GetString("dataset.source"), refresh)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the named colour dataset",
	Long: `List the named colour dataset. The list is fetched from dataset.source
and cached locally for dataset.ttl.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filterFlag, _ := cmd.Flags().GetString("filter")
		refresh, _ := cmd.Flags().GetBool("refresh")
		f, err := dataset.ParseFilter(filterFlag)
		if err != nil {
			return err
		}

		colors, err := loadColors(cmd.Context(), refresh)
		if err != nil {
			return err
		}
		colors = dataset.Apply(colors, f)

		w := cmd.OutOrStdout()
		if jsonOutput() {
			return printJSON(w, colors)
		}
		if len(colors) == 0 {
			fmt.Fprintln(w, "No colours found.")
			return nil
		}
		for _, c := range colors {
			rgb, err := c.RGB()
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "%s %s\n", tui.Swatch(rgb, c.Hex), c.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("filter", "f", "all", "all, dark or light")
	listCmd.Flags().Bool("refresh", false, "refetch the list even if the cache is fresh")
}
