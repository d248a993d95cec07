package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmuldo/hexref/naming"
)

type nameRecord struct {
	Input string `json:"input"`
	naming.Result
	Display    string         `json:"displayName"`
	Candidates []naming.Match `json:"candidates,omitempty"`
}

var nameCmd = &cobra.Command{
	Use:   "name <color>...",
	Short: "Name colours against the reference table",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		top, err := cmd.Flags().GetInt("top")
		if err != nil {
			return err
		}
		r, err := resolver()
		if err != nil {
			return err
		}

		recs := make([]nameRecord, 0, len(args))
		for _, a := range args {
			c, err := parseColor(a)
			if err != nil {
				return err
			}
			res := r.Resolve(c)
			rec := nameRecord{Input: c.Hex(), Result: res, Display: res.DisplayName()}
			if top > 1 {
				rec.Candidates = r.Candidates(c, top)
			}
			recs = append(recs, rec)
		}

		w := cmd.OutOrStdout()
		if jsonOutput() {
			return printJSON(w, recs)
		}
		for _, rec := range recs {
			marker := "~"
			if rec.Exact {
				marker = "="
			}
			fmt.Fprintf(w, "%s  %-24s %s %s (ΔE %.1f)  %s\n",
				rec.Input, rec.Display, marker, rec.Name, rec.Distance, rec.Descriptor)
			for i, m := range rec.Candidates {
				fmt.Fprintf(w, "  %d. %-22s %s  %.1f\n", i+1, m.Name, m.Hex, m.Distance)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nameCmd)

	nameCmd.Flags().IntP("top", "n", 1, "list the N nearest entries")
}
