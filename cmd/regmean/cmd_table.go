package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/regmean/roster"
	"github.com/spf13/cobra"
)

func newTableCmd(cfg *cliConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the generated roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := cfg.generate()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprint(tw, "player\t")
			for _, c := range roster.Columns() {
				if c == roster.Size {
					continue
				}
				fmt.Fprintf(tw, "%s\t", c)
			}
			fmt.Fprintln(tw)
			for _, p := range t.Rows() {
				fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t\n",
					p.ID, p.TrueSkill, p.RatingFH, p.RatingSH, p.ZFH, p.ZSH, p.AbsZFH, p.AbsZSH)
			}

			return tw.Flush()
		},
	}
}
