package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/regmean/grouping"
	"github.com/katalvlaran/regmean/roster"
	"github.com/spf13/cobra"
)

func newGroupsCmd(cfg *cliConfig) *cobra.Command {
	var (
		half string
		size int
	)
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Print the best, average and worst performers of one half",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := roster.ParseHalf(half)
			if err != nil {
				return err
			}
			t, err := cfg.generate()
			if err != nil {
				return err
			}
			g, err := grouping.SelectHalf(t, h, size)
			if err != nil {
				return err
			}
			cfg.logger.Info("selected groups", "half", string(h), "size", size)

			out := cmd.OutOrStdout()
			for _, label := range []roster.Group{roster.GroupBest, roster.GroupAverage, roster.GroupWorst} {
				es := g.ByGroup(label)
				fmt.Fprintf(out, "%s (mean regression %.2f)\n", label, grouping.MeanRegression(es))
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintf(tw, "  player\t%s\t%s\tregression\n", g.Spec.Base, g.Spec.Compare)
				for _, e := range es {
					fmt.Fprintf(tw, "  %s\t%.3f\t%.3f\t%+.3f\n", e.Player.ID, e.Base, e.Compare, e.Regression)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}
			for _, item := range grouping.Legend(g) {
				fmt.Fprintln(out, item.Label)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&half, "half", string(roster.FirstHalf), "half to select from (fh or sh)")
	cmd.Flags().IntVar(&size, "size", grouping.DefaultSize, "players per group")

	return cmd
}
