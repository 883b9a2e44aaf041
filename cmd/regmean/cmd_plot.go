package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/regmean/colorscale"
	"github.com/katalvlaran/regmean/figure"
	"github.com/katalvlaran/regmean/grouping"
	"github.com/katalvlaran/regmean/roster"
	"github.com/katalvlaran/regmean/trend"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// plotFlags are shared by every plot subcommand.
type plotFlags struct {
	out         string
	half        string
	perspective string
	size        int
	reveal      bool
}

// selection is the roster and groups a plot subcommand draws from.
type selection struct {
	table  *roster.Table
	groups *grouping.Groups
	norm   *colorscale.Normalizer
}

func (f *plotFlags) register(cmd *cobra.Command, defaultOut string) {
	cmd.Flags().StringVarP(&f.out, "out", "o", defaultOut, "output file; extension selects the format")
	cmd.Flags().StringVar(&f.half, "half", string(roster.FirstHalf), "half groups are selected from (fh or sh)")
	cmd.Flags().StringVar(&f.perspective, "perspective", "", "half in focus (fh or sh); defaults to --half")
	cmd.Flags().IntVar(&f.size, "size", grouping.DefaultSize, "players per group")
	cmd.Flags().BoolVar(&f.reveal, "reveal", figure.DefaultReveal, "show the other half")
}

func (f *plotFlags) panelOptions(norm *colorscale.Normalizer, h roster.Half) []figure.PanelOption {
	p := figure.Perspective(f.perspective)
	if f.perspective == "" {
		p = h
	}

	return []figure.PanelOption{
		figure.WithPerspective(p),
		figure.WithReveal(f.reveal),
		figure.WithNormalizer(norm),
	}
}

func (f *plotFlags) load(cfg *cliConfig) (*selection, roster.Half, error) {
	h, err := roster.ParseHalf(f.half)
	if err != nil {
		return nil, "", err
	}
	t, err := cfg.generate()
	if err != nil {
		return nil, "", err
	}
	g, err := grouping.SelectHalf(t, h, f.size)
	if err != nil {
		return nil, "", err
	}
	norm, err := colorscale.SkillNormalizer(t)
	if err != nil {
		return nil, "", err
	}

	return &selection{table: t, groups: g, norm: norm}, h, nil
}

func newPlotCmd(cfg *cliConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render a figure to a file",
	}
	cmd.AddCommand(
		newPlotRegressionCmd(cfg),
		newPlotGroupCmd(cfg, figure.ArrowPanel),
		newPlotGroupCmd(cfg, figure.DotPanel),
		newPlotPanelCmd(cfg),
		newPlotGridCmd(cfg),
		newPlotTrendCmd(cfg),
	)

	return cmd
}

func newPlotRegressionCmd(cfg *cliConfig) *cobra.Command {
	f := &plotFlags{}
	cmd := &cobra.Command{
		Use:   "regression",
		Short: "Second-half against first-half ratings with the least squares line",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			sel, _, err := f.load(cfg)
			if err != nil {
				return err
			}
			fig, err := figure.Regression(sel.table, sel.groups)
			if err != nil {
				return err
			}
			cfg.logger.Debug("fitted model", "model", fig.Model.String())
			if err := fig.Save(f.out); err != nil {
				return err
			}
			cfg.logger.Info("wrote figure", "path", f.out, "slope", fig.Model.Slope())

			return nil
		},
	}
	f.register(cmd, "regression.png")

	return cmd
}

// newPlotGroupCmd draws a single group as arrows or dots.
func newPlotGroupCmd(cfg *cliConfig, kind figure.PanelKind) *cobra.Command {
	f := &plotFlags{}
	var group string
	cmd := &cobra.Command{
		Use:   kind.String(),
		Short: fmt.Sprintf("One group drawn as %s", kind),
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			label, cmap, err := parseGroup(group)
			if err != nil {
				return err
			}
			sel, h, err := f.load(cfg)
			if err != nil {
				return err
			}
			p := figure.NewPanel()
			opts := append(f.panelOptions(sel.norm, h), figure.WithColormap(colorscale.MustColormap(cmap)))
			draw := figure.DrawArrows
			if kind == figure.DotPanel {
				draw = figure.DrawDots
			}
			if err := draw(p, sel.groups.ByGroup(label), opts...); err != nil {
				return err
			}

			return savePanel(cfg, p, f.out)
		},
	}
	f.register(cmd, kind.String()+".png")
	cmd.Flags().StringVar(&group, "group", "best", "group to draw (best, average, worst)")

	return cmd
}

func newPlotPanelCmd(cfg *cliConfig) *cobra.Command {
	f := &plotFlags{}
	var kind string
	cmd := &cobra.Command{
		Use:   "panel",
		Short: "Best, average and worst groups on one panel with their mean regression",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			k, err := figure.ParsePanelKind(kind)
			if err != nil {
				return err
			}
			sel, h, err := f.load(cfg)
			if err != nil {
				return err
			}
			p, err := figure.GroupPanel(k, sel.groups, f.panelOptions(sel.norm, h)...)
			if err != nil {
				return err
			}

			return savePanel(cfg, p, f.out)
		},
	}
	f.register(cmd, "panel.png")
	cmd.Flags().StringVar(&kind, "kind", figure.ArrowPanel.String(), "arrows or dots")

	return cmd
}

// newPlotGridCmd tiles the first-half and second-half group panels side by side.
func newPlotGridCmd(cfg *cliConfig) *cobra.Command {
	f := &plotFlags{}
	var kind string
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "First-half and second-half group panels side by side",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			k, err := figure.ParsePanelKind(kind)
			if err != nil {
				return err
			}
			t, err := cfg.generate()
			if err != nil {
				return err
			}
			norm, err := colorscale.SkillNormalizer(t)
			if err != nil {
				return err
			}
			var plots []*plot.Plot
			for _, h := range []roster.Half{roster.FirstHalf, roster.SecondHalf} {
				g, err := grouping.SelectHalf(t, h, f.size)
				if err != nil {
					return err
				}
				p, err := figure.GroupPanel(k, g,
					figure.WithPerspective(h), figure.WithReveal(f.reveal), figure.WithNormalizer(norm))
				if err != nil {
					return err
				}
				p.Title.Text = "Selected on " + h.Label()
				plots = append(plots, p)
			}
			grid, err := figure.NewGrid(1, len(plots), plots, 14*vg.Inch, 7*vg.Inch)
			if err != nil {
				return err
			}
			if err := grid.Save(f.out); err != nil {
				return err
			}
			cfg.logger.Info("wrote figure", "path", f.out)

			return nil
		},
	}
	f.register(cmd, "grid.png")
	cmd.Flags().StringVar(&kind, "kind", figure.ArrowPanel.String(), "arrows or dots")

	return cmd
}

func newPlotTrendCmd(cfg *cliConfig) *cobra.Command {
	var (
		out      string
		half     string
		from, to int
		step     int
	)
	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Mean regression of each group against group size",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			h, err := roster.ParseHalf(half)
			if err != nil {
				return err
			}
			t, err := cfg.generate()
			if err != nil {
				return err
			}
			if to <= 0 {
				to = t.Len() / 2
			}
			pts, err := trend.Curve(t, h, trend.Sizes(from, to, step))
			if err != nil {
				return err
			}
			title := "Regression by Group Size (selected on " + h.Label() + ")"
			if err := trend.Save(out, pts, title); err != nil {
				return err
			}
			cfg.logger.Info("wrote chart", "path", out, "points", len(pts))

			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "trend.png", "output file (.png or .svg)")
	cmd.Flags().StringVar(&half, "half", string(roster.FirstHalf), "half groups are selected from (fh or sh)")
	cmd.Flags().IntVar(&from, "from", 1, "smallest group size")
	cmd.Flags().IntVar(&to, "to", 0, "largest group size; 0 means half the roster")
	cmd.Flags().IntVar(&step, "step", 1, "group size increment")

	return cmd
}

func savePanel(cfg *cliConfig, p *plot.Plot, out string) error {
	if err := figure.NewFigure(p).Save(out); err != nil {
		return err
	}
	cfg.logger.Info("wrote figure", "path", out)

	return nil
}

func parseGroup(s string) (roster.Group, string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "best":
		return roster.GroupBest, colorscale.Greens, nil
	case "average", "avg":
		return roster.GroupAverage, colorscale.Blues, nil
	case "worst":
		return roster.GroupWorst, colorscale.Reds, nil
	}

	return 0, "", fmt.Errorf("%w: got %q", errGroup, s)
}
