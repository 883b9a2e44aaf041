package main

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/regmean/roster"
	"github.com/spf13/cobra"
)

// cliConfig collects the persistent flags.
type cliConfig struct {
	players int
	seed    uint64
	verbose bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	cfg := &cliConfig{}
	root := &cobra.Command{
		Use:   "regmean",
		Short: "Illustrate regression to the mean on synthetic match ratings",
		Long: `regmean draws a latent skill for every player, two noisy half-time
ratings around it, and shows how the best and worst performers of one half
drift back towards the mean in the other.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg.logger = newLogger(cmd.ErrOrStderr(), cfg.verbose)
			if cfg.players <= 0 {
				return errPlayers
			}

			return nil
		},
	}
	root.PersistentFlags().IntVar(&cfg.players, "players", roster.DefaultPlayers, "number of players")
	root.PersistentFlags().Uint64Var(&cfg.seed, "seed", roster.DefaultSeed, "random seed")
	root.PersistentFlags().BoolVarP(&cfg.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newTableCmd(cfg), newGroupsCmd(cfg), newPlotCmd(cfg))

	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// generate builds the roster described by the persistent flags.
func (c *cliConfig) generate() (*roster.Table, error) {
	opts := []roster.Option{roster.WithPlayers(c.players), roster.WithSeed(c.seed)}
	t, err := roster.Generate(opts...)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("generated roster", "options", roster.NewOptions(opts...).String(), "rows", t.Len())

	return t, nil
}
