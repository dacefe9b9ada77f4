package main

import (
	"context"
	"fmt"
	"io"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/driveahead/internal/app"
	"github.com/riskibarqy/driveahead/internal/config"
	"github.com/riskibarqy/driveahead/internal/platform/logging"
	"github.com/spf13/cobra"
)

type cliOptions struct {
	envFile  string
	logLevel string
	timeout  time.Duration
	season   string
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &cliOptions{}
	var container *app.Container

	root := &cobra.Command{
		Use:           "f1ctl",
		Short:         "Query Formula 1 schedule, standings and results",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(opts.envFile); err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			// The CLI never serves metrics.
			cfg.MetricsEnabled = false

			container, err = app.NewContainer(cfg, logging.NewConsole(logging.ParseLevel(opts.logLevel)))
			return err
		},
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before the environment is read")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "debug, info, warn or error")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "overall command timeout")

	run := func(fn func(ctx context.Context, c *app.Container) (any, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			payload, err := fn(ctx, container)
			if err != nil {
				return err
			}
			return writeJSON(out, payload)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "next-race",
			Short: "Show the next race",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, c *app.Container) (any, error) {
				return c.Standings.NextRace(ctx), nil
			}),
		},
		newScheduleCmd(opts, run),
		newStandingsCmd(run),
		&cobra.Command{
			Use:   "results",
			Short: "Show the latest race results",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, c *app.Container) (any, error) {
				return c.Standings.LatestRaceResults(ctx), nil
			}),
		},
		&cobra.Command{
			Use:   "warm",
			Short: "Prefetch every upstream resource into the cache",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, c *app.Container) (any, error) {
				return c.Standings.Warm(ctx)
			}),
		},
	)
	return root
}

type runner func(fn func(ctx context.Context, c *app.Container) (any, error)) func(*cobra.Command, []string) error

func newScheduleCmd(opts *cliOptions, run runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "List upcoming races, or a full season with --season",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, c *app.Container) (any, error) {
			if opts.season == "" {
				return c.Standings.UpcomingSchedule(ctx), nil
			}
			return c.Standings.SeasonRaces(ctx, opts.season)
		}),
	}
	cmd.Flags().StringVar(&opts.season, "season", "", "four digit season or \"current\"")
	return cmd
}

func newStandingsCmd(run runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Championship standings",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "drivers",
			Short: "Driver standings",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, c *app.Container) (any, error) {
				return c.Standings.DriverStandings(ctx), nil
			}),
		},
		&cobra.Command{
			Use:   "constructors",
			Short: "Constructor standings",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, c *app.Container) (any, error) {
				return c.Standings.ConstructorStandings(ctx), nil
			}),
		},
	)
	return cmd
}

func writeJSON(out io.Writer, payload any) error {
	raw, err := sonic.ConfigStd.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(out, string(raw))
	return err
}
