// Package main provides an offline CLI over a GymStats export: progress
// summaries, muscle load bars and block status, without the database.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/2beens/gyminsights/internal/config"
	"github.com/2beens/gyminsights/internal/gymstats/entries"
	"github.com/2beens/gyminsights/internal/gymstats/insights"
	"github.com/2beens/gyminsights/internal/gymstats/progress"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	todayLayout  = "2006-01-02"
	defaultWidth = 40
)

type rootOptions struct {
	file       string
	today      string
	configPath string
	env        string
	verbose    bool
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "insights",
		Short:         "Training insights over a GymStats export",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.WarnLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "snapshot.json", "exported entries and blocks (JSON)")
	rootCmd.PersistentFlags().StringVar(&opts.today, "today", "", "reference day as YYYY-MM-DD (default: now)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "TOML config with the insights section")
	rootCmd.PersistentFlags().StringVar(&opts.env, "env", "development", "config environment")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newProgressCmd(opts))
	rootCmd.AddCommand(newMuscleLoadCmd(opts))
	rootCmd.AddCommand(newBlockCmd(opts))
	rootCmd.AddCommand(newRenameCmd(opts))
	rootCmd.AddCommand(newParseCmd())

	return rootCmd
}

// open loads the snapshot and builds the service over it.
func (o *rootOptions) open() (*insights.Service, *snapshot, error) {
	snap, err := loadSnapshot(o.file)
	if err != nil {
		return nil, nil, err
	}

	policy := progress.Policy{}
	params := insights.NewServiceParams{
		EntriesRepo: snap,
		BlocksRepo:  snapshotBlocks{s: snap},
	}
	if o.configPath != "" {
		cfg, err := config.Load(o.env, o.configPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load config: %w", err)
		}
		p, catalog, err := insights.FromConfig(cfg.Insights)
		if err != nil {
			return nil, nil, fmt.Errorf("insights config: %w", err)
		}
		policy = p
		params.Catalog = catalog
	}
	params.Policy = policy

	return insights.NewService(params), snap, nil
}

func (o *rootOptions) now() (time.Time, error) {
	if o.today == "" {
		return time.Now(), nil
	}
	today, err := time.ParseInLocation(todayLayout, o.today, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --today %q: %w", o.today, err)
	}
	return today, nil
}

func newProgressCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show last and best value per movement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, _, err := opts.open()
			if err != nil {
				return err
			}

			items, err := svc.Progress(context.Background(), "")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("Progress"))
			if len(items) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("no tracked entries"))
				return nil
			}
			for _, item := range items {
				fmt.Fprintf(out, "- %s last %s, best %s %s\n",
					keyStyle.Render(item.Name),
					item.LastText,
					goodStyle.Render(item.BestText),
					mutedStyle.Render(fmt.Sprintf("(%d sessions, %s)", item.Count, item.DateRange)),
				)
			}
			return nil
		},
	}
}

func newMuscleLoadCmd(opts *rootOptions) *cobra.Command {
	var (
		blockID string
		width   int
	)

	cmd := &cobra.Command{
		Use:   "muscle-load",
		Short: "Show the muscle load distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if width <= 0 {
				return fmt.Errorf("invalid --width: %d", width)
			}
			now, err := opts.now()
			if err != nil {
				return err
			}
			svc, _, err := opts.open()
			if err != nil {
				return err
			}

			load, err := svc.MuscleLoad(context.Background(), "", blockID, now)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			title := "Muscle load"
			if blockID != "" {
				title += " of block " + blockID
			}
			fmt.Fprintln(out, titleStyle.Render(title))
			if len(load.Bars) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("no known movements in scope"))
			}
			for _, bar := range load.Bars {
				fmt.Fprintln(out, renderBar(bar, width))
			}
			if len(load.UnknownMovements) > 0 {
				fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("not in catalog: %v", load.UnknownMovements)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&blockID, "block", "", "limit to the entries of a block")
	cmd.Flags().IntVar(&width, "width", defaultWidth, "width of a full bar in cells")

	return cmd
}

func newBlockCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "block [id]",
		Short: "Show the status of a block, or of all blocks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := opts.now()
			if err != nil {
				return err
			}
			svc, _, err := opts.open()
			if err != nil {
				return err
			}

			var statuses []insights.BlockStatus
			if len(args) == 1 {
				status, err := svc.BlockStatus(context.Background(), "", args[0], now)
				if err != nil {
					return err
				}
				statuses = append(statuses, *status)
			} else {
				statuses, err = svc.BlockStatuses(context.Background(), "", now)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("Blocks"))
			if len(statuses) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("no blocks"))
				return nil
			}
			for _, status := range statuses {
				state := status.Progress.Mode.String()
				if status.Progress.Finished {
					state = "finished"
				}
				fmt.Fprintf(out, "- %s %s %s\n",
					keyStyle.Render(status.Block.Name),
					status.Progress.Text,
					mutedStyle.Render("("+state+")"),
				)
			}
			return nil
		},
	}
}

func newRenameCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old name> <new name>",
		Short: "Rename a movement across all entries of the export",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, snap, err := opts.open()
			if err != nil {
				return err
			}

			renamed, err := svc.Rename(context.Background(), "", args[0], args[1])
			if err != nil {
				return err
			}
			if err := snap.save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d entries: %q -> %q\n",
				goodStyle.Render("renamed"), renamed, args[0], args[1])
			return nil
		},
	}
}

func newParseCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "parse <value>",
		Short: "Validate a value as it would be entered in the app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scalarKind, err := entries.ParseScalarKind(kind)
			if err != nil {
				return err
			}

			// parsing does not touch the repos
			svc := insights.NewService(insights.NewServiceParams{})
			parsed, err := svc.ParseValue(scalarKind, args[0])
			if errors.Is(err, entries.ErrParse) {
				return fmt.Errorf("%s: %w", kind, err)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", keyStyle.Render(string(parsed.Kind)), parsed.Text)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", string(entries.ScalarTime), "weight | time | reps")

	return cmd
}
