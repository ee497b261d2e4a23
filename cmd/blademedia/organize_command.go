package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"blademedia/internal/config"
	"blademedia/internal/history"
	"blademedia/internal/logging"
	"blademedia/internal/organizer"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var moviesOnly bool
	var tvOnly bool
	var webhook string

	cmd := &cobra.Command{
		Use:   "organize [root]",
		Short: "Organize loose media files into the library layout",
		Long: `Scan the movie and TV subtrees of the library root, identify loose
media files by filename, and move each one (with its subtitle sidecars) into
the canonical folder layout. Files that are already organized or cannot be
identified are left in place.

Examples:
  blademedia organize                 # Use the configured library root
  blademedia organize ~/media         # Organize a specific root
  blademedia organize --dry-run       # Report moves without performing them`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if moviesOnly && tvOnly {
				return errors.New("--movies-only and --tv-only are mutually exclusive")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if len(args) > 0 {
				root, err := config.ExpandPath(strings.TrimSpace(args[0]))
				if err != nil {
					return fmt.Errorf("resolve library root: %w", err)
				}
				cfg.Paths.Root = root
			}
			if trimmed := strings.TrimSpace(webhook); trimmed != "" {
				cfg.Notifications.DiscordWebhook = trimmed
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}
			logger = logger.With(logging.String("run_id", uuid.NewString()))

			lock := flock.New(filepath.Join(cfg.Paths.LogDir, "organizer.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return errors.New("another organizer run is already active")
			}
			defer func() {
				_ = lock.Unlock()
			}()

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			mode := organizer.ModeFull
			switch {
			case moviesOnly:
				mode = organizer.ModeMovies
			case tvOnly:
				mode = organizer.ModeTV
			}

			started := time.Now()
			summary, err := organizer.New(cfg, logger, dryRun).Run(runCtx, mode)
			if err != nil {
				return err
			}
			finished := time.Now()

			if cfg.History.Enabled {
				recordRun(runCtx, cfg, logger, history.RunRecord{
					ID:              uuid.NewString(),
					StartedAt:       started,
					FinishedAt:      finished,
					Mode:            mode.String(),
					DryRun:          dryRun,
					MoviesOrganized: summary.MoviesOrganized,
					MoviesSkipped:   summary.MoviesSkipped,
					TVOrganized:     summary.TVOrganized,
					TVSkipped:       summary.TVSkipped,
					Errors:          summary.Errors,
				})
			}

			printSummary(cmd, summary, dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report planned moves without touching files")
	cmd.Flags().BoolVar(&moviesOnly, "movies-only", false, "Only run the movie pass")
	cmd.Flags().BoolVar(&tvOnly, "tv-only", false, "Only run the TV pass")
	cmd.Flags().StringVar(&webhook, "discord-webhook", "", "Discord webhook URL override for this run")
	return cmd
}

func recordRun(ctx context.Context, cfg *config.Config, logger *slog.Logger, rec history.RunRecord) {
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		logger.Warn("run history unavailable", logging.Error(err))
		return
	}
	defer store.Close()
	if err := store.RecordRun(ctx, rec); err != nil {
		logger.Warn("recording run history failed", logging.Error(err))
	}
}

func printSummary(cmd *cobra.Command, summary *organizer.Summary, dryRun bool) {
	out := cmd.OutOrStdout()
	if dryRun {
		fmt.Fprintln(out, "Dry run: no files were moved")
		if len(summary.Moves) > 0 {
			rows := make([][]string, 0, len(summary.Moves))
			for _, move := range summary.Moves {
				rows = append(rows, []string{filepath.Base(move.Source), move.Dest})
			}
			fmt.Fprintln(out, renderTable([]string{"Source", "Destination"}, rows, nil))
		}
	}
	fmt.Fprintf(out, "Movies organized: %d (skipped %d)\n", summary.MoviesOrganized, summary.MoviesSkipped)
	fmt.Fprintf(out, "TV episodes organized: %d (skipped %d)\n", summary.TVOrganized, summary.TVSkipped)
	if len(summary.Errors) > 0 {
		fmt.Fprintf(out, "Errors (%d):\n", len(summary.Errors))
		for _, msg := range summary.Errors {
			fmt.Fprintf(out, "  - %s\n", msg)
		}
	}
}
