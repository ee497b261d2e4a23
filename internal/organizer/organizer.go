package organizer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"blademedia/internal/config"
	"blademedia/internal/fileutil"
	"blademedia/internal/identify"
	"blademedia/internal/library"
	"blademedia/internal/logging"
	"blademedia/internal/notifications"
	"blademedia/internal/services"
)

// Mode selects which library passes a run performs.
type Mode int

const (
	ModeFull Mode = iota
	ModeMovies
	ModeTV
)

func (m Mode) String() string {
	switch m {
	case ModeMovies:
		return "movies"
	case ModeTV:
		return "tv"
	default:
		return "full"
	}
}

// Organizer relocates loose media files into the canonical library layout.
type Organizer struct {
	cfg      *config.Config
	layout   library.Layout
	logger   *slog.Logger
	notifier notifications.Service
	dryRun   bool
}

// New constructs an organizer using default dependencies.
func New(cfg *config.Config, logger *slog.Logger, dryRun bool) *Organizer {
	return NewWithNotifier(cfg, logger, dryRun, notifications.NewService(cfg))
}

// NewWithNotifier allows injecting the notifier (used in tests).
func NewWithNotifier(cfg *config.Config, logger *slog.Logger, dryRun bool, notifier notifications.Service) *Organizer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Organizer{
		cfg:      cfg,
		layout:   library.NewLayout(cfg),
		logger:   logger.With(logging.String(logging.FieldComponent, "organizer")),
		notifier: notifier,
		dryRun:   dryRun,
	}
}

// Run performs the passes selected by mode and returns the run summary.
// The only fatal condition is an unresolvable library root; every per-file
// failure is recorded in the summary and processing continues.
func (o *Organizer) Run(ctx context.Context, mode Mode) (*Summary, error) {
	root := o.cfg.Paths.Root
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, services.Wrap(services.ErrNotFound, "organizer", "resolve root",
			fmt.Sprintf("Library root %s is not a directory", root), err)
	}

	start := time.Now()
	o.logger.Info("starting run",
		logging.String("root", root),
		logging.String("mode", mode.String()),
		logging.Bool("dry_run", o.dryRun),
	)

	summary := &Summary{}
	if mode != ModeTV {
		o.runMovies(ctx, summary)
	}
	if mode != ModeMovies {
		o.runTV(ctx, summary)
	}

	elapsed := time.Since(start)
	o.logger.Info("run complete",
		logging.Int("movies_organized", summary.MoviesOrganized),
		logging.Int("movies_skipped", summary.MoviesSkipped),
		logging.Int("tv_organized", summary.TVOrganized),
		logging.Int("tv_skipped", summary.TVSkipped),
		logging.Int("errors", len(summary.Errors)),
		logging.Duration("elapsed", elapsed),
	)

	if mode == ModeFull {
		o.report(ctx, summary, elapsed)
	}
	return summary, nil
}

func (o *Organizer) runMovies(ctx context.Context, summary *Summary) {
	logger := o.logger.With(logging.String("pass", "movies"))
	logger.Info("scanning movie library", logging.String("root", o.layout.MoviesRoot))

	videos, err := library.VideoFiles(o.layout.MoviesRoot)
	if err != nil {
		summary.addError("enumerate movies: %v", err)
		logger.Warn("movie enumeration failed", logging.Error(err))
		return
	}
	logger.Info("movie scan complete", logging.Int("files", len(videos)))

	for _, video := range videos {
		action := PlanMovie(o.layout, video)
		switch action.Kind {
		case ActionSkip:
			summary.MoviesSkipped++
			logSkip(logger, action)
		case ActionMove:
			if ok := o.apply(ctx, logger, action, summary); ok {
				summary.MoviesOrganized++
			}
		}
	}
}

func (o *Organizer) runTV(ctx context.Context, summary *Summary) {
	logger := o.logger.With(logging.String("pass", "tv"))
	logger.Info("scanning tv library", logging.String("root", o.layout.TVRoot))

	videos, err := library.VideoFiles(o.layout.TVRoot)
	if err != nil {
		summary.addError("enumerate tv: %v", err)
		logger.Warn("tv enumeration failed", logging.Error(err))
		return
	}
	logger.Info("tv scan complete", logging.Int("files", len(videos)))

	for _, video := range videos {
		action := PlanEpisode(o.layout, video)
		switch action.Kind {
		case ActionSkip:
			summary.TVSkipped++
			logSkip(logger, action)
		case ActionMove:
			if ok := o.apply(ctx, logger, action, summary); ok {
				summary.TVOrganized++
			}
		}
	}
}

// apply executes one planned move together with its sidecars. It reports
// whether the unit counts as organized; failures are recorded in the summary.
func (o *Organizer) apply(ctx context.Context, logger *slog.Logger, action Action, summary *Summary) bool {
	sidecars, err := library.Sidecars(action.Source)
	if err != nil {
		logger.Warn("sidecar lookup failed", logging.String("source", action.Source), logging.Error(err))
		sidecars = nil
	}

	logger.Info("organizing",
		logging.String("source", filepath.Base(action.Source)),
		logging.String("destination", action.Dest.Path()),
		logging.Int("sidecars", len(sidecars)),
	)

	if o.dryRun {
		logger.Info("dry-run: move skipped", logging.String("destination", action.Dest.Path()))
		summary.Moves = append(summary.Moves, Move{Source: action.Source, Dest: action.Dest.Path()})
		return true
	}

	if err := os.MkdirAll(action.Dest.Dir, 0o755); err != nil {
		summary.addError("create %s: %v", action.Dest.Dir, err)
		logger.Warn("destination directory creation failed", logging.Error(err))
		return false
	}
	if _, err := os.Stat(action.Dest.Path()); err == nil {
		// Two sources resolving to one destination: last move wins.
		logger.Warn("destination already exists; overwriting", logging.String("destination", action.Dest.Path()))
	}
	if err := fileutil.MoveFile(action.Source, action.Dest.Path()); err != nil {
		summary.addError("move %s: %v", filepath.Base(action.Source), err)
		logger.Warn("move failed", logging.String("source", action.Source), logging.Error(err))
		return false
	}

	oldBase := filepath.Base(action.Source)
	oldStem := strings.TrimSuffix(oldBase, filepath.Ext(oldBase))
	newStem := strings.TrimSuffix(action.Dest.Filename, filepath.Ext(action.Dest.Filename))
	for _, sidecar := range sidecars {
		// Preserve everything past the video stem (language tags, extension).
		suffix := strings.TrimPrefix(filepath.Base(sidecar), oldStem)
		target := filepath.Join(action.Dest.Dir, newStem+suffix)
		if err := fileutil.MoveFile(sidecar, target); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Debug("sidecar vanished before move", logging.String("sidecar", sidecar))
				continue
			}
			summary.addError("move sidecar %s: %v", filepath.Base(sidecar), err)
			logger.Warn("sidecar move failed", logging.String("sidecar", sidecar), logging.Error(err))
		}
	}
	summary.Moves = append(summary.Moves, Move{Source: action.Source, Dest: action.Dest.Path()})
	return true
}

func logSkip(logger *slog.Logger, action Action) {
	switch action.Reason {
	case SkipUnrecognized:
		name := filepath.Base(action.Source)
		logger.Debug("filename not recognized",
			logging.String("source", name),
			logging.String("title_guess", identify.DeriveTitle(name)),
		)
	case SkipOrganized:
		logger.Debug("already organized", logging.String("source", filepath.Base(action.Source)))
	}
}

func (o *Organizer) report(ctx context.Context, summary *Summary, elapsed time.Duration) {
	if o.notifier == nil {
		return
	}
	var err error
	if summary.TotalOrganized() > 0 {
		err = o.notifier.NotifyRunCompleted(ctx, notifications.RunReport{
			MoviesOrganized: summary.MoviesOrganized,
			MoviesSkipped:   summary.MoviesSkipped,
			TVOrganized:     summary.TVOrganized,
			TVSkipped:       summary.TVSkipped,
			ErrorCount:      len(summary.Errors),
			Duration:        elapsed,
			DryRun:          o.dryRun,
		})
	} else {
		err = o.notifier.NotifyNoChanges(ctx)
	}
	if err != nil {
		o.logger.Warn("run notification failed", logging.Error(err))
	}
}
