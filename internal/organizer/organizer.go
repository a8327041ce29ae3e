package organizer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"snapsort/internal/config"
	"snapsort/internal/identity"
	"snapsort/internal/layout"
	"snapsort/internal/logging"
	"snapsort/internal/mover"
	"snapsort/internal/placement"
	"snapsort/internal/scanner"
)

// Summary counts per-file outcomes for one run.
type Summary struct {
	Moved   int
	Skipped int
	Failed  int
}

// Total returns the number of candidates processed.
func (s Summary) Total() int { return s.Moved + s.Skipped + s.Failed }

// Record tallies one result.
func (s *Summary) Record(result placement.Result) {
	switch result.Outcome {
	case placement.OutcomeMoved:
		s.Moved++
	case placement.OutcomeSkipped:
		s.Skipped++
	case placement.OutcomeFailed:
		s.Failed++
	}
}

// Organizer runs candidates through parse, plan, and move.
type Organizer struct {
	parser  *identity.Parser
	planner *layout.Planner
	mover   *mover.Mover
	logger  *slog.Logger
}

// New constructs an organizer from configuration.
func New(cfg *config.Config, logger *slog.Logger) *Organizer {
	return &Organizer{
		parser:  identity.NewParser(cfg.Organize.Extensions),
		planner: layout.NewPlanner(cfg.Organize.DateBuckets),
		mover:   mover.New(logger),
		logger:  logging.NewComponentLogger(logger, "organizer"),
	}
}

// ValidateRoot confirms root exists, is a directory, and is fully
// accessible. Failures are tagged placement.ErrInvalidRoot and are fatal to
// the whole run.
func ValidateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return placement.Wrap(placement.ErrInvalidRoot, "organizer", "stat root", root, err)
	}
	if !info.IsDir() {
		return placement.Wrap(placement.ErrInvalidRoot, "organizer", "stat root", root+" is not a directory", nil)
	}
	if err := unix.Access(root, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return placement.Wrap(placement.ErrInvalidRoot, "organizer", "access root", root, err)
	}
	return nil
}

// Sweep drains the current top-level contents of root through the pipeline,
// in enumeration order, and returns the tally. Per-file failures never stop
// the sweep; a cancelled context stops it between files.
func (o *Organizer) Sweep(ctx context.Context, root string) (Summary, error) {
	var summary Summary

	if err := ValidateRoot(root); err != nil {
		return summary, err
	}
	candidates, err := scanner.Scan(root)
	if err != nil {
		return summary, placement.Wrap(placement.ErrInvalidRoot, "organizer", "scan root", root, err)
	}
	o.logger.Info("sweeping downloads root",
		logging.String("root", root),
		logging.Int("candidates", len(candidates)),
	)

	for _, candidate := range candidates {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}
		summary.Record(o.Process(candidate))
	}

	o.logger.Info("sweep finished",
		logging.Int("moved", summary.Moved),
		logging.Int("skipped", summary.Skipped),
		logging.Int("failed", summary.Failed),
	)
	return summary, nil
}

// Process runs a single candidate through parse, plan, and move. Filenames
// outside the naming convention are left in place and reported skipped.
func (o *Organizer) Process(path string) placement.Result {
	name := filepath.Base(path)
	root := filepath.Dir(path)

	id, err := o.parser.Parse(name)
	if err != nil {
		result := placement.Skipped(path, "not a recognized screenshot name", err)
		o.logResult(result)
		return result
	}

	destination := o.planner.Plan(root, id, name)
	result := o.mover.Move(path, destination)
	o.logResult(result)
	return result
}

func (o *Organizer) logResult(result placement.Result) {
	switch result.Outcome {
	case placement.OutcomeMoved:
		o.logger.Info("moved screenshot",
			logging.String("source", result.Source),
			logging.String("destination", result.Destination),
		)
	case placement.OutcomeSkipped:
		o.logger.Info("skipped file",
			logging.String("source", result.Source),
			logging.String("reason", result.Reason),
		)
	case placement.OutcomeFailed:
		o.logger.Error("failed to place file",
			logging.String("source", result.Source),
			logging.Error(result.Err),
		)
	}
}
