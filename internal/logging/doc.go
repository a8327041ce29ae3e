// Package logging builds the slog loggers used across snapsort.
//
// It provides a console handler for interactive runs, a JSON handler for
// machine consumption, optional duplication into a log file, and small attr
// helpers so call sites stay consistent. Components should obtain a child
// logger via NewComponentLogger rather than writing to the default logger.
package logging
