// Package daemon coordinates the long-running watch mode.
//
// It enforces single-instance execution with a flock-based lock, performs
// the initial sweep, and then feeds settled watcher candidates through the
// organizer until cancelled. On shutdown the in-flight move completes and
// candidates that already settled are processed before exit.
package daemon
