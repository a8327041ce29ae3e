// Package watcher surfaces newly created files in the downloads root as
// candidates for organizing.
//
// The browser writes screenshots incrementally, so a creation event alone is
// not safe to act on. Each detected file goes through a settle cycle: its
// size is polled on a fixed interval and the file is only emitted once the
// size is unchanged between two consecutive checks. Files that keep growing
// past a bounded number of checks, or that disappear mid-cycle, are dropped
// with a log line. Watching is non-recursive; files already organized into
// channel folders never produce events.
package watcher
