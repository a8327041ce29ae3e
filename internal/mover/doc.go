// Package mover relocates a single screenshot to its planned destination
// without data loss.
//
// Moves are plain renames when source and destination share a filesystem;
// across filesystems the mover falls back to a verified copy followed by
// source removal. A destination that already holds identical bytes makes the
// source redundant and it is discarded; a destination with different content
// is never overwritten, the incoming file gets a numeric suffix instead.
package mover
