// Package main hosts the snapsort CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into a single
// organizing sweep, a long-running watch session, or configuration
// scaffolding. It centralizes configuration resolution and structured logging
// setup so the run paths can focus on moving files.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
