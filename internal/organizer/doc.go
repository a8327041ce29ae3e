// Package organizer drives the classify-and-move pipeline.
//
// Each candidate path runs through parse, plan, and move in order; every
// per-file problem becomes a placement.Result and is tallied, so a single
// bad file never aborts the run. Only root validation failures escape as
// errors.
package organizer
