// Package placement defines the per-file outcome model and the error
// taxonomy shared by the classification and move pipeline.
//
// Every problem encountered while processing a single candidate is tagged
// with one of the exported sentinel errors and converted into a Result at
// the organizer boundary, so a bad file never aborts the run. Only startup
// root validation (ErrInvalidRoot) is allowed to escape.
package placement
