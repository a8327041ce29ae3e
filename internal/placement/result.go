package placement

// Outcome is the terminal state of a single candidate.
type Outcome string

const (
	OutcomeMoved   Outcome = "moved"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// Result records what happened to one candidate. It is used for reporting
// only and is never persisted.
type Result struct {
	Source      string
	Destination string
	Outcome     Outcome
	Reason      string
	Err         error
}

// Moved reports a successful relocation to dst.
func Moved(src, dst string) Result {
	return Result{Source: src, Destination: dst, Outcome: OutcomeMoved}
}

// Skipped reports a candidate intentionally left alone or discarded.
func Skipped(src, reason string, err error) Result {
	return Result{Source: src, Outcome: OutcomeSkipped, Reason: reason, Err: err}
}

// Failed reports a candidate the pipeline could not place.
func Failed(src string, err error) Result {
	return Result{Source: src, Outcome: OutcomeFailed, Err: err}
}
