package usecase

import "context"

// CycleStats summarizes one polling cycle for logging and tests.
type CycleStats struct {
	Listings    int // Listings inside the recency window.
	Users       int // Alertable users considered.
	Skipped     int // Users skipped because they have no stored criteria.
	Evaluated   int // (user, listing) pairs actually scored.
	AlreadySent int // Pairs skipped because an alert record already existed.
	Matched     int // Pairs whose score passed every strict criterion.
	Sent        int // Alerts dispatched and recorded.
	Failures    int // Per-pair dispatch or record failures (logged, non-fatal).
}

// AlertUsecase runs the matching-and-dispatch work of one polling cycle.
type AlertUsecase interface {
	// RunCycle fetches recent listings and alertable users, scores every
	// undelivered (user, listing) pair, dispatches alerts for matches, and
	// records each dispatch exactly once. An error is returned only when the
	// whole cycle had to be aborted (listing or user fetch failure);
	// per-user and per-pair failures are logged and counted instead.
	RunCycle(ctx context.Context) (CycleStats, error)
}
