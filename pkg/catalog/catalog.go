package catalog

import (
	"time"
)

// Run is the recorded outcome of one archive set in one run.
type Run struct {
	ID        int64
	RunID     string
	Command   string
	Set       string
	Outcome   string
	Leftovers int
	Duration  time.Duration
	Created   int64
}

type Catalog interface {
	Init() error
	AddRun(run *Run) error
	GetRuns(runID string) ([]*Run, error)
	Close() error
}
