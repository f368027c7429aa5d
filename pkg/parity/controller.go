package parity

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gentoomaniac/coldstore/pkg/catalog"
	"github.com/gentoomaniac/coldstore/pkg/prompt"
	"github.com/gentoomaniac/coldstore/pkg/timer"
)

// Outcome is the terminal state of one archive set in a run.
type Outcome string

const (
	OutcomeSkipped               Outcome = "skipped"
	OutcomeMissingDestination    Outcome = "missing-destination"
	OutcomeComplete              Outcome = "complete"
	OutcomeCompleteWithLeftovers Outcome = "complete-with-leftovers"
)

// Controller runs the recovery pipeline over the configured archive sets,
// in declared order, one at a time. The operator can skip sets at the
// start; after that the run makes a single pass with no retries.
type Controller struct {
	RunID     string
	Sets      []Set
	Selector  prompt.SkipSelector
	Processor *Processor
	// Catalog records per-set outcomes when set. Catalog errors are logged
	// and never affect the run.
	Catalog catalog.Catalog
}

func (c *Controller) Run() error {
	names := make([]string, len(c.Sets))
	for i, set := range c.Sets {
		names[i] = set.Name
	}
	skips, err := c.Selector.Select(names)
	if err != nil {
		return err
	}

	start := time.Now()
	log.Info().Str("run_id", c.RunID).Msg("starting recovery file run")

	for i, set := range c.Sets {
		setStart := time.Now()

		if skips[i+1] {
			log.Info().Str("set", set.Name).Msg("skipping")
			c.record(set, OutcomeSkipped, 0, time.Since(setStart))
			continue
		}

		if info, err := os.Stat(set.Root); err != nil || !info.IsDir() {
			log.Warn().Str("set", set.Name).Str("path", set.Root).Msg("destination does not exist, skipping")
			c.record(set, OutcomeMissingDestination, 0, time.Since(setStart))
			continue
		}

		result, err := c.Processor.ProcessSet(set)
		if err != nil {
			return err
		}

		outcome := OutcomeComplete
		if len(result.Leftovers) > 0 {
			outcome = OutcomeCompleteWithLeftovers
		}
		c.record(set, outcome, len(result.Leftovers), time.Since(setStart))
	}

	log.Info().Str("duration", timer.Elapsed(start)).Msg("recovery file run finished")
	return nil
}

func (c *Controller) record(set Set, outcome Outcome, leftovers int, duration time.Duration) {
	if c.Catalog == nil {
		return
	}
	err := c.Catalog.AddRun(&catalog.Run{
		RunID:     c.RunID,
		Command:   "parity",
		Set:       set.Name,
		Outcome:   string(outcome),
		Leftovers: leftovers,
		Duration:  duration,
	})
	if err != nil {
		log.Warn().Err(err).Str("set", set.Name).Msg("could not record run in catalog")
	}
}
