package main

import (
	"time"

	"github.com/rs/zerolog"
)

// ── Optimizer ───────────────────────────────────────────────────────

// Optimizer runs the exhaustive subset search for one problem.
type Optimizer struct {
	problem *Problem
	log     zerolog.Logger
}

// NewOptimizer creates an optimizer for the given problem. Improvements of
// the incumbent are reported to log at debug level.
func NewOptimizer(problem *Problem, log zerolog.Logger) *Optimizer {
	return &Optimizer{
		problem: problem,
		log:     log,
	}
}

// ── Main entry point ────────────────────────────────────────────────

// Optimize evaluates every subset of parts and returns the best one. The bare
// vehicle is the starting incumbent and only a strictly greater acceleration
// replaces it, so an empty Selection in the result means no subset beats the
// baseline. The search has no side effects and gives the same result on every
// call for the same problem.
func (o *Optimizer) Optimize() Result {
	start := time.Now()
	b := newBest(o.problem)
	baseline := b.accel
	evaluated := 0

	o.log.Debug().
		Int("parts", len(o.problem.Parts)).
		Float64("baseline", baseline).
		Msg("starting search")

	for sel := range Subsets(len(o.problem.Parts)) {
		evaluated++
		accel := o.problem.Acceleration(sel)
		if b.offer(sel, accel) {
			o.log.Debug().
				Ints("parts", sel.Indices()).
				Float64("acceleration", accel).
				Msg("new best")
		}
	}

	return Result{
		Selection:    b.sel,
		Acceleration: b.accel,
		Baseline:     baseline,
		Evaluated:    evaluated,
		Elapsed:      time.Since(start),
	}
}
