package replay

import (
	"errors"

	"github.com/soratane/umapilot/internal/engine"
	"github.com/soratane/umapilot/internal/policy"
)

// #region types

// ReplayResult captures the outcome of replaying one recorded turn.
type ReplayResult struct {
	TurnID   string
	Decision engine.Decision

	// Retries holds re-issued race decisions, one per failed attempt.
	Retries []engine.Decision

	// Fatal is set when the retry budget ran out on this turn.
	Fatal error
}

// ReplaySummary provides aggregate stats from a replay run.
type ReplaySummary struct {
	TotalTurns int
	ByAction   map[engine.ActionKind]int
	Retries    int
	Fatal      bool
}

// #endregion types

// #region replay

// Replay feeds recorded turns through a fresh engine and collects every
// decision. Fixture outcomes drive the retry path exactly as the live loop
// would: a failed race is re-issued until the budget runs out, and further
// failures of the re-issued decision reuse the turn's recorded outcome.
func Replay(cfg policy.Config, turns []FixtureTurn) []ReplayResult {
	eng := engine.New(cfg)
	results := make([]ReplayResult, 0, len(turns))

	for _, turn := range turns {
		oc := engine.Outcome(turn.Outcome)
		if oc == "" {
			oc = engine.OutcomeSucceeded
		}

		d := eng.Decide(turn.Snapshot.ToSnapshot())
		res := ReplayResult{TurnID: turn.TurnID, Decision: d}

		for {
			retry, err := eng.RecordOutcome(d, oc)
			if err != nil {
				res.Fatal = err
				break
			}
			if retry == nil {
				break
			}
			res.Retries = append(res.Retries, *retry)
			d = *retry
		}

		results = append(results, res)
		if res.Fatal != nil && errors.Is(res.Fatal, engine.ErrRetryExhausted) {
			break
		}
	}

	return results
}

// Summarize aggregates replay results into counts per action kind.
func Summarize(results []ReplayResult) ReplaySummary {
	s := ReplaySummary{
		TotalTurns: len(results),
		ByAction:   make(map[engine.ActionKind]int),
	}
	for _, r := range results {
		s.ByAction[r.Decision.Kind]++
		s.Retries += len(r.Retries)
		if r.Fatal != nil {
			s.Fatal = true
		}
	}
	return s
}

// #endregion replay
