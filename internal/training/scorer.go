package training

// #region imports
import (
	"fmt"
	"sort"

	"github.com/soratane/umapilot/internal/policy"
	"github.com/soratane/umapilot/internal/snapshot"
)

// #endregion

// #region outcome

// Outcome classifies the scorer's verdict when no option survives.
type Outcome string

const (
	// OutcomeSelected means Ranked is non-empty and Best is valid.
	OutcomeSelected Outcome = "selected"
	// OutcomeFallToRace means the support-requirement filter emptied the
	// set; the caller should consider racing instead of resting.
	OutcomeFallToRace Outcome = "fall_to_race"
	// OutcomeGoRecreation means no option has any support card and mood is
	// below the configured minimum.
	OutcomeGoRecreation Outcome = "go_recreation"
	// OutcomeNone means no eligible option survived filtering.
	OutcomeNone Outcome = "none"
)

// #endregion

// #region scored

// Scored pairs a surviving option with its computed score.
type Scored struct {
	Option snapshot.TrainingOption
	Score  float64
}

// Result is the scorer output for one turn.
type Result struct {
	Outcome Outcome
	Ranked  []Scored // descending preference; empty unless OutcomeSelected
	Trail   []string // applied-rule names, in firing order
}

// Best returns the top-ranked option. Only valid for OutcomeSelected.
func (r Result) Best() snapshot.TrainingOption {
	return r.Ranked[0].Option
}

// #endregion

// #region scorer

// Scorer ranks training options under a fixed policy.
type Scorer struct {
	cfg policy.Config
}

// NewScorer creates a scorer bound to the given policy.
func NewScorer(cfg policy.Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// #endregion

// #region evaluate

// Evaluate runs the filtering pipeline and ranks the survivors.
// Each stage strictly narrows the candidate set; the stage order is fixed:
// stat caps, failure threshold, support requirement, score threshold.
func (s *Scorer) Evaluate(options []snapshot.TrainingOption, cal snapshot.Calendar, mood snapshot.Mood) Result {
	var trail []string

	// 1. Stat-cap filter.
	capped := options[:0:0]
	for _, opt := range options {
		if opt.CurrentValue >= s.cfg.Cap(opt.Stat) {
			trail = append(trail, fmt.Sprintf("stat-cap:%s", opt.Stat))
			continue
		}
		capped = append(capped, opt)
	}
	if len(capped) == 0 {
		trail = append(trail, "all-capped")
		return Result{Outcome: OutcomeNone, Trail: trail}
	}

	// Recreation edge case: nothing has a support card anywhere and mood is
	// already below the minimum. Training would be wasted either way.
	if noSupportAnywhere(capped) && !mood.AtLeast(s.cfg.MinimumMood) {
		trail = append(trail, "no-support-low-mood")
		return Result{Outcome: OutcomeGoRecreation, Trail: trail}
	}

	// 2. Failure filter. Unknown readings pass optimistically but are
	// flagged so operators can audit misreads.
	safe := capped[:0:0]
	for _, opt := range capped {
		if opt.FailurePercent == snapshot.FailureUnknown {
			trail = append(trail, fmt.Sprintf("failure-unknown-optimistic:%s", opt.Stat))
			safe = append(safe, opt)
			continue
		}
		if opt.FailurePercent > s.cfg.MaxFailure {
			trail = append(trail, fmt.Sprintf("failure-filter:%s", opt.Stat))
			continue
		}
		safe = append(safe, opt)
	}
	if len(safe) == 0 {
		trail = append(trail, "all-unsafe")
		return Result{Outcome: OutcomeNone, Trail: trail}
	}

	// 3. Support-requirement filter, only when racing is the alternative.
	// WIT keeps a hard floor of two cards regardless of min_support.
	if s.cfg.RaceWhenBad {
		supported := safe[:0:0]
		for _, opt := range safe {
			min := s.cfg.MinSupport
			if opt.Stat == snapshot.StatWit && min < policy.WitMinSupport() {
				min = policy.WitMinSupport()
			}
			if len(opt.Supports) < min {
				trail = append(trail, fmt.Sprintf("support-filter:%s", opt.Stat))
				continue
			}
			supported = append(supported, opt)
		}
		if len(supported) == 0 {
			trail = append(trail, "support-filter-empty")
			return Result{Outcome: OutcomeFallToRace, Trail: trail}
		}
		safe = supported
	}

	// Score the survivors.
	scored := make([]Scored, 0, len(safe))
	for _, opt := range safe {
		scored = append(scored, Scored{Option: opt, Score: s.Score(opt)})
	}

	// 4. Score-threshold filter. WIT has its own floor.
	eligible := scored[:0:0]
	for _, sc := range scored {
		threshold := s.cfg.MinScore
		if sc.Option.Stat == snapshot.StatWit {
			threshold = s.cfg.MinWitScore
		}
		if sc.Score < threshold {
			trail = append(trail, fmt.Sprintf("score-filter:%s", sc.Option.Stat))
			continue
		}
		eligible = append(eligible, sc)
	}
	if len(eligible) == 0 {
		trail = append(trail, "all-below-score")
		return Result{Outcome: OutcomeNone, Trail: trail}
	}

	if cal.Year == snapshot.YearJunior {
		trail = append(trail, "junior-support-count-rank")
		s.rankJunior(eligible)
	} else {
		trail = append(trail, "score-rank")
		s.rank(eligible)
	}

	return Result{Outcome: OutcomeSelected, Ranked: eligible, Trail: trail}
}

// #endregion

// #region ranking

// rank orders by score descending, then priority_stat position, then lower
// failure, then observed order. sort.SliceStable keeps the observed order
// as the final tie-break.
func (s *Scorer) rank(scored []Scored) {
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		ap, bp := s.cfg.StatPriority(a.Option.Stat), s.cfg.StatPriority(b.Option.Stat)
		if ap != bp {
			return ap < bp
		}
		return failureForSort(a.Option) < failureForSort(b.Option)
	})
}

// rankJunior orders primarily by raw support-card count, using score only
// to break ties. The first year is about unlocking rainbow training, not
// squeezing points out of it.
func (s *Scorer) rankJunior(scored []Scored) {
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if len(a.Option.Supports) != len(b.Option.Supports) {
			return len(a.Option.Supports) > len(b.Option.Supports)
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		ap, bp := s.cfg.StatPriority(a.Option.Stat), s.cfg.StatPriority(b.Option.Stat)
		if ap != bp {
			return ap < bp
		}
		return failureForSort(a.Option) < failureForSort(b.Option)
	})
}

// failureForSort treats Unknown as the worst observed value so a misread
// never wins a tie-break over a clean reading.
func failureForSort(opt snapshot.TrainingOption) int {
	if opt.FailurePercent == snapshot.FailureUnknown {
		return 101
	}
	return opt.FailurePercent
}

// #endregion

// #region score

// Score computes the point total for one option: per-card points plus a
// single hint bonus shared by the whole option.
func (s *Scorer) Score(opt snapshot.TrainingOption) float64 {
	w := s.cfg.Scoring
	var score float64
	hint := false
	for _, card := range opt.Supports {
		if card.HasHint {
			hint = true
		}
		switch {
		case card.Rainbow(opt.Stat) && card.BondLevel >= 4:
			score += w.Rainbow
		case card.BondLevel < 4:
			score += w.LowBond
		default:
			// Non-rainbow at full bond: already bonded, nothing to gain.
			score += w.HighBond
		}
	}
	if hint {
		score += w.Hint
	}
	return score
}

// #endregion

// #region helpers

func noSupportAnywhere(options []snapshot.TrainingOption) bool {
	for _, opt := range options {
		if len(opt.Supports) > 0 {
			return false
		}
	}
	return len(options) > 0
}

// #endregion
