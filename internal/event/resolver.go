package event

// #region imports
import (
	"fmt"
	"math"
	"strings"

	"github.com/soratane/umapilot/internal/policy"
	"github.com/soratane/umapilot/internal/snapshot"
)

// #endregion

// #region analysis

// analysis holds the per-option term-match summary.
type analysis struct {
	choice    snapshot.EventChoice
	goodRank  int // earliest matching good-term index; unmatched = maxRank
	goodCount int
	badCount  int
	hasHint   bool
}

// maxRank stands in for "no good term matched".
const maxRank = math.MaxInt

// hintPhrase marks a skill-hint reward in outcome text.
const hintPhrase = "hint +"

// #endregion

// #region resolver

// Resolver picks one event choice from outcome text and the configured
// good/bad term lists.
type Resolver struct {
	cfg policy.Config
}

// NewResolver creates a resolver bound to the given policy.
func NewResolver(cfg policy.Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// #endregion

// #region resolve

// Resolve returns the position index of the chosen option plus the rule
// trail. The ordering is total: good-term rank, then fewer bad matches,
// then more good matches, then topmost. With no recognizable text at all
// the topmost option is the defined default, never an error.
func (r *Resolver) Resolve(choices []snapshot.EventChoice) (int, []string) {
	if len(choices) == 0 {
		return 0, []string{"event-no-choices"}
	}

	scored := make([]analysis, 0, len(choices))
	for _, c := range choices {
		scored = append(scored, r.analyze(c))
	}

	// Unique skill hint wins outright before term ranking.
	hintIdx := -1
	hintCount := 0
	for i, a := range scored {
		if a.hasHint {
			hintCount++
			hintIdx = i
		}
	}
	if hintCount == 1 {
		return scored[hintIdx].choice.Position, []string{"event-unique-hint"}
	}

	best := scored[0]
	for _, a := range scored[1:] {
		if better(a, best) {
			best = a
		}
	}

	if best.goodRank == maxRank {
		return choices[0].Position, []string{"event-no-match-default-top"}
	}
	trail := []string{
		fmt.Sprintf("event-good-rank:%d", best.goodRank),
		fmt.Sprintf("event-choice:%d", best.choice.Position),
	}
	return best.choice.Position, trail
}

// better reports whether a beats b under the total order. Equal on every
// key means the earlier (smaller position) entry stands, so scanning in
// position order needs strict wins only.
func better(a, b analysis) bool {
	if a.goodRank != b.goodRank {
		return a.goodRank < b.goodRank
	}
	if a.badCount != b.badCount {
		return a.badCount < b.badCount
	}
	if a.goodCount != b.goodCount {
		return a.goodCount > b.goodCount
	}
	return a.choice.Position < b.choice.Position
}

// #endregion

// #region analyze

// analyze summarizes one option: goodRank and goodCount count matching
// good terms, badCount counts outcome phrases that hit any bad term.
func (r *Resolver) analyze(c snapshot.EventChoice) analysis {
	a := analysis{choice: c, goodRank: maxRank}
	lowered := make([]string, len(c.Outcomes))
	for i, phrase := range c.Outcomes {
		lowered[i] = strings.ToLower(phrase)
		if strings.Contains(lowered[i], hintPhrase) {
			a.hasHint = true
		}
	}
	for i, term := range r.cfg.GoodTerms {
		t := strings.ToLower(term)
		for _, phrase := range lowered {
			if strings.Contains(phrase, t) {
				a.goodCount++
				if i < a.goodRank {
					a.goodRank = i
				}
				break
			}
		}
	}
	for _, phrase := range lowered {
		for _, term := range r.cfg.BadTerms {
			if strings.Contains(phrase, strings.ToLower(term)) {
				a.badCount++
				break
			}
		}
	}
	return a
}

// #endregion
