package race

// #region imports
import (
	"fmt"

	"github.com/soratane/umapilot/internal/policy"
	"github.com/soratane/umapilot/internal/snapshot"
)

// #endregion

// #region pick

// Pick is a selected race plus the running strategy to force before it.
type Pick struct {
	Candidate snapshot.RaceCandidate
	Strategy  policy.RaceStrategy
	Trail     []string
}

// #endregion

// #region manager

// Manager decides whether the turn should be a race and which candidate.
type Manager struct {
	cfg policy.Config
}

// NewManager creates a manager bound to the given policy.
func NewManager(cfg policy.Config) *Manager {
	return &Manager{cfg: cfg}
}

// #endregion

// #region g1-override

// PickG1 returns the earliest untrophied aptitude-matching G1 candidate
// when the G1 override applies this turn. The override ignores mood,
// energy, and training scores entirely; it does not apply during the
// July/August break.
func (m *Manager) PickG1(cal snapshot.Calendar, races []snapshot.RaceCandidate) (Pick, bool) {
	if !m.cfg.PrioritizeG1 || cal.Summer() {
		return Pick{}, false
	}
	for _, r := range races {
		if r.Grade == snapshot.GradeG1 && !r.Trophied && r.AptitudeMatch {
			return Pick{
				Candidate: r,
				Strategy:  m.cfg.RaceStrategy,
				Trail:     []string{"g1-override", fmt.Sprintf("race:%s", r.Name)},
			}, true
		}
	}
	return Pick{}, false
}

// #endregion

// #region goal

// PickGoal selects a race while the career goal is unmet and counts race
// results. Like the G1 override it ignores mood, energy, and training
// scores; unlike it, any eligible grade will do. Suppressed during the
// July/August break like every other race path.
func (m *Manager) PickGoal(cal snapshot.Calendar, goal snapshot.Goal, races []snapshot.RaceCandidate) (Pick, bool) {
	if !goal.Urgent() || cal.Summer() {
		return Pick{}, false
	}
	best := bestEligible(races)
	if best == -1 {
		return Pick{}, false
	}
	return Pick{
		Candidate: races[best],
		Strategy:  m.cfg.RaceStrategy,
		Trail:     []string{"goal-race", fmt.Sprintf("race:%s", races[best].Name)},
	}, true
}

// #endregion

// #region fallback

// PickFallback selects a race when training fell through and racing on bad
// training is enabled.
func (m *Manager) PickFallback(cal snapshot.Calendar, races []snapshot.RaceCandidate) (Pick, bool) {
	if !m.cfg.RaceWhenBad || cal.Summer() {
		return Pick{}, false
	}
	best := bestEligible(races)
	if best == -1 {
		return Pick{}, false
	}
	return Pick{
		Candidate: races[best],
		Strategy:  m.cfg.RaceStrategy,
		Trail:     []string{"fallback-race", fmt.Sprintf("race:%s", races[best].Name)},
	}, true
}

// bestEligible scans the declared order for aptitude-matching untrophied
// candidates. Higher grade wins; ties keep the earlier entry.
func bestEligible(races []snapshot.RaceCandidate) int {
	best := -1
	for i, r := range races {
		if !r.AptitudeMatch || r.Trophied {
			continue
		}
		if best == -1 || r.Grade.Rank() > races[best].Grade.Rank() {
			best = i
		}
	}
	return best
}

// #endregion
