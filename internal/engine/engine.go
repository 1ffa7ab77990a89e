package engine

// #region imports
import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/soratane/umapilot/internal/event"
	"github.com/soratane/umapilot/internal/policy"
	"github.com/soratane/umapilot/internal/race"
	"github.com/soratane/umapilot/internal/skills"
	"github.com/soratane/umapilot/internal/snapshot"
	"github.com/soratane/umapilot/internal/training"
)

// #endregion

// #region errors

// ErrRetryExhausted terminates the run when a race keeps failing past the
// configured retry budget.
var ErrRetryExhausted = errors.New("engine: race retry budget exhausted")

// #endregion

// #region engine-struct

// Engine is the top-level phase selector. It turns one Snapshot into one
// Decision per cycle. The only state carried across turns is the
// consecutive-race counter and the race retry engine; everything else is
// recomputed from the snapshot.
type Engine struct {
	cfg    policy.Config
	scorer *training.Scorer
	races  *race.Manager
	events *event.Resolver
	skills *skills.Planner
	retry  *race.RetryEngine

	consecutiveRaces int
	rng              *rand.Rand
}

// New creates a fully wired engine for one run.
func New(cfg policy.Config) *Engine {
	return &Engine{
		cfg:    cfg,
		scorer: training.NewScorer(cfg),
		races:  race.NewManager(cfg),
		events: event.NewResolver(cfg),
		skills: skills.NewPlanner(cfg),
		retry:  race.NewRetryEngine(cfg.RetryRace, cfg.MaxRetries),
		rng:    rand.New(rand.NewSource(rand.Int63())),
	}
}

// ConsecutiveRaces returns how many race decisions ran back to back.
func (e *Engine) ConsecutiveRaces() int { return e.consecutiveRaces }

// #endregion

// #region decide

// Decide converts a snapshot into exactly one decision. Phase dispatch
// first, then the G1 override, then the mood and energy gates, then the
// training scorer with its race/rest fallbacks.
func (e *Engine) Decide(snap snapshot.Snapshot) Decision {
	d := e.decide(snap)
	if d.Kind == ActionRace {
		e.consecutiveRaces++
	} else {
		e.consecutiveRaces = 0
	}
	d.Rationale = append(d.Rationale, fmt.Sprintf("consecutive-races:%d", e.consecutiveRaces))
	log.Printf("[ENGINE] phase=%s → %s rationale=%v", snap.Phase, d.Kind, d.Rationale)
	return d
}

func (e *Engine) decide(snap snapshot.Snapshot) Decision {
	switch snap.Phase {
	case snapshot.PhaseEvent:
		idx, trail := e.events.Resolve(snap.EventChoices)
		return Decision{Kind: ActionChooseEvent, EventChoice: idx, Rationale: trail}

	case snapshot.PhaseSkillShop:
		return e.decideSkills(snap)

	case snapshot.PhaseClawMachine:
		// Fixed interaction, no scoring; the hold duration is randomized so
		// timing does not fingerprint as automation.
		hold := 1200 + e.rng.Intn(1000)
		return Decision{Kind: ActionClawMachine, ClawHoldMs: hold, Rationale: []string{"claw-machine"}}

	case snapshot.PhaseRaceDay:
		// The cap check runs before race day so points get spent while the
		// shop is still reachable.
		if e.skills.Triggered(snap.SkillPoints) {
			d := e.decideSkills(snap)
			d.Rationale = append([]string{"race-day-skill-check"}, d.Rationale...)
			if d.ManualPrompt || len(d.SkillNames) > 0 {
				return d
			}
		}
		d := Decision{
			Kind:         ActionRace,
			RaceStrategy: e.cfg.RaceStrategy,
			Rationale:    []string{"race-day"},
		}
		if len(snap.Races) > 0 {
			d.Race = snap.Races[0]
		}
		return d
	}

	// Lobby flow. A visible debuff goes to the infirmary before anything
	// else; an untreated debuff taxes every later turn.
	if snap.Debuffed {
		return Decision{Kind: ActionInfirmary, Rationale: []string{"infirmary-debuff"}}
	}

	// The G1 override outranks every wellbeing gate.
	if pick, ok := e.races.PickG1(snap.Calendar, snap.Races); ok {
		return e.raceDecision(pick)
	}

	// An unmet race-counting goal keeps forcing race turns until it clears.
	if pick, ok := e.races.PickGoal(snap.Calendar, snap.Goal, snap.Races); ok {
		return e.raceDecision(pick)
	}

	if e.skills.Triggered(snap.SkillPoints) {
		d := e.decideSkills(snap)
		if d.ManualPrompt || len(d.SkillNames) > 0 {
			return d
		}
		// Nothing buyable this pass; fall through to the normal turn so the
		// loop cannot stall on the cap.
	}

	if !snap.Mood.AtLeast(e.cfg.MinimumMood) {
		if snap.EnergyPercent > 90 {
			// Recreation on a full bar wastes the turn; training events will
			// lift mood instead.
			return e.trainOrFallback(snap, []string{"mood-gate", "recreation-skipped-energy-high"})
		}
		return Decision{Kind: ActionRecreation, Rationale: []string{"mood-gate"}}
	}

	if snap.EnergyPercent < e.cfg.MinEnergy {
		return Decision{Kind: ActionRest, Rationale: []string{"energy-gate"}}
	}

	return e.trainOrFallback(snap, nil)
}

// #endregion

// #region training-fallback

// trainOrFallback evaluates the training scorer and routes its fallback
// signals: race on insufficient support or score, rest when every option is
// unsafe or capped, recreation when nothing has support and mood is low.
func (e *Engine) trainOrFallback(snap snapshot.Snapshot, trail []string) Decision {
	res := e.scorer.Evaluate(snap.Training, snap.Calendar, snap.Mood)
	trail = append(trail, res.Trail...)

	switch res.Outcome {
	case training.OutcomeSelected:
		best := res.Best()
		trail = append(trail, fmt.Sprintf("train:%s", best.Stat))
		return Decision{Kind: ActionTrain, Stat: best.Stat, Rationale: trail}

	case training.OutcomeGoRecreation:
		// The energy skip already ruled recreation out for this turn; on a
		// full bar the scorer's recreation verdict degrades to rest.
		if hasRule(trail, "recreation-skipped-energy-high") {
			return Decision{Kind: ActionRest, Rationale: trail}
		}
		return Decision{Kind: ActionRecreation, Rationale: trail}

	case training.OutcomeFallToRace:
		if pick, ok := e.races.PickFallback(snap.Calendar, snap.Races); ok {
			pick.Trail = append(trail, pick.Trail...)
			return e.raceDecision(pick)
		}
		trail = append(trail, "no-race-available")
		return Decision{Kind: ActionRest, Rationale: trail}

	default: // training.OutcomeNone
		// Everything unsafe or capped is a rest turn, not a race turn: a
		// tired runner loses races too. Score shortfalls still race.
		if hasRule(res.Trail, "all-unsafe") || hasRule(res.Trail, "all-capped") {
			return Decision{Kind: ActionRest, Rationale: trail}
		}
		if pick, ok := e.races.PickFallback(snap.Calendar, snap.Races); ok {
			pick.Trail = append(trail, pick.Trail...)
			return e.raceDecision(pick)
		}
		trail = append(trail, "no-race-available")
		return Decision{Kind: ActionRest, Rationale: trail}
	}
}

func hasRule(trail []string, rule string) bool {
	for _, t := range trail {
		if t == rule {
			return true
		}
	}
	return false
}

// #endregion

// #region skills-race-helpers

func (e *Engine) decideSkills(snap snapshot.Snapshot) Decision {
	plan := e.skills.Build(snap.SkillPoints, snap.Skills)
	if plan.ManualPrompt {
		return Decision{Kind: ActionBuySkills, ManualPrompt: true, Rationale: plan.Trail}
	}
	return Decision{Kind: ActionBuySkills, SkillNames: plan.Names(), Rationale: plan.Trail}
}

func (e *Engine) raceDecision(pick race.Pick) Decision {
	return Decision{
		Kind:         ActionRace,
		Race:         pick.Candidate,
		RaceStrategy: pick.Strategy,
		Rationale:    pick.Trail,
	}
}

// #endregion

// #region outcomes

// RecordOutcome feeds the execution result back into the engine. For a
// failed race it returns the decision to re-issue, bounded by the retry
// budget; exhausting the budget returns ErrRetryExhausted. Failures of any
// other action kind are logged and absorbed.
func (e *Engine) RecordOutcome(d Decision, oc Outcome) (*Decision, error) {
	if d.Kind != ActionRace {
		if oc != OutcomeSucceeded {
			log.Printf("[ENGINE] %s action %s, continuing", d.Kind, oc)
		}
		return nil, nil
	}

	if oc == OutcomeSucceeded {
		e.retry.RecordSuccess()
		return nil, nil
	}

	switch e.retry.RecordFailure(d.Race.Name) {
	case race.VerdictRetry:
		retryDecision := d
		retryDecision.Rationale = append([]string{}, d.Rationale...)
		retryDecision.Rationale = append(retryDecision.Rationale,
			fmt.Sprintf("race-retry:%d", e.retry.Failures()))
		log.Printf("[ENGINE] race %q %s, retry %d/%d", d.Race.Name, oc, e.retry.Failures(), e.cfg.MaxRetries)
		return &retryDecision, nil
	case race.VerdictFatal:
		return nil, fmt.Errorf("%w: %q failed %d times", ErrRetryExhausted, d.Race.Name, e.retry.Failures())
	default: // VerdictGiveUp
		log.Printf("[ENGINE] race %q %s, retry disabled", d.Race.Name, oc)
		return nil, nil
	}
}

// #endregion

// #region recognition-fallback

// RestFallback is the conservative action taken when perception cannot
// produce a usable snapshot after the bounded capture retries.
func (e *Engine) RestFallback() Decision {
	return Decision{Kind: ActionRest, Rationale: []string{"recognition-fallback"}}
}

// #endregion
