package engine

// #region imports
import (
	"github.com/soratane/umapilot/internal/policy"
	"github.com/soratane/umapilot/internal/snapshot"
)

// #endregion

// #region action-kind

// ActionKind enumerates the one action emitted per turn.
type ActionKind string

const (
	ActionTrain       ActionKind = "train"
	ActionRace        ActionKind = "race"
	ActionRest        ActionKind = "rest"
	ActionRecreation  ActionKind = "recreation"
	ActionInfirmary   ActionKind = "infirmary"
	ActionChooseEvent ActionKind = "choose_event"
	ActionBuySkills   ActionKind = "buy_skills"
	ActionClawMachine ActionKind = "claw_machine"
)

// #endregion

// #region outcome

// Outcome is the action collaborator's report after executing a decision.
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
	OutcomeTimedOut  Outcome = "timed_out"
)

// #endregion

// #region decision

// Decision is one turn's chosen action plus the ordered trail of every rule
// that fired while choosing it.
type Decision struct {
	Kind ActionKind

	// Kind-specific payloads; only the one matching Kind is meaningful.
	Stat         snapshot.Stat          // ActionTrain
	Race         snapshot.RaceCandidate // ActionRace
	RaceStrategy policy.RaceStrategy    // ActionRace
	EventChoice  int                    // ActionChooseEvent, position index
	SkillNames   []string               // ActionBuySkills
	ClawHoldMs   int                    // ActionClawMachine

	// ManualPrompt asks the operator to take over (manual skill purchase).
	ManualPrompt bool

	Rationale []string
}

// #endregion
