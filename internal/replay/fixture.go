package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/soratane/umapilot/internal/policy"
	"github.com/soratane/umapilot/internal/snapshot"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description     string                  `json:"description"`
	Config          policy.Config           `json:"config"`
	Turns           []FixtureTurn           `json:"turns"`
	ExpectedResults []FixtureExpectedResult `json:"expected_results"`
}

// FixtureTurn is one recorded capture plus the outcome the device reported
// after executing whatever was decided.
type FixtureTurn struct {
	TurnID   string          `json:"turn_id"`
	Snapshot FixtureSnapshot `json:"snapshot"`
	Outcome  string          `json:"outcome"` // "" defaults to succeeded
}

// FixtureSnapshot mirrors snapshot.Snapshot with JSON tags.
type FixtureSnapshot struct {
	Phase         string                  `json:"phase"`
	Mood          string                  `json:"mood"`
	EnergyPercent int                     `json:"energy_percent"`
	Year          string                  `json:"year"`
	Month         int                     `json:"month"`
	Training      []FixtureTrainingOption `json:"training,omitempty"`
	Races         []FixtureRaceCandidate  `json:"races,omitempty"`
	EventChoices  []FixtureEventChoice    `json:"event_choices,omitempty"`
	SkillPoints   int                     `json:"skill_points"`
	Skills        []FixtureSkillCandidate `json:"skills,omitempty"`
	Debuffed      bool                    `json:"debuffed,omitempty"`
	GoalRacing    bool                    `json:"goal_requires_racing,omitempty"`
	GoalMet       bool                    `json:"goal_met,omitempty"`
}

// FixtureTrainingOption mirrors snapshot.TrainingOption with JSON tags.
type FixtureTrainingOption struct {
	Stat           string               `json:"stat"`
	CurrentValue   int                  `json:"current_value"`
	FailurePercent int                  `json:"failure_percent"`
	Supports       []FixtureSupportCard `json:"supports,omitempty"`
}

// FixtureSupportCard mirrors snapshot.SupportCard with JSON tags.
type FixtureSupportCard struct {
	Type      string `json:"type"`
	BondLevel int    `json:"bond_level"`
	HasHint   bool   `json:"has_hint"`
}

// FixtureRaceCandidate mirrors snapshot.RaceCandidate with JSON tags.
type FixtureRaceCandidate struct {
	Name          string `json:"name"`
	Grade         string `json:"grade"`
	AptitudeMatch bool   `json:"aptitude_match"`
	Trophied      bool   `json:"trophied"`
	Month         int    `json:"month"`
}

// FixtureEventChoice mirrors snapshot.EventChoice with JSON tags.
type FixtureEventChoice struct {
	Position int      `json:"position"`
	Outcomes []string `json:"outcomes"`
}

// FixtureSkillCandidate mirrors snapshot.SkillCandidate with JSON tags.
type FixtureSkillCandidate struct {
	Name string `json:"name"`
	Cost int    `json:"cost"`
	Gold bool   `json:"gold"`
}

// FixtureExpectedResult captures the expected action per turn.
type FixtureExpectedResult struct {
	TurnID      string   `json:"turn_id"`
	Action      string   `json:"action"`
	Stat        string   `json:"stat,omitempty"`
	RaceName    string   `json:"race_name,omitempty"`
	EventChoice int      `json:"event_choice,omitempty"`
	SkillNames  []string `json:"skill_names,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file. The embedded config is
// layered over defaults, so fixtures only spell out what they change.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	f := Fixture{Config: policy.DefaultConfig()}
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if err := f.Config.Validate(); err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToSnapshot converts a FixtureSnapshot to a domain Snapshot.
func (fs *FixtureSnapshot) ToSnapshot() snapshot.Snapshot {
	out := snapshot.Snapshot{
		Phase:         snapshot.Phase(fs.Phase),
		Mood:          snapshot.Mood(fs.Mood),
		EnergyPercent: fs.EnergyPercent,
		Calendar: snapshot.Calendar{
			Year:  snapshot.Year(fs.Year),
			Month: fs.Month,
		},
		SkillPoints: fs.SkillPoints,
		Debuffed:    fs.Debuffed,
		Goal: snapshot.Goal{
			RequiresRacing: fs.GoalRacing,
			Met:            fs.GoalMet,
		},
	}

	for _, t := range fs.Training {
		supports := make([]snapshot.SupportCard, len(t.Supports))
		for j, sc := range t.Supports {
			supports[j] = snapshot.SupportCard{
				Type:      snapshot.Stat(sc.Type),
				BondLevel: sc.BondLevel,
				HasHint:   sc.HasHint,
			}
		}
		out.Training = append(out.Training, snapshot.TrainingOption{
			Stat:           snapshot.Stat(t.Stat),
			CurrentValue:   t.CurrentValue,
			FailurePercent: t.FailurePercent,
			Supports:       supports,
		})
	}

	for _, r := range fs.Races {
		out.Races = append(out.Races, snapshot.RaceCandidate{
			Name:          r.Name,
			Grade:         snapshot.RaceGrade(r.Grade),
			AptitudeMatch: r.AptitudeMatch,
			Trophied:      r.Trophied,
			Month:         r.Month,
		})
	}

	for _, e := range fs.EventChoices {
		out.EventChoices = append(out.EventChoices, snapshot.EventChoice{
			Position: e.Position,
			Outcomes: e.Outcomes,
		})
	}

	for _, sk := range fs.Skills {
		out.Skills = append(out.Skills, snapshot.SkillCandidate{
			Name: sk.Name,
			Cost: sk.Cost,
			Gold: sk.Gold,
		})
	}

	return out
}

// #endregion fixture-loader
