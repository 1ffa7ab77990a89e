package training

import (
	"testing"

	"github.com/soratane/umapilot/internal/policy"
	"github.com/soratane/umapilot/internal/snapshot"
)

func classicCal() snapshot.Calendar {
	return snapshot.Calendar{Year: snapshot.YearClassic, Month: 5}
}

func juniorCal() snapshot.Calendar {
	return snapshot.Calendar{Year: snapshot.YearJunior, Month: 5}
}

func option(stat snapshot.Stat, failure int, supports ...snapshot.SupportCard) snapshot.TrainingOption {
	return snapshot.TrainingOption{
		Stat:           stat,
		CurrentValue:   500,
		FailurePercent: failure,
		Supports:       supports,
	}
}

func hasTrail(trail []string, entry string) bool {
	for _, e := range trail {
		if e == entry {
			return true
		}
	}
	return false
}

func TestScoreRainbowWithHint(t *testing.T) {
	s := NewScorer(policy.DefaultConfig())
	opt := option(snapshot.StatSpeed, 5,
		snapshot.SupportCard{Type: snapshot.StatSpeed, BondLevel: 4},
		snapshot.SupportCard{Type: snapshot.StatSpeed, BondLevel: 5},
		snapshot.SupportCard{Type: snapshot.StatPower, BondLevel: 2, HasHint: true},
	)

	// Two rainbows, one low-bond card, one shared hint bonus.
	got := s.Score(opt)
	want := 1.0 + 1.0 + 0.7 + 0.3
	if got != want {
		t.Fatalf("score = %v, want %v", got, want)
	}
}

func TestScoreHintBonusAppliedOnce(t *testing.T) {
	s := NewScorer(policy.DefaultConfig())
	opt := option(snapshot.StatSpeed, 5,
		snapshot.SupportCard{Type: snapshot.StatPower, BondLevel: 1, HasHint: true},
		snapshot.SupportCard{Type: snapshot.StatGuts, BondLevel: 2, HasHint: true},
	)

	got := s.Score(opt)
	want := 0.7 + 0.7 + 0.3
	if got != want {
		t.Fatalf("score = %v, want %v", got, want)
	}
}

func TestScoreBondedNonRainbowWorthNothing(t *testing.T) {
	s := NewScorer(policy.DefaultConfig())
	opt := option(snapshot.StatSpeed, 5,
		snapshot.SupportCard{Type: snapshot.StatPower, BondLevel: 5},
	)

	if got := s.Score(opt); got != 0 {
		t.Fatalf("score = %v, want 0", got)
	}
}

func TestScoreRainbowRequiresBond(t *testing.T) {
	s := NewScorer(policy.DefaultConfig())
	// Matching type but bond below 4 scores as a low-bond card.
	opt := option(snapshot.StatSpeed, 5,
		snapshot.SupportCard{Type: snapshot.StatSpeed, BondLevel: 3},
	)

	if got := s.Score(opt); got != 0.7 {
		t.Fatalf("score = %v, want 0.7", got)
	}
}

func TestEvaluateSelectsHighestScore(t *testing.T) {
	s := NewScorer(policy.DefaultConfig())
	options := []snapshot.TrainingOption{
		option(snapshot.StatSpeed, 5,
			snapshot.SupportCard{Type: snapshot.StatPower, BondLevel: 1},
			snapshot.SupportCard{Type: snapshot.StatGuts, BondLevel: 1},
		),
		option(snapshot.StatStamina, 5,
			snapshot.SupportCard{Type: snapshot.StatStamina, BondLevel: 5},
			snapshot.SupportCard{Type: snapshot.StatStamina, BondLevel: 4},
		),
	}

	res := s.Evaluate(options, classicCal(), snapshot.MoodGreat)
	if res.Outcome != OutcomeSelected {
		t.Fatalf("outcome = %s, trail = %v", res.Outcome, res.Trail)
	}
	if res.Best().Stat != snapshot.StatStamina {
		t.Fatalf("best = %s, want sta", res.Best().Stat)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	s := NewScorer(policy.DefaultConfig())
	options := []snapshot.TrainingOption{
		option(snapshot.StatSpeed, 5, snapshot.SupportCard{Type: snapshot.StatSpeed, BondLevel: 4}, snapshot.SupportCard{Type: snapshot.StatSpeed, BondLevel: 4}),
		option(snapshot.StatPower, 10, snapshot.SupportCard{Type: snapshot.StatPower, BondLevel: 4}, snapshot.SupportCard{Type: snapshot.StatPower, BondLevel: 4}),
	}

	first := s.Evaluate(options, classicCal(), snapshot.MoodGreat)
	second := s.Evaluate(options, classicCal(), snapshot.MoodGreat)

	if first.Outcome != second.Outcome {
		t.Fatalf("outcomes differ: %s vs %s", first.Outcome, second.Outcome)
	}
	if first.Best().Stat != second.Best().Stat {
		t.Fatalf("best differs: %s vs %s", first.Best().Stat, second.Best().Stat)
	}
	if len(first.Trail) != len(second.Trail) {
		t.Fatalf("trail lengths differ: %v vs %v", first.Trail, second.Trail)
	}
}

func TestEvaluateStatCapExcludesOption(t *testing.T) {
	cfg := policy.DefaultConfig()
	cfg.StatCaps = map[snapshot.Stat]int{snapshot.StatSpeed: 600}
	s := NewScorer(cfg)

	capped := option(snapshot.StatSpeed, 5,
		snapshot.SupportCard{Type: snapshot.StatSpeed, BondLevel: 5},
		snapshot.SupportCard{Type: snapshot.StatSpeed, BondLevel: 5},
	)
	capped.CurrentValue = 650
	other := option(snapshot.StatPower, 5,
		snapshot.SupportCard{Type: snapshot.StatPower, BondLevel: 4},
		snapshot.SupportCard{Type: snapshot.StatPower, BondLevel: 4},
	)

	res := s.Evaluate([]snapshot.TrainingOption{capped, other}, classicCal(), snapshot.MoodGreat)
	if res.Outcome != OutcomeSelected {
		t.Fatalf("outcome = %s, trail = %v", res.Outcome, res.Trail)
	}
	if res.Best().Stat != snapshot.StatPower {
		t.Fatalf("best = %s, want pwr", res.Best().Stat)
	}
	if !hasTrail(res.Trail, "stat-cap:spd") {
		t.Fatalf("trail = %v, want stat-cap:spd", res.Trail)
	}
}

func TestEvaluateAllCapped(t *testing.T) {
	cfg := policy.DefaultConfig()
	cfg.StatCaps = map[snapshot.Stat]int{snapshot.StatSpeed: 400}
	s := NewScorer(cfg)

	capped := option(snapshot.StatSpeed, 5)
	capped.CurrentValue = 400

	res := s.Evaluate([]snapshot.TrainingOption{capped}, classicCal(), snapshot.MoodGreat)
	if res.Outcome != OutcomeNone {
		t.Fatalf("outcome = %s, want none", res.Outcome)
	}
	if !hasTrail(res.Trail, "all-capped") {
		t.Fatalf("trail = %v, want all-capped", res.Trail)
	}
}

func TestEvaluateFailureFilter(t *testing.T) {
	s := NewScorer(policy.DefaultConfig())
	options := []snapshot.TrainingOption{
		option(snapshot.StatSpeed, 40,
			snapshot.SupportCard{Type: snapshot.StatSpeed, BondLevel: 5},
			snapshot.SupportCard{Type: snapshot.StatSpeed, BondLevel: 5},
		),
		option(snapshot.StatPower, 10,
			snapshot.SupportCard{Type: snapshot.StatPower, BondLevel: 4},
			snapshot.SupportCard{Type: snapshot.StatPower, BondLevel: 4},
		),
	}

	res := s.Evaluate(options, classicCal(), snapshot.MoodGreat)
	if res.Outcome != OutcomeSelected {
		t.Fatalf("outcome = %s, trail = %v", res.Outcome, res.Trail)
	}
	if res.Best().Stat != snapshot.StatPower {
		t.Fatalf("best = %s, want pwr", res.Best().Stat)
	}
	if !hasTrail(res.Trail, "failure-filter:spd") {
		t.Fatalf("trail = %v, want failure-filter:spd", res.Trail)
	}
}

func TestEvaluateUnknownFailurePassesFlagged(t *testing.T) {
	s := NewScorer(policy.DefaultConfig())
	options := []snapshot.TrainingOption{
		option(snapshot.StatSpeed, snapshot.FailureUnknown,
			snapshot.SupportCard{Type: snapshot.StatSpeed, BondLevel: 5},
			snapshot.SupportCard{Type: snapshot.StatSpeed, BondLevel: 5},
		),
	}

	res := s.Evaluate(options, classicCal(), snapshot.MoodGreat)
	if res.Outcome != OutcomeSelected {
		t.Fatalf("outcome = %s, trail = %v", res.Outcome, res.Trail)
	}
	if !hasTrail(res.Trail, "failure-unknown-optimistic:spd") {
		t.Fatalf("trail = %v, want failure-unknown-optimistic:spd", res.Trail)
	}
}

func TestEvaluateAllUnsafe(t *testing.T) {
	s := NewScorer(policy.DefaultConfig())
	options := []snapshot.TrainingOption{
		option(snapshot.StatSpeed, 50),
		option(snapshot.StatStamina, 60),
	}

	res := s.Evaluate(options, classicCal(), snapshot.MoodGreat)
	if res.Outcome != OutcomeNone {
		t.Fatalf("outcome = %s, want none", res.Outcome)
	}
	if !hasTrail(res.Trail, "all-unsafe") {
		t.Fatalf("trail = %v, want all-unsafe", res.Trail)
	}
}

func TestEvaluateWitSupportFloor(t *testing.T) {
	cfg := policy.DefaultConfig()
	cfg.MinSupport = 1
	s := NewScorer(cfg)

	// One card satisfies min_support for everything except WIT.
	options := []snapshot.TrainingOption{
		option(snapshot.StatWit, 5,
			snapshot.SupportCard{Type: snapshot.StatWit, BondLevel: 5},
		),
		option(snapshot.StatSpeed, 5,
			snapshot.SupportCard{Type: snapshot.StatSpeed, BondLevel: 5},
		),
	}

	res := s.Evaluate(options, classicCal(), snapshot.MoodGreat)
	if res.Outcome != OutcomeSelected {
		t.Fatalf("outcome = %s, trail = %v", res.Outcome, res.Trail)
	}
	if res.Best().Stat != snapshot.StatSpeed {
		t.Fatalf("best = %s, want spd", res.Best().Stat)
	}
	if !hasTrail(res.Trail, "support-filter:wit") {
		t.Fatalf("trail = %v, want support-filter:wit", res.Trail)
	}
}

func TestEvaluateSupportFilterEmptyFallsToRace(t *testing.T) {
	s := NewScorer(policy.DefaultConfig())
	options := []snapshot.TrainingOption{
		option(snapshot.StatSpeed, 5,
			snapshot.SupportCard{Type: snapshot.StatSpeed, BondLevel: 5},
		),
	}

	res := s.Evaluate(options, classicCal(), snapshot.MoodGreat)
	if res.Outcome != OutcomeFallToRace {
		t.Fatalf("outcome = %s, want fall_to_race", res.Outcome)
	}
	if !hasTrail(res.Trail, "support-filter-empty") {
		t.Fatalf("trail = %v, want support-filter-empty", res.Trail)
	}
}

func TestEvaluateSupportFilterSkippedWhenRacingDisabled(t *testing.T) {
	cfg := policy.DefaultConfig()
	cfg.RaceWhenBad = false
	cfg.MinScore = 0
	s := NewScorer(cfg)

	options := []snapshot.TrainingOption{
		option(snapshot.StatSpeed, 5,
			snapshot.SupportCard{Type: snapshot.StatSpeed, BondLevel: 5},
		),
	}

	res := s.Evaluate(options, classicCal(), snapshot.MoodGreat)
	if res.Outcome != OutcomeSelected {
		t.Fatalf("outcome = %s, trail = %v", res.Outcome, res.Trail)
	}
}

func TestEvaluateRecreationWhenNoSupportAndLowMood(t *testing.T) {
	s := NewScorer(policy.DefaultConfig())
	options := []snapshot.TrainingOption{
		option(snapshot.StatSpeed, 5),
		option(snapshot.StatStamina, 5),
	}

	res := s.Evaluate(options, classicCal(), snapshot.MoodBad)
	if res.Outcome != OutcomeGoRecreation {
		t.Fatalf("outcome = %s, want go_recreation", res.Outcome)
	}
	if !hasTrail(res.Trail, "no-support-low-mood") {
		t.Fatalf("trail = %v, want no-support-low-mood", res.Trail)
	}
}

func TestEvaluateJuniorRanksBySupportCount(t *testing.T) {
	s := NewScorer(policy.DefaultConfig())
	// Power has more cards but a lower score than the rainbow speed option.
	options := []snapshot.TrainingOption{
		option(snapshot.StatSpeed, 5,
			snapshot.SupportCard{Type: snapshot.StatSpeed, BondLevel: 5},
			snapshot.SupportCard{Type: snapshot.StatSpeed, BondLevel: 5},
		),
		option(snapshot.StatPower, 5,
			snapshot.SupportCard{Type: snapshot.StatGuts, BondLevel: 1},
			snapshot.SupportCard{Type: snapshot.StatWit, BondLevel: 1},
			snapshot.SupportCard{Type: snapshot.StatSpeed, BondLevel: 5},
		),
	}

	res := s.Evaluate(options, juniorCal(), snapshot.MoodGreat)
	if res.Outcome != OutcomeSelected {
		t.Fatalf("outcome = %s, trail = %v", res.Outcome, res.Trail)
	}
	if res.Best().Stat != snapshot.StatPower {
		t.Fatalf("junior best = %s, want pwr", res.Best().Stat)
	}

	// Same board outside junior year ranks by score instead.
	res = s.Evaluate(options, classicCal(), snapshot.MoodGreat)
	if res.Best().Stat != snapshot.StatSpeed {
		t.Fatalf("classic best = %s, want spd", res.Best().Stat)
	}
}

func TestEvaluateScoreTieBreaksOnPriority(t *testing.T) {
	cfg := policy.DefaultConfig()
	cfg.PriorityStats = []snapshot.Stat{snapshot.StatStamina, snapshot.StatSpeed}
	s := NewScorer(cfg)

	options := []snapshot.TrainingOption{
		option(snapshot.StatSpeed, 5,
			snapshot.SupportCard{Type: snapshot.StatSpeed, BondLevel: 5},
			snapshot.SupportCard{Type: snapshot.StatSpeed, BondLevel: 5},
		),
		option(snapshot.StatStamina, 5,
			snapshot.SupportCard{Type: snapshot.StatStamina, BondLevel: 5},
			snapshot.SupportCard{Type: snapshot.StatStamina, BondLevel: 5},
		),
	}

	res := s.Evaluate(options, classicCal(), snapshot.MoodGreat)
	if res.Best().Stat != snapshot.StatStamina {
		t.Fatalf("best = %s, want sta (priority tie-break)", res.Best().Stat)
	}
}

func TestEvaluateWitScoreThreshold(t *testing.T) {
	cfg := policy.DefaultConfig()
	cfg.MinWitScore = 2.0
	s := NewScorer(cfg)

	options := []snapshot.TrainingOption{
		option(snapshot.StatWit, 5,
			snapshot.SupportCard{Type: snapshot.StatWit, BondLevel: 5},
			snapshot.SupportCard{Type: snapshot.StatPower, BondLevel: 5},
		),
	}

	// Score 1.0 clears min_score but not min_wit_score.
	res := s.Evaluate(options, classicCal(), snapshot.MoodGreat)
	if res.Outcome != OutcomeNone {
		t.Fatalf("outcome = %s, want none", res.Outcome)
	}
	if !hasTrail(res.Trail, "score-filter:wit") {
		t.Fatalf("trail = %v, want score-filter:wit", res.Trail)
	}
	if !hasTrail(res.Trail, "all-below-score") {
		t.Fatalf("trail = %v, want all-below-score", res.Trail)
	}
}
