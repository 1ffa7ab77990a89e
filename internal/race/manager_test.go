package race

import (
	"testing"

	"github.com/soratane/umapilot/internal/policy"
	"github.com/soratane/umapilot/internal/snapshot"
)

func g1Config() policy.Config {
	cfg := policy.DefaultConfig()
	cfg.PrioritizeG1 = true
	return cfg
}

func cal(month int) snapshot.Calendar {
	return snapshot.Calendar{Year: snapshot.YearClassic, Month: month}
}

func TestPickG1FirstEligibleInDeclaredOrder(t *testing.T) {
	m := NewManager(g1Config())
	races := []snapshot.RaceCandidate{
		{Name: "Open Stakes", Grade: snapshot.GradeOther, AptitudeMatch: true},
		{Name: "Satsuki Sho", Grade: snapshot.GradeG1, AptitudeMatch: true},
		{Name: "Japanese Derby", Grade: snapshot.GradeG1, AptitudeMatch: true},
	}

	pick, ok := m.PickG1(cal(4), races)
	if !ok {
		t.Fatal("expected a G1 pick")
	}
	if pick.Candidate.Name != "Satsuki Sho" {
		t.Fatalf("pick = %s, want Satsuki Sho", pick.Candidate.Name)
	}
	if pick.Strategy != policy.StrategyPace {
		t.Fatalf("strategy = %s, want PACE", pick.Strategy)
	}
}

func TestPickG1SkipsTrophiedAndMismatched(t *testing.T) {
	m := NewManager(g1Config())
	races := []snapshot.RaceCandidate{
		{Name: "Won Already", Grade: snapshot.GradeG1, AptitudeMatch: true, Trophied: true},
		{Name: "Wrong Surface", Grade: snapshot.GradeG1, AptitudeMatch: false},
		{Name: "Arima Kinen", Grade: snapshot.GradeG1, AptitudeMatch: true},
	}

	pick, ok := m.PickG1(cal(12), races)
	if !ok {
		t.Fatal("expected a G1 pick")
	}
	if pick.Candidate.Name != "Arima Kinen" {
		t.Fatalf("pick = %s, want Arima Kinen", pick.Candidate.Name)
	}
}

func TestPickG1DisabledByConfig(t *testing.T) {
	m := NewManager(policy.DefaultConfig())
	races := []snapshot.RaceCandidate{
		{Name: "Satsuki Sho", Grade: snapshot.GradeG1, AptitudeMatch: true},
	}

	if _, ok := m.PickG1(cal(4), races); ok {
		t.Fatal("override should be off when prioritize_g1_race is false")
	}
}

func TestPickG1SuppressedInSummer(t *testing.T) {
	m := NewManager(g1Config())
	races := []snapshot.RaceCandidate{
		{Name: "Satsuki Sho", Grade: snapshot.GradeG1, AptitudeMatch: true},
	}

	for _, month := range []int{7, 8} {
		if _, ok := m.PickG1(cal(month), races); ok {
			t.Fatalf("override should be off in month %d", month)
		}
	}
	if _, ok := m.PickG1(cal(6), races); !ok {
		t.Fatal("override should apply in June")
	}
}

func TestPickGoalRacesWhileGoalUnmet(t *testing.T) {
	m := NewManager(policy.DefaultConfig())
	goal := snapshot.Goal{RequiresRacing: true}
	races := []snapshot.RaceCandidate{
		{Name: "Local Open", Grade: snapshot.GradeOther, AptitudeMatch: true},
		{Name: "Spring Cup", Grade: snapshot.GradeG2, AptitudeMatch: true},
	}

	pick, ok := m.PickGoal(cal(4), goal, races)
	if !ok {
		t.Fatal("expected a goal pick")
	}
	if pick.Candidate.Name != "Spring Cup" {
		t.Fatalf("pick = %s, want Spring Cup", pick.Candidate.Name)
	}
	if pick.Trail[0] != "goal-race" {
		t.Fatalf("trail = %v, want goal-race first", pick.Trail)
	}
}

func TestPickGoalInertOnceMet(t *testing.T) {
	m := NewManager(policy.DefaultConfig())
	races := []snapshot.RaceCandidate{
		{Name: "Spring Cup", Grade: snapshot.GradeG2, AptitudeMatch: true},
	}

	goal := snapshot.Goal{RequiresRacing: true, Met: true}
	if _, ok := m.PickGoal(cal(4), goal, races); ok {
		t.Fatal("met goal should not force racing")
	}
	if _, ok := m.PickGoal(cal(4), snapshot.Goal{}, races); ok {
		t.Fatal("non-racing goal should not force racing")
	}
}

func TestPickGoalSuppressedInSummer(t *testing.T) {
	m := NewManager(policy.DefaultConfig())
	goal := snapshot.Goal{RequiresRacing: true}
	races := []snapshot.RaceCandidate{
		{Name: "Summer Sprint", Grade: snapshot.GradeG3, AptitudeMatch: true},
	}

	if _, ok := m.PickGoal(cal(8), goal, races); ok {
		t.Fatal("goal racing should be off in August")
	}
}

func TestPickGoalNoEligibleCandidate(t *testing.T) {
	m := NewManager(policy.DefaultConfig())
	goal := snapshot.Goal{RequiresRacing: true}
	races := []snapshot.RaceCandidate{
		{Name: "Won Already", Grade: snapshot.GradeG2, AptitudeMatch: true, Trophied: true},
	}

	if _, ok := m.PickGoal(cal(4), goal, races); ok {
		t.Fatal("no eligible candidate, expected no pick")
	}
}

func TestPickFallbackHighestGradeWins(t *testing.T) {
	m := NewManager(policy.DefaultConfig())
	races := []snapshot.RaceCandidate{
		{Name: "Local Open", Grade: snapshot.GradeOther, AptitudeMatch: true},
		{Name: "Spring Cup", Grade: snapshot.GradeG2, AptitudeMatch: true},
		{Name: "Autumn Trial", Grade: snapshot.GradeG3, AptitudeMatch: true},
	}

	pick, ok := m.PickFallback(cal(4), races)
	if !ok {
		t.Fatal("expected a fallback pick")
	}
	if pick.Candidate.Name != "Spring Cup" {
		t.Fatalf("pick = %s, want Spring Cup", pick.Candidate.Name)
	}
}

func TestPickFallbackGradeTieKeepsDeclaredOrder(t *testing.T) {
	m := NewManager(policy.DefaultConfig())
	races := []snapshot.RaceCandidate{
		{Name: "First G3", Grade: snapshot.GradeG3, AptitudeMatch: true},
		{Name: "Second G3", Grade: snapshot.GradeG3, AptitudeMatch: true},
	}

	pick, ok := m.PickFallback(cal(4), races)
	if !ok {
		t.Fatal("expected a fallback pick")
	}
	if pick.Candidate.Name != "First G3" {
		t.Fatalf("pick = %s, want First G3", pick.Candidate.Name)
	}
}

func TestPickFallbackRequiresAptitudeAndNoTrophy(t *testing.T) {
	m := NewManager(policy.DefaultConfig())
	races := []snapshot.RaceCandidate{
		{Name: "Wrong Surface", Grade: snapshot.GradeG1, AptitudeMatch: false},
		{Name: "Won Already", Grade: snapshot.GradeG2, AptitudeMatch: true, Trophied: true},
	}

	if _, ok := m.PickFallback(cal(4), races); ok {
		t.Fatal("no eligible candidate, expected no pick")
	}
}

func TestPickFallbackSuppressedInSummer(t *testing.T) {
	m := NewManager(policy.DefaultConfig())
	races := []snapshot.RaceCandidate{
		{Name: "Summer Sprint", Grade: snapshot.GradeG3, AptitudeMatch: true},
	}

	if _, ok := m.PickFallback(cal(7), races); ok {
		t.Fatal("fallback should be off in July")
	}
}

func TestPickFallbackDisabledWhenRaceWhenBadOff(t *testing.T) {
	cfg := policy.DefaultConfig()
	cfg.RaceWhenBad = false
	m := NewManager(cfg)
	races := []snapshot.RaceCandidate{
		{Name: "Spring Cup", Grade: snapshot.GradeG2, AptitudeMatch: true},
	}

	if _, ok := m.PickFallback(cal(4), races); ok {
		t.Fatal("fallback should be off when do_race_when_bad_training is false")
	}
}
