package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soratane/umapilot/internal/snapshot"
)

func TestLoadFixture(t *testing.T) {
	f, err := LoadFixture("testdata/career.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.Description == "" {
		t.Fatal("expected a description")
	}
	if len(f.Turns) != 3 {
		t.Fatalf("turns = %d, want 3", len(f.Turns))
	}
	if len(f.ExpectedResults) != 3 {
		t.Fatalf("expected results = %d, want 3", len(f.ExpectedResults))
	}
	// Unspecified config keys keep their defaults.
	if f.Config.MaxFailure != 15 {
		t.Fatalf("maximum_failure = %d, want default 15", f.Config.MaxFailure)
	}
	if len(f.Config.GoodTerms) != 2 {
		t.Fatalf("good terms = %v", f.Config.GoodTerms)
	}
}

func TestLoadFixtureRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	content := `{"config": {"strategy": "SPRINT"}, "turns": []}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadFixtureMissingFile(t *testing.T) {
	if _, err := LoadFixture("testdata/absent.json"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestToSnapshot(t *testing.T) {
	fs := FixtureSnapshot{
		Phase:         "training",
		Mood:          "GOOD",
		EnergyPercent: 60,
		Year:          "senior",
		Month:         9,
		Training: []FixtureTrainingOption{
			{
				Stat:           "wit",
				CurrentValue:   700,
				FailurePercent: -1,
				Supports:       []FixtureSupportCard{{Type: "wit", BondLevel: 4, HasHint: true}},
			},
		},
		Races: []FixtureRaceCandidate{
			{Name: "Autumn Stakes", Grade: "G2", AptitudeMatch: true},
		},
	}

	snap := fs.ToSnapshot()
	if snap.Phase != snapshot.PhaseTraining || snap.Mood != snapshot.MoodGood {
		t.Fatalf("snap = %+v", snap)
	}
	if snap.Calendar.Year != snapshot.YearSenior || snap.Calendar.Month != 9 {
		t.Fatalf("calendar = %+v", snap.Calendar)
	}
	if snap.Training[0].FailurePercent != snapshot.FailureUnknown {
		t.Fatalf("failure = %d, want FailureUnknown", snap.Training[0].FailurePercent)
	}
	if !snap.Training[0].Supports[0].HasHint {
		t.Fatal("hint lost in conversion")
	}
	if snap.Races[0].Grade != snapshot.GradeG2 {
		t.Fatalf("grade = %s", snap.Races[0].Grade)
	}
}
