package logging

import (
	"path/filepath"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLogDecisionRoundTrip(t *testing.T) {
	store := testStore(t)

	entry := DecisionEntry{
		RunID:         "run-1",
		TurnID:        "turn-1",
		Phase:         "training",
		Action:        "train",
		RationaleJSON: `["train:spd"]`,
		SnapshotJSON:  `{"phase":"training"}`,
		Outcome:       "succeeded",
		CreatedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := store.LogDecision(entry); err != nil {
		t.Fatalf("log: %v", err)
	}

	var runID, action, outcome string
	err := store.DB().QueryRow(
		`SELECT run_id, action, outcome FROM decision_log WHERE turn_id = ?`, "turn-1",
	).Scan(&runID, &action, &outcome)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if runID != "run-1" || action != "train" || outcome != "succeeded" {
		t.Fatalf("got %s/%s/%s", runID, action, outcome)
	}
}

func TestLogDecisionDefaultsCreatedAt(t *testing.T) {
	store := testStore(t)

	if err := store.LogDecision(DecisionEntry{
		RunID:  "run-1",
		TurnID: "turn-2",
		Phase:  "race_day",
		Action: "race",
	}); err != nil {
		t.Fatalf("log: %v", err)
	}

	var createdAt string
	err := store.DB().QueryRow(
		`SELECT created_at FROM decision_log WHERE turn_id = ?`, "turn-2",
	).Scan(&createdAt)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if createdAt == "" {
		t.Fatal("created_at should be filled in")
	}
	if _, err := time.Parse(time.RFC3339Nano, createdAt); err != nil {
		t.Fatalf("created_at %q not RFC3339Nano: %v", createdAt, err)
	}
}

func TestLogDecisionNullsEmptyOptionalFields(t *testing.T) {
	store := testStore(t)

	if err := store.LogDecision(DecisionEntry{
		RunID:  "run-1",
		TurnID: "turn-3",
		Phase:  "training",
		Action: "rest",
	}); err != nil {
		t.Fatalf("log: %v", err)
	}

	var count int
	err := store.DB().QueryRow(
		`SELECT COUNT(*) FROM decision_log
		 WHERE turn_id = ? AND rationale_json IS NULL AND outcome IS NULL`, "turn-3",
	).Scan(&count)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1 row with NULL optionals", count)
	}
}
