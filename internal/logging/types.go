package logging

import "time"

// #region decision-entry
// DecisionEntry is a single row in the decision_log table.
type DecisionEntry struct {
	RunID         string
	TurnID        string
	Phase         string
	Action        string
	RationaleJSON string
	SnapshotJSON  string
	Outcome       string
	CreatedAt     time.Time
}
// #endregion decision-entry

// #region turn-record
// TurnRecord summarizes the snapshot that fed one decision.
// Serialized as JSON into decision_log.snapshot_json so a run can be
// audited without the raw captures.
type TurnRecord struct {
	Phase         string `json:"phase"`
	Mood          string `json:"mood"`
	EnergyPercent int    `json:"energy_percent"`
	Year          string `json:"year"`
	Month         int    `json:"month"`
	TrainingCount int    `json:"training_count"`
	RaceCount     int    `json:"race_count"`
	SkillPoints   int    `json:"skill_points"`
}
// #endregion turn-record
