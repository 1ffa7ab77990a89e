package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/soratane/umapilot/internal/logging"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to umapilot.db")
	last := flag.Int("last", 20, "show N most recent decisions")
	runID := flag.String("run", "", "filter to one run")
	runs := flag.Bool("runs", false, "list runs instead of decisions")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/umapilot.db [--last N] [--run id] [--runs] [--json]")
		os.Exit(2)
	}

	store, err := logging.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *runs {
		err = runListRuns(store, *jsonOut)
	} else {
		err = runListDecisions(store, *runID, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region runs-mode

type runRow struct {
	RunID     string `json:"run_id"`
	Decisions int    `json:"decisions"`
	FirstTurn string `json:"first_turn"`
	LastTurn  string `json:"last_turn"`
}

func runListRuns(store *logging.Store, jsonOut bool) error {
	rows, err := store.DB().Query(
		`SELECT run_id, COUNT(*), MIN(created_at), MAX(created_at)
		 FROM decision_log GROUP BY run_id ORDER BY MIN(created_at) DESC`,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	var out []runRow
	for rows.Next() {
		var r runRow
		if err := rows.Scan(&r.RunID, &r.Decisions, &r.FirstTurn, &r.LastTurn); err != nil {
			return err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(out) == 0 {
		fmt.Fprintln(os.Stderr, "no runs found")
		return nil
	}

	if jsonOut {
		return printJSON(out)
	}
	fmt.Printf("%-36s  %9s  %-24s  %s\n", "Run", "Decisions", "First", "Last")
	for _, r := range out {
		fmt.Printf("%-36s  %9d  %-24s  %s\n", r.RunID, r.Decisions, r.FirstTurn, r.LastTurn)
	}
	return nil
}

// #endregion runs-mode

// #region decisions-mode

type decisionRow struct {
	TurnID    string   `json:"turn_id"`
	Phase     string   `json:"phase"`
	Action    string   `json:"action"`
	Rationale []string `json:"rationale,omitempty"`
	Outcome   string   `json:"outcome,omitempty"`
	CreatedAt string   `json:"created_at"`
}

func runListDecisions(store *logging.Store, runID string, last int, jsonOut bool) error {
	query := `SELECT turn_id, phase, action, rationale_json, outcome, created_at
	          FROM decision_log`
	args := []interface{}{}
	if runID != "" {
		query += ` WHERE run_id = ?`
		args = append(args, runID)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, last)

	rows, err := store.DB().Query(query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	var out []decisionRow
	for rows.Next() {
		var r decisionRow
		var rationale, outcome sql.NullString
		if err := rows.Scan(&r.TurnID, &r.Phase, &r.Action, &rationale, &outcome, &r.CreatedAt); err != nil {
			return err
		}
		if rationale.Valid {
			_ = json.Unmarshal([]byte(rationale.String), &r.Rationale)
		}
		if outcome.Valid {
			r.Outcome = outcome.String
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(out) == 0 {
		fmt.Fprintln(os.Stderr, "no decisions found")
		return nil
	}

	// Query returns DESC, reverse for chronological display.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	if jsonOut {
		return printJSON(out)
	}
	fmt.Printf("%-36s  %-12s  %-14s  %-10s  %s\n", "Turn", "Phase", "Action", "Outcome", "Rationale")
	for _, r := range out {
		fmt.Printf("%-36s  %-12s  %-14s  %-10s  %s\n",
			r.TurnID, r.Phase, r.Action, r.Outcome, strings.Join(r.Rationale, ", "))
	}
	return nil
}

// #endregion decisions-mode

// #region helpers

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// #endregion helpers
