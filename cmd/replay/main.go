package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/soratane/umapilot/internal/engine"
	"github.com/soratane/umapilot/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	verbose := flag.Bool("v", false, "print the full rationale trail per turn")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [-v]")
		os.Exit(2)
	}

	os.Exit(runFixture(*fixturePath, *verbose))
}

// #endregion main

// #region fixture-mode

func runFixture(path string, verbose bool) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}

	if f.Description != "" {
		fmt.Printf("fixture: %s\n", f.Description)
	}

	results := replay.Replay(f.Config, f.Turns)

	expected := make(map[string]replay.FixtureExpectedResult, len(f.ExpectedResults))
	for _, e := range f.ExpectedResults {
		expected[e.TurnID] = e
	}

	failures := 0
	for _, r := range results {
		status := "ok"
		detail := describe(r.Decision)

		if e, has := expected[r.TurnID]; has {
			if mismatch := compare(r.Decision, e); mismatch != "" {
				status = "MISMATCH " + mismatch
				failures++
			}
		}

		fmt.Printf("[%s] %-14s %s (%s)\n", r.TurnID, r.Decision.Kind, detail, status)
		if verbose {
			fmt.Printf("    rationale: %s\n", strings.Join(r.Decision.Rationale, ", "))
		}
		for i, retry := range r.Retries {
			fmt.Printf("    retry %d: %s\n", i+1, describe(retry))
		}
		if r.Fatal != nil {
			fmt.Printf("    FATAL: %v\n", r.Fatal)
		}
	}

	s := replay.Summarize(results)
	fmt.Printf("\n%d turns, %d retries", s.TotalTurns, s.Retries)
	for kind, n := range s.ByAction {
		fmt.Printf(", %s=%d", kind, n)
	}
	fmt.Println()

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d expectation(s) failed\n", failures)
		return 1
	}
	return 0
}

func describe(d engine.Decision) string {
	switch d.Kind {
	case engine.ActionTrain:
		return string(d.Stat)
	case engine.ActionRace:
		return fmt.Sprintf("%s (%s)", d.Race.Name, d.RaceStrategy)
	case engine.ActionChooseEvent:
		return fmt.Sprintf("choice %d", d.EventChoice)
	case engine.ActionBuySkills:
		if d.ManualPrompt {
			return "manual prompt"
		}
		return strings.Join(d.SkillNames, ", ")
	case engine.ActionClawMachine:
		return fmt.Sprintf("hold %dms", d.ClawHoldMs)
	default:
		return ""
	}
}

func compare(d engine.Decision, e replay.FixtureExpectedResult) string {
	if string(d.Kind) != e.Action {
		return fmt.Sprintf("want action %s", e.Action)
	}
	if e.Stat != "" && string(d.Stat) != e.Stat {
		return fmt.Sprintf("want stat %s", e.Stat)
	}
	if e.RaceName != "" && d.Race.Name != e.RaceName {
		return fmt.Sprintf("want race %q", e.RaceName)
	}
	if e.Action == string(engine.ActionChooseEvent) && d.EventChoice != e.EventChoice {
		return fmt.Sprintf("want choice %d", e.EventChoice)
	}
	if len(e.SkillNames) > 0 {
		if len(d.SkillNames) != len(e.SkillNames) {
			return fmt.Sprintf("want skills %v", e.SkillNames)
		}
		for i := range e.SkillNames {
			if d.SkillNames[i] != e.SkillNames[i] {
				return fmt.Sprintf("want skills %v", e.SkillNames)
			}
		}
	}
	return ""
}

// #endregion fixture-mode
