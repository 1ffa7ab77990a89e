package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/soratane/umapilot/internal/bridge"
	"github.com/soratane/umapilot/internal/engine"
	"github.com/soratane/umapilot/internal/logging"
	"github.com/soratane/umapilot/internal/policy"
	"github.com/soratane/umapilot/internal/snapshot"
)

// #region main
func main() {
	configPath := flag.String("config", envOr("UMAPILOT_CONFIG", "config.json"), "path to policy config JSON")
	dbPath := flag.String("db", envOr("UMAPILOT_DB", "umapilot.db"), "path to decision log database")
	grpcAddr := flag.String("addr", envOr("TRAINER_ADDR", "localhost:50051"), "trainer device gRPC address")
	interval := flag.Duration("interval", 2*time.Second, "pause between turns")
	flag.Parse()

	cfg, err := policy.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config %s: %v", *configPath, err)
	}

	store, err := logging.NewStore(*dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	client, err := bridge.NewClient(*grpcAddr)
	if err != nil {
		log.Fatalf("failed to connect to trainer service at %s: %v", *grpcAddr, err)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runID := uuid.NewString()
	fmt.Println("umapilot controller ready.")
	fmt.Printf("  Config: %s | DB: %s | Trainer: %s | Run: %s\n", *configPath, *dbPath, *grpcAddr, runID)

	if err := run(ctx, cfg, client, store, runID, *interval); err != nil {
		log.Fatalf("run ended: %v", err)
	}
	fmt.Println("controller stopped.")
}

// #endregion main

// #region run-loop

// run drives the observe/decide/execute loop until cancellation or a fatal
// error. One snapshot in, one action out, every turn.
func run(ctx context.Context, cfg policy.Config, client *bridge.Client, store *logging.Store, runID string, interval time.Duration) error {
	eng := engine.New(cfg)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		turnID := uuid.NewString()

		snap, err := capture(ctx, client, cfg.MaxCaptures)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Printf("[LOOP] capture failed after retries: %v, resting", err)
			snap = snapshot.Snapshot{Phase: snapshot.PhaseUnknown}
		}

		var d engine.Decision
		if snap.Phase == snapshot.PhaseUnknown {
			d = eng.RestFallback()
		} else {
			d = eng.Decide(snap)
		}

		oc, err := execute(ctx, client, d)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("execute: %w", err)
		}
		logTurn(store, runID, turnID, snap, d, oc)

		// A failed race may come back as a retry decision; re-issue until
		// the engine stops handing them out.
		for {
			retry, err := eng.RecordOutcome(d, oc)
			if err != nil {
				if errors.Is(err, engine.ErrRetryExhausted) {
					return err
				}
				return fmt.Errorf("record outcome: %w", err)
			}
			if retry == nil {
				break
			}
			d = *retry
			oc, err = execute(ctx, client, d)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("execute retry: %w", err)
			}
			logTurn(store, runID, turnID, snap, d, oc)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
	}
}

// capture asks the device for a snapshot, retrying recognition failures up
// to maxRetries times before giving up.
func capture(ctx context.Context, client *bridge.Client, maxRetries int) (snapshot.Snapshot, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		snap, err := client.CaptureSnapshot(callCtx)
		cancel()
		if err == nil {
			return snap, nil
		}
		lastErr = err
		var recErr *bridge.RecognitionError
		if !errors.As(err, &recErr) {
			return snapshot.Snapshot{}, err
		}
		log.Printf("[LOOP] capture attempt %d/%d: %v", attempt+1, maxRetries+1, err)
	}
	return snapshot.Snapshot{}, lastErr
}

func execute(ctx context.Context, client *bridge.Client, d engine.Decision) (engine.Outcome, error) {
	callCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()
	return client.Execute(callCtx, d)
}

// #endregion run-loop

// #region logging

func logTurn(store *logging.Store, runID, turnID string, snap snapshot.Snapshot, d engine.Decision, oc engine.Outcome) {
	rationaleJSON, _ := json.Marshal(d.Rationale)
	snapJSON, _ := json.Marshal(logging.TurnRecord{
		Phase:         string(snap.Phase),
		Mood:          string(snap.Mood),
		EnergyPercent: snap.EnergyPercent,
		Year:          string(snap.Calendar.Year),
		Month:         snap.Calendar.Month,
		TrainingCount: len(snap.Training),
		RaceCount:     len(snap.Races),
		SkillPoints:   snap.SkillPoints,
	})
	err := store.LogDecision(logging.DecisionEntry{
		RunID:         runID,
		TurnID:        turnID,
		Phase:         string(snap.Phase),
		Action:        string(d.Kind),
		RationaleJSON: string(rationaleJSON),
		SnapshotJSON:  string(snapJSON),
		Outcome:       string(oc),
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		log.Printf("logging error: %v", err)
	}
}

// #endregion logging

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
