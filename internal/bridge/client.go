// Package bridge wraps the gRPC link to the device-side perception and
// input process. The controller never touches pixels or taps directly;
// everything crosses this boundary as structured messages.
package bridge

import (
	"context"
	"fmt"

	pb "github.com/soratane/umapilot/gen/trainerpb"
	"github.com/soratane/umapilot/internal/engine"
	"github.com/soratane/umapilot/internal/snapshot"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region errors

// RecognitionError reports that the perception side could not read a field
// it needs to build a usable snapshot. The turn should fall back rather
// than act on garbage.
type RecognitionError struct {
	Field string
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("recognition failed: %s unreadable", e.Field)
}

// #endregion

// #region client-struct

// Client wraps the gRPC connection to the trainer device service.
type Client struct {
	conn   *grpc.ClientConn
	client pb.TrainerClient
}

// #endregion

// #region constructor

// NewClient connects to the device-side trainer gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewTrainerClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service implementation.
// Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.TrainerClient) *Client {
	return &Client{client: svc}
}

// #endregion

// #region close

// Close shuts down the gRPC connection. A client built around an injected
// service has no connection to close.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion

// #region capture

// CaptureSnapshot asks the device to read the current screen into a
// structured snapshot. A populated missing_field in the reply becomes a
// RecognitionError.
func (c *Client) CaptureSnapshot(ctx context.Context) (snapshot.Snapshot, error) {
	resp, err := c.client.CaptureSnapshot(ctx, &pb.CaptureRequest{})
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("capture rpc: %w", err)
	}
	if resp.MissingField != "" {
		return snapshot.Snapshot{}, &RecognitionError{Field: resp.MissingField}
	}
	if resp.Snapshot == nil {
		return snapshot.Snapshot{}, &RecognitionError{Field: "snapshot"}
	}
	return fromProto(resp.Snapshot), nil
}

func fromProto(s *pb.Snapshot) snapshot.Snapshot {
	out := snapshot.Snapshot{
		Phase:         snapshot.Phase(s.Phase),
		Mood:          snapshot.Mood(s.Mood),
		EnergyPercent: int(s.EnergyPercent),
		Calendar: snapshot.Calendar{
			Year:  snapshot.Year(s.Year),
			Month: int(s.Month),
		},
		SkillPoints: int(s.SkillPoints),
		Debuffed:    s.Debuffed,
		Goal: snapshot.Goal{
			RequiresRacing: s.GoalRequiresRacing,
			Met:            s.GoalMet,
		},
	}

	out.Training = make([]snapshot.TrainingOption, len(s.Training))
	for i, t := range s.Training {
		supports := make([]snapshot.SupportCard, len(t.Supports))
		for j, sc := range t.Supports {
			supports[j] = snapshot.SupportCard{
				Type:      snapshot.Stat(sc.Type),
				BondLevel: int(sc.BondLevel),
				HasHint:   sc.HasHint,
			}
		}
		out.Training[i] = snapshot.TrainingOption{
			Stat:           snapshot.Stat(t.Stat),
			CurrentValue:   int(t.CurrentValue),
			FailurePercent: int(t.FailurePercent),
			Supports:       supports,
		}
	}

	out.Races = make([]snapshot.RaceCandidate, len(s.Races))
	for i, r := range s.Races {
		out.Races[i] = snapshot.RaceCandidate{
			Name:          r.Name,
			Grade:         snapshot.RaceGrade(r.Grade),
			AptitudeMatch: r.AptitudeMatch,
			Trophied:      r.Trophied,
			Month:         int(r.Month),
		}
	}

	out.EventChoices = make([]snapshot.EventChoice, len(s.EventChoices))
	for i, e := range s.EventChoices {
		out.EventChoices[i] = snapshot.EventChoice{
			Position: int(e.Position),
			Outcomes: e.Outcomes,
		}
	}

	out.Skills = make([]snapshot.SkillCandidate, len(s.Skills))
	for i, sk := range s.Skills {
		out.Skills[i] = snapshot.SkillCandidate{
			Name: sk.Name,
			Cost: int(sk.Cost),
			Gold: sk.Gold,
		}
	}

	return out
}

// #endregion

// #region execute

// Execute sends one decision to the device for execution and returns the
// reported outcome.
func (c *Client) Execute(ctx context.Context, d engine.Decision) (engine.Outcome, error) {
	resp, err := c.client.Execute(ctx, toProto(d))
	if err != nil {
		return "", fmt.Errorf("execute rpc: %w", err)
	}
	return engine.Outcome(resp.Outcome), nil
}

func toProto(d engine.Decision) *pb.ExecuteRequest {
	return &pb.ExecuteRequest{
		Kind:         string(d.Kind),
		Stat:         string(d.Stat),
		RaceName:     d.Race.Name,
		RaceStrategy: string(d.RaceStrategy),
		EventChoice:  int32(d.EventChoice),
		SkillNames:   d.SkillNames,
		ClawHoldMs:   int32(d.ClawHoldMs),
		ManualPrompt: d.ManualPrompt,
	}
}

// #endregion
