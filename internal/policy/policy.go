package policy

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/soratane/umapilot/internal/snapshot"
)

// #endregion

// #region race-strategy

// RaceStrategy is the running style forced before every race.
type RaceStrategy string

const (
	StrategyFront RaceStrategy = "FRONT"
	StrategyPace  RaceStrategy = "PACE"
	StrategyLate  RaceStrategy = "LATE"
	StrategyEnd   RaceStrategy = "END"
)

// #endregion

// #region purchase-mode

// PurchaseMode selects automatic or operator-driven skill buying.
type PurchaseMode string

const (
	PurchaseAuto   PurchaseMode = "auto"
	PurchaseManual PurchaseMode = "manual"
)

// #endregion

// #region scoring

// ScoringWeights are the per-card point values used by the training scorer.
// They mirror the original scoring_rules table and are overridable from the
// config file.
type ScoringWeights struct {
	Rainbow  float64 `json:"rainbow_support"`
	LowBond  float64 `json:"not_rainbow_support_low"`
	HighBond float64 `json:"not_rainbow_support_high"`
	Hint     float64 `json:"hint"`
}

// DefaultScoringWeights returns the built-in point table.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Rainbow:  1.0,
		LowBond:  0.7,
		HighBond: 0.0,
		Hint:     0.3,
	}
}

// #endregion

// #region config

// Config is the full user policy. Loaded once per run, read-only after.
type Config struct {
	PriorityStats []snapshot.Stat           `json:"priority_stat"`
	MinimumMood   snapshot.Mood             `json:"minimum_mood"`
	MaxFailure    int                       `json:"maximum_failure"`
	MinEnergy     int                       `json:"min_energy"`
	MinScore      float64                   `json:"min_score"`
	MinWitScore   float64                   `json:"min_wit_score"`
	StatCaps      map[snapshot.Stat]int     `json:"stat_caps"`
	MinSupport    int                       `json:"min_support"`
	RaceWhenBad   bool                      `json:"do_race_when_bad_training"`
	PrioritizeG1  bool                      `json:"prioritize_g1_race"`
	RaceStrategy  RaceStrategy              `json:"strategy"`
	RetryRace     bool                      `json:"retry_race"`
	MaxRetries    int                       `json:"max_race_retries"`
	MaxCaptures   int                       `json:"max_capture_retries"`
	SkillCheck    bool                      `json:"enable_skill_point_check"`
	SkillPointCap int                       `json:"skill_point_cap"`
	SkillPurchase PurchaseMode              `json:"skill_purchase"`
	GoodTerms     []string                  `json:"good_choices"`
	BadTerms      []string                  `json:"bad_choices"`
	SkillPriority []string                  `json:"skill_priority"`
	GoldUpgrades  map[string]string         `json:"gold_skill_upgrades"`
	Scoring       ScoringWeights            `json:"scoring_rules"`
}

// witMinSupport is the hard floor on support cards for WIT training,
// applied regardless of min_support.
const witMinSupport = 2

// WitMinSupport returns the non-configurable WIT support floor.
func WitMinSupport() int { return witMinSupport }

// DefaultConfig returns the documented defaults for every optional field.
func DefaultConfig() Config {
	return Config{
		PriorityStats: []snapshot.Stat{
			snapshot.StatSpeed, snapshot.StatStamina, snapshot.StatWit,
			snapshot.StatPower, snapshot.StatGuts,
		},
		MinimumMood:   snapshot.MoodGood,
		MaxFailure:    15,
		MinEnergy:     30,
		MinScore:      1.0,
		MinWitScore:   1.0,
		StatCaps:      map[snapshot.Stat]int{},
		MinSupport:    2,
		RaceWhenBad:   true,
		PrioritizeG1:  false,
		RaceStrategy:  StrategyPace,
		RetryRace:     true,
		MaxRetries:    3,
		MaxCaptures:   3,
		SkillCheck:    true,
		SkillPointCap: 9999,
		SkillPurchase: PurchaseManual,
		GoldUpgrades:  map[string]string{},
		Scoring:       DefaultScoringWeights(),
	}
}

// #endregion

// #region priority

// defaultCap applies where stat_caps omits a stat.
const defaultCap = 1200

// Cap returns the configured ceiling for a stat, defaulting to 1200.
func (c Config) Cap(stat snapshot.Stat) int {
	if v, ok := c.StatCaps[stat]; ok {
		return v
	}
	return defaultCap
}

// StatPriority returns the rank of a stat in priority_stat; stats not
// listed sort after all listed ones, in the fixed AllStats order.
func (c Config) StatPriority(stat snapshot.Stat) int {
	for i, s := range c.PriorityStats {
		if s == stat {
			return i
		}
	}
	for i, s := range snapshot.AllStats {
		if s == stat {
			return len(c.PriorityStats) + i
		}
	}
	return len(c.PriorityStats) + len(snapshot.AllStats)
}

// #endregion

// #region validate

// Validate rejects contradictory or out-of-range policy values. A failure
// here is fatal at load time and never reaches the engine.
func (c Config) Validate() error {
	seen := map[snapshot.Stat]bool{}
	for _, s := range c.PriorityStats {
		if !validStat(s) {
			return fmt.Errorf("policy: unknown stat %q in priority_stat", s)
		}
		if seen[s] {
			return fmt.Errorf("policy: duplicate stat %q in priority_stat", s)
		}
		seen[s] = true
	}
	for s := range c.StatCaps {
		if !validStat(s) {
			return fmt.Errorf("policy: unknown stat %q in stat_caps", s)
		}
	}
	if !c.MinimumMood.Known() && c.MinimumMood != snapshot.MoodAwful {
		return fmt.Errorf("policy: unknown minimum_mood %q", c.MinimumMood)
	}
	if c.MaxFailure < 0 || c.MaxFailure > 100 {
		return fmt.Errorf("policy: maximum_failure %d out of range 0-100", c.MaxFailure)
	}
	if c.MinEnergy < 0 || c.MinEnergy > 100 {
		return fmt.Errorf("policy: min_energy %d out of range 0-100", c.MinEnergy)
	}
	if c.MinSupport < 0 {
		return fmt.Errorf("policy: min_support %d negative", c.MinSupport)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("policy: max_race_retries %d negative", c.MaxRetries)
	}
	switch c.RaceStrategy {
	case StrategyFront, StrategyPace, StrategyLate, StrategyEnd:
	default:
		return fmt.Errorf("policy: unknown strategy %q", c.RaceStrategy)
	}
	switch c.SkillPurchase {
	case PurchaseAuto, PurchaseManual:
	default:
		return fmt.Errorf("policy: unknown skill_purchase %q", c.SkillPurchase)
	}
	for gold, base := range c.GoldUpgrades {
		if gold == "" || base == "" {
			return fmt.Errorf("policy: empty name in gold_skill_upgrades")
		}
	}
	return nil
}

func validStat(s snapshot.Stat) bool {
	for _, known := range snapshot.AllStats {
		if s == known {
			return true
		}
	}
	return false
}

// #endregion

// #region load

// Load reads a JSON config file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("policy: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("policy: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// #endregion
