package skills

// #region imports
import (
	"fmt"
	"strings"

	"github.com/soratane/umapilot/internal/policy"
	"github.com/soratane/umapilot/internal/snapshot"
)

// #endregion

// #region plan

// Plan is the planner output for one cap check.
type Plan struct {
	// ManualPrompt is set instead of Purchases when skill_purchase is
	// manual; the operator decides at the shop screen.
	ManualPrompt bool
	Purchases    []snapshot.SkillCandidate
	TotalCost    int
	Trail        []string
}

// Names returns the purchase list as plain skill names, in buy order.
func (p Plan) Names() []string {
	names := make([]string, len(p.Purchases))
	for i, s := range p.Purchases {
		names[i] = s.Name
	}
	return names
}

// #endregion

// #region planner

// Planner builds greedy purchase plans from the configured priority list.
type Planner struct {
	cfg policy.Config
}

// NewPlanner creates a planner bound to the given policy.
func NewPlanner(cfg policy.Config) *Planner {
	return &Planner{cfg: cfg}
}

// Triggered reports whether the balance has reached the configured cap.
func (p *Planner) Triggered(balance int) bool {
	return p.cfg.SkillCheck && balance >= p.cfg.SkillPointCap
}

// #endregion

// #region build

// Build walks skill_priority in order. For each name the gold upgrade is
// preferred when it is on offer and affordable, else the base skill when
// affordable. Entries with nothing affordable are skipped, not retried,
// within one evaluation.
func (p *Planner) Build(balance int, offered []snapshot.SkillCandidate) Plan {
	if p.cfg.SkillPurchase == policy.PurchaseManual {
		return Plan{ManualPrompt: true, Trail: []string{"skill-manual-prompt"}}
	}

	byName := make(map[string]snapshot.SkillCandidate, len(offered))
	for _, s := range offered {
		byName[normalize(s.Name)] = s
	}

	plan := Plan{Trail: []string{"skill-auto-plan"}}
	remaining := balance
	for _, name := range p.cfg.SkillPriority {
		candidates := p.lookup(name, byName)
		if len(candidates) == 0 {
			continue
		}
		bought := false
		for _, pick := range candidates {
			if pick.Cost > remaining {
				continue
			}
			plan.Purchases = append(plan.Purchases, pick)
			plan.TotalCost += pick.Cost
			remaining -= pick.Cost
			plan.Trail = append(plan.Trail, fmt.Sprintf("skill-buy:%s", pick.Name))
			bought = true
			break
		}
		if !bought {
			plan.Trail = append(plan.Trail, fmt.Sprintf("skill-skip-unaffordable:%s", candidates[0].Name))
		}
	}
	return plan
}

// lookup resolves a priority entry to its offered candidates in preference
// order: the gold variant named by gold_skill_upgrades first, then the base
// skill. The priority list may name either the gold skill (key) or the base
// skill (value's owner).
func (p *Planner) lookup(name string, byName map[string]snapshot.SkillCandidate) []snapshot.SkillCandidate {
	var gold, base string
	if b, isGold := p.cfg.GoldUpgrades[name]; isGold {
		gold, base = name, b
	} else {
		base = name
		for g, b := range p.cfg.GoldUpgrades {
			if b == name {
				gold = g
				break
			}
		}
	}

	var out []snapshot.SkillCandidate
	if gold != "" {
		if s, ok := byName[normalize(gold)]; ok {
			out = append(out, s)
		}
	}
	if s, ok := byName[normalize(base)]; ok {
		out = append(out, s)
	}
	return out
}

// #endregion

// #region helpers

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// #endregion
