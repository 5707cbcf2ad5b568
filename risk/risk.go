// CLAUDE:SUMMARY Weighted clause-risk aggregation — duplicate collapse, missing-clause penalty, labeled overall score.
// Package risk aggregates per-clause classification records into a single
// contract-level risk score with a diagnostic breakdown.
//
// The model is a linear weighted average over clause types: each type's
// fixed business-impact weight is counted once, its effective risk score is
// the maximum seen among duplicate clauses of that type, and every
// high-weight type absent from the input contributes a synthetic
// medium-risk penalty at half weight — absence of an important clause is
// itself evidence of exposure. Deterministic: identical input yields an
// identical result.
//
// Usage:
//
//	sc := risk.New(risk.Config{})
//	res := sc.Score(clauses)
//	fmt.Println(res.OverallScore, res.RiskLabel)
package risk

import (
	"log/slog"
	"math"
	"sort"
)

// Level is a qualitative severity bucket assigned per clause upstream.
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

// Clause is one classification record produced by the upstream clause
// extraction step. Consumed, not owned.
type Clause struct {
	ClauseType      string `json:"clause_type"`
	RiskLevel       Level  `json:"risk_level"`
	RiskExplanation string `json:"risk_explanation"`
}

// BreakdownEntry is the per-clause-type contribution to the overall score.
type BreakdownEntry struct {
	ClauseType    string  `json:"clause_type"`
	Weight        float64 `json:"weight"`
	RiskLevel     Level   `json:"risk_level"`
	RiskScore     float64 `json:"risk_score"`
	WeightedScore float64 `json:"weighted_score"`
	Explanation   string  `json:"explanation"`
}

// Result is the aggregate risk analysis. Recomputed on every call, never
// persisted by this package.
type Result struct {
	OverallScore             int              `json:"overall_score"`
	RiskLabel                Level            `json:"risk_label"`
	Breakdown                []BreakdownEntry `json:"breakdown"`
	MissingHighWeightClauses []string         `json:"missing_high_weight_clauses"`
}

// Config configures a Scorer.
type Config struct {
	// Tables holds the weight and score lookup data. Zero value means
	// DefaultTables().
	Tables Tables `json:"tables" yaml:"tables"`

	// Logger for debug messages.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	c.Tables.defaults()
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Scorer computes contract risk scores from clause records. Stateless per
// call; safe for concurrent use.
type Scorer struct {
	cfg Config
}

// New creates a Scorer with the given configuration.
func New(cfg Config) *Scorer {
	cfg.defaults()
	return &Scorer{cfg: cfg}
}

type accumulated struct {
	weight      float64
	riskLevel   Level
	riskScore   float64
	explanation string
	synthetic   bool
}

// Score aggregates clauses into a contract risk result. Empty input yields
// score 0, label low, empty breakdown — not an error.
func (s *Scorer) Score(clauses []Clause) Result {
	t := s.cfg.Tables

	if len(clauses) == 0 {
		return Result{OverallScore: 0, RiskLabel: LevelLow}
	}

	// Collapse duplicates: weight counted once per type, max score wins.
	byType := make(map[string]*accumulated)
	var order []string
	for _, cl := range clauses {
		score := t.levelScore(cl.RiskLevel)
		acc, ok := byType[cl.ClauseType]
		if !ok {
			byType[cl.ClauseType] = &accumulated{
				weight:      t.clauseWeight(cl.ClauseType),
				riskLevel:   cl.RiskLevel,
				riskScore:   score,
				explanation: cl.RiskExplanation,
			}
			order = append(order, cl.ClauseType)
			continue
		}
		if score > acc.riskScore {
			acc.riskScore = score
			acc.riskLevel = cl.RiskLevel
			acc.explanation = cl.RiskExplanation
		}
	}

	// Penalize absent high-weight clause types at half weight, medium risk.
	var missing []string
	for _, clauseType := range t.highWeightTypes() {
		if _, ok := byType[clauseType]; ok {
			continue
		}
		missing = append(missing, clauseType)
		byType[clauseType] = &accumulated{
			weight:      t.ClauseWeights[clauseType] / 2,
			riskLevel:   LevelMedium,
			riskScore:   t.MissingClauseScore,
			explanation: "No " + clauseType + " clause found; absence of a high-impact clause is treated as exposure.",
			synthetic:   true,
		}
		order = append(order, clauseType)
	}

	var totalWeight, totalWeighted float64
	breakdown := make([]BreakdownEntry, 0, len(order))
	for _, clauseType := range order {
		acc := byType[clauseType]
		weighted := acc.weight * acc.riskScore / 100
		totalWeight += acc.weight
		totalWeighted += weighted
		breakdown = append(breakdown, BreakdownEntry{
			ClauseType:    clauseType,
			Weight:        acc.weight,
			RiskLevel:     acc.riskLevel,
			RiskScore:     acc.riskScore,
			WeightedScore: weighted,
			Explanation:   acc.explanation,
		})
	}

	// Dominant risk drivers first; type name breaks ties so repeated calls
	// stay byte-for-byte identical.
	sort.SliceStable(breakdown, func(i, j int) bool {
		if breakdown[i].WeightedScore != breakdown[j].WeightedScore {
			return breakdown[i].WeightedScore > breakdown[j].WeightedScore
		}
		return breakdown[i].ClauseType < breakdown[j].ClauseType
	})

	var overall int
	if totalWeight > 0 {
		overall = int(math.Round(clamp(100*totalWeighted/totalWeight, 0, 100)))
	}

	s.cfg.Logger.Debug("risk score computed",
		"clauses", len(clauses), "types", len(breakdown),
		"missing_high_weight", len(missing), "overall", overall)

	return Result{
		OverallScore:             overall,
		RiskLabel:                labelFor(overall),
		Breakdown:                breakdown,
		MissingHighWeightClauses: missing,
	}
}

// labelFor maps an overall score to its qualitative label.
func labelFor(score int) Level {
	switch {
	case score >= 75:
		return LevelCritical
	case score >= 50:
		return LevelHigh
	case score >= 25:
		return LevelMedium
	default:
		return LevelLow
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
