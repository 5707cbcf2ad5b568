package risk

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Tables holds the immutable lookup data the Scorer works from. Injected at
// construction so alternate weight models stay testable.
type Tables struct {
	// ClauseWeights maps clause type → business-impact weight.
	ClauseWeights map[string]float64 `json:"clause_weights" yaml:"clause_weights"`

	// LevelScores maps qualitative risk level → 0-100 numeric score.
	LevelScores map[Level]float64 `json:"level_scores" yaml:"level_scores"`

	// DefaultWeight applies to clause types missing from ClauseWeights.
	DefaultWeight float64 `json:"default_weight" yaml:"default_weight"`

	// DefaultScore applies to unrecognized risk levels.
	DefaultScore float64 `json:"default_score" yaml:"default_score"`

	// HighWeightThreshold marks clause types whose absence is penalized.
	HighWeightThreshold float64 `json:"high_weight_threshold" yaml:"high_weight_threshold"`

	// MissingClauseScore is the risk score assigned to a synthesized
	// missing-clause entry (medium risk).
	MissingClauseScore float64 `json:"missing_clause_score" yaml:"missing_clause_score"`
}

func (t *Tables) defaults() {
	def := DefaultTables()
	if t.ClauseWeights == nil {
		t.ClauseWeights = def.ClauseWeights
	}
	if t.LevelScores == nil {
		t.LevelScores = def.LevelScores
	}
	if t.DefaultWeight <= 0 {
		t.DefaultWeight = def.DefaultWeight
	}
	if t.DefaultScore <= 0 {
		t.DefaultScore = def.DefaultScore
	}
	if t.HighWeightThreshold <= 0 {
		t.HighWeightThreshold = def.HighWeightThreshold
	}
	if t.MissingClauseScore <= 0 {
		t.MissingClauseScore = def.MissingClauseScore
	}
}

// DefaultTables returns the standard contract-clause weight model.
func DefaultTables() Tables {
	return Tables{
		ClauseWeights: map[string]float64{
			"liability":          25,
			"indemnification":    20,
			"data_processing":    15,
			"auto_renewal":       10,
			"termination":        10,
			"payment":            8,
			"ip_ownership":       5,
			"confidentiality":    3,
			"non_compete":        2,
			"non_solicitation":   2,
			"warranty":           2,
			"dispute_resolution": 2,
			"governing_law":      1,
			"force_majeure":      1,
			"other":              1,
		},
		LevelScores: map[Level]float64{
			LevelCritical: 100,
			LevelHigh:     75,
			LevelMedium:   40,
			LevelLow:      10,
		},
		DefaultWeight:       1,
		DefaultScore:        10,
		HighWeightThreshold: 10,
		MissingClauseScore:  40,
	}
}

// LoadTables parses a YAML weight-table document. Missing fields fall back
// to the defaults.
func LoadTables(data []byte) (Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tables{}, fmt.Errorf("parse risk tables: %w", err)
	}
	t.defaults()
	return t, nil
}

// clauseWeight returns the weight for a clause type, defaulting silently
// for unknown types.
func (t Tables) clauseWeight(clauseType string) float64 {
	if w, ok := t.ClauseWeights[clauseType]; ok {
		return w
	}
	return t.DefaultWeight
}

// levelScore returns the numeric score for a risk level, defaulting
// silently for unrecognized levels.
func (t Tables) levelScore(level Level) float64 {
	if s, ok := t.LevelScores[level]; ok {
		return s
	}
	return t.DefaultScore
}

// highWeightTypes returns the clause types whose absence is penalized, in
// stable (sorted) order.
func (t Tables) highWeightTypes() []string {
	var types []string
	for clauseType, w := range t.ClauseWeights {
		if w >= t.HighWeightThreshold {
			types = append(types, clauseType)
		}
	}
	sort.Strings(types)
	return types
}
