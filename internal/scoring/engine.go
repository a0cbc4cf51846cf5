// Package scoring turns a complete answer set into a career profile.
//
// The Engine is a pure function over two read-only tables (question
// catalog and profile table) injected at construction:
//
//  1. aggregate answers per trait
//  2. classify each trait High/Low against HighThreshold
//  3. join the levels into a ProfileKey
//  4. look the key up, falling back to the default profile
//  5. shape one chart datum per trait
//
// It holds no mutable state, performs no I/O and is safe for concurrent use.
package scoring

import (
	"fmt"
	"slices"

	"github.com/HendryAvila/careerfit/internal/quiz"
)

// HighThreshold is the inclusive cut-off for a High trait. It is fixed
// content-side policy and is not derived from the score range.
const HighThreshold = 13

// ChartDatum is one bar of the results chart.
type ChartDatum struct {
	Trait   quiz.Trait `json:"name"`
	Score   int        `json:"score"`
	Percent int        `json:"percent"`
	Band    Band       `json:"band"`
}

// Results is the full output of a scoring run.
type Results struct {
	Scores        quiz.TraitScores `json:"scores"`
	Levels        quiz.TraitLevels `json:"levels"`
	Key           quiz.ProfileKey  `json:"key"`
	Profile       quiz.Profile     `json:"profile"`
	FallbackUsed  bool             `json:"fallback_used"`
	ChartData     []ChartDatum     `json:"chart_data"`
	Normalization Normalization    `json:"normalization"`
}

// HighTraits returns the traits classified High, in trait order.
func (r *Results) HighTraits() []quiz.Trait {
	var out []quiz.Trait
	for _, t := range quiz.TraitOrder {
		if r.Levels[t] == quiz.LevelHigh {
			out = append(out, t)
		}
	}
	return out
}

// Engine scores answer sets against injected static tables.
type Engine struct {
	catalog  *quiz.Catalog
	profiles *quiz.ProfileTable
	norm     Normalization
}

// Option configures an Engine.
type Option func(*Engine)

// WithNormalization selects the chart formula.
func WithNormalization(n Normalization) Option {
	return func(e *Engine) { e.norm = n }
}

// New creates an Engine. Both tables must already have passed their own
// construction checks; New only rejects nil tables and unknown formulas.
func New(catalog *quiz.Catalog, profiles *quiz.ProfileTable, opts ...Option) (*Engine, error) {
	if catalog == nil {
		return nil, fmt.Errorf("%w: nil question catalog", quiz.ErrInvalidConfig)
	}
	if profiles == nil {
		return nil, fmt.Errorf("%w: nil profile table", quiz.ErrInvalidConfig)
	}

	e := &Engine{catalog: catalog, profiles: profiles, norm: DefaultNormalization}
	for _, opt := range opts {
		opt(e)
	}
	if _, err := ParseNormalization(string(e.norm)); err != nil {
		return nil, fmt.Errorf("%w: %v", quiz.ErrInvalidConfig, err)
	}
	return e, nil
}

// Normalization returns the active chart formula.
func (e *Engine) Normalization() Normalization { return e.norm }

// Catalog returns the injected question catalog.
func (e *Engine) Catalog() *quiz.Catalog { return e.catalog }

// Profiles returns the injected profile table.
func (e *Engine) Profiles() *quiz.ProfileTable { return e.profiles }

// Score validates answers and computes the full Results.
// Any validation failure is a *quiz.InvalidInputError and no partial
// result is returned.
func (e *Engine) Score(answers quiz.Answers) (*Results, error) {
	if err := e.validate(answers); err != nil {
		return nil, err
	}

	scores := e.aggregate(answers)
	levels := make(quiz.TraitLevels, len(quiz.TraitOrder))
	for _, t := range quiz.TraitOrder {
		levels[t] = Classify(scores[t])
	}

	key, err := quiz.KeyFromLevels(levels)
	if err != nil {
		// Unreachable: levels always carries every trait.
		return nil, err
	}
	profile, fallback := e.profiles.Lookup(key)

	return &Results{
		Scores:        scores,
		Levels:        levels,
		Key:           key,
		Profile:       profile,
		FallbackUsed:  fallback,
		ChartData:     e.chart(scores),
		Normalization: e.norm,
	}, nil
}

// Lookup resolves a key against the profile table with default fallback.
func (e *Engine) Lookup(key quiz.ProfileKey) (quiz.Profile, bool) {
	return e.profiles.Lookup(key)
}

// Classify maps a trait score to its level.
func Classify(score int) quiz.Level {
	if score >= HighThreshold {
		return quiz.LevelHigh
	}
	return quiz.LevelLow
}

// validate checks catalog questions in id order, then reports the
// smallest unknown id, so the same bad input always yields the same error.
func (e *Engine) validate(answers quiz.Answers) error {
	for _, q := range e.catalog.Questions() {
		v, ok := answers[q.ID]
		if !ok {
			return &quiz.InvalidInputError{QuestionID: q.ID, Reason: quiz.ReasonMissing}
		}
		if v < quiz.MinAnswer || v > quiz.MaxAnswer {
			return &quiz.InvalidInputError{QuestionID: q.ID, Value: v, Reason: quiz.ReasonOutOfRange}
		}
	}

	var unknown []int
	for id := range answers {
		if _, ok := e.catalog.Question(id); !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		id := slices.Min(unknown)
		return &quiz.InvalidInputError{QuestionID: id, Value: answers[id], Reason: quiz.ReasonUnknownQuestion}
	}
	return nil
}

func (e *Engine) aggregate(answers quiz.Answers) quiz.TraitScores {
	scores := make(quiz.TraitScores, len(quiz.TraitOrder))
	for _, t := range quiz.TraitOrder {
		scores[t] = 0
	}
	for _, q := range e.catalog.Questions() {
		scores[q.Trait] += answers[q.ID]
	}
	return scores
}

func (e *Engine) chart(scores quiz.TraitScores) []ChartDatum {
	data := make([]ChartDatum, 0, len(quiz.TraitOrder))
	for _, t := range quiz.TraitOrder {
		pct := e.norm.Percent(scores[t])
		data = append(data, ChartDatum{
			Trait:   t,
			Score:   scores[t],
			Percent: pct,
			Band:    BandFor(pct),
		})
	}
	return data
}
