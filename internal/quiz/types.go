// Package quiz defines the domain model of the career fitness quiz.
//
// It holds the vocabulary shared by every other package: traits, levels,
// questions, profiles and the read-only tables built from authored
// content. Nothing here computes a result; scoring lives in the scoring
// package and content loading in the content package.
package quiz

import (
	"fmt"
	"maps"
)

// --- Trait enum ---

// Trait is one of the four career fitness dimensions.
type Trait string

const (
	TraitAgility      Trait = "Agility"
	TraitAgency       Trait = "Agency"
	TraitAlignment    Trait = "Alignment"
	TraitAdaptability Trait = "Adaptability"
)

// TraitOrder is the canonical trait order. Profile keys, chart series and
// every rendered listing follow it.
var TraitOrder = []Trait{
	TraitAgility,
	TraitAgency,
	TraitAlignment,
	TraitAdaptability,
}

// validTraits is the set of allowed traits.
var validTraits = map[Trait]bool{
	TraitAgility:      true,
	TraitAgency:       true,
	TraitAlignment:    true,
	TraitAdaptability: true,
}

// ValidateTrait returns an error if the trait is not recognized.
func ValidateTrait(t Trait) error {
	if !validTraits[t] {
		return fmt.Errorf("invalid trait %q: must be one of: Agility, Agency, Alignment, Adaptability", t)
	}
	return nil
}

// --- Level enum ---

// Level is the High/Low classification of a trait score.
type Level string

const (
	LevelHigh Level = "High"
	LevelLow  Level = "Low"
)

// --- Scale constants ---

const (
	// MinAnswer and MaxAnswer bound a single Likert response.
	MinAnswer = 1
	MaxAnswer = 5

	// QuestionsPerTrait is the fixed number of statements per trait.
	QuestionsPerTrait = 4

	// MinTraitScore and MaxTraitScore bound a trait sum.
	MinTraitScore = QuestionsPerTrait * MinAnswer
	MaxTraitScore = QuestionsPerTrait * MaxAnswer
)

// --- Records ---

// Question is a single Likert statement tagged with the trait it measures.
type Question struct {
	ID    int    `json:"id" yaml:"id"`
	Text  string `json:"text" yaml:"text"`
	Trait Trait  `json:"trait" yaml:"trait"`
}

// DevelopmentArea is the per-trait guidance attached to a profile.
type DevelopmentArea struct {
	Description string `json:"description" yaml:"description"`
	Tip         string `json:"tip" yaml:"tip"`
}

// Profile is the narrative content selected by a ProfileKey.
// DevelopmentAreas is optional; the default profile carries none.
type Profile struct {
	Title            string                    `json:"title" yaml:"title"`
	Description      string                    `json:"description" yaml:"description"`
	DevelopmentAreas map[Trait]DevelopmentArea `json:"development_areas,omitempty" yaml:"developmentAreas,omitempty"`
}

// Clone returns a copy of p that shares no maps with it.
func (p Profile) Clone() Profile {
	p.DevelopmentAreas = maps.Clone(p.DevelopmentAreas)
	return p
}

// Answers maps question id to a Likert value.
type Answers map[int]int

// TraitScores maps each trait to the sum of its answers.
type TraitScores map[Trait]int

// TraitLevels maps each trait to its classification.
type TraitLevels map[Trait]Level
