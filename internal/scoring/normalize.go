package scoring

import (
	"fmt"
	"math"

	"github.com/HendryAvila/careerfit/internal/quiz"
)

// Normalization selects how a raw trait score becomes a chart percentage.
type Normalization string

const (
	// NormalizationLinear rescales the true [4,20] range onto [0,100]:
	// round((score-4)/16*100).
	NormalizationLinear Normalization = "linear"

	// NormalizationFraction reports the share of the maximum score:
	// round(score/20*100), which never drops below 20.
	NormalizationFraction Normalization = "fraction"
)

// DefaultNormalization is the formula used unless configuration says
// otherwise. The linear rescale lets an all-Low respondent see 0%.
const DefaultNormalization = NormalizationLinear

// ParseNormalization validates a configured formula name. An empty
// string selects DefaultNormalization.
func ParseNormalization(s string) (Normalization, error) {
	switch Normalization(s) {
	case "":
		return DefaultNormalization, nil
	case NormalizationLinear, NormalizationFraction:
		return Normalization(s), nil
	default:
		return "", fmt.Errorf("invalid normalization %q: must be one of: linear, fraction", s)
	}
}

// Percent maps a raw trait score to a whole percentage.
// Halves round up, so 12.5 becomes 13.
func (n Normalization) Percent(score int) int {
	var pct float64
	switch n {
	case NormalizationFraction:
		pct = float64(score) / float64(quiz.MaxTraitScore) * 100
	default:
		span := float64(quiz.MaxTraitScore - quiz.MinTraitScore)
		pct = float64(score-quiz.MinTraitScore) / span * 100
	}
	return int(math.Floor(pct + 0.5))
}

// Range returns the lowest and highest percentage the formula can
// produce for a valid trait score.
func (n Normalization) Range() (lo, hi int) {
	return n.Percent(quiz.MinTraitScore), n.Percent(quiz.MaxTraitScore)
}

// --- Interpretation bands ---

// Band is the verbal interpretation of a chart percentage.
type Band string

const (
	BandRequiresWork Band = "Requires work"
	BandGettingThere Band = "Getting there"
	BandExcellent    Band = "Excellent"
)

// Band cut-offs, applied to the displayed percentage.
const (
	GettingThereFrom = 60
	ExcellentFrom    = 75
)

// BandFor classifies a percentage.
func BandFor(percent int) Band {
	switch {
	case percent >= ExcellentFrom:
		return BandExcellent
	case percent >= GettingThereFrom:
		return BandGettingThere
	default:
		return BandRequiresWork
	}
}
