// Package readiness computes the interview readiness score from a structured
// answer evaluation. The score is a 0-100 composite weighted from grammar,
// structure, professional tone, and a confidence score derived from the
// number of filler words in the answer.
package readiness

import "math"

// Weights applied to the four sub-scores. Grammar and structure dominate;
// tone and confidence share the remainder.
const (
	weightGrammar    = 0.3
	weightStructure  = 0.3
	weightTone       = 0.2
	weightConfidence = 0.2

	fillerPenalty = 1.5
)

// Scores holds the derived scores for a single answer.
type Scores struct {
	// Confidence is 0-10, penalized by filler-word count, rounded to 1 decimal.
	Confidence float64 `json:"confidence_score"`
	// Readiness is 0-100, rounded to 1 decimal.
	Readiness float64 `json:"readiness_score"`
}

// Compute derives the confidence and readiness scores. Grammar, structure,
// and tone are expected in [0,10] and are clamped into that range;
// fillerCount is the number of filler words detected in the answer.
// Compute is pure and never fails.
func Compute(grammar, structure, tone float64, fillerCount int) Scores {
	grammar = clamp(grammar, 0, 10)
	structure = clamp(structure, 0, 10)
	tone = clamp(tone, 0, 10)

	confidence := clamp(10-fillerPenalty*float64(fillerCount), 0, 10)

	readiness := (weightGrammar*grammar +
		weightStructure*structure +
		weightTone*tone +
		weightConfidence*confidence) * 10
	readiness = clamp(readiness, 0, 100)

	return Scores{
		Confidence: round1(confidence),
		Readiness:  round1(readiness),
	}
}

func clamp(v, lower, upper float64) float64 {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
