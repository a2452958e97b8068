package analysis

import (
	"encoding/json"
	"fmt"
)

// defaultScore is substituted for any sub-score the model omits.
const defaultScore = 5

// EvaluationRequest carries the transcript and its context to the provider.
type EvaluationRequest struct {
	// Transcript is the transcribed answer text.
	Transcript string `json:"transcript"`
	// Role is the job role the candidate is interviewing for.
	Role string `json:"role"`
	// Question is the interview question that was answered.
	Question string `json:"question"`
}

// EvaluationResult is the structured evaluation of a single answer.
// Absent numeric fields default to 5; absent sequences default to empty.
type EvaluationResult struct {
	GrammarScore                float64  `json:"grammar_score"`
	StructureScore              float64  `json:"structure_score"`
	ProfessionalToneScore       float64  `json:"professional_tone_score"`
	FillerWords                 []string `json:"filler_words"`
	StarMethodDetected          bool     `json:"star_method_detected"`
	ImprovementSuggestions      []string `json:"improvement_suggestions"`
	RewrittenProfessionalAnswer string   `json:"rewritten_professional_answer"`
}

// evaluationPayload mirrors EvaluationResult with optional fields so absence
// can be told apart from zero values.
type evaluationPayload struct {
	GrammarScore                *float64 `json:"grammar_score"`
	StructureScore              *float64 `json:"structure_score"`
	ProfessionalToneScore       *float64 `json:"professional_tone_score"`
	FillerWords                 []string `json:"filler_words"`
	StarMethodDetected          *bool    `json:"star_method_detected"`
	ImprovementSuggestions      []string `json:"improvement_suggestions"`
	RewrittenProfessionalAnswer string   `json:"rewritten_professional_answer"`
}

// ParseEvaluation decodes and validates the model's JSON evaluation,
// applying defaults for absent fields.
func ParseEvaluation(raw []byte) (*EvaluationResult, error) {
	if err := validateEvaluation(raw); err != nil {
		return nil, err
	}

	var payload evaluationPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("analysis: decode evaluation: %w", err)
	}

	result := &EvaluationResult{
		GrammarScore:                defaultScore,
		StructureScore:              defaultScore,
		ProfessionalToneScore:       defaultScore,
		FillerWords:                 []string{},
		ImprovementSuggestions:      []string{},
		RewrittenProfessionalAnswer: payload.RewrittenProfessionalAnswer,
	}

	if payload.GrammarScore != nil {
		result.GrammarScore = *payload.GrammarScore
	}
	if payload.StructureScore != nil {
		result.StructureScore = *payload.StructureScore
	}
	if payload.ProfessionalToneScore != nil {
		result.ProfessionalToneScore = *payload.ProfessionalToneScore
	}
	if payload.FillerWords != nil {
		result.FillerWords = payload.FillerWords
	}
	if payload.StarMethodDetected != nil {
		result.StarMethodDetected = *payload.StarMethodDetected
	}
	if payload.ImprovementSuggestions != nil {
		result.ImprovementSuggestions = payload.ImprovementSuggestions
	}

	return result, nil
}
