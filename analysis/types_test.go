package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvaluation_FullPayload(t *testing.T) {
	raw := `{
		"grammar_score": 8,
		"structure_score": 7,
		"professional_tone_score": 9,
		"filler_words": ["um", "like"],
		"star_method_detected": true,
		"improvement_suggestions": ["quantify your impact"],
		"rewritten_professional_answer": "In my previous role..."
	}`

	result, err := ParseEvaluation([]byte(raw))
	require.NoError(t, err)
	assert.InDelta(t, 8.0, result.GrammarScore, 1e-9)
	assert.InDelta(t, 7.0, result.StructureScore, 1e-9)
	assert.InDelta(t, 9.0, result.ProfessionalToneScore, 1e-9)
	assert.Equal(t, []string{"um", "like"}, result.FillerWords)
	assert.True(t, result.StarMethodDetected)
	assert.Equal(t, []string{"quantify your impact"}, result.ImprovementSuggestions)
	assert.Equal(t, "In my previous role...", result.RewrittenProfessionalAnswer)
}

func TestParseEvaluation_AbsentFieldsDefault(t *testing.T) {
	result, err := ParseEvaluation([]byte(`{}`))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, result.GrammarScore, 1e-9)
	assert.InDelta(t, 5.0, result.StructureScore, 1e-9)
	assert.InDelta(t, 5.0, result.ProfessionalToneScore, 1e-9)
	assert.Empty(t, result.FillerWords)
	assert.NotNil(t, result.FillerWords)
	assert.False(t, result.StarMethodDetected)
	assert.NotNil(t, result.ImprovementSuggestions)
	assert.Empty(t, result.RewrittenProfessionalAnswer)
}

func TestParseEvaluation_ExplicitZeroIsKept(t *testing.T) {
	result, err := ParseEvaluation([]byte(`{"grammar_score": 0}`))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, result.GrammarScore, 1e-9)
}

func TestParseEvaluation_RejectsInvalidJSON(t *testing.T) {
	_, err := ParseEvaluation([]byte(`not json`))
	assert.Error(t, err)
}

func TestParseEvaluation_RejectsWrongTypes(t *testing.T) {
	_, err := ParseEvaluation([]byte(`{"filler_words": "um, like"}`))
	assert.Error(t, err)

	_, err = ParseEvaluation([]byte(`{"grammar_score": "eight"}`))
	assert.Error(t, err)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain object", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding prose", `Here you go: {"a":1} hope that helps`, `{"a":1}`},
		{"no object", "just text", "just text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSON(tt.in))
		})
	}
}

func TestEvaluationPrompt(t *testing.T) {
	p := EvaluationPrompt(EvaluationRequest{
		Transcript: "my answer",
		Role:       "Data Analyst",
		Question:   "Describe a difficult project.",
	})
	assert.Contains(t, p, "Data Analyst")
	assert.Contains(t, p, "Describe a difficult project.")
	assert.Contains(t, p, "my answer")
}
