package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saathilabs/interview-coach/analysis"
)

// chatServer fakes the OpenAI-compatible chat completion endpoint, returning
// the given content as the single choice.
func chatServer(t *testing.T, content string, capture *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}

		json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "llama-3.3-70b-versatile",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		})
	}))
}

func TestEvaluate_Success(t *testing.T) {
	evaluation := `{"grammar_score": 8, "structure_score": 7, "professional_tone_score": 9, "filler_words": ["um"], "star_method_detected": false, "improvement_suggestions": [], "rewritten_professional_answer": "Polished."}`

	var captured map[string]any
	srv := chatServer(t, evaluation, &captured)
	defer srv.Close()

	p, err := NewProvider(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	result, err := p.Evaluate(context.Background(), analysis.EvaluationRequest{
		Transcript: "um, I led a project",
		Role:       "Software Engineer",
		Question:   "Tell me about yourself.",
	})
	require.NoError(t, err)
	assert.InDelta(t, 8.0, result.GrammarScore, 1e-9)
	assert.Equal(t, []string{"um"}, result.FillerWords)
	assert.Equal(t, "Polished.", result.RewrittenProfessionalAnswer)

	// The request should pin JSON output and carry the transcript.
	rf, ok := captured["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_object", rf["type"])
}

func TestEvaluate_StripsMarkdownFences(t *testing.T) {
	srv := chatServer(t, "```json\n{\"grammar_score\": 6}\n```", nil)
	defer srv.Close()

	p, err := NewProvider(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	result, err := p.Evaluate(context.Background(), analysis.EvaluationRequest{Transcript: "answer"})
	require.NoError(t, err)
	assert.InDelta(t, 6.0, result.GrammarScore, 1e-9)
	// Absent fields still default.
	assert.InDelta(t, 5.0, result.StructureScore, 1e-9)
}

func TestEvaluate_MalformedModelOutput(t *testing.T) {
	srv := chatServer(t, "I cannot evaluate this answer.", nil)
	defer srv.Close()

	p, err := NewProvider(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.Evaluate(context.Background(), analysis.EvaluationRequest{Transcript: "answer"})
	assert.Error(t, err)
}

func TestGenerateQuestion_Success(t *testing.T) {
	srv := chatServer(t, "  Describe a time you handled conflicting priorities.\n", nil)
	defer srv.Close()

	p, err := NewProvider(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	q, err := p.GenerateQuestion(context.Background(), "Product Manager")
	require.NoError(t, err)
	assert.Equal(t, "Describe a time you handled conflicting priorities.", q)
}

func TestGenerateQuestion_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p, err := NewProvider(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.GenerateQuestion(context.Background(), "Product Manager")
	assert.Error(t, err)
}

func TestNewProvider_RequiresAPIKey(t *testing.T) {
	_, err := NewProvider(Config{})
	assert.Error(t, err)
}
