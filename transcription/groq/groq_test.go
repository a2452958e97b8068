package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saathilabs/interview-coach/transcription"
)

func writeAudioFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answer.webm")
	require.NoError(t, os.WriteFile(path, []byte("fake-webm-bytes"), 0o600))
	return path
}

func TestTranscribe_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audio/transcriptions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "whisper-large-v3", r.FormValue("model"))
		assert.Equal(t, "verbose_json", r.FormValue("response_format"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "answer.webm", header.Filename)

		json.NewEncoder(w).Encode(map[string]any{
			"text":     "Tell me about yourself answer.",
			"language": "en",
			"duration": 12.5,
		})
	}))
	defer srv.Close()

	p, err := NewProvider(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	resp, err := p.Transcribe(context.Background(), transcription.Request{
		AudioPath: writeAudioFile(t),
	})
	require.NoError(t, err)
	assert.Equal(t, "Tell me about yourself answer.", resp.Text)
	assert.Equal(t, "en", resp.Language)
	assert.InDelta(t, 12.5, resp.Duration, 1e-9)
}

func TestTranscribe_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"model overloaded"}}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p, err := NewProvider(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.Transcribe(context.Background(), transcription.Request{
		AudioPath: writeAudioFile(t),
	})
	assert.Error(t, err)
}

func TestTranscribe_MissingFile(t *testing.T) {
	p, err := NewProvider(Config{APIKey: "test-key"})
	require.NoError(t, err)

	_, err = p.Transcribe(context.Background(), transcription.Request{
		AudioPath: "/nonexistent/audio.webm",
	})
	assert.Error(t, err)
}

func TestNewProvider_RequiresAPIKey(t *testing.T) {
	_, err := NewProvider(Config{})
	assert.Error(t, err)
}
