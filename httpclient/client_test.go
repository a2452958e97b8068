package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(Config{Name: "test", BaseURL: baseURL})
	require.NoError(t, err)
	return c
}

func TestDoJoinsBaseURL(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL+"/")
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/v1/things"})
	require.NoError(t, err)
	assert.Equal(t, "/v1/things", gotPath)
}

func TestDoAppliesBearerAuth(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, err := New(Config{Name: "test", BaseURL: srv.URL, Auth: BearerAuth("secret-token")})
	require.NoError(t, err)

	_, err = c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestDoEncodesJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/",
		Body:   map[string]string{"key": "value"},
	})
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"key":"value"}`, string(gotBody))
}

func TestDoEncodesMultipartBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "whisper-large-v3", r.FormValue("model"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "answer.webm", header.Filename)

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "audio-bytes", string(data))

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/upload",
		Body: &MultipartBody{
			Fields: map[string]string{"model": "whisper-large-v3"},
			Files: []FileField{{
				FieldName:   "file",
				FileName:    "answer.webm",
				ContentType: "audio/webm",
				Data:        []byte("audio-bytes"),
			}},
		},
	})
	require.NoError(t, err)
}

func TestDoClassifiesErrorStatus(t *testing.T) {
	tests := []struct {
		status    int
		code      ErrorCode
		retryable bool
	}{
		{http.StatusUnauthorized, ErrCodeAuth, false},
		{http.StatusNotFound, ErrCodeNotFound, false},
		{http.StatusTooManyRequests, ErrCodeRateLimit, true},
		{http.StatusBadRequest, ErrCodeValidation, false},
		{http.StatusInternalServerError, ErrCodeServer, true},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := newTestClient(t, srv.URL)
			resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
			require.Error(t, err)
			require.NotNil(t, resp)

			var clientErr *Error
			require.ErrorAs(t, err, &clientErr)
			assert.Equal(t, tt.code, clientErr.Code)
			assert.Equal(t, tt.status, clientErr.StatusCode)
			assert.Equal(t, tt.retryable, clientErr.Retryable)
		})
	}
}

func TestTypedPostDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"hello","duration":1.5}`))
	}))
	defer srv.Close()

	type payload struct {
		Text     string  `json:"text"`
		Duration float64 `json:"duration"`
	}

	c := newTestClient(t, srv.URL)
	resp, err := Post[payload](context.Background(), c, "/", nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Data.Text)
	assert.InDelta(t, 1.5, resp.Data.Duration, 1e-9)
}

func TestConnectionErrorIsRetryable(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:1")
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	require.Error(t, err)
	assert.True(t, IsRetryable(err))
}
