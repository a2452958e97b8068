// Package groq implements transcription.Provider against the Groq
// audio transcription endpoint (OpenAI-compatible Whisper API).
package groq

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/saathilabs/interview-coach/httpclient"
	"github.com/saathilabs/interview-coach/transcription"
)

const (
	// ProviderName is the registered name for the Groq transcription provider.
	ProviderName = "groq-whisper"

	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "whisper-large-v3"
	defaultTimeout = 60 * time.Second
)

// Config holds configuration for the Groq transcription provider.
type Config struct {
	APIKey  string        `json:"-" yaml:"api_key" mapstructure:"api_key"`
	BaseURL string        `json:"base_url" yaml:"base_url" mapstructure:"base_url"`
	Model   string        `json:"model" yaml:"model" mapstructure:"model"`
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// ApplyDefaults fills unset fields with provider defaults.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
}

// Provider implements transcription.Provider using the Groq API.
type Provider struct {
	cfg    Config
	client *httpclient.Client
}

// NewProvider creates a new Groq transcription provider.
func NewProvider(cfg Config) (*Provider, error) {
	cfg.ApplyDefaults()
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq: api key is required")
	}

	client, err := httpclient.New(httpclient.Config{
		Name:    ProviderName,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Auth:    httpclient.BearerAuth(cfg.APIKey),
	})
	if err != nil {
		return nil, fmt.Errorf("groq: create http client: %w", err)
	}

	return &Provider{cfg: cfg, client: client}, nil
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// Transcribe uploads the audio file and returns the transcription.
func (p *Provider) Transcribe(ctx context.Context, req transcription.Request) (*transcription.Response, error) {
	audioData, err := os.ReadFile(req.AudioPath)
	if err != nil {
		return nil, fmt.Errorf("groq: read audio file: %w", err)
	}

	model := p.cfg.Model
	if req.Model != "" {
		model = req.Model
	}

	fields := map[string]string{
		"model":           model,
		"response_format": "verbose_json",
	}
	if req.Language != "" {
		fields["language"] = req.Language
	}

	body := &httpclient.MultipartBody{
		Fields: fields,
		Files: []httpclient.FileField{{
			FieldName:   "file",
			FileName:    filepath.Base(req.AudioPath),
			ContentType: contentTypeFor(req.AudioPath),
			Data:        audioData,
		}},
	}

	resp, err := httpclient.Post[transcriptionResponse](ctx, p.client, "/audio/transcriptions", body)
	if err != nil {
		return nil, fmt.Errorf("groq: transcribe: %w", err)
	}

	return &transcription.Response{
		Text:     resp.Data.Text,
		Language: resp.Data.Language,
		Duration: resp.Data.Duration,
	}, nil
}

// transcriptionResponse mirrors the verbose_json payload of the Groq API.
type transcriptionResponse struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
}

func contentTypeFor(path string) string {
	switch filepath.Ext(path) {
	case ".wav":
		return "audio/wav"
	case ".mp3":
		return "audio/mpeg"
	case ".ogg":
		return "audio/ogg"
	case ".m4a":
		return "audio/mp4"
	default:
		return "audio/webm"
	}
}

// compile-time check
var _ transcription.Provider = (*Provider)(nil)
