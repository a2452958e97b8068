// Package groq implements analysis.Provider using the Groq chat-completion
// API through the OpenAI-compatible SDK.
package groq

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/saathilabs/interview-coach/analysis"
)

const (
	// ProviderName is the registered name for the Groq analysis provider.
	ProviderName = "groq-chat"

	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama-3.3-70b-versatile"

	evaluationTemperature = 0.2
	questionTemperature   = 0.8
)

// Config holds configuration for the Groq analysis provider.
type Config struct {
	APIKey  string `json:"-" yaml:"api_key" mapstructure:"api_key"`
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`
	Model   string `json:"model" yaml:"model" mapstructure:"model"`
}

// ApplyDefaults fills unset fields with provider defaults.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.Model == "" {
		c.Model = defaultModel
	}
}

// Provider implements analysis.Provider against the Groq API.
type Provider struct {
	client *openai.Client
	model  string
}

// NewProvider creates a new Groq analysis provider.
func NewProvider(cfg Config) (*Provider, error) {
	cfg.ApplyDefaults()
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq: api key is required")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL

	return &Provider{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}, nil
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// Evaluate sends the transcript for structured evaluation and parses the
// model's JSON response.
func (p *Provider) Evaluate(ctx context.Context, req analysis.EvaluationRequest) (*analysis.EvaluationResult, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: evaluationTemperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: analysis.EvaluationSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: analysis.EvaluationPrompt(req)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("groq: evaluate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("groq: evaluate: no choices in response")
	}

	raw := analysis.ExtractJSON(resp.Choices[0].Message.Content)
	result, err := analysis.ParseEvaluation([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("groq: evaluate: %w", err)
	}
	return result, nil
}

// GenerateQuestion asks the model for one interview question for the role.
func (p *Provider) GenerateQuestion(ctx context.Context, role string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: questionTemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: analysis.QuestionSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: analysis.QuestionPrompt(role)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("groq: generate question: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq: generate question: no choices in response")
	}

	question := strings.TrimSpace(resp.Choices[0].Message.Content)
	if question == "" {
		return "", fmt.Errorf("groq: generate question: empty response")
	}
	return question, nil
}

// compile-time check
var _ analysis.Provider = (*Provider)(nil)
