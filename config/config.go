// Package config loads and validates service configuration from a YAML file,
// a .env file, and environment variables. Environment variables win.
package config

import (
	"fmt"
	"time"

	"github.com/saathilabs/interview-coach/logger"
	"github.com/saathilabs/interview-coach/server"
)

// Config is the root configuration for the service.
type Config struct {
	Base    BaseConfig    `yaml:"base" mapstructure:"base"`
	Server  server.Config `yaml:"server" mapstructure:"server"`
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Groq    GroqConfig    `yaml:"groq" mapstructure:"groq"`
	Audio   AudioConfig   `yaml:"audio" mapstructure:"audio"`
}

// BaseConfig contains essential service identity fields.
type BaseConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
}

// GroqConfig configures the Groq provider clients.
type GroqConfig struct {
	// APIKey authenticates both the transcription and the chat client.
	APIKey string `yaml:"api_key" mapstructure:"api_key" json:"-"`
	// BaseURL overrides the Groq API base URL (tests, proxies).
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// ChatModel is the chat-completion model for evaluation and questions.
	ChatModel string `yaml:"chat_model" mapstructure:"chat_model"`
	// TranscriptionModel is the Whisper model for speech-to-text.
	TranscriptionModel string `yaml:"transcription_model" mapstructure:"transcription_model"`
	// Timeout bounds each outbound provider call.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// AudioConfig configures temporary audio file handling.
type AudioConfig struct {
	// TempDir is where uploaded answers are written before transcription.
	// Empty means the OS temp directory.
	TempDir string `yaml:"temp_dir" mapstructure:"temp_dir"`
}

// ApplyDefaults fills unset fields across all sections.
func (c *Config) ApplyDefaults() {
	if c.Base.Name == "" {
		c.Base.Name = "interview-coach"
	}
	if c.Base.Environment == "" {
		c.Base.Environment = "development"
	}
	c.Server.ApplyDefaults()
	c.Logging.ApplyDefaults()
}

// Validate checks the configuration across all sections.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if c.Groq.APIKey == "" {
		return fmt.Errorf("groq.api_key is required (set GROQ_API_KEY)")
	}
	return nil
}
