package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envAliases maps well-known flat environment variables onto nested config
// keys. These exist for deployment platforms that only speak PORT-style
// variables.
var envAliases = map[string]string{
	"PORT":         "server.port",
	"GROQ_API_KEY": "groq.api_key",
}

// Load reads configuration from an optional YAML file, an optional .env
// file, and the process environment, then unmarshals, defaults, and
// validates the result. Environment variables take precedence over files.
func Load(configFile, envFile string) (*Config, error) {
	if envFile == "" {
		envFile = findFile([]string{".env", "../.env"})
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "[config] warning: failed to load env file %s: %v\n", envFile, err)
		}
	}

	v := viper.New()

	if configFile == "" {
		configFile = findFile([]string{
			"./config/config.yml",
			"./cmd/server/config.yml",
			"./config.yml",
		})
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	v.AutomaticEnv()
	bindEnvVars(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findFile(paths []string) string {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// bindEnvVars maps environment variables onto nested viper keys. A variable
// like SERVER_MAX_BODY_SIZE binds to server.max_body_size among other
// variants, and the aliases in envAliases are always applied.
func bindEnvVars(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || pair[1] == "" {
			continue
		}
		key, value := pair[0], pair[1]

		if alias, ok := envAliases[key]; ok {
			v.Set(alias, value)
			continue
		}
		for _, variant := range envKeyVariants(key) {
			v.Set(variant, value)
		}
	}
}

// envKeyVariants expands an UPPER_SNAKE variable name into the nested key
// forms it may address. GROQ_CHAT_MODEL yields groq.chat_model and
// groq.chat.model, letting section names and multi-word fields coexist.
func envKeyVariants(envKey string) []string {
	lowerKey := strings.ToLower(envKey)
	parts := strings.Split(lowerKey, "_")
	if len(parts) <= 1 {
		return nil
	}

	variants := []string{strings.ReplaceAll(lowerKey, "_", ".")}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}
	return variants
}
