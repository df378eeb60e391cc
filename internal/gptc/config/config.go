package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	DefaultModel    = "gpt-4"
	DefaultEndpoint = "https://api.openai.com/v1/chat/completions"
	DefaultKeyFile  = "/usr/local/bin/my_api_key.txt"
)

// Config holds the configuration for the chat client
type Config struct {
	Model    string `toml:"model" mapstructure:"model"`
	Endpoint string `toml:"endpoint" mapstructure:"endpoint"` // Full chat-completion URL
	KeyFile  string `toml:"key_file" mapstructure:"key_file"` // File holding the API key; $VAR references allowed
}

// NewDefaultConfig returns a new Config with default values
func NewDefaultConfig() *Config {
	return &Config{
		Model:    DefaultModel,
		Endpoint: DefaultEndpoint,
		KeyFile:  DefaultKeyFile,
	}
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}

	if config.Model == "" {
		return nil, fmt.Errorf("model is not configured. Set it in config file (model), environment variable (GPTC_MODEL) or --model flag")
	}
	if config.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is not configured. Set it in config file (endpoint), environment variable (GPTC_ENDPOINT) or --endpoint flag")
	}

	keyFile, err := expandEnvVar(config.KeyFile)
	if err != nil {
		return nil, err
	}
	if keyFile != "" {
		keyFile, err = ResolvePath(keyFile)
		if err != nil {
			return nil, fmt.Errorf("error resolving key file path '%s': %v", config.KeyFile, err)
		}
	}
	config.KeyFile = keyFile

	return config, nil
}
