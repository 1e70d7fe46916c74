package analysis

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const (
	defaultModel = "gemini-2.0-flash"

	apiKeyEnvVar = "DELTAOPTIMA_GEMINI_API_KEY"
)

type Config struct {
	Model  string `mapstructure:"model"`
	APIKey string `mapstructure:"api_key"`
}

// DefaultConfig returns the configuration used when no config file is
// present: the default model, keyed from the environment.
func DefaultConfig() *Config {
	return &Config{
		Model:  defaultModel,
		APIKey: os.Getenv(apiKeyEnvVar),
	}
}

func LoadConfig(profilePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)
	v.SetDefault("model", defaultModel)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse analysis config: %w", err)
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(apiKeyEnvVar)
	}
	return &cfg, nil
}
