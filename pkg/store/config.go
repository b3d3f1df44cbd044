package store

import (
	"log"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the planner database lives and how the suggestion
// endpoint is reached.
type Config interface {
	BasePath() string
	AI() AIConfig
}

// AIConfig carries the structured-completion endpoint settings.
type AIConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// LoadConfig reads the .focilab config file (current directory or
// FOCILAB_CONFIG_PATH) with FOCILAB_* env overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.focilab.db")
	viper.SetDefault("ai.url", "https://api.openai.com/v1")
	viper.SetDefault("ai.model", "gpt-4o-mini")
	viper.SetDefault("ai.timeout", "60s")
	viper.SetConfigName(".focilab") // .yaml is implicit
	viper.SetEnvPrefix("FOCILAB")
	viper.AutomaticEnv()

	if override := os.Getenv("FOCILAB_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path: path,
		AICfg: AIConfig{
			BaseURL: viper.GetString("ai.url"),
			APIKey:  viper.GetString("ai.key"),
			Model:   viper.GetString("ai.model"),
			Timeout: viper.GetDuration("ai.timeout"),
		},
	}, nil
}

type fileConfig struct {
	Path  string   `json:"path"`
	AICfg AIConfig `json:"ai"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) AI() AIConfig {
	return f.AICfg
}
