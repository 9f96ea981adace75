package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string `mapstructure:"port"`
	AIBackend    string `mapstructure:"ai_backend"`
	AIEndpoint   string `mapstructure:"ai_endpoint"`
	Model        string `mapstructure:"model"`
	OpenAIAPIKey string `mapstructure:"OPENAI_API_KEY"`
	GeminiModel  string `mapstructure:"gemini_model"`
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEY")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.AIBackend == "" {
		config.AIBackend = "openai"
	}

	return &config, nil
}
