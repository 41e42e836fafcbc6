// Package config provides configuration for the interview prep client.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the client configuration.
type Config struct {
	// REST API
	BaseURL     string
	HTTPTimeout time.Duration

	// Local state
	TokenFile string

	// Optional YAML preset for the create-session form
	ProfileFile string

	// Question generation
	NumQuestions int

	// Speech
	SpeechLang string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		BaseURL:      getEnv("INTERVIEW_API_URL", "http://localhost:5000"),
		HTTPTimeout:  time.Duration(getEnvInt("INTERVIEW_HTTP_TIMEOUT_MS", 60000)) * time.Millisecond,
		TokenFile:    getEnv("INTERVIEW_TOKEN_FILE", defaultTokenFile()),
		ProfileFile:  getEnv("INTERVIEW_PROFILE_FILE", ""),
		NumQuestions: getEnvInt("INTERVIEW_NUM_QUESTIONS", 10),
		SpeechLang:   getEnv("INTERVIEW_SPEECH_LANG", "en-US"),
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL must not be empty")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be positive, got %v", c.HTTPTimeout)
	}
	if c.NumQuestions <= 0 {
		return fmt.Errorf("questions per generation must be positive, got %d", c.NumQuestions)
	}
	if c.TokenFile == "" {
		return fmt.Errorf("token file path must not be empty")
	}
	return nil
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".interviewprep_token"
	}
	return home + "/.interviewprep/token"
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
