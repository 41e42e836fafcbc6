package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is an optional YAML file that pre-fills the create-session form, so
// a recurring preparation target does not have to be typed every run.
type Profile struct {
	Role          string `yaml:"role"`
	Experience    string `yaml:"experience"`
	TopicsToFocus string `yaml:"topics_to_focus"`
	Description   string `yaml:"description"`
}

// LoadProfile reads and validates a preparation profile from a YAML file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile YAML: %w", err)
	}

	if err := validateProfile(&p); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &p, nil
}

func validateProfile(p *Profile) error {
	if p.Role == "" {
		return fmt.Errorf("role is required")
	}
	if p.Experience == "" {
		return fmt.Errorf("experience is required")
	}
	if p.TopicsToFocus == "" {
		return fmt.Errorf("topics_to_focus is required")
	}
	return nil
}
