// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/wordgoal/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Counter CounterConfig `toml:"counter"`
}

// CounterConfig maps counting and goal settings.
type CounterConfig struct {
	IncludeSpaces      *bool   `toml:"include-spaces"`
	IncludePunctuation *bool   `toml:"include-punctuation"`
	EnableGoal         *bool   `toml:"enable-goal"`
	GoalType           *string `toml:"goal-type"`
	GoalCount          *int    `toml:"goal-count"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Partial converts the counter section into a configuration layer.
func (c CounterConfig) Partial() (model.PartialConfig, error) {
	p := model.PartialConfig{
		IncludeSpaces:      c.IncludeSpaces,
		IncludePunctuation: c.IncludePunctuation,
		EnableGoal:         c.EnableGoal,
	}
	if c.GoalType != nil {
		t, err := model.ParseGoalType(*c.GoalType)
		if err != nil {
			return model.PartialConfig{}, fmt.Errorf("goal-type: %w", err)
		}
		p.GoalType = &t
	}
	if c.GoalCount != nil {
		if *c.GoalCount <= 0 {
			return model.PartialConfig{}, fmt.Errorf("goal-count must be > 0")
		}
		p.GoalCount = c.GoalCount
	}
	return p, nil
}
