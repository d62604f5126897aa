// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
)

// GoalType selects which count a goal is measured in.
type GoalType string

const (
	GoalWords      GoalType = "words"
	GoalCharacters GoalType = "characters"
)

// Default configuration values.
const (
	DefaultIncludeSpaces      = true
	DefaultIncludePunctuation = true
	DefaultEnableGoal         = false
	DefaultGoalType           = GoalWords
	DefaultGoalCount          = 1000
)

// ParseGoalType parses a goal type name, case-insensitively.
func ParseGoalType(s string) (GoalType, error) {
	switch GoalType(strings.ToLower(strings.TrimSpace(s))) {
	case GoalWords:
		return GoalWords, nil
	case GoalCharacters:
		return GoalCharacters, nil
	default:
		return "", fmt.Errorf("unknown goal type %q (want %q or %q)", s, GoalWords, GoalCharacters)
	}
}

// Valid reports whether t is a known goal type.
func (t GoalType) Valid() bool {
	return t == GoalWords || t == GoalCharacters
}

// Config defines counting and goal settings.
type Config struct {
	IncludeSpaces      bool
	IncludePunctuation bool
	EnableGoal         bool
	GoalType           GoalType
	GoalCount          int
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		IncludeSpaces:      DefaultIncludeSpaces,
		IncludePunctuation: DefaultIncludePunctuation,
		EnableGoal:         DefaultEnableGoal,
		GoalType:           DefaultGoalType,
		GoalCount:          DefaultGoalCount,
	}
}

// PartialConfig is a configuration layer where nil fields are absent.
type PartialConfig struct {
	IncludeSpaces      *bool
	IncludePunctuation *bool
	EnableGoal         *bool
	GoalType           *GoalType
	GoalCount          *int
}

// Merge returns base with every present and valid field of p applied.
// Invalid values (unknown goal type, non-positive goal count) are skipped.
func (c Config) Merge(p PartialConfig) Config {
	if p.IncludeSpaces != nil {
		c.IncludeSpaces = *p.IncludeSpaces
	}
	if p.IncludePunctuation != nil {
		c.IncludePunctuation = *p.IncludePunctuation
	}
	if p.EnableGoal != nil {
		c.EnableGoal = *p.EnableGoal
	}
	if p.GoalType != nil && p.GoalType.Valid() {
		c.GoalType = *p.GoalType
	}
	if p.GoalCount != nil && *p.GoalCount > 0 {
		c.GoalCount = *p.GoalCount
	}
	return c
}

// Metrics holds the counts derived from a document.
type Metrics struct {
	CharCount int
	WordCount int
}

// Progress describes how far a document is toward its goal.
type Progress struct {
	Current    int
	Goal       int
	Percentage int
}
