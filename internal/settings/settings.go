// Package settings owns the live configuration and persists every change.
package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/verte-zerg/wordgoal/internal/model"
)

// ErrInvalidGoalInput reports goal count text that is not a positive integer.
var ErrInvalidGoalInput = errors.New("goal count must be a positive integer")

// Store loads and saves the persisted configuration.
type Store interface {
	Load(ctx context.Context) (model.PartialConfig, error)
	Save(ctx context.Context, cfg model.Config) error
}

// Settings holds the configuration used by every count.
type Settings struct {
	cfg   model.Config
	store Store
}

// New wraps cfg without loading anything. A nil store disables persistence.
func New(cfg model.Config, store Store) *Settings {
	return &Settings{cfg: cfg, store: store}
}

// Load merges the stored layer over base. On a load error the returned
// Settings still holds base and remains usable.
func Load(ctx context.Context, store Store, base model.Config) (*Settings, error) {
	s := New(base, store)
	if store == nil {
		return s, nil
	}
	p, err := store.Load(ctx)
	if err != nil {
		return s, fmt.Errorf("failed to load settings: %w", err)
	}
	s.cfg = base.Merge(p)
	return s, nil
}

// Config returns a copy of the current configuration.
func (s *Settings) Config() model.Config {
	return s.cfg
}

// ToggleIncludeSpaces flips whether whitespace counts as characters.
func (s *Settings) ToggleIncludeSpaces(ctx context.Context) error {
	next := s.cfg
	next.IncludeSpaces = !next.IncludeSpaces
	return s.apply(ctx, next)
}

// ToggleIncludePunctuation flips whether punctuation counts as characters.
func (s *Settings) ToggleIncludePunctuation(ctx context.Context) error {
	next := s.cfg
	next.IncludePunctuation = !next.IncludePunctuation
	return s.apply(ctx, next)
}

// ToggleGoal flips goal tracking.
func (s *Settings) ToggleGoal(ctx context.Context) error {
	next := s.cfg
	next.EnableGoal = !next.EnableGoal
	return s.apply(ctx, next)
}

// SetGoalType selects what the goal is measured in.
func (s *Settings) SetGoalType(ctx context.Context, t model.GoalType) error {
	if !t.Valid() {
		return fmt.Errorf("invalid goal type %q", t)
	}
	if t == s.cfg.GoalType {
		return nil
	}
	next := s.cfg
	next.GoalType = t
	return s.apply(ctx, next)
}

// SetGoalCount sets the goal. Non-positive values are rejected and the
// previous goal is kept.
func (s *Settings) SetGoalCount(ctx context.Context, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidGoalInput, n)
	}
	if n == s.cfg.GoalCount {
		return nil
	}
	next := s.cfg
	next.GoalCount = n
	return s.apply(ctx, next)
}

// SetGoalCountText parses free-text input and sets the goal.
func (s *Settings) SetGoalCountText(ctx context.Context, text string) error {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidGoalInput, text)
	}
	return s.SetGoalCount(ctx, n)
}

// apply installs next and persists it. The change stays in effect even
// when saving fails.
func (s *Settings) apply(ctx context.Context, next model.Config) error {
	s.cfg = next
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
