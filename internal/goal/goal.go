// Package goal maps document metrics to goal progress.
package goal

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/verte-zerg/wordgoal/internal/model"
)

// ErrInvalidConfiguration reports a goal count that is not positive.
var ErrInvalidConfiguration = errors.New("goal count must be > 0")

// Compute returns the progress toward the configured goal. ok is false when
// goal tracking is disabled or the goal count is invalid.
func Compute(m model.Metrics, cfg model.Config) (p model.Progress, ok bool) {
	if !cfg.EnableGoal {
		return model.Progress{}, false
	}
	current := Current(m, cfg.GoalType)
	pct, err := Percentage(current, cfg.GoalCount)
	if err != nil {
		return model.Progress{}, false
	}
	return model.Progress{Current: current, Goal: cfg.GoalCount, Percentage: pct}, true
}

// Current selects the count a goal of type t is measured in.
func Current(m model.Metrics, t model.GoalType) int {
	if t == model.GoalCharacters {
		return m.CharCount
	}
	return m.WordCount
}

// Percentage returns current/goal as a whole percentage, rounded half up and
// clamped to [0, 100].
func Percentage(current, goal int) (int, error) {
	if goal <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidConfiguration, goal)
	}
	if current <= 0 {
		return 0, nil
	}
	if current >= goal {
		return 100, nil
	}
	// 0 < current < goal, so the 128-bit product's high word stays below goal
	// and the quotient is at most 100.
	hi, lo := bits.Mul64(uint64(current), 100)
	q, r := bits.Div64(hi, lo, uint64(goal))
	if 2*r >= uint64(goal) {
		q++
	}
	return int(q), nil
}

// Label renders progress as "current/goal (P%)".
func Label(p model.Progress) string {
	return fmt.Sprintf("%d/%d (%d%%)", p.Current, p.Goal, p.Percentage)
}
