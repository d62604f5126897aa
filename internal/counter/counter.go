// Package counter connects the calculators to a host editor. The host owns
// event subscription and calls Updater.Update after every relevant event.
package counter

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/wordgoal/internal/goal"
	"github.com/verte-zerg/wordgoal/internal/metrics"
	"github.com/verte-zerg/wordgoal/internal/model"
)

// UnavailableStatus is shown when no document is active.
const UnavailableStatus = "Characters: N/A"

// DocumentSource supplies the text of the active document. ok is false when
// no document is active, which differs from an empty document.
type DocumentSource interface {
	CurrentText() (text string, ok bool)
}

// ConfigSource supplies the configuration for a recomputation.
type ConfigSource interface {
	Config() model.Config
}

// StatusSink receives the status line.
type StatusSink interface {
	SetStatus(status string)
}

// ProgressSink renders goal progress.
type ProgressSink interface {
	SetProgress(p model.Progress)
	Hide()
}

// Snapshot is the result of one recomputation.
type Snapshot struct {
	Available   bool
	Metrics     model.Metrics
	Progress    model.Progress
	HasProgress bool
	Status      string
}

// Evaluate computes the snapshot for a document state.
func Evaluate(text string, available bool, cfg model.Config) Snapshot {
	if !available {
		return Snapshot{Status: UnavailableStatus}
	}
	snap := Snapshot{
		Available: true,
		Metrics:   metrics.Compute(text, cfg),
	}
	snap.Progress, snap.HasProgress = goal.Compute(snap.Metrics, cfg)
	if snap.HasProgress {
		snap.Status = FormatStatus(snap.Metrics, &snap.Progress)
	} else {
		snap.Status = FormatStatus(snap.Metrics, nil)
	}
	return snap
}

// FormatStatus renders "Characters: N | Words: M", followed by
// " | Goal: P%" when p is not nil.
func FormatStatus(m model.Metrics, p *model.Progress) string {
	parts := []string{
		fmt.Sprintf("Characters: %d", m.CharCount),
		fmt.Sprintf("Words: %d", m.WordCount),
	}
	if p != nil {
		parts = append(parts, fmt.Sprintf("Goal: %d%%", p.Percentage))
	}
	return strings.Join(parts, " | ")
}

// Updater recomputes counts and pushes them to the display sinks.
type Updater struct {
	Config ConfigSource
	Source DocumentSource
	Status StatusSink
	// Panel is nil while no progress panel is open.
	Panel ProgressSink
}

// Update reads the active document, recomputes and notifies the sinks.
func (u *Updater) Update() Snapshot {
	var (
		text      string
		available bool
	)
	if u.Source != nil {
		text, available = u.Source.CurrentText()
	}
	snap := Evaluate(text, available, u.Config.Config())
	if u.Status != nil {
		u.Status.SetStatus(snap.Status)
	}
	if u.Panel != nil {
		if snap.HasProgress {
			u.Panel.SetProgress(snap.Progress)
		} else {
			u.Panel.Hide()
		}
	}
	return snap
}
