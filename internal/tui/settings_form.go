package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordgoal/internal/metrics"
	"github.com/verte-zerg/wordgoal/internal/model"
	"github.com/verte-zerg/wordgoal/internal/settings"
)

const (
	fieldSpaces = iota
	fieldPunct
	fieldGoal
	fieldGoalType
	fieldGoalCount
	fieldCount
)

var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	descStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// settingsForm is the state of the settings overlay.
type settingsForm struct {
	index     int
	goalInput textinput.Model
	err       string
}

func newSettingsForm() settingsForm {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 9
	input.Width = 10
	input.Placeholder = strconv.Itoa(model.DefaultGoalCount)
	return settingsForm{goalInput: input}
}

func (f *settingsForm) focusCmd() tea.Cmd {
	if f.index == fieldGoalCount {
		return f.goalInput.Focus()
	}
	f.goalInput.Blur()
	return nil
}

func (m *Model) openSettings() {
	m.settingsOpen = true
	m.editor.Blur()
	m.form.err = ""
	m.form.goalInput.SetValue(strconv.Itoa(m.settings.Config().GoalCount))
}

func (m *Model) closeSettings() tea.Cmd {
	m.settingsOpen = false
	m.form.goalInput.Blur()
	m.form.err = ""
	if !m.docOpen {
		return nil
	}
	return m.editor.Focus()
}

func (m *Model) moveField(delta int) tea.Cmd {
	if m.form.index == fieldGoalCount {
		// Leaving the field discards unapplied input.
		m.form.goalInput.SetValue(strconv.Itoa(m.settings.Config().GoalCount))
		m.form.err = ""
	}
	m.form.index = (m.form.index + delta + fieldCount) % fieldCount
	return m.form.focusCmd()
}

func (m *Model) updateSettings(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "ctrl+o":
		return m.closeSettings()
	case "up", "shift+tab":
		return m.moveField(-1)
	case "down", "tab":
		return m.moveField(1)
	}

	if m.form.index == fieldGoalCount {
		if msg.Type == tea.KeyEnter {
			text := m.form.goalInput.Value()
			m.mutate(func(ctx context.Context, s *settings.Settings) error {
				return s.SetGoalCountText(ctx, text)
			})
			return nil
		}
		var cmd tea.Cmd
		m.form.goalInput, cmd = m.form.goalInput.Update(msg)
		return cmd
	}

	switch msg.String() {
	case " ", "enter", "left", "right", "h", "l":
	default:
		return nil
	}
	switch m.form.index {
	case fieldSpaces:
		m.mutate(func(ctx context.Context, s *settings.Settings) error {
			return s.ToggleIncludeSpaces(ctx)
		})
	case fieldPunct:
		m.mutate(func(ctx context.Context, s *settings.Settings) error {
			return s.ToggleIncludePunctuation(ctx)
		})
	case fieldGoal:
		m.mutate(func(ctx context.Context, s *settings.Settings) error {
			return s.ToggleGoal(ctx)
		})
	case fieldGoalType:
		next := model.GoalCharacters
		if m.settings.Config().GoalType == model.GoalCharacters {
			next = model.GoalWords
		}
		m.mutate(func(ctx context.Context, s *settings.Settings) error {
			return s.SetGoalType(ctx, next)
		})
	}
	return nil
}

func (m *Model) renderSettings() string {
	cfg := m.settings.Config()
	rows := []string{
		checkbox(cfg.IncludeSpaces) + " Include spaces",
		checkbox(cfg.IncludePunctuation) + " Include punctuation",
		checkbox(cfg.EnableGoal) + " Track a goal",
		"Goal type: < " + string(cfg.GoalType) + " >",
		"Goal count: " + m.form.goalInput.View(),
	}
	descs := []string{
		"Count whitespace as characters.",
		"Count " + strings.Join(strings.Split(metrics.PunctSet, ""), " ") + " as characters.",
		"Show progress toward a goal.",
		"Measure the goal in words or characters.",
		"Type a positive number and press enter.",
	}

	lines := []string{titleStyle.Render("Settings"), ""}
	for i, row := range rows {
		if i == m.form.index {
			lines = append(lines, selectedStyle.Render("> "+row))
			lines = append(lines, "  "+descStyle.Render(descs[i]))
			continue
		}
		lines = append(lines, "  "+row)
	}
	if m.form.err != "" {
		lines = append(lines, "", errorStyle.Render(m.form.err))
	}
	lines = append(lines, "", descStyle.Render("↑/↓ move · space toggle · enter apply · esc close"))
	return modalStyle.Render(strings.Join(lines, "\n"))
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
