package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/wordgoal/internal/goal"
	"github.com/verte-zerg/wordgoal/internal/model"
)

const (
	defaultPanelWidth = 60
	minBarWidth       = 10
	barFilled         = "█"
	barEmpty          = "░"
)

var (
	barFilledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	barDoneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	barEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	barLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// goalPanel renders goal progress as a bar with a label.
type goalPanel struct {
	progress model.Progress
	visible  bool
}

// SetProgress implements counter.ProgressSink.
func (p *goalPanel) SetProgress(pr model.Progress) {
	p.progress = pr
	p.visible = true
}

// Hide implements counter.ProgressSink.
func (p *goalPanel) Hide() {
	p.progress = model.Progress{}
	p.visible = false
}

// View renders the bar and label within width cells.
func (p *goalPanel) View(width int) string {
	if !p.visible {
		return ""
	}
	label := goal.Label(p.progress)
	barWidth := width - runewidth.StringWidth(label) - 1
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}
	filled, empty := barCells(p.progress.Percentage, barWidth)
	style := barFilledStyle
	if p.progress.Percentage >= 100 {
		style = barDoneStyle
	}
	bar := style.Render(strings.Repeat(barFilled, filled)) + barEmptyStyle.Render(strings.Repeat(barEmpty, empty))
	return bar + " " + barLabelStyle.Render(label)
}

// barCells splits width into filled and empty cells for pct.
func barCells(pct, width int) (filled, empty int) {
	if width <= 0 {
		return 0, 0
	}
	pct = max(0, min(pct, 100))
	filled = pct * width / 100
	return filled, width - filled
}
