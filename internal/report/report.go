package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordgoal/internal/counter"
	"github.com/verte-zerg/wordgoal/internal/goal"
)

// Row is one counted document.
type Row struct {
	Name     string
	Snapshot counter.Snapshot
}

// Options controls table rendering.
type Options struct {
	// ShowGoal adds the Goal column.
	ShowGoal bool
	// Width caps the line width in cells; 0 means unlimited.
	Width int
	// Styled renders the header in bold.
	Styled bool
}

const minNameWidth = 8

var headerStyle = lipgloss.NewStyle().Bold(true)

// Render writes an aligned table with one line per row.
func Render(w io.Writer, rows []Row, opts Options) error {
	headers := []string{"File", "Chars", "Words"}
	if opts.ShowGoal {
		headers = append(headers, "Goal")
	}
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, rowCells(row, opts.ShowGoal))
	}
	fitNames(cells, headers, opts.Width)

	lines := formatTable(headers, cells)
	for i, line := range lines {
		if i == 0 && opts.Styled {
			line = headerStyle.Render(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func rowCells(row Row, showGoal bool) []string {
	snap := row.Snapshot
	if !snap.Available {
		out := []string{row.Name, "N/A", "N/A"}
		if showGoal {
			out = append(out, "-")
		}
		return out
	}
	out := []string{
		row.Name,
		strconv.Itoa(snap.Metrics.CharCount),
		strconv.Itoa(snap.Metrics.WordCount),
	}
	if showGoal {
		if snap.HasProgress {
			out = append(out, goal.Label(snap.Progress))
		} else {
			out = append(out, "-")
		}
	}
	return out
}

// fitNames truncates the name column so lines fit in width.
func fitNames(cells [][]string, headers []string, width int) {
	if width <= 0 {
		return
	}
	rest := 0
	for _, w := range columnWidths(headers, cells)[1:] {
		rest += w + len(gutter)
	}
	nameWidth := width - rest
	if nameWidth < minNameWidth {
		nameWidth = minNameWidth
	}
	for _, row := range cells {
		row[0] = truncate(row[0], nameWidth)
	}
}
