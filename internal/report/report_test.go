package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/wordgoal/internal/counter"
	"github.com/verte-zerg/wordgoal/internal/model"
)

func TestRenderWithGoal(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.EnableGoal = true
	cfg.GoalCount = 4
	rows := []Row{
		{Name: "draft.md", Snapshot: counter.Evaluate("hello world", true, cfg)},
		{Name: "empty.md", Snapshot: counter.Evaluate("", true, cfg)},
	}
	var buf bytes.Buffer
	if err := Render(&buf, rows, Options{ShowGoal: true}); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "File") || !strings.HasSuffix(lines[0], "Goal") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "11") || !strings.HasSuffix(lines[1], "2/4 (50%)") {
		t.Fatalf("unexpected draft row: %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "0/4 (0%)") {
		t.Fatalf("unexpected empty row: %q", lines[2])
	}
}

func TestRenderWithoutGoal(t *testing.T) {
	rows := []Row{{Name: "-", Snapshot: counter.Evaluate("a b c", true, model.DefaultConfig())}}
	var buf bytes.Buffer
	if err := Render(&buf, rows, Options{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(buf.String(), "Goal") {
		t.Fatalf("goal column should be hidden: %q", buf.String())
	}
}

func TestRenderUnavailableRow(t *testing.T) {
	rows := []Row{{Name: "gone.md", Snapshot: counter.Evaluate("", false, model.DefaultConfig())}}
	var buf bytes.Buffer
	if err := Render(&buf, rows, Options{ShowGoal: true}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "N/A") {
		t.Fatalf("expected N/A row: %q", buf.String())
	}
}

func TestRenderTruncatesNames(t *testing.T) {
	rows := []Row{{Name: strings.Repeat("x", 60) + ".md", Snapshot: counter.Evaluate("a", true, model.DefaultConfig())}}
	var buf bytes.Buffer
	if err := Render(&buf, rows, Options{Width: 30}); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if displayWidth(line) > 30 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
}
