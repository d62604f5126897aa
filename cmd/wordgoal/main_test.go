package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/wordgoal/internal/model"
	"github.com/verte-zerg/wordgoal/internal/store"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	return filepath.Join(t.TempDir(), "wordgoal.db")
}

func TestCountStatusFromStdin(t *testing.T) {
	db := isolate(t)
	out, err := runCLI(t, "a, b; c!", "count", "--status", "--include-punct=false", "--db", db)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if out != "Characters: 5 | Words: 3\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCountEmptyStdin(t *testing.T) {
	db := isolate(t)
	out, err := runCLI(t, "", "count", "--status", "--db", db)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if out != "Characters: 0 | Words: 0\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCountUsesConfigFile(t *testing.T) {
	db := isolate(t)
	cfgPath := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "wordgoal", "config.toml")
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(cfgPath, []byte("[counter]\nenable-goal = true\ngoal-count = 4\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	doc := filepath.Join(t.TempDir(), "draft.md")
	if err := os.WriteFile(doc, []byte("a b"), 0o644); err != nil {
		t.Fatalf("write doc: %v", err)
	}

	out, err := runCLI(t, "", "count", "--db", db, doc)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", out)
	}
	if !strings.HasSuffix(lines[1], "2/4 (50%)") {
		t.Fatalf("unexpected row: %q", lines[1])
	}
}

func TestCountPersistedSettingsOverrideFileAndFlagsOverrideBoth(t *testing.T) {
	db := isolate(t)
	st, err := store.Open(db)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	cfg := model.DefaultConfig()
	cfg.EnableGoal = true
	cfg.GoalCount = 10
	if err := st.Save(context.Background(), cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	out, err := runCLI(t, "a b", "count", "--status", "--db", db)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if out != "Characters: 3 | Words: 2 | Goal: 20%\n" {
		t.Fatalf("unexpected output: %q", out)
	}

	out, err = runCLI(t, "a b", "count", "--status", "--db", db, "--goal-count", "4", "--goal-type", "characters")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if out != "Characters: 3 | Words: 2 | Goal: 75%\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCountStatusWithMaximumGoalCount(t *testing.T) {
	db := isolate(t)
	out, err := runCLI(t, "one two three", "count", "--status", "--goal", "--goal-count", "9223372036854775807", "--db", db)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if out != "Characters: 13 | Words: 3 | Goal: 0%\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCountRejectsInvalidFlags(t *testing.T) {
	db := isolate(t)
	if _, err := runCLI(t, "", "count", "--db", db, "--goal-count", "0"); err == nil {
		t.Fatalf("expected error for zero goal count")
	}
	if _, err := runCLI(t, "", "count", "--db", db, "--goal-type", "pages"); err == nil {
		t.Fatalf("expected error for unknown goal type")
	}
}

func TestCountMissingFile(t *testing.T) {
	db := isolate(t)
	missing := filepath.Join(t.TempDir(), "missing.md")
	out, err := runCLI(t, "", "count", "--db", db, missing)
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !strings.Contains(out, "N/A") {
		t.Fatalf("expected N/A row, got %q", out)
	}
}

func TestDefaultConfigTemplate(t *testing.T) {
	tmpl := defaultConfigTemplate()
	if !strings.Contains(tmpl, "[counter]") || !strings.Contains(tmpl, `goal-type = "words"`) {
		t.Fatalf("unexpected template: %s", tmpl)
	}
}
