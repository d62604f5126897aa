package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/wordgoal/internal/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file: %v", err)
	}
	p, err := cfg.Counter.Partial()
	if err != nil {
		t.Fatalf("partial: %v", err)
	}
	if p != (model.PartialConfig{}) {
		t.Fatalf("expected empty layer, got %+v", p)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := writeConfig(t, `
[counter]
include-spaces = false
goal-type = "characters"
unknown-key = 3
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	p, err := cfg.Counter.Partial()
	if err != nil {
		t.Fatalf("partial: %v", err)
	}
	got := model.DefaultConfig().Merge(p)
	want := model.DefaultConfig()
	want.IncludeSpaces = false
	want.GoalType = model.GoalCharacters
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestPartialRejectsInvalidValues(t *testing.T) {
	for _, body := range []string{
		"[counter]\ngoal-count = 0\n",
		"[counter]\ngoal-type = \"pages\"\n",
	} {
		cfg, err := LoadConfig(writeConfig(t, body))
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if _, err := cfg.Counter.Partial(); err == nil {
			t.Fatalf("expected error for %q", body)
		}
	}
}

func TestLoadConfigDecodeError(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "[counter\n")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "wordgoal", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/tmp/data", "wordgoal", "wordgoal.db") {
		t.Fatalf("unexpected db path: %s", got)
	}
}
