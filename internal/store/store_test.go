package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/wordgoal/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "wordgoal.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestLoadEmpty(t *testing.T) {
	st := openTestStore(t)
	p, err := st.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p != (model.PartialConfig{}) {
		t.Fatalf("expected empty partial config, got %+v", p)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	cfg := model.Config{
		IncludeSpaces:      false,
		IncludePunctuation: true,
		EnableGoal:         true,
		GoalType:           model.GoalCharacters,
		GoalCount:          4200,
	}
	if err := st.Save(ctx, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	cfg.GoalCount = 4300
	if err := st.Save(ctx, cfg); err != nil {
		t.Fatalf("save again: %v", err)
	}
	p, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := model.DefaultConfig().Merge(p); got != cfg {
		t.Fatalf("expected %+v, got %+v", cfg, got)
	}
}

func TestLoadIgnoresUnknownAndInvalidRows(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	rows := [][2]string{
		{"legacy-key", "whatever"},
		{keyIncludeSpaces, "not-a-bool"},
		{keyGoalCount, "-3"},
		{keyGoalType, "pages"},
		{keyEnableGoal, "true"},
	}
	for _, kv := range rows {
		if _, err := st.db.ExecContext(ctx, `INSERT INTO settings (key, value) VALUES (?, ?)`, kv[0], kv[1]); err != nil {
			t.Fatalf("insert %s: %v", kv[0], err)
		}
	}
	p, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.IncludeSpaces != nil || p.GoalCount != nil || p.GoalType != nil {
		t.Fatalf("invalid rows should be absent: %+v", p)
	}
	if p.EnableGoal == nil || !*p.EnableGoal {
		t.Fatalf("expected enable-goal to load")
	}
}

func TestReopenKeepsSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordgoal.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	cfg := model.DefaultConfig()
	cfg.IncludePunctuation = false
	if err := st.Save(context.Background(), cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	st, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() {
		_ = st.Close()
	}()
	p, err := st.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.IncludePunctuation == nil || *p.IncludePunctuation {
		t.Fatalf("expected include-punctuation=false after reopen")
	}
}
