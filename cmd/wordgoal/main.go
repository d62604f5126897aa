// Package main provides the CLI entrypoint for wordgoal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/wordgoal/internal/config"
	"github.com/verte-zerg/wordgoal/internal/counter"
	"github.com/verte-zerg/wordgoal/internal/document"
	"github.com/verte-zerg/wordgoal/internal/model"
	"github.com/verte-zerg/wordgoal/internal/report"
	"github.com/verte-zerg/wordgoal/internal/settings"
	"github.com/verte-zerg/wordgoal/internal/store"
	"github.com/verte-zerg/wordgoal/internal/tui"
)

// counterFlags holds the flags shared by the editor and count commands.
type counterFlags struct {
	includeSpaces bool
	includePunct  bool
	enableGoal    bool
	goalType      string
	goalCount     int
	dbPath        string
}

var (
	editFlags  counterFlags
	countFlags counterFlags

	countStatus bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordgoal [file]",
		Short:         "Terminal editor with live character, word and goal counts",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runEditCmd,
	}
	addCounterFlags(rootCmd, &editFlags)

	rootCmd.AddCommand(newCountCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addCounterFlags(cmd *cobra.Command, f *counterFlags) {
	cmd.Flags().BoolVar(&f.includeSpaces, "include-spaces", model.DefaultIncludeSpaces, "count whitespace as characters")
	cmd.Flags().BoolVar(&f.includePunct, "include-punct", model.DefaultIncludePunctuation, "count punctuation as characters")
	cmd.Flags().BoolVar(&f.enableGoal, "goal", model.DefaultEnableGoal, "track progress toward a goal")
	cmd.Flags().StringVar(&f.goalType, "goal-type", string(model.DefaultGoalType), "goal unit (words|characters)")
	cmd.Flags().IntVar(&f.goalCount, "goal-count", model.DefaultGoalCount, "goal size")
	cmd.Flags().StringVar(&f.dbPath, "db", "", "settings database path (default: XDG data dir)")
}

func runEditCmd(cmd *cobra.Command, args []string) error {
	st, err := openStore(editFlags.dbPath)
	if err != nil {
		return err
	}
	defer closeStore(st)

	s, err := loadSettings(cmd, &editFlags, st)
	if err != nil {
		return err
	}

	path, text := "", ""
	if len(args) == 1 {
		path = args[0]
		text, err = document.Load(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			// New file; created on first save.
			text = ""
		}
	}

	m := tui.NewModel(s, path, text)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [file...]",
		Short: "Print counts for files (stdin when none or '-')",
		RunE:  runCountCmd,
	}
	addCounterFlags(cmd, &countFlags)
	cmd.Flags().BoolVar(&countStatus, "status", false, "print the status line instead of a table")
	return cmd
}

func runCountCmd(cmd *cobra.Command, args []string) error {
	st, err := openStore(countFlags.dbPath)
	if err != nil {
		return err
	}
	defer closeStore(st)

	s, err := loadSettings(cmd, &countFlags, st)
	if err != nil {
		return err
	}
	cfg := s.Config()

	if len(args) == 0 {
		args = []string{"-"}
	}
	rows := make([]report.Row, 0, len(args))
	failed := 0
	for _, name := range args {
		text, err := readInput(cmd, name)
		if err != nil {
			logErrf("failed to read %s: %v\n", name, err)
			failed++
			rows = append(rows, report.Row{Name: name, Snapshot: counter.Evaluate("", false, cfg)})
			continue
		}
		rows = append(rows, report.Row{Name: name, Snapshot: counter.Evaluate(text, true, cfg)})
	}

	out := cmd.OutOrStdout()
	if countStatus {
		for _, row := range rows {
			if _, err := fmt.Fprintln(out, row.Snapshot.Status); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	} else {
		opts := report.Options{ShowGoal: cfg.EnableGoal}
		if fd := int(os.Stdout.Fd()); out == os.Stdout && term.IsTerminal(fd) {
			opts.Styled = true
			if width, _, err := term.GetSize(fd); err == nil {
				opts.Width = width
			}
		}
		if err := report.Render(out, rows, opts); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("failed to read %d of %d inputs", failed, len(args))
	}
	return nil
}

func readInput(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		return document.Read(cmd.InOrStdin())
	}
	return document.Load(name)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func openStore(path string) (*store.Store, error) {
	if path == "" {
		path = config.DefaultDBPath()
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

// loadSettings layers defaults, the config file, persisted settings and
// explicitly set flags, in that order.
func loadSettings(cmd *cobra.Command, f *counterFlags, st *store.Store) (*settings.Settings, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	filePartial, err := fileCfg.Counter.Partial()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	base := model.DefaultConfig().Merge(filePartial)

	s, err := settings.Load(context.Background(), st, base)
	if err != nil {
		// Persisted settings are optional; keep going with the file layer.
		logErrf("%v\n", err)
	}
	loaded := s.Config()

	applyBoolConfig(cmd, "include-spaces", &f.includeSpaces, loaded.IncludeSpaces)
	applyBoolConfig(cmd, "include-punct", &f.includePunct, loaded.IncludePunctuation)
	applyBoolConfig(cmd, "goal", &f.enableGoal, loaded.EnableGoal)
	applyStringConfig(cmd, "goal-type", &f.goalType, string(loaded.GoalType))
	applyIntConfig(cmd, "goal-count", &f.goalCount, loaded.GoalCount)

	cfg, err := f.config()
	if err != nil {
		return nil, err
	}
	if cfg == loaded {
		return s, nil
	}
	// Flag overrides apply to this run only until a setting is changed.
	return settings.New(cfg, st), nil
}

func (f *counterFlags) config() (model.Config, error) {
	goalType, err := model.ParseGoalType(f.goalType)
	if err != nil {
		return model.Config{}, fmt.Errorf("--goal-type: %w", err)
	}
	cfg := model.Config{
		IncludeSpaces:      f.includeSpaces,
		IncludePunctuation: f.includePunct,
		EnableGoal:         f.enableGoal,
		GoalType:           goalType,
		GoalCount:          f.goalCount,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg model.Config) error {
	if cfg.GoalCount <= 0 {
		return fmt.Errorf("--goal-count must be > 0")
	}
	if !cfg.GoalType.Valid() {
		return fmt.Errorf("--goal-type must be %q or %q", model.GoalWords, model.GoalCharacters)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target *string, value string) {
	if cmd.Flags().Changed(name) {
		return
	}
	*target = value
}

func applyIntConfig(cmd *cobra.Command, name string, target *int, value int) {
	if cmd.Flags().Changed(name) {
		return
	}
	*target = value
}

func applyBoolConfig(cmd *cobra.Command, name string, target *bool, value bool) {
	if cmd.Flags().Changed(name) {
		return
	}
	*target = value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordgoal configuration
# Uncomment a value to enable it. Settings changed in the editor and CLI
# flags take precedence over this file.

[counter]
# include-spaces = %t        # Count whitespace as characters
# include-punctuation = %t   # Count . , / # ! $ %% ^ & * ; : { } = - _ `+"`"+` ~ ( ) as characters
# enable-goal = %t          # Track progress toward a goal
# goal-type = %q        # "words" or "characters"
# goal-count = %d           # Goal size, must be > 0
`,
		model.DefaultIncludeSpaces,
		model.DefaultIncludePunctuation,
		model.DefaultEnableGoal,
		model.DefaultGoalType,
		model.DefaultGoalCount,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
