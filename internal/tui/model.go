// Package tui provides the Bubble Tea editor with live counts.
package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordgoal/internal/counter"
	"github.com/verte-zerg/wordgoal/internal/document"
	"github.com/verte-zerg/wordgoal/internal/settings"
)

const saveTimeout = 2 * time.Second

type keyMap struct {
	Quit     key.Binding
	ForceQ   key.Binding
	Save     key.Binding
	New      key.Binding
	Close    key.Binding
	Panel    key.Binding
	Settings key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	ForceQ:   key.NewBinding(key.WithKeys("ctrl+c")),
	Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	New:      key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new")),
	Close:    key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "close")),
	Panel:    key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "goal panel")),
	Settings: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "settings")),
}

var (
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// statusLine receives the status text for the footer.
type statusLine struct {
	text string
}

func (s *statusLine) SetStatus(status string) {
	s.text = status
}

// Model implements the Bubble Tea editor UI.
type Model struct {
	settings *settings.Settings
	updater  counter.Updater

	editor  textarea.Model
	docOpen bool
	path    string
	dirty   bool
	last    string

	status    *statusLine
	panel     *goalPanel
	panelOpen bool

	settingsOpen bool
	form         settingsForm

	message     string
	confirmQuit bool

	width  int
	height int
}

// NewModel constructs the editor for the document at path holding text.
// An empty path starts an untitled document.
func NewModel(s *settings.Settings, path, text string) *Model {
	editor := textarea.New()
	editor.ShowLineNumbers = false
	editor.Prompt = ""
	editor.Placeholder = "Start writing..."
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.SetValue(text)
	editor.Focus()

	m := &Model{
		settings: s,
		editor:   editor,
		docOpen:  true,
		path:     path,
		last:     text,
		status:   &statusLine{},
		panel:    &goalPanel{},
	}
	m.updater = counter.Updater{Config: s, Source: m, Status: m.status}
	m.form = newSettingsForm()
	m.setPanelOpen(s.Config().EnableGoal)
	m.refresh()
	return m
}

// CurrentText implements counter.DocumentSource.
func (m *Model) CurrentText() (string, bool) {
	if !m.docOpen {
		return "", false
	}
	return m.editor.Value(), true
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQ) {
			return m, tea.Quit
		}
		if m.settingsOpen {
			return m, m.updateSettings(msg)
		}
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}
	if !m.docOpen {
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.afterEdit()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !key.Matches(msg, keys.Quit) {
		m.confirmQuit = false
	}
	switch {
	case key.Matches(msg, keys.Quit):
		if m.docOpen && m.dirty && !m.confirmQuit {
			m.confirmQuit = true
			m.message = "unsaved changes; press ctrl+q again to quit"
			return nil, true
		}
		return tea.Quit, true
	case key.Matches(msg, keys.Save):
		m.save()
		return nil, true
	case key.Matches(msg, keys.New):
		m.openDocument("", "")
		m.message = ""
		return m.editor.Focus(), true
	case key.Matches(msg, keys.Close):
		m.closeDocument()
		return nil, true
	case key.Matches(msg, keys.Panel):
		m.setPanelOpen(!m.panelOpen)
		m.refresh()
		return nil, true
	case key.Matches(msg, keys.Settings):
		m.openSettings()
		return m.form.focusCmd(), true
	}
	return nil, false
}

// afterEdit recomputes counts when the document text changed.
func (m *Model) afterEdit() {
	value := m.editor.Value()
	if value == m.last {
		return
	}
	m.last = value
	m.dirty = true
	m.message = ""
	m.refresh()
}

func (m *Model) refresh() {
	m.updater.Update()
}

func (m *Model) setPanelOpen(open bool) {
	m.panelOpen = open
	if open {
		m.updater.Panel = m.panel
		m.layout()
		return
	}
	m.updater.Panel = nil
	m.panel.Hide()
	m.layout()
}

func (m *Model) openDocument(path, text string) {
	m.path = path
	m.editor.SetValue(text)
	m.last = text
	m.dirty = false
	m.docOpen = true
	m.refresh()
}

func (m *Model) closeDocument() {
	m.editor.Reset()
	m.editor.Blur()
	m.last = ""
	m.path = ""
	m.dirty = false
	m.docOpen = false
	m.message = "document closed; ctrl+n for a new one"
	m.refresh()
}

func (m *Model) save() {
	if !m.docOpen {
		m.message = "no document to save"
		return
	}
	if m.path == "" {
		m.message = "untitled document; start with: wordgoal <file>"
		return
	}
	if err := document.Save(m.path, m.editor.Value()); err != nil {
		m.message = err.Error()
		return
	}
	m.dirty = false
	m.message = "saved " + m.path
}

// mutate applies a settings change and recomputes. Invalid goal input is
// reported on the form and leaves the configuration untouched.
func (m *Model) mutate(fn func(ctx context.Context, s *settings.Settings) error) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	wasEnabled := m.settings.Config().EnableGoal
	err := fn(ctx, m.settings)
	switch {
	case errors.Is(err, settings.ErrInvalidGoalInput):
		m.form.err = "goal count must be a positive whole number"
		return
	case err != nil:
		m.message = err.Error()
	default:
		m.form.err = ""
	}
	if enabled := m.settings.Config().EnableGoal; enabled && !wasEnabled {
		m.setPanelOpen(true)
	}
	m.refresh()
}

func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.editor.SetWidth(m.width)
	editorHeight := m.height - m.chromeHeight()
	if editorHeight < 1 {
		editorHeight = 1
	}
	m.editor.SetHeight(editorHeight)
}

// chromeHeight is the number of lines below the editor.
func (m *Model) chromeHeight() int {
	lines := 2
	if m.panelOpen {
		lines++
	}
	return lines
}

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch {
	case m.settingsOpen:
		body = m.renderSettings()
		if m.width > 0 && m.height > 0 {
			body = lipgloss.Place(m.width, max(m.height-m.chromeHeight(), 1), lipgloss.Center, lipgloss.Center, body)
		}
	case m.docOpen:
		body = m.editor.View()
	default:
		body = emptyStyle.Render("No document open.")
		if m.width > 0 && m.height > 0 {
			body = lipgloss.Place(m.width, max(m.height-m.chromeHeight(), 1), lipgloss.Center, lipgloss.Center, body)
		}
	}
	lines := []string{body}
	if m.panelOpen {
		lines = append(lines, m.renderPanel())
	}
	lines = append(lines, m.renderFooter(), m.renderHelp())
	return strings.Join(lines, "\n")
}

func (m *Model) renderPanel() string {
	switch {
	case m.panel.visible:
		width := m.width
		if width <= 0 {
			width = defaultPanelWidth
		}
		return m.panel.View(width)
	case m.docOpen && !m.settings.Config().EnableGoal:
		return emptyStyle.Render("Goal tracking is off; enable it in settings (ctrl+o).")
	default:
		return ""
	}
}

func (m *Model) renderFooter() string {
	segments := []string{statusStyle.Render(m.status.text)}
	if m.docOpen {
		name := "untitled"
		if m.path != "" {
			name = filepath.Base(m.path)
		}
		if m.dirty {
			name += " [+]"
		}
		segments = append(segments, footerStyle.Render(name))
	}
	if m.message != "" {
		segments = append(segments, messageStyle.Render(m.message))
	}
	return strings.Join(segments, "  ")
}

func (m *Model) renderHelp() string {
	bindings := []key.Binding{keys.Save, keys.New, keys.Close, keys.Panel, keys.Settings, keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return footerStyle.Render(strings.Join(parts, " · "))
}
