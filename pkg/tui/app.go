package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/pluqqy/tagselect/pkg/selection"
	"github.com/pluqqy/tagselect/pkg/tags"
)

// StatusMsg sets the status bar text until statusTimeout passes
type StatusMsg string

type clearStatusMsg struct {
	seq int
}

const statusTimeout = 3 * time.Second

// copyToClipboard is swapped out in tests
var copyToClipboard = clipboard.WriteAll

// AppOptions configures an App
type AppOptions struct {
	Logger *log.Logger
	// Transitioner overrides animation capability detection
	Transitioner selection.Transitioner
}

// App hosts a Selector loaded from a tag registry
type App struct {
	selector  *Selector
	registry  *tags.Registry
	logger    *log.Logger
	quit      key.Binding
	copy      key.Binding
	width     int
	height    int
	statusMsg string
	statusSeq int
}

// NewApp creates the app for a registry's tags and initial selection
func NewApp(registry *tags.Registry, opts AppOptions) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	settings := registry.Settings()
	selector := NewSelector(registry.Names(), registry.Selected(), SelectorOptions{
		UI:     settings.UI,
		Colors: registry.Color,
		Describe: func(tag string) string {
			if t, ok := registry.GetTag(tag); ok {
				return t.Description
			}
			return ""
		},
		Logger:       logger,
		Transitioner: opts.Transitioner,
	})

	a := &App{
		selector: selector,
		registry: registry,
		logger:   logger,
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy selection"),
		),
	}

	selector.Controller().OnChange(func(n selection.Notification) {
		a.logger.Info("selected tags changed", "op", n.Op, "tag", n.Tag, "selected", n.Selected)
	})
	return a
}

// Selector returns the hosted widget
func (a *App) Selector() *Selector {
	return a.selector
}

// Selected returns the current selection
func (a *App) Selected() []string {
	return a.selector.Controller().Selected()
}

func (a *App) Init() tea.Cmd {
	return a.selector.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.selector.SetWidth(min(msg.Width, a.registry.Settings().UI.Width))
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.quit):
			return a, tea.Quit
		case key.Matches(msg, a.copy):
			return a, copySelection(a.Selected())
		}

	case StatusMsg:
		return a, a.setStatus(string(msg))

	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
		}
		return a, nil

	case SelectionChangedMsg:
		verb := "Selected"
		if msg.Op == selection.OpUnselect {
			verb = "Unselected"
		}
		return a, a.setStatus(fmt.Sprintf("✓ %s %s (%d selected)", verb, msg.Tag, len(msg.Selected)))
	}

	m, cmd := a.selector.Update(msg)
	if s, ok := m.(*Selector); ok {
		a.selector = s
	}
	return a, cmd
}

// setStatus shows text and schedules clearing it. A newer status keeps the
// older one's clear from firing.
func (a *App) setStatus(text string) tea.Cmd {
	a.statusMsg = text
	a.statusSeq++
	seq := a.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (a *App) View() string {
	content := a.selector.View()

	if a.statusMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, StatusStyle.Render(a.statusMsg))
	}
	return content
}

func copySelection(selected []string) tea.Cmd {
	return func() tea.Msg {
		if len(selected) == 0 {
			return StatusMsg("Nothing selected to copy")
		}
		if err := copyToClipboard(strings.Join(selected, ", ")); err != nil {
			return StatusMsg(fmt.Sprintf("× Failed to copy selection: %v", err))
		}
		return StatusMsg(fmt.Sprintf("✓ Copied %d tag(s) to clipboard", len(selected)))
	}
}
