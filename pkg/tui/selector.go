package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/pluqqy/tagselect/pkg/models"
	"github.com/pluqqy/tagselect/pkg/selection"
	"github.com/pluqqy/tagselect/pkg/styles"
)

// SelectorOptions configures a Selector
type SelectorOptions struct {
	UI models.UISettings
	// Colors resolves a tag's resting color; nil uses the palette
	Colors func(tag string) string
	// Describe returns a description shown under the focused tag
	Describe func(tag string) string
	// Sheet is the style registry chip rules are published to
	Sheet  *styles.Registry
	Logger *log.Logger
	// Transitioner overrides animation capability detection. An *Animator
	// given here is advanced by the selector's frame loop.
	Transitioner selection.Transitioner
}

// SelectionChangedMsg is emitted once for every settled select or unselect
type SelectionChangedMsg struct {
	Op       selection.Op
	Tag      string
	Selected []string
}

type settledMsg struct {
	note *selection.Notification
	err  error
}

type intent struct {
	op  selection.Op
	tag string
}

// Selector is the selectable-tag widget. Key presses become intents that are
// applied one at a time, in press order, through the controller.
type Selector struct {
	controller *selection.Controller
	animator   *Animator
	sheet      *styles.Registry
	keys       keyMap
	help       help.Model
	describe   func(string) string
	showHelp   bool
	ctx        context.Context

	width   atomic.Int64
	focus   Role
	cursors map[Role]int

	queue    []intent
	inflight bool
	ticking  bool
}

// NewSelector creates a selector for tags with an initial selection
func NewSelector(tags, selected []string, opts SelectorOptions) *Selector {
	sheet := opts.Sheet
	if sheet == nil {
		sheet = styles.Default
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Selector{
		sheet:    sheet,
		keys:     defaultKeyMap(),
		help:     help.New(),
		describe: opts.Describe,
		showHelp: !opts.UI.HideHelp,
		ctx:      context.Background(),
		focus:    RoleTag,
		cursors:  map[Role]int{RoleSelected: 0, RoleTag: 0},
	}
	width := opts.UI.Width
	if width <= 0 {
		width = models.DefaultUISettings().Width
	}
	s.width.Store(int64(width))
	s.help.ShowAll = false

	transitioner := opts.Transitioner
	if transitioner == nil {
		transitioner, s.animator = NewTransitioner(opts.UI, s.layout)
	} else if a, ok := transitioner.(*Animator); ok {
		// Frames only reach an animator the selector knows about
		s.animator = a
	}

	s.controller = selection.New(tags, selected,
		selection.WithTransitioner(transitioner),
		selection.WithStyleRegistrar(SheetRegistrar{Registry: sheet, Colors: opts.Colors}),
		selection.WithLogger(logger),
	)

	if len(s.controller.NotSelected()) == 0 && len(s.controller.Selected()) > 0 {
		s.focus = RoleSelected
	}
	return s
}

// Controller exposes the underlying state
func (s *Selector) Controller() *selection.Controller {
	return s.controller
}

// Animator returns the running animator, nil when animation is off
func (s *Selector) Animator() *Animator {
	return s.animator
}

// SetWidth sets the width the groups are laid out in
func (s *Selector) SetWidth(width int) {
	if width <= groupChrome {
		return
	}
	s.width.Store(int64(width))
	s.help.Width = width
}

// SetTags replaces the tag list. A running animation is cut short.
func (s *Selector) SetTags(tags []string) {
	if s.animator != nil {
		s.animator.Abort()
	}
	s.controller.SetTags(tags)
	s.clampCursors()
}

// SetSelected replaces the selection. A running animation is cut short.
func (s *Selector) SetSelected(selected []string) {
	if s.animator != nil {
		s.animator.Abort()
	}
	s.controller.SetSelected(selected)
	s.clampCursors()
}

// Select queues selecting tag
func (s *Selector) Select(tag string) tea.Cmd {
	s.queue = append(s.queue, intent{op: selection.OpSelect, tag: tag})
	return s.dispatch()
}

// Unselect queues unselecting tag
func (s *Selector) Unselect(tag string) tea.Cmd {
	s.queue = append(s.queue, intent{op: selection.OpUnselect, tag: tag})
	return s.dispatch()
}

// Busy reports whether an intent is running or waiting
func (s *Selector) Busy() bool {
	return s.inflight || len(s.queue) > 0
}

// Focus returns the focused group
func (s *Selector) Focus() Role {
	return s.focus
}

// Focused returns the chip under the cursor
func (s *Selector) Focused() (Slot, bool) {
	group := s.layout().Group(s.focus)
	cursor := s.cursors[s.focus]
	if cursor < 0 || cursor >= len(group) {
		return Slot{}, false
	}
	return group[cursor], true
}

func (s *Selector) Init() tea.Cmd {
	return nil
}

func (s *Selector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetWidth(msg.Width)
		return s, nil

	case tea.KeyMsg:
		return s, s.handleKey(msg)

	case frameMsg:
		if s.animator == nil {
			return s, nil
		}
		if s.animator.Advance(time.Time(msg)) || s.inflight {
			return s, s.animator.Tick()
		}
		s.ticking = false
		return s, nil

	case settledMsg:
		s.inflight = false
		s.clampCursors()

		var cmds []tea.Cmd
		if msg.err != nil {
			err := msg.err
			cmds = append(cmds, func() tea.Msg {
				return StatusMsg(fmt.Sprintf("× Selection change interrupted: %v", err))
			})
		}
		if msg.note != nil {
			note := *msg.note
			cmds = append(cmds, func() tea.Msg {
				return SelectionChangedMsg{Op: note.Op, Tag: note.Tag, Selected: note.Selected}
			})
		}
		cmds = append(cmds, s.dispatch())
		return s, tea.Batch(cmds...)
	}

	return s, nil
}

func (s *Selector) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.SwitchGroup):
		if s.focus == RoleTag {
			s.focus = RoleSelected
		} else {
			s.focus = RoleTag
		}
		s.clampCursors()

	case key.Matches(msg, s.keys.Left):
		if s.cursors[s.focus] > 0 {
			s.cursors[s.focus]--
		}

	case key.Matches(msg, s.keys.Right):
		if s.cursors[s.focus] < len(s.layout().Group(s.focus))-1 {
			s.cursors[s.focus]++
		}

	case key.Matches(msg, s.keys.Home):
		s.cursors[s.focus] = 0

	case key.Matches(msg, s.keys.End):
		s.cursors[s.focus] = max(len(s.layout().Group(s.focus))-1, 0)

	case key.Matches(msg, s.keys.Toggle):
		slot, ok := s.Focused()
		if !ok {
			return nil
		}
		if slot.Role == RoleSelected {
			return s.Unselect(slot.Tag)
		}
		return s.Select(slot.Tag)

	case key.Matches(msg, s.keys.Remove):
		if s.focus != RoleSelected {
			return nil
		}
		if slot, ok := s.Focused(); ok {
			return s.Unselect(slot.Tag)
		}

	case key.Matches(msg, s.keys.Help):
		s.help.ShowAll = !s.help.ShowAll
	}
	return nil
}

// dispatch starts the next queued intent when nothing is in flight
func (s *Selector) dispatch() tea.Cmd {
	if s.inflight || len(s.queue) == 0 {
		return nil
	}
	next := s.queue[0]
	s.queue = s.queue[1:]
	s.inflight = true

	controller, ctx := s.controller, s.ctx
	run := func() tea.Msg {
		var note *selection.Notification
		var err error
		if next.op == selection.OpSelect {
			note, err = controller.Select(ctx, next.tag)
		} else {
			note, err = controller.Unselect(ctx, next.tag)
		}
		return settledMsg{note: note, err: err}
	}

	if s.animator == nil || s.ticking {
		return run
	}
	s.ticking = true
	return tea.Batch(run, s.animator.Tick())
}

func (s *Selector) clampCursors() {
	l := s.layout()
	for _, role := range []Role{RoleSelected, RoleTag} {
		n := len(l.Group(role))
		if s.cursors[role] >= n {
			s.cursors[role] = max(n-1, 0)
		}
		if s.cursors[role] < 0 {
			s.cursors[role] = 0
		}
	}
}

func (s *Selector) layout() Layout {
	return ComputeLayout(s.controller.Snapshot(), int(s.width.Load()))
}

func (s *Selector) View() string {
	l := s.layout()
	width := int(s.width.Load())

	var b strings.Builder
	b.WriteString(s.renderGroup("SELECTED", l.Selected, RoleSelected, width, "(no selected tags)"))
	b.WriteString("\n")
	b.WriteString(s.renderGroup("TAGS", l.NotSelected, RoleTag, width, "(all tags selected)"))

	if desc := s.focusedDescription(width); desc != "" {
		b.WriteString("\n")
		b.WriteString(desc)
	}

	if s.showHelp {
		b.WriteString("\n")
		b.WriteString(HeaderPaddingStyle.Render(s.help.View(s.keys)))
	}
	return b.String()
}
