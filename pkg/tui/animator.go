package tui

import (
	"math"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/pluqqy/tagselect/pkg/models"
	"github.com/pluqqy/tagselect/pkg/selection"
)

const settleEpsilon = 0.01

// frameMsg advances running chip animations by one frame
type frameMsg time.Time

// Animator is the animated Transitioner. It compares the chip layout before
// and after a mutation and springs every chip whose slot changed from a dim
// color to its resting color. Frames are driven by the TUI's update loop.
type Animator struct {
	mu          sync.Mutex
	spring      harmonica.Spring
	interval    time.Duration
	maxDuration time.Duration
	snapshot    func() Layout
	current     *chipTransition
}

type chipTransition struct {
	chips   map[string]*chipMotion
	started time.Time
	done    chan error
	once    sync.Once
}

type chipMotion struct {
	pos, vel float64
	from     Slot
	entered  bool
}

// NewAnimator creates an animator. snapshot must return the current layout
// and must not call back into the animator.
func NewAnimator(cfg models.UISettings, snapshot func() Layout) *Animator {
	fps := cfg.FPS
	if fps <= 0 {
		fps = models.DefaultUISettings().FPS
	}
	return &Animator{
		spring:      harmonica.NewSpring(harmonica.FPS(fps), cfg.Frequency, cfg.Damping),
		interval:    time.Second / time.Duration(fps),
		maxDuration: cfg.MaxDuration,
		snapshot:    snapshot,
	}
}

// NewTransitioner picks the animated transitioner when animation is enabled
// and the terminal can show color, and falls back to Immediate otherwise.
// The returned animator is nil when animation is unavailable.
func NewTransitioner(cfg models.UISettings, snapshot func() Layout) (selection.Transitioner, *Animator) {
	if cfg.DisableAnimation || lipgloss.ColorProfile() == termenv.Ascii {
		return selection.Immediate{}, nil
	}
	a := NewAnimator(cfg, snapshot)
	return a, a
}

// Start runs mutate and starts animating the chips it moved
func (a *Animator) Start(mutate func()) selection.Transition {
	// The snapshot reads controller state, so no animator lock is held here
	before := a.snapshot().Positions()
	mutate()
	after := a.snapshot().Positions()

	chips := make(map[string]*chipMotion)
	for id, slot := range after {
		prev, existed := before[id]
		if existed && prev.Role == slot.Role && prev.Row == slot.Row && prev.Col == slot.Col {
			continue
		}
		chips[id] = &chipMotion{from: prev, entered: !existed}
	}
	if len(chips) == 0 {
		return nil
	}

	t := &chipTransition{
		chips:   chips,
		started: time.Now(),
		done:    make(chan error, 1),
	}

	a.mu.Lock()
	previous := a.current
	a.current = t
	a.mu.Unlock()

	if previous != nil {
		previous.finish(selection.ErrTransitionAborted)
	}
	return t
}

// Advance steps every spring by one frame and reports whether an animation
// is still running afterwards
func (a *Animator) Advance(now time.Time) bool {
	a.mu.Lock()
	t := a.current
	if t == nil {
		a.mu.Unlock()
		return false
	}

	settled := true
	for _, c := range t.chips {
		c.pos, c.vel = a.spring.Update(c.pos, c.vel, 1)
		if math.Abs(1-c.pos) > settleEpsilon || math.Abs(c.vel) > settleEpsilon {
			settled = false
		}
	}
	if a.maxDuration > 0 && now.Sub(t.started) >= a.maxDuration {
		settled = true
	}
	if settled {
		a.current = nil
	}
	a.mu.Unlock()

	if settled {
		t.finish(nil)
		return false
	}
	return true
}

// Abort ends the running animation. Its mutation stays applied.
func (a *Animator) Abort() {
	a.mu.Lock()
	t := a.current
	a.current = nil
	a.mu.Unlock()

	if t != nil {
		t.finish(selection.ErrTransitionAborted)
	}
}

// Active reports whether an animation is running
func (a *Animator) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current != nil
}

// Progress returns how far the chip with the given animation identifier is
// through its animation, clamped to [0, 1]. ok is false when it is at rest.
func (a *Animator) Progress(id string) (progress float64, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current == nil {
		return 1, false
	}
	c, ok := a.current.chips[id]
	if !ok {
		return 1, false
	}
	return math.Max(0, math.Min(1, c.pos)), true
}

// Origin returns where an animating chip was before the transition.
// ok is false for chips that are at rest or did not exist before.
func (a *Animator) Origin(id string) (Slot, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current == nil {
		return Slot{}, false
	}
	c, ok := a.current.chips[id]
	if !ok || c.entered {
		return Slot{}, false
	}
	return c.from, true
}

// Tick schedules the next frame
func (a *Animator) Tick() tea.Cmd {
	return tea.Tick(a.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (t *chipTransition) Finished() <-chan error {
	return t.done
}

func (t *chipTransition) finish(err error) {
	t.once.Do(func() {
		t.done <- err
		close(t.done)
	})
}
