package selection

import (
	"context"
	"io"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Op names the user intent that produced a Notification
type Op string

const (
	OpSelect   Op = "select"
	OpUnselect Op = "unselect"
)

// Notification is a snapshot of the selection taken after an operation settled
type Notification struct {
	Op       Op       `json:"op" yaml:"op"`
	Tag      string   `json:"tag" yaml:"tag"`
	Selected []string `json:"selected" yaml:"selected"`
}

// StyleRegistrar receives the tag list whenever it changes so per-tag visual
// correlation rules can be published. The controller never reads them back.
type StyleRegistrar interface {
	RegisterVisualRules(tags []string)
}

// View is a consistent copy of the controller's state
type View struct {
	Tags        []string
	Selected    []string
	NotSelected []string
	Order       map[string]int
}

// Option configures a Controller
type Option func(*Controller)

// WithTransitioner sets how mutations are animated. Defaults to Immediate.
func WithTransitioner(t Transitioner) Option {
	return func(c *Controller) {
		if t != nil {
			c.transitions = t
		}
	}
}

// WithStyleRegistrar sets the collaborator notified of tag list changes
func WithStyleRegistrar(r StyleRegistrar) Option {
	return func(c *Controller) {
		c.styles = r
	}
}

// WithLogger sets the logger used for dropped intents and failed transitions
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// Controller owns the tag list, the selection and everything derived from them.
//
// Select and Unselect are serialized: each one holds the operation lock from
// mutation until its notification has been delivered, so overlapping callers
// settle one after another in lock order.
type Controller struct {
	mu          sync.RWMutex
	tags        []string
	selected    []string
	notSelected []string
	order       map[string]int
	listeners   []func(Notification)

	opMu    sync.Mutex
	pending atomic.Bool

	transitions Transitioner
	styles      StyleRegistrar
	logger      *log.Logger
}

// New creates a controller for tags with an initial selection
func New(tags, selected []string, opts ...Option) *Controller {
	c := &Controller{
		tags:        cloneTags(tags),
		selected:    cloneTags(selected),
		transitions: Immediate{},
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.order = ComputeOrder(c.tags)
	c.notSelected = Partition(c.tags, c.selected)
	c.registerVisualRules(cloneTags(c.tags))
	return c
}

// SetTags replaces the tag list. It reports whether anything changed.
func (c *Controller) SetTags(tags []string) bool {
	c.mu.Lock()
	if slices.Equal(c.tags, tags) {
		c.mu.Unlock()
		return false
	}
	c.tags = cloneTags(tags)
	c.order = ComputeOrder(c.tags)
	c.notSelected = Partition(c.tags, c.selected)
	registered := cloneTags(c.tags)
	c.mu.Unlock()

	c.registerVisualRules(registered)
	return true
}

// SetSelected replaces the selection. It reports whether anything changed.
func (c *Controller) SetSelected(selected []string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if slices.Equal(c.selected, selected) {
		return false
	}
	c.selected = cloneTags(selected)
	c.notSelected = Partition(c.tags, c.selected)
	return true
}

// OnChange registers a listener called once per settled operation
func (c *Controller) OnChange(fn func(Notification)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Select appends tag to the selection inside a transition and returns the
// notification emitted once it settled. Tags outside the tag list are
// ignored and yield a nil notification. A tag that is already selected is
// appended again.
func (c *Controller) Select(ctx context.Context, tag string) (*Notification, error) {
	return c.run(ctx, OpSelect, tag)
}

// Unselect removes the first occurrence of tag from the selection inside a
// transition. Tags that are not selected are ignored.
func (c *Controller) Unselect(ctx context.Context, tag string) (*Notification, error) {
	return c.run(ctx, OpUnselect, tag)
}

// Toggle unselects a selected tag and selects any other
func (c *Controller) Toggle(ctx context.Context, tag string) (*Notification, error) {
	if c.IsSelected(tag) {
		return c.Unselect(ctx, tag)
	}
	return c.Select(ctx, tag)
}

// Pending reports whether an operation is between mutation and notification
func (c *Controller) Pending() bool {
	return c.pending.Load()
}

func (c *Controller) run(ctx context.Context, op Op, tag string) (*Notification, error) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !c.accepts(op, tag) {
		c.logger.Debug("ignoring intent", "op", op, "tag", tag)
		return nil, nil
	}

	c.pending.Store(true)
	defer c.pending.Store(false)

	tr := c.transitions.Start(func() { c.apply(op, tag) })
	if tr != nil {
		select {
		case err := <-tr.Finished():
			if err != nil {
				// The mutation is already applied, so the change still settles.
				c.logger.Warn("transition did not finish", "op", op, "tag", tag, "err", err)
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	note := Notification{Op: op, Tag: tag, Selected: c.Selected()}
	c.emit(note)
	return &note, nil
}

func (c *Controller) accepts(op Op, tag string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch op {
	case OpSelect:
		return slices.Contains(c.tags, tag)
	case OpUnselect:
		return slices.Contains(c.selected, tag)
	}
	return false
}

func (c *Controller) apply(op Op, tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch op {
	case OpSelect:
		c.selected = append(c.selected, tag)
	case OpUnselect:
		if i := slices.Index(c.selected, tag); i >= 0 {
			c.selected = slices.Delete(c.selected, i, i+1)
		}
	}
	c.notSelected = Partition(c.tags, c.selected)
}

func (c *Controller) emit(note Notification) {
	c.mu.RLock()
	listeners := slices.Clone(c.listeners)
	c.mu.RUnlock()

	for _, fn := range listeners {
		fn(Notification{Op: note.Op, Tag: note.Tag, Selected: cloneTags(note.Selected)})
	}
}

func (c *Controller) registerVisualRules(tags []string) {
	if c.styles == nil {
		return
	}
	c.styles.RegisterVisualRules(tags)
}

// Tags returns a copy of the tag list
func (c *Controller) Tags() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneTags(c.tags)
}

// Selected returns a copy of the selection in selection order
func (c *Controller) Selected() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneTags(c.selected)
}

// NotSelected returns a copy of the unselected tags in tag list order
func (c *Controller) NotSelected() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneTags(c.notSelected)
}

// Order returns a copy of the order index
func (c *Controller) Order() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.order)
}

// IsSelected reports whether tag is currently selected
func (c *Controller) IsSelected(tag string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Contains(c.selected, tag)
}

// Snapshot returns all state under a single read lock
func (c *Controller) Snapshot() View {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return View{
		Tags:        cloneTags(c.tags),
		Selected:    cloneTags(c.selected),
		NotSelected: cloneTags(c.notSelected),
		Order:       maps.Clone(c.order),
	}
}

func cloneTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
