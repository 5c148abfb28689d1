package tui

import (
	"context"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/tagselect/pkg/models"
	"github.com/pluqqy/tagselect/pkg/selection"
)

func newTestAnimator(tags, selected []string) (*Animator, *selection.Controller) {
	c := selection.New(tags, selected)
	a := NewAnimator(models.DefaultUISettings(), func() Layout {
		return ComputeLayout(c.Snapshot(), 60)
	})
	return a, c
}

func settle(t *testing.T, a *Animator, now time.Time) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if !a.Advance(now) {
			return
		}
	}
	t.Fatal("animation never settled")
}

func finishedWith(t *testing.T, tr selection.Transition) error {
	t.Helper()
	select {
	case err := <-tr.Finished():
		return err
	default:
		t.Fatal("transition has not finished")
		return nil
	}
}

func TestAnimator_AnimatesMovedChips(t *testing.T) {
	a, c := newTestAnimator([]string{"Docker", "Kubernetes", "AWS"}, nil)

	tr := a.Start(func() { c.SetSelected([]string{"AWS"}) })
	require.NotNil(t, tr)
	assert.True(t, a.Active())
	assert.Equal(t, []string{"AWS"}, c.Selected(), "mutation runs synchronously")

	p, ok := a.Progress("aws")
	assert.True(t, ok)
	assert.Equal(t, 0.0, p)

	origin, ok := a.Origin("aws")
	require.True(t, ok)
	assert.Equal(t, RoleTag, origin.Role)

	_, ok = a.Progress("docker")
	assert.False(t, ok, "chips that did not move stay at rest")

	select {
	case <-tr.Finished():
		t.Fatal("finished before settling")
	default:
	}

	// A clock earlier than the start never hits the duration cap
	settle(t, a, time.Time{})
	assert.False(t, a.Active())
	assert.NoError(t, finishedWith(t, tr))

	_, ok = a.Progress("aws")
	assert.False(t, ok)
}

func TestAnimator_NothingMoved(t *testing.T) {
	a, c := newTestAnimator([]string{"Docker", "AWS"}, nil)

	tr := a.Start(func() { c.SetSelected(nil) })
	assert.Nil(t, tr)
	assert.False(t, a.Active())
}

func TestAnimator_MaxDuration(t *testing.T) {
	a, c := newTestAnimator([]string{"Docker", "AWS"}, nil)

	tr := a.Start(func() { c.SetSelected([]string{"Docker"}) })
	require.NotNil(t, tr)

	assert.False(t, a.Advance(time.Now().Add(time.Hour)))
	assert.NoError(t, finishedWith(t, tr))
}

func TestAnimator_Abort(t *testing.T) {
	a, c := newTestAnimator([]string{"Docker", "AWS"}, nil)

	tr := a.Start(func() { c.SetSelected([]string{"Docker"}) })
	require.NotNil(t, tr)

	a.Abort()
	assert.False(t, a.Active())
	assert.ErrorIs(t, finishedWith(t, tr), selection.ErrTransitionAborted)
	assert.Equal(t, []string{"Docker"}, c.Selected(), "aborting keeps the mutation")

	// Aborting twice is harmless
	a.Abort()
}

func TestAnimator_SupersedesRunningTransition(t *testing.T) {
	a, c := newTestAnimator([]string{"Docker", "Kubernetes", "AWS"}, nil)

	first := a.Start(func() { c.SetSelected([]string{"Docker"}) })
	require.NotNil(t, first)
	second := a.Start(func() { c.SetSelected([]string{"Docker", "AWS"}) })
	require.NotNil(t, second)

	assert.ErrorIs(t, finishedWith(t, first), selection.ErrTransitionAborted)

	settle(t, a, time.Time{})
	assert.NoError(t, finishedWith(t, second))
}

func TestAnimator_DrivesController(t *testing.T) {
	var c *selection.Controller
	a := NewAnimator(models.DefaultUISettings(), func() Layout {
		return ComputeLayout(c.Snapshot(), 60)
	})
	c = selection.New([]string{"Docker", "AWS"}, nil, selection.WithTransitioner(a))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan *selection.Notification, 1)
	go func() {
		note, err := c.Select(ctx, "AWS")
		assert.NoError(t, err)
		done <- note
	}()

	require.Eventually(t, a.Active, time.Second, time.Millisecond)
	assert.True(t, c.Pending())
	settle(t, a, time.Time{})

	select {
	case note := <-done:
		require.NotNil(t, note)
		assert.Equal(t, []string{"AWS"}, note.Selected)
	case <-time.After(time.Second):
		t.Fatal("select never returned")
	}
	assert.False(t, c.Pending())
}

func TestNewTransitioner_Disabled(t *testing.T) {
	cfg := models.DefaultUISettings()
	cfg.DisableAnimation = true

	tr, a := NewTransitioner(cfg, func() Layout { return Layout{} })
	assert.IsType(t, selection.Immediate{}, tr)
	assert.Nil(t, a)
}

func TestBlendColor(t *testing.T) {
	near := func(t *testing.T, want, got string) {
		t.Helper()
		w, err := colorful.Hex(want)
		require.NoError(t, err)
		g, err := colorful.Hex(got)
		require.NoError(t, err)
		assert.Less(t, w.DistanceLab(g), 0.01, "want %s, got %s", want, got)
	}

	near(t, "#3a3a3a", blendColor("#3a3a3a", "#3498db", 0))
	near(t, "#3498db", blendColor("#3a3a3a", "#3498db", 1))
	assert.Equal(t, "170", blendColor("#3a3a3a", "170", 0.5))
	assert.Equal(t, "#3498db", blendColor("dim", "#3498db", 0.5))
}

func TestArrivalMark(t *testing.T) {
	assert.Equal(t, "↑", arrivalMark(RoleSelected))
	assert.Equal(t, "↓", arrivalMark(RoleTag))
}
