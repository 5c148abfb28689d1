package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/tagselect/pkg/tui/testhelpers"
)

func drain(m tea.Model, cmd tea.Cmd) []tea.Msg {
	return testhelpers.Drain(m, cmd)
}

func changes(msgs []tea.Msg) []SelectionChangedMsg {
	return testhelpers.Messages[SelectionChangedMsg](msgs)
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press sends keys one by one, draining the commands each produces
func press(m tea.Model, keys ...string) []tea.Msg {
	var out []tea.Msg
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = m.Update(keyPress(k))
		out = append(out, drain(m, cmd)...)
	}
	return out
}

// pump runs commands on their own goroutines the way the bubbletea runtime
// does and feeds every message back into m from the calling goroutine. It
// stops once done reports true for the messages seen so far.
func pump(t *testing.T, m tea.Model, cmd tea.Cmd, done func([]tea.Msg) bool) []tea.Msg {
	t.Helper()

	msgs := make(chan tea.Msg, 64)
	run := func(c tea.Cmd) {
		if c != nil {
			go func() { msgs <- c() }()
		}
	}
	run(cmd)

	var seen []tea.Msg
	timeout := time.After(5 * time.Second)
	for !done(seen) {
		select {
		case msg := <-msgs:
			if msg == nil {
				continue
			}
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, c := range batch {
					run(c)
				}
				continue
			}
			seen = append(seen, msg)
			var next tea.Cmd
			m, next = m.Update(msg)
			run(next)
		case <-timeout:
			t.Fatalf("model did not settle, saw %d messages", len(seen))
		}
	}
	return seen
}
