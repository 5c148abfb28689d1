package testhelpers

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Drain runs cmd and every command it produces, feeding each message back
// into m, and returns the messages in the order they were produced. Batches
// are flattened. Commands that wait on timers are run too, so callers must
// not drain models that schedule ticks they never stop.
func Drain(m tea.Model, cmd tea.Cmd) []tea.Msg {
	var out []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		msg := next()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		out = append(out, msg)

		var follow tea.Cmd
		m, follow = m.Update(msg)
		queue = append(queue, follow)
	}
	return out
}

// Messages filters msgs down to one type
func Messages[T tea.Msg](msgs []tea.Msg) []T {
	var result []T
	for _, msg := range msgs {
		if typed, ok := msg.(T); ok {
			result = append(result, typed)
		}
	}
	return result
}
