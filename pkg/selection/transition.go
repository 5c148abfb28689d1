package selection

import "errors"

// ErrTransitionAborted is reported by a Transition that was cut short.
// The mutation it wrapped has already been applied.
var ErrTransitionAborted = errors.New("transition aborted")

// Transitioner wraps a state mutation in an optional animated transition.
//
// Start must run mutate synchronously before it returns. It returns nil when
// there is nothing to wait for.
type Transitioner interface {
	Start(mutate func()) Transition
}

// Transition is an in-flight animation started by a Transitioner.
type Transition interface {
	// Finished delivers exactly one value when the animation ends and is
	// then closed. A nil value means the animation ran to completion.
	Finished() <-chan error
}

// Immediate applies mutations without animation.
type Immediate struct{}

// Start runs mutate and reports that there is no transition to await
func (Immediate) Start(mutate func()) Transition {
	mutate()
	return nil
}

// TransitionFunc adapts a function to the Transitioner interface
type TransitionFunc func(mutate func()) Transition

// Start calls f(mutate)
func (f TransitionFunc) Start(mutate func()) Transition {
	return f(mutate)
}
