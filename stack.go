// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope

import "errors"

// Stack collects guards and fires them in reverse push order.
//
// The zero Stack is empty and ready to use. A Stack is owned by a single
// scope and is not safe for concurrent use.
//
//	var s scope.Stack
//	defer s.Exit(&err)
//	s.Push(scope.Defer1(os.Remove, tmp))
//	s.DeferErr(conn.Close)
type Stack struct {
	_      noCopy
	guards []*Guard
}

// Push registers g. Pushing nil is a no-op.
func (s *Stack) Push(g *Guard) {
	if g == nil {
		return
	}
	s.guards = append(s.guards, g)
}

// Defer registers f as a new guard.
func (s *Stack) Defer(f func()) {
	s.Push(Defer(f))
}

// DeferErr registers f as a new guard whose error is reported on unwind.
func (s *Stack) DeferErr(f func() error) {
	s.Push(DeferErr(f))
}

// Len returns the number of pending guards.
func (s *Stack) Len() int {
	return len(s.guards)
}

// Unwind fires every pending guard, most recently pushed first.
// Errors returned by the actions are discarded.
func (s *Stack) Unwind() {
	_ = s.Close()
}

// Close fires every pending guard, most recently pushed first, and returns
// the joined errors of the actions in firing order.
//
// A panicking action does not keep the guards pushed before it from firing;
// the panic propagates once they have run. Guards pushed by an action while
// the stack unwinds fire in the same pass, after the ones already pending.
func (s *Stack) Close() error {
	var errs []error
	s.unwind(&errs)
	return errors.Join(errs...)
}

// Exit fires every pending guard like [Stack.Close] and joins the result
// into *errp. With a nil errp the errors are discarded.
func (s *Stack) Exit(errp *error) {
	if err := s.Close(); err != nil && errp != nil {
		*errp = errors.Join(*errp, err)
	}
}

// Move transfers all pending guards to a new Stack and leaves s empty.
func (s *Stack) Move() *Stack {
	next := &Stack{guards: s.guards}
	s.guards = nil
	return next
}

// unwind detaches the pending guards and fires them newest first.
func (s *Stack) unwind(errs *[]error) {
	guards := s.guards
	s.guards = nil
	s.unwindFrom(guards, len(guards)-1, errs)
}

// unwindFrom fires guards[i] and then, from a deferred frame, guards[i-1]
// down to guards[0], so a panic at any level still reaches the rest.
// Guards pushed meanwhile are picked up once guards[0] has fired.
func (s *Stack) unwindFrom(guards []*Guard, i int, errs *[]error) {
	if i < 0 {
		if len(s.guards) > 0 {
			s.unwind(errs)
		}
		return
	}
	defer s.unwindFrom(guards, i-1, errs)
	if err := guards[i].fire(); err != nil {
		*errs = append(*errs, err)
	}
}
