// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope

import (
	"errors"
	"sync/atomic"
)

const (
	armed uint32 = iota
	fired
	moved
)

// Guard owns one deferred action and invokes it exactly once when fired.
//
// A Guard is created armed by [Defer], [DeferErr] or one of the
// [Defer0]..[Defer5] constructors, and fired by handing one of its finalizers
// to the defer statement of the owning scope:
//
//	g := scope.Defer1(os.Remove, path)
//	defer g.Run()
//
// Firing an already fired guard panics. Guards must not be copied after
// first use; always pass *Guard.
//
// The zero Guard is an empty guard: firing it invokes nothing.
type Guard struct {
	_      noCopy
	state  atomic.Uint32
	action func() error
}

// Run fires the guard. Any result of the action is discarded;
// use [Guard.Close] or [Guard.Exit] to observe a returned error.
// Panics raised by the action propagate to the caller unchanged.
func (g *Guard) Run() {
	_ = g.fire()
}

// Close fires the guard and returns the error produced by the action, if any.
// Close implements io.Closer.
func (g *Guard) Close() error {
	return g.fire()
}

// Exit fires the guard and joins the error produced by the action into *errp.
// It is meant for deferral against a named error result:
//
//	func save() (err error) {
//		g := scope.DeferErr(f.Close)
//		defer g.Exit(&err)
//		...
//	}
//
// With a nil errp the error is discarded, as by [Guard.Run].
func (g *Guard) Exit(errp *error) {
	if err := g.fire(); err != nil && errp != nil {
		*errp = errors.Join(*errp, err)
	}
}

// Armed reports whether the guard still holds a pending obligation.
func (g *Guard) Armed() bool {
	return g.state.Load() == armed
}

// Empty reports whether the guard was built without an action.
// Firing an empty guard is a no-op.
func (g *Guard) Empty() bool {
	return g.action == nil
}

// Move transfers the pending obligation to a new guard.
// The receiver is left spent: firing it afterwards does nothing.
// Panics if the guard was already fired or moved.
func (g *Guard) Move() *Guard {
	if !g.state.CompareAndSwap(armed, moved) {
		panic("scope: move of spent guard")
	}
	action := g.action
	g.action = nil
	return &Guard{action: action}
}

func (g *Guard) fire() error {
	if !g.state.CompareAndSwap(armed, fired) {
		if g.state.Load() == moved {
			return nil
		}
		panic("scope: guard fired twice")
	}
	if g.action == nil {
		return nil
	}
	return g.action()
}
