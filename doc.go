// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package scope provides scope guards: values that own a deferred action
// and invoke it exactly once when the owning scope ends.
//
// The defer statement runs a call at function exit, but the obligation it
// creates is not a value. A [Guard] binds a function and a snapshot of its
// arguments at one program point, is fired by the scope's defer statement on
// every exit path (return, early return, panic), refuses to run twice, and
// can hand its obligation to another owner without duplicating it.
//
// # Construction
//
// All constructors reduce the action and its arguments to one captured
// thunk. Arguments are copied when the guard is built:
//
//   - [Defer]: action without arguments or result
//   - [DeferErr]: action returning an error
//   - [Defer0] .. [Defer5]: action of zero to five arguments and any result
//   - [Call1] .. [Call5]: action of one to five arguments and no result
//
// A non-nil error result is kept and reported by [Guard.Close] and
// [Guard.Exit]; any other result is discarded. A nil function builds an
// empty guard, as does the zero [Guard].
//
// # Firing
//
//   - [Guard.Run]: invoke, discarding the result
//   - [Guard.Close]: invoke and return the action's error (io.Closer)
//   - [Guard.Exit]: invoke and join the action's error into a named result
//
// Each guard fires at most once; a second attempt panics. Panics raised by
// the action are not recovered: they propagate like any panic from a
// deferred call. When several guards are deferred in one function they fire
// in reverse declaration order, as the defer statement dictates.
//
// # Ownership
//
//   - [Guard.Move]: transfer the obligation to a new guard; the old one
//     becomes inert
//   - [Guard.Armed], [Guard.Empty]: state queries
//
// Guards and stacks carry a marker that go vet's copylocks check reports
// when they are copied by value. Pass *Guard and *Stack.
//
// # Stacks
//
// [Stack] collects guards in one scope and fires them last-in first-out.
// A panicking action does not stop the remaining guards from firing, and
// the errors of all actions are joined:
//
//   - [Stack.Push], [Stack.Defer], [Stack.DeferErr]: register
//   - [Stack.Unwind], [Stack.Close], [Stack.Exit]: fire all
//   - [Stack.Move]: hand all pending guards to a new owner
//
// # Resource Safety
//
//   - [Bracket]: acquire-use-release with guaranteed release
//   - [Using]: Bracket for io.Closer-like resources
//   - [CloseAll]: close many resources in reverse order
//
// # Example
//
//	func record(n int, s string) { log.Println(n, s) }
//
//	func run() (err error) {
//		n := 3
//		g := scope.Call2(record, n, "x")
//		defer g.Run()
//		n = 99 // record still receives 3
//		return nil
//	}
//
// Handing a resource to the caller only on success:
//
//	func create(name string) (*os.File, *scope.Guard, error) {
//		f, err := os.Create(name)
//		if err != nil {
//			return nil, nil, err
//		}
//		g := scope.DeferErr(f.Close)
//		defer g.Run() // inert once moved
//		if _, err := f.WriteString(header); err != nil {
//			return nil, nil, err
//		}
//		return f, g.Move(), nil
//	}
package scope
