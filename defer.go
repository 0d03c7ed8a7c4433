// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope

import "reflect"

// Guard constructors.
// Every arity reduces to one captured thunk: arguments are copied into the
// closure when the guard is built, so later changes to the caller's
// variables are not observed by the action. A nil function yields an
// empty guard.

// Defer creates a guard for an action without arguments or result.
func Defer(f func()) *Guard {
	if f == nil {
		return new(Guard)
	}
	return &Guard{action: func() error {
		f()
		return nil
	}}
}

// DeferErr creates a guard for an action returning an error.
// The error is reported by [Guard.Close] and [Guard.Exit].
func DeferErr(f func() error) *Guard {
	return &Guard{action: f}
}

// Defer0 creates a guard for an action without arguments.
// A non-nil error result is reported by [Guard.Close] and [Guard.Exit];
// any other result is discarded.
func Defer0[R any](f func() R) *Guard {
	if f == nil {
		return new(Guard)
	}
	return &Guard{action: func() error {
		return errorOf(f())
	}}
}

// Defer1 creates a guard invoking f(a).
func Defer1[A, R any](f func(A) R, a A) *Guard {
	if f == nil {
		return new(Guard)
	}
	return &Guard{action: func() error {
		return errorOf(f(a))
	}}
}

// Defer2 creates a guard invoking f(a, b).
func Defer2[A, B, R any](f func(A, B) R, a A, b B) *Guard {
	if f == nil {
		return new(Guard)
	}
	return &Guard{action: func() error {
		return errorOf(f(a, b))
	}}
}

// Defer3 creates a guard invoking f(a, b, c).
func Defer3[A, B, C, R any](f func(A, B, C) R, a A, b B, c C) *Guard {
	if f == nil {
		return new(Guard)
	}
	return &Guard{action: func() error {
		return errorOf(f(a, b, c))
	}}
}

// Defer4 creates a guard invoking f(a, b, c, d).
func Defer4[A, B, C, D, R any](f func(A, B, C, D) R, a A, b B, c C, d D) *Guard {
	if f == nil {
		return new(Guard)
	}
	return &Guard{action: func() error {
		return errorOf(f(a, b, c, d))
	}}
}

// Defer5 creates a guard invoking f(a, b, c, d, e).
func Defer5[A, B, C, D, E, R any](f func(A, B, C, D, E) R, a A, b B, c C, d D, e E) *Guard {
	if f == nil {
		return new(Guard)
	}
	return &Guard{action: func() error {
		return errorOf(f(a, b, c, d, e))
	}}
}

// Call1 creates a guard invoking f(a) for a function without result.
func Call1[A any](f func(A), a A) *Guard {
	if f == nil {
		return new(Guard)
	}
	return Defer(func() { f(a) })
}

// Call2 creates a guard invoking f(a, b) for a function without result.
func Call2[A, B any](f func(A, B), a A, b B) *Guard {
	if f == nil {
		return new(Guard)
	}
	return Defer(func() { f(a, b) })
}

// Call3 creates a guard invoking f(a, b, c) for a function without result.
func Call3[A, B, C any](f func(A, B, C), a A, b B, c C) *Guard {
	if f == nil {
		return new(Guard)
	}
	return Defer(func() { f(a, b, c) })
}

// Call4 creates a guard invoking f(a, b, c, d) for a function without result.
func Call4[A, B, C, D any](f func(A, B, C, D), a A, b B, c C, d D) *Guard {
	if f == nil {
		return new(Guard)
	}
	return Defer(func() { f(a, b, c, d) })
}

// Call5 creates a guard invoking f(a, b, c, d, e) for a function without result.
func Call5[A, B, C, D, E any](f func(A, B, C, D, E), a A, b B, c C, d D, e E) *Guard {
	if f == nil {
		return new(Guard)
	}
	return Defer(func() { f(a, b, c, d, e) })
}

// errorOf extracts a non-nil error from an action result.
// A nil pointer, map, slice, func or chan implementing error is no error.
func errorOf[R any](r R) error {
	err, ok := any(r).(error)
	if !ok || err == nil {
		return nil
	}
	switch v := reflect.ValueOf(err); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if v.IsNil() {
			return nil
		}
	}
	return err
}
