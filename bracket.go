// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope

// Bracket provides exception-safe resource acquisition and release.
// This follows the bracket pattern: acquire → use → release, where release
// runs exactly once after use, whether use returns or panics.
//
// If acquire fails, neither use nor release runs and its error is returned.
// Otherwise the errors of use and release are joined.
func Bracket[R, A any](
	acquire func() (R, error),
	release func(R) error,
	use func(R) (A, error),
) (result A, err error) {
	resource, err := acquire()
	if err != nil {
		return result, err
	}
	g := Defer1(release, resource)
	defer g.Exit(&err)
	return use(resource)
}

// Using runs use with a resource that is closed when use completes.
// It is [Bracket] for values implementing Close() error.
func Using[R interface{ Close() error }, A any](
	acquire func() (R, error),
	use func(R) (A, error),
) (A, error) {
	return Bracket(acquire, func(r R) error { return r.Close() }, use)
}

// CloseAll closes every closer in reverse order and joins their errors.
// Nil entries are skipped.
func CloseAll[C interface{ Close() error }](closers ...C) error {
	var s Stack
	defer s.Unwind()
	for _, c := range closers {
		if any(c) == nil {
			continue
		}
		s.DeferErr(c.Close)
	}
	return s.Close()
}
