// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/scope"
)

// resource is a closer that records how often it was closed.
type resource struct {
	name   string
	closed int
	err    error
	log    *recorder
}

func (r *resource) Close() error {
	r.closed++
	if r.log != nil {
		r.log.push(r.name)
	}
	return r.err
}

func TestBracketSuccess(t *testing.T) {
	var acquired, released bool

	result, err := scope.Bracket(
		func() (int, error) {
			acquired = true
			return 42, nil
		},
		func(r int) error {
			released = true
			return nil
		},
		func(r int) (int, error) {
			return r * 2, nil
		},
	)

	require.NoError(t, err)
	assert.Equal(t, 84, result)
	assert.True(t, acquired)
	assert.True(t, released)
}

func TestBracketReleasesOnError(t *testing.T) {
	errUse := errors.New("use failed")
	released := 0

	_, err := scope.Bracket(
		func() (string, error) { return "conn", nil },
		func(r string) error {
			released++
			return nil
		},
		func(r string) (int, error) { return 0, errUse },
	)

	assert.ErrorIs(t, err, errUse)
	assert.Equal(t, 1, released)
}

func TestBracketReleasesOnPanic(t *testing.T) {
	released := 0

	assert.PanicsWithValue(t, "use exploded", func() {
		_, _ = scope.Bracket(
			func() (int, error) { return 1, nil },
			func(int) error {
				released++
				return nil
			},
			func(int) (int, error) { panic("use exploded") },
		)
	})
	assert.Equal(t, 1, released)
}

func TestBracketAcquireFails(t *testing.T) {
	errAcquire := errors.New("acquire failed")
	used, released := false, false

	_, err := scope.Bracket(
		func() (int, error) { return 0, errAcquire },
		func(int) error { released = true; return nil },
		func(int) (int, error) { used = true; return 0, nil },
	)

	assert.ErrorIs(t, err, errAcquire)
	assert.False(t, used)
	assert.False(t, released)
}

func TestBracketJoinsReleaseError(t *testing.T) {
	errUse := errors.New("use")
	errRelease := errors.New("release")

	_, err := scope.Bracket(
		func() (int, error) { return 1, nil },
		func(int) error { return errRelease },
		func(int) (int, error) { return 0, errUse },
	)

	assert.ErrorIs(t, err, errUse)
	assert.ErrorIs(t, err, errRelease)
}

func TestUsing(t *testing.T) {
	r := &resource{name: "db"}

	n, err := scope.Using(
		func() (*resource, error) { return r, nil },
		func(r *resource) (int, error) {
			assert.Equal(t, 0, r.closed, "resource closed before use")
			return len(r.name), nil
		},
	)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, r.closed)
}

func TestCloseAll(t *testing.T) {
	var rec recorder
	errB := errors.New("b")
	a := &resource{name: "a", log: &rec}
	b := &resource{name: "b", log: &rec, err: errB}
	c := &resource{name: "c", log: &rec}

	err := scope.CloseAll(a, b, c)

	assert.ErrorIs(t, err, errB)
	assert.Equal(t, []string{"c", "b", "a"}, rec.calls)
	for _, r := range []*resource{a, b, c} {
		assert.Equal(t, 1, r.closed, r.name)
	}
}

func TestCloseAllEmpty(t *testing.T) {
	assert.NoError(t, scope.CloseAll[*resource]())
}

func TestCloseAllSkipsNil(t *testing.T) {
	var rec recorder
	a := &resource{name: "a", log: &rec}
	b := &resource{name: "b", log: &rec}

	var err error
	require.NotPanics(t, func() {
		err = scope.CloseAll[io.Closer](a, nil, b)
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, rec.calls)
}

func TestCloseAllClosesRestOnPanic(t *testing.T) {
	var rec recorder
	a := &resource{name: "a", log: &rec}
	c := &resource{name: "c", log: &rec}

	assert.PanicsWithValue(t, "close failed", func() {
		_ = scope.CloseAll[io.Closer](a, panicCloser{}, c)
	})
	assert.Equal(t, []string{"c", "a"}, rec.calls)
}

type panicCloser struct{}

func (panicCloser) Close() error { panic("close failed") }
