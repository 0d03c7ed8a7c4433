// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package copyguard copies a Guard and a Stack by value; go vet must reject it.
package copyguard

import "code.hybscloud.com/scope"

func CopyGuard() {
	g := scope.Defer(func() {})
	c := *g
	c.Run()
}

func CopyStack(s *scope.Stack) {
	t := *s
	t.Unwind()
}
