/*
 * Copyright 2023 mulshift Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package lir is a minimal function-level intermediate representation with
// an optimization pass pipeline. Its flagship transformation rewrites
// integer multiplications by power-of-two constants into left shifts.
package lir

import (
	"github.com/mulshift/lir/internal/opts"
)

// Reduce runs the strength-reduction pass over fn once, mutating it in
// place. It reports whether any multiply was rewritten into a shift.
func Reduce(fn *Function) (bool, error) {
	return StrengthReduce{}.Apply(fn)
}

// Optimize runs every registered pass over fn until a fixed point is
// reached, capped by the configured iteration limit. It reports whether
// any pass modified the function.
func Optimize(fn *Function, options ...Option) (bool, error) {
	opt := opts.GetDefaultOptions()
	for _, fv := range options {
		fv(&opt)
	}
	return executePasses(fn, opt)
}
