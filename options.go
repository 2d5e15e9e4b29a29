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

package lir

import (
	"fmt"
	"io"

	"github.com/mulshift/lir/internal/opts"
)

// Option is the property setter function for opts.Options.
type Option func(*opts.Options)

// WithMaxPassIters caps the number of fixed-point iterations of the pass
// pipeline. Every registered pass runs once per iteration.
//
// The default value of this option is "16", it can also be set through the
// LIR_MAX_PASS_ITERS environment variable.
func WithMaxPassIters(iters int) Option {
	if iters < 1 {
		panic(fmt.Sprintf("lir: invalid pass iteration limit: %d", iters))
	} else {
		return func(o *opts.Options) { o.MaxPassIters = iters }
	}
}

// WithTrace makes the pipeline report every pass outcome on w, in the
// manner of a pass printer: which pass ran, and whether it replaced
// anything.
func WithTrace(w io.Writer) Option {
	return func(o *opts.Options) { o.Trace = w }
}
