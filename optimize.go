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
    `sync/atomic`

    `github.com/mulshift/lir/internal/opts`
    `github.com/mulshift/lir/internal/stats`
)

// Pass is a function-level transformation. Apply mutates fn in place and
// reports whether anything changed, the modified status is a per-call
// return value and never shared state.
type Pass interface {
    Apply(fn *Function) (bool, error)
}

type _PassDescriptor struct {
    pass Pass
    desc string
}

var _passes = [...]_PassDescriptor {
    { desc: "Strength Reduction", pass: new(StrengthReduce) },
}

func executePasses(fn *Function, opt opts.Options) (bool, error) {
    mod := false

    /* greet the function once when tracing is enabled */
    if opt.Trace != nil {
        FuncPrinter { W: opt.Trace }.Greet(fn)
    }

    /* run until fixed point, capped by the iteration limit */
    for i := 0; i < opt.MaxPassIters; i++ {
        done := true

        /* apply every registered pass once */
        for _, p := range _passes {
            m, err := p.pass.Apply(fn)
            atomic.AddInt64(&stats.PassCount, 1)

            /* pass failures abort the pipeline immediately */
            if err != nil {
                return mod, err
            }

            /* report the outcome if tracing is enabled */
            if opt.Trace != nil {
                FuncPrinter { W: opt.Trace }.Report(fn, p.desc, m)
            }

            /* keep running until nothing changes */
            if m {
                mod = true
                done = false
            }
        }

        /* no more modifications */
        if done {
            break
        }
    }

    return mod, nil
}
