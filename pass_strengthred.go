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

    `github.com/mulshift/lir/internal/stats`
)

// StrengthReduce rewrites integer multiplications by a power-of-two
// constant into left shifts of the same first operand.
//
// Only multiplies whose second operand is a positive power-of-two ConstInt
// are touched. A constant of 1 still qualifies and becomes a shift by 0.
// Every rewrite replaces the multiply with the shift at the same position
// and redirects all uses of the old result, so no dangling operand can
// remain. The pass carries no state across calls, functions may be reduced
// in parallel as long as they do not share blocks.
type StrengthReduce struct{}

func (self StrengthReduce) reduce(fn *Function, bb *BasicBlock) (bool, error) {
    mod := false

    /* scan instructions in block order, the slot index stays valid because
     * a matched multiply is replaced in place, never erased */
    for i := 0; i < len(bb.Ins); i++ {
        p := bb.Ins[i]

        /* only multiplications are candidates */
        if p.Op != OpMul {
            continue
        }

        /* a multiply must carry both factors */
        if len(p.Args) < 2 {
            return mod, MalformedOperandError {
                Ins    : p,
                Reason : "multiply requires two operands",
            }
        }

        /* the second factor must be a positive power-of-two constant */
        cc, ok := p.Args[1].(ConstInt)
        if !ok || !cc.IsPowerOfTwo() {
            continue
        }

        /* build the shift in the multiply's slot, then redirect every use
         * of the old result before the multiply becomes unreachable */
        sh := &Ins {
            Op   : OpShl,
            R    : fn.NewReg(),
            Args : []Value { p.Args[0], ConstInt(cc.Log2()) },
        }

        /* replace and redirect */
        bb.Ins[i] = sh
        fn.ReplaceAllUses(p.R, sh.R)

        /* mark as modified */
        mod = true
        atomic.AddInt64(&stats.RewriteCount, 1)
    }

    return mod, nil
}

// Apply performs a single deterministic pass over fn, returning whether
// any multiply was rewritten.
func (self StrengthReduce) Apply(fn *Function) (bool, error) {
    mod := false

    /* process every basic block in function order */
    for it := fn.Order(); it.Next(); {
        if m, err := self.reduce(fn, it.Block()); err != nil {
            return mod, err
        } else if m {
            mod = true
        }
    }

    return mod, nil
}
