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
    `fmt`
    `strings`
)

// Function owns an ordered sequence of basic blocks, which in turn own
// their instructions. Operand registers are references into the same
// function, never ownership.
type Function struct {
    Name   string
    Nargs  int
    Blocks []*BasicBlock
    nreg   uint64
}

// NewReg allocates a fresh result register unique within the function.
// Functions assembled without a Builder start with a stale allocator, so
// the watermark is reconciled with the existing definitions first.
func (self *Function) NewReg() (r Reg) {
    for _, bb := range self.Blocks {
        for _, p := range bb.Ins {
            for _, d := range p.Definitions() {
                if !d.Arg() && !d.Zero() && uint64(d.Index()) >= self.nreg {
                    self.nreg = uint64(d.Index()) + 1
                }
            }
        }
    }
    r = Rr(int(self.nreg))
    self.nreg++
    return
}

// UsesOf returns every instruction that references r as an operand.
func (self *Function) UsesOf(r Reg) (ret []*Ins) {
    for it := self.Order(); it.Next(); {
        for _, p := range it.Block().Ins {
            for _, u := range p.Usages() {
                if (*u).(Reg) == r {
                    ret = append(ret, p)
                    break
                }
            }
        }
    }
    return
}

// ReplaceAllUses redirects every operand reference of rr to rs, returning
// the number of operand slots rewritten.
func (self *Function) ReplaceAllUses(rr Reg, rs Reg) (n int) {
    for it := self.Order(); it.Next(); {
        for _, p := range it.Block().Ins {
            for _, u := range p.Usages() {
                if (*u).(Reg) == rr {
                    *u = rs
                    n++
                }
            }
        }
    }
    return
}

// Validate checks that every operand register resolves to a live
// definition or a function argument.
func (self *Function) Validate() error {
    defs := make(map[Reg]struct{})

    /* arguments are defined on entry */
    for i := 0; i < self.Nargs; i++ {
        defs[Ra(i)] = struct{}{}
    }

    /* collect every register definition */
    for _, bb := range self.Blocks {
        for _, p := range bb.Ins {
            for _, r := range p.Definitions() {
                defs[*r] = struct{}{}
            }
        }
    }

    /* every register operand must resolve */
    for _, bb := range self.Blocks {
        for _, p := range bb.Ins {
            for _, u := range p.Usages() {
                r := (*u).(Reg)
                _, ok := defs[r]

                /* the discard register never carries a value */
                if r.Zero() || !ok {
                    return DanglingOperandError { Fn: self.Name, Ins: p, Reg: r }
                }
            }
        }
    }

    return nil
}

func (self *Function) String() string {
    buf := make([]string, 0, len(self.Blocks) + 2)
    buf = append(buf, fmt.Sprintf("func %s(%d) {", self.Name, self.Nargs))

    /* dump every basic block */
    for _, bb := range self.Blocks {
        buf = append(buf, bb.String())
    }

    /* join them together */
    buf = append(buf, "}")
    return strings.Join(buf, "\n")
}
