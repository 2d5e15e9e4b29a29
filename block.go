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

// BasicBlock is a maximal straight-line run of instructions. Blocks keep
// their instructions in execution order.
type BasicBlock struct {
    Id  int
    Ins []*Ins
}

// InsertBefore inserts p immediately before position i.
func (self *BasicBlock) InsertBefore(i int, p *Ins) {
    if i < 0 || i > len(self.Ins) {
        panic(fmt.Sprintf("lir: insert position out of range: %d", i))
    }

    /* grow by one, then shift the tail up */
    self.Ins = append(self.Ins, nil)
    copy(self.Ins[i + 1:], self.Ins[i:])
    self.Ins[i] = p
}

// Remove erases the instruction at position i from the block.
func (self *BasicBlock) Remove(i int) {
    if i < 0 || i >= len(self.Ins) {
        panic(fmt.Sprintf("lir: remove position out of range: %d", i))
    }

    /* shift the tail down, then drop the last slot */
    copy(self.Ins[i:], self.Ins[i + 1:])
    self.Ins = self.Ins[:len(self.Ins) - 1]
}

func (self *BasicBlock) String() string {
    buf := make([]string, 0, len(self.Ins) + 1)
    buf = append(buf, fmt.Sprintf("bb_%d:", self.Id))

    /* dump every instruction */
    for _, p := range self.Ins {
        buf = append(buf, "    " + p.String())
    }

    /* join them together */
    return strings.Join(buf, "\n")
}
