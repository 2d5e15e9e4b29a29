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
    `github.com/oleiade/lane`
)

// BasicBlockIter yields the blocks of a function in their stored order.
type BasicBlockIter struct {
    b *BasicBlock
    q *lane.Queue
}

func newBasicBlockIter(fn *Function) *BasicBlockIter {
    q := lane.NewQueue()
    for _, bb := range fn.Blocks {
        q.Enqueue(bb)
    }
    return &BasicBlockIter { q: q }
}

func (self *BasicBlockIter) Next() bool {
    if self.q.Empty() {
        self.b = nil
        return false
    } else {
        self.b = self.q.Dequeue().(*BasicBlock)
        return true
    }
}

func (self *BasicBlockIter) Block() *BasicBlock {
    return self.b
}

func (self *BasicBlockIter) ForEach(action func(bb *BasicBlock)) {
    for self.Next() {
        action(self.b)
    }
}

// Order iterates the function's basic blocks in function order.
func (self *Function) Order() *BasicBlockIter {
    return newBasicBlockIter(self)
}
