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
)

// MalformedOperandError occurs when an instruction does not carry the
// operands its opcode requires. It indicates invalid input IR, not a
// recoverable runtime condition.
type MalformedOperandError struct {
    Ins    *Ins
    Reason string
}

func (self MalformedOperandError) Error() string {
    return fmt.Sprintf("Malformed operand on %q: %s", self.Ins.String(), self.Reason)
}

// DanglingOperandError occurs when an operand register does not resolve to
// any live definition within the function.
type DanglingOperandError struct {
    Fn  string
    Ins *Ins
    Reg Reg
}

func (self DanglingOperandError) Error() string {
    return fmt.Sprintf("Dangling operand in %s: %s does not resolve on %q", self.Fn, self.Reg, self.Ins.String())
}
