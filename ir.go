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
    `math/bits`
    `strings`
)

const (
    _B_kind = 62
)

const (
    _M_kind = 0x03
)

const (
    _R_kind  = _M_kind << _B_kind
    _R_index = (1 << _B_kind) - 1
)

const (
    _K_zero = 0
    _K_arg  = 1
    _K_norm = 2
)

// Reg names the result of an instruction or a function argument. The top
// bits select the register class, the rest is the index within the class.
type Reg uint64

// Rz is the discard register, definitions of Rz produce no usable value.
const (
    Rz Reg = _K_zero << _B_kind
)

func mkreg(kind uint64, index uint64) Reg {
    return Reg((kind & _M_kind) << _B_kind) | Reg(index & _R_index)
}

// Ra returns the register naming the i-th function argument.
func Ra(i int) Reg {
    if i < 0 {
        panic("lir: invalid argument index")
    } else {
        return mkreg(_K_arg, uint64(i))
    }
}

// Rr returns the i-th ordinary result register.
func Rr(i int) Reg {
    if i < 0 {
        panic("lir: invalid register index")
    } else {
        return mkreg(_K_norm, uint64(i))
    }
}

func (self Reg) Arg() bool {
    return self.kind() == _K_arg
}

func (self Reg) Zero() bool {
    return self.kind() == _K_zero
}

func (self Reg) Index() int {
    return int(self & _R_index)
}

func (self Reg) kind() uint8 {
    return uint8((self & _R_kind) >> _B_kind)
}

func (self Reg) String() string {
    switch self.kind() {
        case _K_zero : return "_"
        case _K_arg  : return fmt.Sprintf("%%a%d", self.Index())
        case _K_norm : return fmt.Sprintf("%%r%d", self.Index())
        default      : panic("unreachable")
    }
}

// Value is an instruction operand, either a Reg naming an instruction
// result or function argument, or a ConstInt literal.
type Value interface {
    fmt.Stringer
    irvalue()
}

func (Reg)      irvalue() {}
func (ConstInt) irvalue() {}

// ConstInt is a 64-bit signed integer literal. It is fixed at creation and
// never mutated.
type ConstInt int64

func (self ConstInt) String() string {
    return fmt.Sprintf("$%d", int64(self))
}

// IsPowerOfTwo reports whether the constant is positive with exactly one
// bit set. Zero and negative values are never powers of two.
func (self ConstInt) IsPowerOfTwo() bool {
    return self > 0 && self & (self - 1) == 0
}

// Log2 returns the exact base-2 logarithm of a power-of-two constant.
func (self ConstInt) Log2() int {
    if !self.IsPowerOfTwo() {
        panic(fmt.Sprintf("lir: not a power of two: %d", int64(self)))
    } else {
        return bits.TrailingZeros64(uint64(self))
    }
}

type OpCode uint8

const (
    OpMul OpCode = iota
    OpShl
    OpAdd
    OpSub
    OpAnd
    OpOr
    OpXor
    OpRet
)

func (self OpCode) String() string {
    switch self {
        case OpMul : return "mul"
        case OpShl : return "shl"
        case OpAdd : return "add"
        case OpSub : return "sub"
        case OpAnd : return "and"
        case OpOr  : return "or"
        case OpXor : return "xor"
        case OpRet : return "ret"
        default    : return fmt.Sprintf("op.%d", uint8(self))
    }
}

// Ins is a single instruction: an opcode, an ordered operand list, and the
// register it defines. Opcodes other than OpMul and OpShl are carried
// through every transformation untouched.
type Ins struct {
    Op   OpCode
    R    Reg
    Args []Value
}

func (self *Ins) String() string {
    nb := len(self.Args)
    ret := make([]string, 0, nb)

    /* dump the operands */
    for _, v := range self.Args {
        ret = append(ret, v.String())
    }

    /* instructions with no result have no assignment part */
    if self.R.Zero() {
        return fmt.Sprintf("%s %s", self.Op, strings.Join(ret, ", "))
    } else {
        return fmt.Sprintf("%s = %s %s", self.R, self.Op, strings.Join(ret, ", "))
    }
}

// Usages returns mutable references to every Reg operand slot, the back
// edges of the use relation.
func (self *Ins) Usages() (r []*Value) {
    for i, v := range self.Args {
        if _, ok := v.(Reg); ok {
            r = append(r, &self.Args[i])
        }
    }
    return
}

// Definitions returns mutable references to every register defined by this
// instruction, none if the result is discarded.
func (self *Ins) Definitions() []*Reg {
    if self.R.Zero() {
        return nil
    } else {
        return []*Reg { &self.R }
    }
}
