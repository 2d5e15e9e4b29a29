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

// Builder assembles a Function block by block, allocating result registers
// as instructions are appended.
type Builder struct {
    fn *Function
    bb *BasicBlock
}

// CreateBuilder creates a Builder for a function with nargs arguments,
// positioned at a fresh entry block.
func CreateBuilder(name string, nargs int) *Builder {
    if nargs < 0 {
        panic(fmt.Sprintf("lir: invalid argument count: %d", nargs))
    }

    /* create the function with an empty entry block */
    ret := &Builder {
        fn: &Function {
            Name  : name,
            Nargs : nargs,
        },
    }

    /* position at the entry block */
    ret.Block()
    return ret
}

// Arg returns the register naming the i-th function argument.
func (self *Builder) Arg(i int) Reg {
    if i < 0 || i >= self.fn.Nargs {
        panic(fmt.Sprintf("lir: argument index out of range: %d", i))
    } else {
        return Ra(i)
    }
}

// Block starts a new basic block and makes it current.
func (self *Builder) Block() *BasicBlock {
    bb := &BasicBlock { Id: len(self.fn.Blocks) }
    self.bb = bb
    self.fn.Blocks = append(self.fn.Blocks, bb)
    return bb
}

func (self *Builder) emit(op OpCode, args ...Value) Reg {
    p := &Ins { Op: op, R: self.fn.NewReg(), Args: args }
    self.bb.Ins = append(self.bb.Ins, p)
    return p.R
}

func (self *Builder) MUL(x Value, y Value) Reg { return self.emit(OpMul, x, y) }
func (self *Builder) SHL(x Value, y Value) Reg { return self.emit(OpShl, x, y) }
func (self *Builder) ADD(x Value, y Value) Reg { return self.emit(OpAdd, x, y) }
func (self *Builder) SUB(x Value, y Value) Reg { return self.emit(OpSub, x, y) }
func (self *Builder) AND(x Value, y Value) Reg { return self.emit(OpAnd, x, y) }
func (self *Builder) OR(x Value, y Value)  Reg { return self.emit(OpOr , x, y) }
func (self *Builder) XOR(x Value, y Value) Reg { return self.emit(OpXor, x, y) }

// OP appends an instruction with an arbitrary opcode, for opcodes the
// optimizer treats opaquely.
func (self *Builder) OP(op OpCode, args ...Value) Reg {
    return self.emit(op, args...)
}

// RET terminates the current block with a return of v. The instruction
// defines no register.
func (self *Builder) RET(v Value) {
    self.bb.Ins = append(self.bb.Ins, &Ins { Op: OpRet, R: Rz, Args: []Value { v } })
}

// Build finalizes and returns the function. It panics if the function does
// not validate, a builder must never produce malformed IR.
func (self *Builder) Build() *Function {
    if err := self.fn.Validate(); err != nil {
        panic("lir: " + err.Error())
    } else {
        return self.fn
    }
}
