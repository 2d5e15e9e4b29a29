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
    `bytes`
    `strings`
    `testing`

    `github.com/stretchr/testify/require`
)

func TestOptimize_Reduce(t *testing.T) {
    p := CreateBuilder("api", 1)
    r := p.MUL(p.Arg(0), ConstInt(4))
    p.RET(r)
    fn := p.Build()

    mod, err := Reduce(fn)
    require.NoError(t, err)
    require.True(t, mod)
    require.Equal(t, OpShl, fn.Blocks[0].Ins[0].Op)
}

func TestOptimize_FixedPoint(t *testing.T) {
    p := CreateBuilder("pipeline", 1)
    r := p.MUL(p.Arg(0), ConstInt(4))
    s := p.MUL(r, ConstInt(8))
    p.RET(s)
    fn := p.Build()

    /* both sites collapse within the iteration budget */
    mod, err := Optimize(fn)
    require.NoError(t, err)
    require.True(t, mod)
    require.Equal(t, OpShl, fn.Blocks[0].Ins[0].Op)
    require.Equal(t, OpShl, fn.Blocks[0].Ins[1].Op)
    require.NoError(t, fn.Validate())

    /* an optimized function stays put */
    mod, err = Optimize(fn)
    require.NoError(t, err)
    require.False(t, mod)
}

func TestOptimize_Trace(t *testing.T) {
    p := CreateBuilder("traced", 1)
    r := p.MUL(p.Arg(0), ConstInt(2))
    p.RET(r)
    fn := p.Build()

    buf := new(bytes.Buffer)
    mod, err := Optimize(fn, WithTrace(buf), WithMaxPassIters(4))
    require.NoError(t, err)
    require.True(t, mod)

    /* the function is greeted once on entry, then the first iteration
     * replaces and the fixed-point check reports no change */
    require.Equal(t, 1, strings.Count(buf.String(), "Hello from: traced"))
    require.Contains(t, buf.String(), "  number of arguments: 1")
    require.Contains(t, buf.String(), "Strength Reduction: traced: some instruction was replaced")
    require.Contains(t, buf.String(), "Strength Reduction: traced: nothing changed")
}

func TestOptimize_IterationCap(t *testing.T) {
    p := CreateBuilder("capped", 1)
    r := p.MUL(p.Arg(0), ConstInt(2))
    p.RET(r)
    fn := p.Build()

    /* a single iteration still rewrites, it just skips the settle check */
    buf := new(bytes.Buffer)
    mod, err := Optimize(fn, WithTrace(buf), WithMaxPassIters(1))
    require.NoError(t, err)
    require.True(t, mod)
    require.NotContains(t, buf.String(), "nothing changed")
    require.Panics(t, func() { WithMaxPassIters(0) })
}

func TestOptimize_ErrorPropagation(t *testing.T) {
    fn := &Function {
        Name  : "badmul",
        Nargs : 0,
        Blocks: []*BasicBlock {{
            Id  : 0,
            Ins : []*Ins {
                { Op: OpMul, R: Rr(0), Args: []Value { ConstInt(1) } },
            },
        }},
    }

    mod, err := Optimize(fn)
    require.False(t, mod)
    require.Error(t, err)
    require.IsType(t, MalformedOperandError{}, err)
}

func TestFuncPrinter_Greet(t *testing.T) {
    p := CreateBuilder("greeted", 2)
    p.RET(p.ADD(p.Arg(0), p.Arg(1)))
    fn := p.Build()

    buf := new(bytes.Buffer)
    FuncPrinter { W: buf }.Greet(fn)
    require.Equal(t, "Hello from: greeted\n  number of arguments: 2\n", buf.String())
}

func TestFuncPrinter_Report(t *testing.T) {
    p := CreateBuilder("reported", 1)
    p.RET(p.Arg(0))
    fn := p.Build()

    buf := new(bytes.Buffer)
    FuncPrinter { W: buf }.Report(fn, "Strength Reduction", true)
    FuncPrinter { W: buf }.Report(fn, "Strength Reduction", false)
    require.Equal(t,
        "Strength Reduction: reported: some instruction was replaced\n" +
        "Strength Reduction: reported: nothing changed\n",
        buf.String(),
    )
}
