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

package debug

import (
	"testing"

	"github.com/mulshift/lir"
	"github.com/stretchr/testify/require"
)

func TestDebug_GetStats(t *testing.T) {
	before := GetStats()

	p := lir.CreateBuilder("counted", 1)
	p.RET(p.MUL(p.Arg(0), lir.ConstInt(4)))
	fn := p.Build()

	mod, err := lir.Optimize(fn)
	require.NoError(t, err)
	require.True(t, mod)

	after := GetStats()
	require.Greater(t, after.PassRuns, before.PassRuns)
	require.Equal(t, before.Rewrites+1, after.Rewrites)
}
