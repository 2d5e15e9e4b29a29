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
	"sync/atomic"

	"github.com/mulshift/lir/internal/stats"
)

// A Stats records statistics about the optimization pipeline.
type Stats struct {
	PassRuns int
	Rewrites int
}

// GetStats returns statistics of the optimization pipeline accumulated
// over the lifetime of the process.
func GetStats() Stats {
	return Stats{
		PassRuns: int(atomic.LoadInt64(&stats.PassCount)),
		Rewrites: int(atomic.LoadInt64(&stats.RewriteCount)),
	}
}
