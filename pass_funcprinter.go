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
    `io`
)

// FuncPrinter reports pass outcomes on a writer. The modified status is
// threaded through explicitly, the printer keeps no state of its own.
type FuncPrinter struct {
    W io.Writer
}

// Greet dumps the function header, its name and argument count.
func (self FuncPrinter) Greet(fn *Function) {
    fmt.Fprintf(self.W, "Hello from: %s\n", fn.Name)
    fmt.Fprintf(self.W, "  number of arguments: %d\n", fn.Nargs)
}

// Report writes whether the named pass changed the function.
func (self FuncPrinter) Report(fn *Function, name string, modified bool) {
    if modified {
        fmt.Fprintf(self.W, "%s: %s: some instruction was replaced\n", name, fn.Name)
    } else {
        fmt.Fprintf(self.W, "%s: %s: nothing changed\n", name, fn.Name)
    }
}
