/*
 * Numeral - Exact arithmetic for positional numerals
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"os"

	"github.com/onflow/numeral"
	"github.com/onflow/numeral/pretty"
	"github.com/onflow/numeral/repl"
)

func main() {
	if len(os.Args) > 1 {
		executeFiles(os.Args[1:])
	} else {
		runREPL()
	}
}

// executeFiles runs the statements of the given files, in order,
// printing the value of each expression statement.
// All files share one scope, so later files can use
// the variables of earlier ones
func executeFiles(paths []string) {

	errorPrettyPrinter := pretty.NewErrorPrettyPrinter(os.Stderr, true)

	var failed bool
	var currentPath string

	r := repl.NewREPL(
		func(err error, code string) {
			failed = true
			printErr := errorPrettyPrinter.PrettyPrintError(err, currentPath, []byte(code))
			if printErr != nil {
				panic(printErr)
			}
		},
		func(value numeral.Number) {
			fmt.Println(formatResult(value))
		},
		nil,
	)

	for _, path := range paths {
		currentPath = path

		code, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, colorizeError(err.Error()))
			os.Exit(1)
		}

		r.Accept(string(code))

		if failed {
			os.Exit(1)
		}
	}
}
