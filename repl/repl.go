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

package repl

import (
	"github.com/onflow/numeral"
	"github.com/onflow/numeral/ast"
	"github.com/onflow/numeral/common"
	"github.com/onflow/numeral/errors"
	"github.com/onflow/numeral/interpreter"
	"github.com/onflow/numeral/parser"
)

// OnErrorFunc is called for each error that occurs
// while accepted code is parsed or executed.
// The code the error occurred in is provided,
// so the error can be printed with its source
type OnErrorFunc func(err error, code string)

// OnResultFunc is called with the value of each expression statement
type OnResultFunc func(value numeral.Number)

type REPL struct {
	inter    *interpreter.Interpreter
	onError  OnErrorFunc
	onResult OnResultFunc
}

func NewREPL(
	onError OnErrorFunc,
	onResult OnResultFunc,
	memoryGauge common.MemoryGauge,
) *REPL {

	inter := interpreter.NewInterpreter(&interpreter.Config{
		MemoryGauge: memoryGauge,
	})

	return &REPL{
		inter:    inter,
		onError:  onError,
		onResult: onResult,
	}
}

// Accept parses and executes the given code.
// Parse and execution errors are reported to the error callback,
// the values of expression statements to the result callback
func (r *REPL) Accept(code string) {

	statements, ok := r.parseStatements(code)
	if !ok {
		return
	}

	for _, statement := range statements {

		result, err := r.inter.Execute(statement)
		if err != nil {
			r.reportError(err, code)
			return
		}

		if r.onResult == nil {
			continue
		}

		if statement.ElementType() == ast.ElementTypeExpressionStatement {
			r.onResult(result)
		}
	}
}

func (r *REPL) parseStatements(code string) (statements []ast.Statement, ok bool) {

	// fatal errors, like memory limit overruns,
	// escape the parser as panics and must be recovered here
	defer func() {
		if recovered := recover(); recovered != nil {
			var err error
			switch recovered := recovered.(type) {
			case error:
				err = recovered
			default:
				err = errors.NewUnexpectedError("%v", recovered)
			}
			r.reportError(err, code)
			statements = nil
			ok = false
		}
	}()

	var errs []error
	statements, errs = parser.ParseStatements(r.inter, []byte(code))
	if len(errs) > 0 {
		r.reportError(
			parser.Error{
				Code:   []byte(code),
				Errors: errs,
			},
			code,
		)
		return nil, false
	}

	return statements, true
}

func (r *REPL) reportError(err error, code string) {
	if r.onError == nil {
		return
	}
	r.onError(err, code)
}

type REPLSuggestion struct {
	Name, Description string
}

// Suggestions returns the declared variable names, for input completion.
// The description of each suggestion is the variable's current value
func (r *REPL) Suggestions() (result []REPLSuggestion) {

	for _, name := range r.inter.VariableNames() {
		value, ok := r.inter.GetVariable(name)
		if !ok {
			continue
		}

		result = append(result, REPLSuggestion{
			Name:        name,
			Description: value.String(),
		})
	}

	return
}
