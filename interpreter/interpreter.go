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

package interpreter

import (
	"time"

	"golang.org/x/xerrors"

	"github.com/onflow/numeral"
	"github.com/onflow/numeral/ast"
	"github.com/onflow/numeral/common"
	"github.com/onflow/numeral/errors"
)

// Config contains all the configuration for the interpreter
type Config struct {
	Tracer
	// MemoryGauge is used for metering memory usage
	MemoryGauge common.MemoryGauge
}

// Interpreter evaluates expressions and executes statements.
// Variables live for the lifetime of the interpreter,
// so a sequence of statements can build on earlier assignments.
type Interpreter struct {
	config        *Config
	variables     map[string]Variable
	variableNames []string
	statement     ast.Statement
}

var _ ast.ExpressionVisitor[numeral.Number] = &Interpreter{}
var _ ast.StatementVisitor[numeral.Number] = &Interpreter{}
var _ common.MemoryGauge = &Interpreter{}

func NewInterpreter(config *Config) *Interpreter {
	if config == nil {
		config = &Config{}
	}
	return &Interpreter{
		config:    config,
		variables: map[string]Variable{},
	}
}

func (interpreter *Interpreter) MeterMemory(usage common.MemoryUsage) error {
	if interpreter != nil {
		config := interpreter.config
		common.UseMemory(config.MemoryGauge, usage)
	}
	return nil
}

// Evaluate evaluates the given expression and returns the resulting number
func (interpreter *Interpreter) Evaluate(expression ast.Expression) (result numeral.Number, err error) {

	// recover internal panics and return them as an error
	defer interpreter.RecoverErrors(func(internalErr error) {
		err = internalErr
	})

	// the statement of an earlier execution must not
	// position errors of this stand-alone evaluation
	interpreter.statement = nil

	result = interpreter.evalExpression(expression)
	return
}

// Execute executes the given statement and returns the resulting number:
// the value of an expression statement's expression,
// or the value assigned by an assignment statement
func (interpreter *Interpreter) Execute(statement ast.Statement) (result numeral.Number, err error) {

	// recover internal panics and return them as an error
	defer interpreter.RecoverErrors(func(internalErr error) {
		err = internalErr
	})

	interpreter.statement = statement

	result = ast.AcceptStatement[numeral.Number](statement, interpreter)
	return
}

// VariableNames returns the names of all declared variables,
// in declaration order
func (interpreter *Interpreter) VariableNames() []string {
	names := make([]string, len(interpreter.variableNames))
	copy(names, interpreter.variableNames)
	return names
}

// GetVariable returns the value of the variable with the given name,
// or false if no variable with the name is declared
func (interpreter *Interpreter) GetVariable(name string) (numeral.Number, bool) {
	variable, ok := interpreter.variables[name]
	if !ok {
		return numeral.Number{}, false
	}
	return variable.GetValue(), true
}

func (interpreter *Interpreter) evalExpression(expression ast.Expression) numeral.Number {
	return ast.AcceptExpression[numeral.Number](expression, interpreter)
}

func (interpreter *Interpreter) VisitNumeralExpression(expression *ast.NumeralExpression) numeral.Number {

	config := interpreter.config

	if config.TracingEnabled {
		startTime := time.Now()
		defer func() {
			config.reportEvaluateNumeralTrace(
				interpreter,
				expression.PositiveLiteral,
				time.Since(startTime),
			)
		}()
	}

	number, err := numeral.NewNumber(
		interpreter,
		expression.Base,
		expression.Digits,
		false,
		expression.DecimalLength,
		expression.RepeatingLength,
	)
	if err != nil {
		panic(PositionedError{
			Err:   err,
			Range: ast.NewUnmeteredRangeFromPositioned(expression),
		})
	}
	return number
}

func (interpreter *Interpreter) VisitIdentifierExpression(expression *ast.IdentifierExpression) numeral.Number {

	config := interpreter.config

	name := expression.Identifier.Identifier

	if config.TracingEnabled {
		startTime := time.Now()
		defer func() {
			config.reportEvaluateIdentifierTrace(
				interpreter,
				name,
				time.Since(startTime),
			)
		}()
	}

	variable, ok := interpreter.variables[name]
	if !ok {
		panic(&NotDeclaredError{
			Name:          name,
			DeclaredNames: interpreter.VariableNames(),
			Pos:           expression.Identifier.Pos,
		})
	}
	return variable.GetValue()
}

func (interpreter *Interpreter) VisitUnaryExpression(expression *ast.UnaryExpression) numeral.Number {

	config := interpreter.config

	if config.TracingEnabled {
		startTime := time.Now()
		defer func() {
			config.reportEvaluateUnaryTrace(
				interpreter,
				expression.Operation,
				time.Since(startTime),
			)
		}()
	}

	value := interpreter.evalExpression(expression.Expression)

	switch expression.Operation {
	case ast.OperationPlus:
		return value
	case ast.OperationMinus:
		return value.Negate(interpreter)
	}

	panic(errors.NewUnreachableError())
}

func (interpreter *Interpreter) VisitBinaryExpression(expression *ast.BinaryExpression) numeral.Number {

	config := interpreter.config

	if config.TracingEnabled {
		startTime := time.Now()
		defer func() {
			config.reportEvaluateBinaryTrace(
				interpreter,
				expression.Operation,
				time.Since(startTime),
			)
		}()
	}

	left := interpreter.evalExpression(expression.Left)
	right := interpreter.evalExpression(expression.Right)

	switch expression.Operation {
	case ast.OperationPlus:
		// addition uses the right-hand side as-is

	case ast.OperationMinus:
		// subtraction is addition of the negated right-hand side
		right = right.Negate(interpreter)

	default:
		panic(errors.NewUnreachableError())
	}

	result, err := left.Plus(interpreter, right)
	if err != nil {
		panic(PositionedError{
			Err:   err,
			Range: ast.NewUnmeteredRangeFromPositioned(expression),
		})
	}
	return result
}

func (interpreter *Interpreter) VisitExpressionStatement(statement *ast.ExpressionStatement) numeral.Number {

	config := interpreter.config

	if config.TracingEnabled {
		startTime := time.Now()
		defer func() {
			config.reportExecuteExpressionStatementTrace(
				interpreter,
				time.Since(startTime),
			)
		}()
	}

	return interpreter.evalExpression(statement.Expression)
}

func (interpreter *Interpreter) VisitAssignmentStatement(statement *ast.AssignmentStatement) numeral.Number {

	config := interpreter.config

	name := statement.Target.Identifier

	if config.TracingEnabled {
		startTime := time.Now()
		defer func() {
			config.reportExecuteAssignmentStatementTrace(
				interpreter,
				name,
				time.Since(startTime),
			)
		}()
	}

	value := interpreter.evalExpression(statement.Value)

	variable, ok := interpreter.variables[name]
	if ok {
		variable.SetValue(value)
	} else {
		interpreter.variables[name] = NewVariableWithValue(interpreter, value)
		interpreter.variableNames = append(interpreter.variableNames, name)
	}

	return value
}

func (interpreter *Interpreter) RecoverErrors(onError func(error)) {
	if r := recover(); r != nil {
		// Recover all errors, because the interpreter can be directly invoked by embedders.
		err := asNumeralError(r)

		// wrap the error with position information if needed
		_, ok := err.(ast.HasPosition)
		if !ok && interpreter.statement != nil {
			r := ast.NewUnmeteredRangeFromPositioned(interpreter.statement)

			err = PositionedError{
				Err:   err,
				Range: r,
			}
		}

		onError(err)
	}
}

func asNumeralError(r any) error {
	err, isError := r.(error)
	if !isError {
		return errors.NewUnexpectedError("%s", r)
	}

	rootError := err

	for {
		switch typedError := err.(type) {
		case PositionedError,
			errors.InternalError,
			errors.UserError:
			return typedError
		case xerrors.Wrapper:
			err = typedError.Unwrap()
		case error:
			return errors.NewUnexpectedErrorFromCause(rootError)
		default:
			return errors.NewUnexpectedErrorFromCause(rootError)
		}
	}
}
