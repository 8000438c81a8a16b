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

	"go.opentelemetry.io/otel/attribute"

	"github.com/onflow/numeral/ast"
)

const (
	// operation prefixes
	tracingEvaluatePrefix = "evaluate."
	tracingExecutePrefix  = "execute."

	// expression postfixes
	tracingNumeralPostfix    = "numeral"
	tracingIdentifierPostfix = "identifier"
	tracingUnaryPostfix      = "unary"
	tracingBinaryPostfix     = "binary"

	// statement postfixes
	tracingExpressionStatementPostfix = "expressionStatement"
	tracingAssignmentStatementPostfix = "assignmentStatement"
)

// OnRecordTraceFunc is a function that records a trace.
type OnRecordTraceFunc func(
	interpreter *Interpreter,
	operationName string,
	duration time.Duration,
	attrs []attribute.KeyValue,
)

type Tracer struct {
	// OnRecordTrace is triggered when a trace is recorded
	OnRecordTrace OnRecordTraceFunc
	// TracingEnabled determines if tracing is enabled.
	// Tracing reports the evaluation of expressions and the execution of statements
	TracingEnabled bool
}

func prepareOperationTraceAttrs(operation ast.Operation) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("operation", operation.Symbol()),
	}
}

func (tracer Tracer) reportEvaluateNumeralTrace(
	interpreter *Interpreter,
	literal string,
	duration time.Duration,
) {
	tracer.OnRecordTrace(interpreter,
		tracingEvaluatePrefix+tracingNumeralPostfix,
		duration,
		[]attribute.KeyValue{
			attribute.String("literal", literal),
		},
	)
}

func (tracer Tracer) reportEvaluateIdentifierTrace(
	interpreter *Interpreter,
	name string,
	duration time.Duration,
) {
	tracer.OnRecordTrace(interpreter,
		tracingEvaluatePrefix+tracingIdentifierPostfix,
		duration,
		[]attribute.KeyValue{
			attribute.String("name", name),
		},
	)
}

func (tracer Tracer) reportEvaluateUnaryTrace(
	interpreter *Interpreter,
	operation ast.Operation,
	duration time.Duration,
) {
	tracer.OnRecordTrace(interpreter,
		tracingEvaluatePrefix+tracingUnaryPostfix,
		duration,
		prepareOperationTraceAttrs(operation),
	)
}

func (tracer Tracer) reportEvaluateBinaryTrace(
	interpreter *Interpreter,
	operation ast.Operation,
	duration time.Duration,
) {
	tracer.OnRecordTrace(interpreter,
		tracingEvaluatePrefix+tracingBinaryPostfix,
		duration,
		prepareOperationTraceAttrs(operation),
	)
}

func (tracer Tracer) reportExecuteExpressionStatementTrace(
	interpreter *Interpreter,
	duration time.Duration,
) {
	tracer.OnRecordTrace(interpreter,
		tracingExecutePrefix+tracingExpressionStatementPostfix,
		duration,
		nil,
	)
}

func (tracer Tracer) reportExecuteAssignmentStatementTrace(
	interpreter *Interpreter,
	target string,
	duration time.Duration,
) {
	tracer.OnRecordTrace(interpreter,
		tracingExecutePrefix+tracingAssignmentStatementPostfix,
		duration,
		[]attribute.KeyValue{
			attribute.String("target", target),
		},
	)
}
