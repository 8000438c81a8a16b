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

package common

import (
	"github.com/onflow/numeral/errors"
)

type MemoryUsage struct {
	Kind   MemoryKind
	Amount uint64
}

type MemoryGauge interface {
	MeterMemory(usage MemoryUsage) error
}

var (
	// Tokens

	ValueTokenMemoryUsage = NewConstantMemoryUsage(MemoryKindValueToken)
	TypeTokenMemoryUsage  = NewConstantMemoryUsage(MemoryKindTypeToken)
	ErrorTokenMemoryUsage = NewConstantMemoryUsage(MemoryKindErrorToken)
	SpaceTokenMemoryUsage = NewConstantMemoryUsage(MemoryKindSpaceToken)

	// AST

	IdentifierMemoryUsage           = NewConstantMemoryUsage(MemoryKindIdentifier)
	NumeralExpressionMemoryUsage    = NewConstantMemoryUsage(MemoryKindNumeralExpression)
	IdentifierExpressionMemoryUsage = NewConstantMemoryUsage(MemoryKindIdentifierExpression)
	UnaryExpressionMemoryUsage      = NewConstantMemoryUsage(MemoryKindUnaryExpression)
	BinaryExpressionMemoryUsage     = NewConstantMemoryUsage(MemoryKindBinaryExpression)
	ExpressionStatementMemoryUsage  = NewConstantMemoryUsage(MemoryKindExpressionStatement)
	AssignmentStatementMemoryUsage  = NewConstantMemoryUsage(MemoryKindAssignmentStatement)

	PositionMemoryUsage = NewConstantMemoryUsage(MemoryKindPosition)
	RangeMemoryUsage    = NewConstantMemoryUsage(MemoryKindRange)

	// Values

	NumberBaseMemoryUsage = NewConstantMemoryUsage(MemoryKindNumber)
	RationalMemoryUsage   = NewConstantMemoryUsage(MemoryKindRational)

	VariableMemoryUsage = NewConstantMemoryUsage(MemoryKindVariable)
)

func UseMemory(gauge MemoryGauge, usage MemoryUsage) {
	if gauge == nil {
		return
	}

	err := gauge.MeterMemory(usage)
	if err != nil {
		panic(errors.MemoryError{Err: err})
	}
}

func NewConstantMemoryUsage(kind MemoryKind) MemoryUsage {
	return MemoryUsage{
		Kind:   kind,
		Amount: 1,
	}
}

// NewNumberMemoryUsages returns the memory usages for a Number
// with the given digit count: the base usage for the value itself,
// and the usage for its digit buffer.
func NewNumberMemoryUsages(digitCount int) (MemoryUsage, MemoryUsage) {
	return NumberBaseMemoryUsage, MemoryUsage{
		Kind: MemoryKindNumberDigits,
		// +1 to account for empty digit buffers
		Amount: uint64(digitCount) + 1,
	}
}
