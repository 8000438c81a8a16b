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

package ast

import (
	"github.com/onflow/numeral/errors"
)

type ElementType uint64

const (
	ElementTypeUnknown ElementType = iota

	// Statements

	ElementTypeExpressionStatement
	ElementTypeAssignmentStatement

	// Expressions

	ElementTypeNumeralExpression
	ElementTypeIdentifierExpression
	ElementTypeUnaryExpression
	ElementTypeBinaryExpression
)

func (t ElementType) String() string {
	switch t {
	case ElementTypeUnknown:
		return "Unknown"
	case ElementTypeExpressionStatement:
		return "ExpressionStatement"
	case ElementTypeAssignmentStatement:
		return "AssignmentStatement"
	case ElementTypeNumeralExpression:
		return "NumeralExpression"
	case ElementTypeIdentifierExpression:
		return "IdentifierExpression"
	case ElementTypeUnaryExpression:
		return "UnaryExpression"
	case ElementTypeBinaryExpression:
		return "BinaryExpression"
	}

	panic(errors.NewUnreachableError())
}
