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

// MemoryKind
type MemoryKind uint

const (
	MemoryKindUnknown MemoryKind = iota

	// Values

	MemoryKindNumber
	MemoryKindNumberDigits
	MemoryKindRational
	MemoryKindVariable

	// Tokens

	MemoryKindValueToken
	MemoryKindTypeToken
	MemoryKindErrorToken
	MemoryKindSpaceToken

	// AST

	MemoryKindIdentifier
	MemoryKindNumeralExpression
	MemoryKindIdentifierExpression
	MemoryKindUnaryExpression
	MemoryKindBinaryExpression
	MemoryKindExpressionStatement
	MemoryKindAssignmentStatement

	MemoryKindPosition
	MemoryKindRange

	MemoryKindLast
)

func (k MemoryKind) String() string {
	switch k {
	case MemoryKindNumber:
		return "Number"
	case MemoryKindNumberDigits:
		return "NumberDigits"
	case MemoryKindRational:
		return "Rational"
	case MemoryKindVariable:
		return "Variable"
	case MemoryKindValueToken:
		return "ValueToken"
	case MemoryKindTypeToken:
		return "TypeToken"
	case MemoryKindErrorToken:
		return "ErrorToken"
	case MemoryKindSpaceToken:
		return "SpaceToken"
	case MemoryKindIdentifier:
		return "Identifier"
	case MemoryKindNumeralExpression:
		return "NumeralExpression"
	case MemoryKindIdentifierExpression:
		return "IdentifierExpression"
	case MemoryKindUnaryExpression:
		return "UnaryExpression"
	case MemoryKindBinaryExpression:
		return "BinaryExpression"
	case MemoryKindExpressionStatement:
		return "ExpressionStatement"
	case MemoryKindAssignmentStatement:
		return "AssignmentStatement"
	case MemoryKindPosition:
		return "Position"
	case MemoryKindRange:
		return "Range"
	default:
		return "Unknown"
	}
}
