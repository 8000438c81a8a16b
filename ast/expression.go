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
	"encoding/json"
	"fmt"

	"github.com/turbolent/prettier"

	"github.com/onflow/numeral/common"
)

type precedence uint8

const (
	precedenceUnknown precedence = iota
	precedenceAddition
	precedenceUnaryPrefix
	precedenceLiteral
)

type Expression interface {
	Element
	fmt.Stringer
	isExpression()
	Doc() prettier.Doc
	precedence() precedence
}

// NumeralExpression

// NumeralExpression is the AST node for a numeral literal.
// It only holds the magnitude of the literal,
// a negation is parsed as a unary expression wrapping it.
type NumeralExpression struct {
	PositiveLiteral string
	Base            int
	Digits          []uint8 `json:"-"`
	DecimalLength   int
	RepeatingLength int
	Range
}

var _ Expression = &NumeralExpression{}

func NewNumeralExpression(
	memoryGauge common.MemoryGauge,
	positiveLiteral string,
	base int,
	digits []uint8,
	decimalLength int,
	repeatingLength int,
	exprRange Range,
) *NumeralExpression {
	common.UseMemory(memoryGauge, common.NumeralExpressionMemoryUsage)
	return &NumeralExpression{
		PositiveLiteral: positiveLiteral,
		Base:            base,
		Digits:          digits,
		DecimalLength:   decimalLength,
		RepeatingLength: repeatingLength,
		Range:           exprRange,
	}
}

func (*NumeralExpression) isExpression() {}

func (*NumeralExpression) ElementType() ElementType {
	return ElementTypeNumeralExpression
}

func (*NumeralExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *NumeralExpression) String() string {
	return Prettier(e)
}

func (e *NumeralExpression) Doc() prettier.Doc {
	return prettier.Text(e.PositiveLiteral)
}

func (e *NumeralExpression) MarshalJSON() ([]byte, error) {
	type Alias NumeralExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "NumeralExpression",
		Alias: (*Alias)(e),
	})
}

func (*NumeralExpression) precedence() precedence {
	return precedenceLiteral
}

// IdentifierExpression

type IdentifierExpression struct {
	Identifier Identifier
}

var _ Expression = &IdentifierExpression{}

func NewIdentifierExpression(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
) *IdentifierExpression {
	common.UseMemory(memoryGauge, common.IdentifierExpressionMemoryUsage)
	return &IdentifierExpression{
		Identifier: identifier,
	}
}

func (*IdentifierExpression) isExpression() {}

func (*IdentifierExpression) ElementType() ElementType {
	return ElementTypeIdentifierExpression
}

func (*IdentifierExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *IdentifierExpression) String() string {
	return Prettier(e)
}

func (e *IdentifierExpression) Doc() prettier.Doc {
	return prettier.Text(e.Identifier.Identifier)
}

func (e *IdentifierExpression) MarshalJSON() ([]byte, error) {
	type Alias IdentifierExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "IdentifierExpression",
		Range: NewUnmeteredRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

func (e *IdentifierExpression) StartPosition() Position {
	return e.Identifier.StartPosition()
}

func (e *IdentifierExpression) EndPosition(memoryGauge common.MemoryGauge) Position {
	return e.Identifier.EndPosition(memoryGauge)
}

func (*IdentifierExpression) precedence() precedence {
	return precedenceLiteral
}

// UnaryExpression

type UnaryExpression struct {
	Operation  Operation
	Expression Expression
	StartPos   Position `json:"-"`
}

var _ Expression = &UnaryExpression{}

func NewUnaryExpression(
	memoryGauge common.MemoryGauge,
	operation Operation,
	expression Expression,
	startPos Position,
) *UnaryExpression {
	common.UseMemory(memoryGauge, common.UnaryExpressionMemoryUsage)
	return &UnaryExpression{
		Operation:  operation,
		Expression: expression,
		StartPos:   startPos,
	}
}

func (*UnaryExpression) isExpression() {}

func (*UnaryExpression) ElementType() ElementType {
	return ElementTypeUnaryExpression
}

func (e *UnaryExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *UnaryExpression) String() string {
	return Prettier(e)
}

func parenthesizedExpressionDoc(e Expression, parentPrecedence precedence) prettier.Doc {
	doc := e.Doc()
	subPrecedence := e.precedence()
	if parentPrecedence <= subPrecedence {
		return doc
	}
	return prettier.WrapParentheses(
		doc,
		prettier.SoftLine{},
	)
}

func (e *UnaryExpression) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text(e.Operation.Symbol()),
		parenthesizedExpressionDoc(
			e.Expression,
			e.precedence(),
		),
	}
}

func (e *UnaryExpression) StartPosition() Position {
	return e.StartPos
}

func (e *UnaryExpression) EndPosition(memoryGauge common.MemoryGauge) Position {
	return e.Expression.EndPosition(memoryGauge)
}

func (e *UnaryExpression) MarshalJSON() ([]byte, error) {
	type Alias UnaryExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "UnaryExpression",
		Range: NewUnmeteredRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

func (*UnaryExpression) precedence() precedence {
	return precedenceUnaryPrefix
}

// BinaryExpression

type BinaryExpression struct {
	Operation Operation
	Left      Expression
	Right     Expression
}

var _ Expression = &BinaryExpression{}

func NewBinaryExpression(
	memoryGauge common.MemoryGauge,
	operation Operation,
	left Expression,
	right Expression,
) *BinaryExpression {
	common.UseMemory(memoryGauge, common.BinaryExpressionMemoryUsage)
	return &BinaryExpression{
		Operation: operation,
		Left:      left,
		Right:     right,
	}
}

func (*BinaryExpression) isExpression() {}

func (*BinaryExpression) ElementType() ElementType {
	return ElementTypeBinaryExpression
}

func (e *BinaryExpression) Walk(walkChild func(Element)) {
	walkChild(e.Left)
	walkChild(e.Right)
}

func (e *BinaryExpression) String() string {
	return Prettier(e)
}

func (e *BinaryExpression) Doc() prettier.Doc {

	// All binary operations are left-associative

	ownPrecedence := e.precedence()

	leftDoc := e.Left.Doc()
	leftPrecedence := e.Left.precedence()

	if ownPrecedence > leftPrecedence {
		leftDoc = prettier.WrapParentheses(leftDoc, prettier.SoftLine{})
	}

	rightDoc := e.Right.Doc()
	rightPrecedence := e.Right.precedence()

	if ownPrecedence >= rightPrecedence {
		rightDoc = prettier.WrapParentheses(rightDoc, prettier.SoftLine{})
	}

	return prettier.Group{
		Doc: prettier.Concat{
			prettier.Group{
				Doc: leftDoc,
			},
			prettier.Line{},
			prettier.Text(e.Operation.Symbol()),
			prettier.Space,
			prettier.Group{
				Doc: rightDoc,
			},
		},
	}
}

func (e *BinaryExpression) StartPosition() Position {
	return e.Left.StartPosition()
}

func (e *BinaryExpression) EndPosition(memoryGauge common.MemoryGauge) Position {
	return e.Right.EndPosition(memoryGauge)
}

func (e *BinaryExpression) MarshalJSON() ([]byte, error) {
	type Alias BinaryExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "BinaryExpression",
		Range: NewUnmeteredRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

func (e *BinaryExpression) precedence() precedence {
	switch e.Operation {
	case OperationPlus, OperationMinus:
		return precedenceAddition
	default:
		return precedenceUnknown
	}
}
