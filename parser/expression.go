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

package parser

import (
	"github.com/onflow/numeral/ast"
	"github.com/onflow/numeral/errors"
	"github.com/onflow/numeral/parser/lexer"
)

const (
	// lowestBindingPower is the binding power passed to parse a full sub-expression.
	// The binding power controls operator precedence:
	// the higher the value, the tighter a token binds the expressions that follow it
	lowestBindingPower = 0

	exprLeftBindingPowerAddition       = 110
	exprLeftBindingPowerMultiplication = 120
	exprLeftBindingPowerUnaryPrefix    = 130
)

type infixFunc func(parser *parser, left, right ast.Expression) ast.Expression

type exprNullDenotationFunc func(parser *parser, token lexer.Token) ast.Expression
type exprLeftDenotationFunc func(parser *parser, token lexer.Token, left ast.Expression) ast.Expression

type literal struct {
	nullDenotation exprNullDenotationFunc
	tokenType      lexer.TokenType
}

type infix struct {
	leftDenotation   infixFunc
	leftBindingPower int
	rightAssociative bool
	tokenType        lexer.TokenType
}

type binary struct {
	leftBindingPower int
	rightAssociative bool
	operation        ast.Operation
	tokenType        lexer.TokenType
}

type unary struct {
	bindingPower int
	operation    ast.Operation
	tokenType    lexer.TokenType
}

var exprNullDenotations = [lexer.TokenMax]exprNullDenotationFunc{}
var exprLeftBindingPowers = [lexer.TokenMax]int{}
var exprLeftDenotations = [lexer.TokenMax]exprLeftDenotationFunc{}

func setExprNullDenotation(tokenType lexer.TokenType, nullDenotation exprNullDenotationFunc) {
	current := exprNullDenotations[tokenType]
	if current != nil {
		panic(errors.NewUnexpectedError(
			"expression null denotation for token %s already exists",
			tokenType,
		))
	}
	exprNullDenotations[tokenType] = nullDenotation
}

func setExprLeftBindingPower(tokenType lexer.TokenType, power int) {
	current := exprLeftBindingPowers[tokenType]
	if current > power {
		return
	}
	exprLeftBindingPowers[tokenType] = power
}

func setExprLeftDenotation(tokenType lexer.TokenType, leftDenotation exprLeftDenotationFunc) {
	current := exprLeftDenotations[tokenType]
	if current != nil {
		panic(errors.NewUnexpectedError(
			"expression left denotation for token %s already exists",
			tokenType,
		))
	}
	exprLeftDenotations[tokenType] = leftDenotation
}

func defineExpr(def any) {
	switch def := def.(type) {
	case infix:
		tokenType := def.tokenType

		setExprLeftBindingPower(tokenType, def.leftBindingPower)

		rightBindingPower := def.leftBindingPower
		if def.rightAssociative {
			rightBindingPower--
		}

		setExprLeftDenotation(
			tokenType,
			func(parser *parser, _ lexer.Token, left ast.Expression) ast.Expression {
				right := parseExpression(parser, rightBindingPower)
				return def.leftDenotation(parser, left, right)
			},
		)

	case binary:
		defineExpr(infix{
			tokenType:        def.tokenType,
			leftBindingPower: def.leftBindingPower,
			rightAssociative: def.rightAssociative,
			leftDenotation: func(p *parser, left, right ast.Expression) ast.Expression {
				return ast.NewBinaryExpression(
					p.memoryGauge,
					def.operation,
					left,
					right,
				)
			},
		})

	case literal:
		setExprNullDenotation(def.tokenType, def.nullDenotation)

	case unary:
		setExprNullDenotation(
			def.tokenType,
			func(p *parser, token lexer.Token) ast.Expression {
				p.skipSpace()

				// ensure unary operators are not juxtaposed.
				// A parenthesized inner expression is fine
				switch p.current.Type {
				case lexer.TokenPlus, lexer.TokenMinus:
					panic(&JuxtaposedUnaryOperatorsError{
						Pos: token.StartPos,
					})
				}

				right := parseExpression(p, def.bindingPower)

				return ast.NewUnaryExpression(
					p.memoryGauge,
					def.operation,
					right,
					token.StartPos,
				)
			},
		)

	default:
		panic(errors.NewUnreachableError())
	}
}

func init() {
	defineExpr(binary{
		tokenType:        lexer.TokenPlus,
		leftBindingPower: exprLeftBindingPowerAddition,
		operation:        ast.OperationPlus,
	})

	defineExpr(binary{
		tokenType:        lexer.TokenMinus,
		leftBindingPower: exprLeftBindingPowerAddition,
		operation:        ast.OperationMinus,
	})

	defineUnsupportedBinaryOperation(lexer.TokenStar, "multiplication")
	defineUnsupportedBinaryOperation(lexer.TokenSlash, "division")

	defineExpr(unary{
		tokenType:    lexer.TokenMinus,
		bindingPower: exprLeftBindingPowerUnaryPrefix,
		operation:    ast.OperationMinus,
	})

	defineExpr(unary{
		tokenType:    lexer.TokenPlus,
		bindingPower: exprLeftBindingPowerUnaryPrefix,
		operation:    ast.OperationPlus,
	})

	defineNumeralExpression()
	defineIdentifierExpression()
	defineNestedExpression()
}

// defineUnsupportedBinaryOperation defines a left denotation
// which rejects the operation with a clear error,
// instead of the generic unexpected token error
func defineUnsupportedBinaryOperation(tokenType lexer.TokenType, operation string) {
	setExprLeftBindingPower(tokenType, exprLeftBindingPowerMultiplication)
	setExprLeftDenotation(
		tokenType,
		func(p *parser, token lexer.Token, left ast.Expression) ast.Expression {
			panic(NewSyntaxError(
				token.StartPos,
				"%s is not supported",
				operation,
			))
		},
	)
}

func defineNumeralExpression() {
	defineExpr(literal{
		tokenType: lexer.TokenNumeralLiteral,
		nullDenotation: func(p *parser, token lexer.Token) ast.Expression {
			return parseNumeralExpression(p, token)
		},
	})
}

func defineIdentifierExpression() {
	defineExpr(literal{
		tokenType: lexer.TokenIdentifier,
		nullDenotation: func(p *parser, token lexer.Token) ast.Expression {
			identifier := p.tokenToIdentifier(token)
			return ast.NewIdentifierExpression(
				p.memoryGauge,
				identifier,
			)
		},
	})
}

func defineNestedExpression() {
	setExprNullDenotation(
		lexer.TokenParenOpen,
		func(p *parser, token lexer.Token) ast.Expression {
			expression := parseExpression(p, lowestBindingPower)
			p.mustOne(lexer.TokenParenClose)
			return expression
		},
	)
}

// parseExpression uses the given left binding power to parse
// tokens into an expression. Values with weaker binding powers
// than the given one are not parsed into the expression.
//
// Greater binding powers bind tokens more strongly,
// i.e. they are applied first
func parseExpression(p *parser, rightBindingPower int) ast.Expression {

	if p.expressionDepth == expressionDepthLimit {
		panic(ExpressionDepthLimitReachedError{
			Pos: p.current.StartPos,
		})
	}

	p.expressionDepth++
	defer func() {
		p.expressionDepth--
	}()

	p.skipSpace()

	t := p.current
	p.next()

	left := applyExprNullDenotation(p, t)

	for {
		p.skipSpace()

		leftBindingPower := exprLeftBindingPowers[p.current.Type]
		if rightBindingPower >= leftBindingPower {
			break
		}

		t = p.current

		p.next()

		left = applyExprLeftDenotation(p, t, left)
	}

	return left
}

func applyExprNullDenotation(p *parser, token lexer.Token) ast.Expression {
	tokenType := token.Type
	nullDenotation := exprNullDenotations[tokenType]
	if nullDenotation == nil {
		panic(NewSyntaxError(
			token.StartPos,
			"unexpected token in expression: %s",
			tokenType,
		))
	}
	return nullDenotation(p, token)
}

func applyExprLeftDenotation(p *parser, token lexer.Token, left ast.Expression) ast.Expression {
	// A left denotation must exist if the token's left binding power was non-zero
	leftDenotation := exprLeftDenotations[token.Type]
	if leftDenotation == nil {
		panic(errors.NewUnexpectedError(
			"missing left denotation for token type: %v",
			token.Type,
		))
	}
	return leftDenotation(p, token, left)
}
