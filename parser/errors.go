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
	"fmt"
	"strings"

	"github.com/onflow/numeral"
	"github.com/onflow/numeral/ast"
	"github.com/onflow/numeral/common"
	"github.com/onflow/numeral/errors"
	"github.com/onflow/numeral/pretty"
)

// Error

type Error struct {
	Code   []byte
	Errors []error
}

func (e Error) Error() string {
	var sb strings.Builder
	sb.WriteString("Parsing failed:\n")
	printErr := pretty.NewErrorPrettyPrinter(&sb, false).
		PrettyPrintError(e, "", e.Code)
	if printErr != nil {
		panic(printErr)
	}
	return sb.String()
}

func (e Error) ChildErrors() []error {
	return e.Errors
}

func (e Error) Unwrap() []error {
	return e.Errors
}

// ParseError

type ParseError interface {
	errors.UserError
	ast.HasPosition
	isParseError()
}

// SyntaxError

type SyntaxError struct {
	Message string
	Pos     ast.Position
}

func NewSyntaxError(pos ast.Position, message string, params ...any) *SyntaxError {
	return &SyntaxError{
		Pos:     pos,
		Message: fmt.Sprintf(message, params...),
	}
}

var _ ParseError = &SyntaxError{}
var _ errors.UserError = &SyntaxError{}

func (*SyntaxError) isParseError() {}

func (*SyntaxError) IsUserError() {}

func (e *SyntaxError) StartPosition() ast.Position {
	return e.Pos
}

func (e *SyntaxError) EndPosition(_ common.MemoryGauge) ast.Position {
	return e.Pos
}

func (e *SyntaxError) Error() string {
	return e.Message
}

// JuxtaposedUnaryOperatorsError

type JuxtaposedUnaryOperatorsError struct {
	Pos ast.Position
}

var _ ParseError = &JuxtaposedUnaryOperatorsError{}
var _ errors.UserError = &JuxtaposedUnaryOperatorsError{}
var _ errors.SecondaryError = &JuxtaposedUnaryOperatorsError{}

func (*JuxtaposedUnaryOperatorsError) isParseError() {}

func (*JuxtaposedUnaryOperatorsError) IsUserError() {}

func (e *JuxtaposedUnaryOperatorsError) StartPosition() ast.Position {
	return e.Pos
}

func (e *JuxtaposedUnaryOperatorsError) EndPosition(_ common.MemoryGauge) ast.Position {
	return e.Pos
}

func (e *JuxtaposedUnaryOperatorsError) Error() string {
	return "unary operators must not be juxtaposed; parenthesize inner expression"
}

func (e *JuxtaposedUnaryOperatorsError) SecondaryError() string {
	return "add parentheses around the inner expression"
}

// InvalidNumeralLiteralError

type InvalidNumeralLiteralError struct {
	Literal                   string
	InvalidNumeralLiteralKind InvalidNumeralLiteralKind
	ast.Range
}

var _ ParseError = &InvalidNumeralLiteralError{}
var _ errors.UserError = &InvalidNumeralLiteralError{}
var _ errors.SecondaryError = &InvalidNumeralLiteralError{}

func (*InvalidNumeralLiteralError) isParseError() {}

func (*InvalidNumeralLiteralError) IsUserError() {}

func (e *InvalidNumeralLiteralError) Error() string {
	return fmt.Sprintf(
		"invalid numeral literal `%s`: %s",
		e.Literal,
		e.InvalidNumeralLiteralKind.Description(),
	)
}

func (e *InvalidNumeralLiteralError) SecondaryError() string {
	switch e.InvalidNumeralLiteralKind {
	case InvalidNumeralLiteralKindUnknown:
		return ""
	case InvalidNumeralLiteralKindInvalidBase:
		return fmt.Sprintf(
			"the base before `#` must be a decimal number in the range [%d, %d]",
			numeral.MinBase,
			numeral.MaxBase,
		)
	case InvalidNumeralLiteralKindMissingDigits:
		return "consider adding a 0"
	case InvalidNumeralLiteralKindInvalidDigit:
		return "each digit must be smaller than the base"
	case InvalidNumeralLiteralKindMisplacedRadixPoint:
		return "add fractional digits after the `.`, or remove it"
	case InvalidNumeralLiteralKindMissingClosingParen:
		return "add a `)` after the repeating digits"
	case InvalidNumeralLiteralKindEmptyRepeatingPart:
		return "add at least one digit between `(` and `)`, or remove them"
	}

	panic(errors.NewUnreachableError())
}

// ExpressionDepthLimitReachedError is reported when the expression depth limit was reached

type ExpressionDepthLimitReachedError struct {
	Pos ast.Position
}

var _ ParseError = ExpressionDepthLimitReachedError{}
var _ errors.UserError = ExpressionDepthLimitReachedError{}

func (ExpressionDepthLimitReachedError) isParseError() {}

func (ExpressionDepthLimitReachedError) IsUserError() {}

func (e ExpressionDepthLimitReachedError) Error() string {
	return fmt.Sprintf(
		"expression too deeply nested, exceeded depth limit of %d",
		expressionDepthLimit,
	)
}

func (e ExpressionDepthLimitReachedError) StartPosition() ast.Position {
	return e.Pos
}

func (e ExpressionDepthLimitReachedError) EndPosition(_ common.MemoryGauge) ast.Position {
	return e.Pos
}
