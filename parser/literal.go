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
	"github.com/onflow/numeral"
	"github.com/onflow/numeral/ast"
	"github.com/onflow/numeral/common"
	"github.com/onflow/numeral/errors"
	"github.com/onflow/numeral/parser/lexer"
)

// parseNumeralExpression converts a numeral literal token into an expression.
// A malformed literal is reported, and an expression holding the glyphs
// converted so far is still returned, so parsing can continue
func parseNumeralExpression(p *parser, token lexer.Token) *ast.NumeralExpression {
	literal, ok := token.Value.(string)
	// the value is set by the lexer for numeral tokens
	if !ok {
		panic(errors.NewUnreachableError())
	}

	expression, err := parseNumeralLiteral(
		p.memoryGauge,
		literal,
		token.Range,
	)
	if err != nil {
		p.report(err)
	}

	return expression
}

// parseNumeralLiteral parses the glyphs of a numeral literal:
// an optional decimal base followed by `#`, integer glyphs,
// an optional radix point followed by fractional glyphs,
// and an optional repeating part enclosed in parentheses.
//
// The digits of the result are the raw digit values in scanning order.
// Digit values are validated against the base, but no normalization
// is performed, e.g. leading zeros are preserved
func parseNumeralLiteral(
	memoryGauge common.MemoryGauge,
	literal string,
	literalRange ast.Range,
) (*ast.NumeralExpression, *InvalidNumeralLiteralError) {

	base := 10
	digits := make([]uint8, 0, len(literal))
	decimalLength := 0
	repeatingLength := 0

	newExpression := func() *ast.NumeralExpression {
		return ast.NewNumeralExpression(
			memoryGauge,
			literal,
			base,
			digits,
			decimalLength,
			repeatingLength,
			literalRange,
		)
	}

	newError := func(kind InvalidNumeralLiteralKind) *InvalidNumeralLiteralError {
		return &InvalidNumeralLiteralError{
			Literal:                   literal,
			InvalidNumeralLiteralKind: kind,
			Range:                     literalRange,
		}
	}

	// First pass: locate the base marker, the radix point,
	// and the parentheses of the repeating part

	baseMarkerIndex := -1
	radixPointIndex := -1
	openParenIndex := -1
	closeParenIndex := -1

	for i := 0; i < len(literal); i++ {
		switch literal[i] {
		case '#':
			if baseMarkerIndex >= 0 ||
				radixPointIndex >= 0 ||
				openParenIndex >= 0 {

				return newExpression(), newError(InvalidNumeralLiteralKindUnknown)
			}
			baseMarkerIndex = i

		case '.':
			if radixPointIndex >= 0 ||
				openParenIndex >= 0 {

				return newExpression(), newError(InvalidNumeralLiteralKindUnknown)
			}
			radixPointIndex = i

		case '(':
			if openParenIndex >= 0 {
				return newExpression(), newError(InvalidNumeralLiteralKindUnknown)
			}
			openParenIndex = i

		case ')':
			if openParenIndex < 0 || closeParenIndex >= 0 {
				return newExpression(), newError(InvalidNumeralLiteralKindUnknown)
			}
			closeParenIndex = i

		default:
			if _, ok := common.DigitForGlyph(literal[i]); !ok {
				return newExpression(), newError(InvalidNumeralLiteralKindUnknown)
			}
		}
	}

	if openParenIndex >= 0 {
		switch {
		case closeParenIndex < 0:
			return newExpression(), newError(InvalidNumeralLiteralKindMissingClosingParen)

		case closeParenIndex != len(literal)-1:
			// glyphs after the closing parenthesis
			return newExpression(), newError(InvalidNumeralLiteralKindUnknown)

		case closeParenIndex == openParenIndex+1:
			return newExpression(), newError(InvalidNumeralLiteralKindEmptyRepeatingPart)
		}
	}

	// Determine the base

	glyphsStart := 0

	if baseMarkerIndex >= 0 {
		glyphsStart = baseMarkerIndex + 1

		if baseMarkerIndex == 0 {
			return newExpression(), newError(InvalidNumeralLiteralKindInvalidBase)
		}

		parsedBase := 0
		for i := 0; i < baseMarkerIndex; i++ {
			c := literal[i]
			if c < '0' || c > '9' {
				return newExpression(), newError(InvalidNumeralLiteralKindInvalidBase)
			}
			parsedBase = parsedBase*10 + int(c-'0')
			if parsedBase > numeral.MaxBase {
				return newExpression(), newError(InvalidNumeralLiteralKindInvalidBase)
			}
		}

		if parsedBase < numeral.MinBase {
			return newExpression(), newError(InvalidNumeralLiteralKindInvalidBase)
		}

		base = parsedBase
	}

	// Second pass: convert the glyphs into digit values

	appendGlyphs := func(start, end int) bool {
		for i := start; i < end; i++ {
			digit, ok := common.DigitForGlyph(literal[i])
			// the first pass only admits glyphs
			if !ok {
				panic(errors.NewUnreachableError())
			}
			if int(digit) >= base {
				return false
			}
			digits = append(digits, digit)
		}
		return true
	}

	integerEnd := len(literal)
	if radixPointIndex >= 0 {
		integerEnd = radixPointIndex
	} else if openParenIndex >= 0 {
		integerEnd = openParenIndex
	}

	if integerEnd <= glyphsStart {
		return newExpression(), newError(InvalidNumeralLiteralKindMissingDigits)
	}

	if !appendGlyphs(glyphsStart, integerEnd) {
		return newExpression(), newError(InvalidNumeralLiteralKindInvalidDigit)
	}

	if radixPointIndex >= 0 {
		fractionStart := radixPointIndex + 1
		fractionEnd := len(literal)
		if openParenIndex >= 0 {
			fractionEnd = openParenIndex
		}

		if fractionStart < fractionEnd {
			if !appendGlyphs(fractionStart, fractionEnd) {
				return newExpression(), newError(InvalidNumeralLiteralKindInvalidDigit)
			}
			decimalLength = fractionEnd - fractionStart
		} else if openParenIndex < 0 {
			// a radix point at the end, e.g. `1.`.
			// an empty fractional part is only valid
			// when a repeating part follows, e.g. `0.(3)`
			return newExpression(), newError(InvalidNumeralLiteralKindMisplacedRadixPoint)
		}
	}

	if openParenIndex >= 0 {
		repeatingStart := openParenIndex + 1
		if !appendGlyphs(repeatingStart, closeParenIndex) {
			return newExpression(), newError(InvalidNumeralLiteralKindInvalidDigit)
		}

		// A repeating part without a radix point repeats
		// directly after the radix point, e.g. `12(3)` is `12.(3)`
		repeatingLength = closeParenIndex - repeatingStart
		decimalLength += repeatingLength
	}

	return newExpression(), nil
}
