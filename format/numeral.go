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

package format

import (
	"strconv"
	"strings"

	"github.com/onflow/numeral/common"
	"github.com/onflow/numeral/errors"
)

// InvalidNumeral is the rendering of a value
// that does not represent a number
const InvalidNumeral = "invalid number"

// Numeral returns the canonical textual layout of a positional numeral:
// an optional base prefix `base#` when the base is not ten
// (the base itself written in decimal), an optional minus sign,
// and the digit glyphs from the most significant digit down,
// with `.` inserted before the last decimalLength digits
// and the last repeatingLength digits enclosed in parentheses
func Numeral(
	base int,
	digits []uint8,
	negative bool,
	decimalLength int,
	repeatingLength int,
) string {
	var builder strings.Builder

	if base != 10 {
		builder.WriteString(strconv.Itoa(base))
		builder.WriteByte('#')
	}

	if negative {
		builder.WriteByte('-')
	}

	writeDigits(&builder, digits, decimalLength, repeatingLength)

	return builder.String()
}

// Rational returns the textual layout of a rational as
// `numerator/denominator`, with the same base prefix and sign rules
// as Numeral. Numerator and denominator are integer-only,
// so no radix point appears on either side
func Rational(
	base int,
	numeratorDigits []uint8,
	negative bool,
	denominatorDigits []uint8,
) string {
	var builder strings.Builder

	if base != 10 {
		builder.WriteString(strconv.Itoa(base))
		builder.WriteByte('#')
	}

	if negative {
		builder.WriteByte('-')
	}

	writeDigits(&builder, numeratorDigits, 0, 0)
	builder.WriteByte('/')
	writeDigits(&builder, denominatorDigits, 0, 0)

	return builder.String()
}

func writeDigits(
	builder *strings.Builder,
	digits []uint8,
	decimalLength int,
	repeatingLength int,
) {
	radixPointPosition := len(digits) - decimalLength
	repeatingPosition := len(digits) - repeatingLength

	for i, digit := range digits {
		// the radix point precedes the opening parenthesis
		// when both fall on the same position
		if decimalLength > 0 && i == radixPointPosition {
			builder.WriteByte('.')
		}
		if repeatingLength > 0 && i == repeatingPosition {
			builder.WriteByte('(')
		}

		glyph, ok := common.GlyphForDigit(digit)
		if !ok {
			panic(errors.NewUnreachableError())
		}
		builder.WriteByte(glyph)
	}

	if repeatingLength > 0 {
		builder.WriteByte(')')
	}
}
