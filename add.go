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

package numeral

import (
	"github.com/onflow/numeral/common"
)

// alignedDigit returns the digit of n at the given position, counted
// from the least significant position of a result with
// resultDecimalLength fractional digits.
// Positions outside of n read as zero
func alignedDigit(n Number, position, resultDecimalLength int) uint8 {
	index := position - resultDecimalLength + n.decimalLength
	if index < 0 || index >= len(n.digits) {
		return 0
	}
	return n.digits[len(n.digits)-1-index]
}

// addSameSign adds two terminating numbers with the same sign,
// aligning their integer and fractional parts without padding either
// input. The result carries the shared sign and the larger of the two
// decimal lengths
func addSameSign(gauge common.MemoryGauge, a, b Number) (Number, error) {
	base := a.base

	decimalLength := a.decimalLength
	if b.decimalLength > decimalLength {
		decimalLength = b.decimalLength
	}

	integerLength := len(a.digits) - a.decimalLength
	if bIntegerLength := len(b.digits) - b.decimalLength; bIntegerLength > integerLength {
		integerLength = bIntegerLength
	}

	// one extra integer position for a final carry
	length := integerLength + 1 + decimalLength
	result := newNumber(gauge, base, length)

	carry := 0
	for position := 0; position < length; position++ {
		sum := int(alignedDigit(a, position, decimalLength)) +
			int(alignedDigit(b, position, decimalLength)) +
			carry
		result.digits[length-1-position] = uint8(sum % base)
		carry = sum / base
	}

	result.negative = a.negative
	result.decimalLength = decimalLength

	result.normalize()
	return result, nil
}

// subSameSignAbs computes |a| - |b| for two terminating numbers with
// the same alignment discipline as addSameSign.
// The caller must guarantee |a| >= |b|.
// negative sets the sign of the result
func subSameSignAbs(gauge common.MemoryGauge, a, b Number, negative bool) (Number, error) {
	base := a.base

	decimalLength := a.decimalLength
	if b.decimalLength > decimalLength {
		decimalLength = b.decimalLength
	}

	// |a| >= |b|, so a's integer part is at least as long as b's
	integerLength := len(a.digits) - a.decimalLength

	length := integerLength + decimalLength
	result := newNumber(gauge, base, length)

	borrow := 0
	for position := 0; position < length; position++ {
		difference := int(alignedDigit(a, position, decimalLength)) -
			int(alignedDigit(b, position, decimalLength)) -
			borrow
		borrow = 0
		if difference < 0 {
			difference += base
			borrow = 1
		}
		result.digits[length-1-position] = uint8(difference)
	}

	result.negative = negative
	result.decimalLength = decimalLength

	result.normalize()
	return result, nil
}

// numberAdd adds two terminating numbers in a shared base.
//
// Operands with a repeating part are rejected:
// adding them exactly requires the rational layer, see Plus
func numberAdd(gauge common.MemoryGauge, a, b Number) (Number, error) {
	if !a.IsValid() || !b.IsValid() {
		return Number{}, InvalidNumberError{}
	}
	if a.base != b.base {
		return Number{}, BaseMismatchError{
			LeftBase:  a.base,
			RightBase: b.base,
		}
	}
	if a.IsRepeating() || b.IsRepeating() {
		return Number{}, RepeatingOperandError{}
	}

	if a.negative == b.negative {
		return addSameSign(gauge, a, b)
	}

	switch compareAbs(a, b) {
	case 0:
		return newZero(gauge, a.base), nil
	case 1:
		return subSameSignAbs(gauge, a, b, a.negative)
	default:
		return subSameSignAbs(gauge, b, a, b.negative)
	}
}

// Plus returns the exact sum of the two numbers, which must share
// a base.
//
// When either operand has a repeating part, both are promoted to
// rationals, added exactly, and the sum is expanded back into a
// possibly repeating number
func (n Number) Plus(gauge common.MemoryGauge, other Number) (Number, error) {
	if !n.IsValid() || !other.IsValid() {
		return Number{}, InvalidNumberError{}
	}
	if n.base != other.base {
		return Number{}, BaseMismatchError{
			LeftBase:  n.base,
			RightBase: other.base,
		}
	}

	if !n.IsRepeating() && !other.IsRepeating() {
		return numberAdd(gauge, n, other)
	}

	left, err := n.ToRational(gauge)
	if err != nil {
		return Number{}, err
	}

	right, err := other.ToRational(gauge)
	if err != nil {
		return Number{}, err
	}

	sum, err := left.Plus(gauge, right)
	if err != nil {
		return Number{}, err
	}

	return sum.ToNumber(gauge)
}
