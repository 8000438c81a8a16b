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
	"bytes"

	"github.com/onflow/numeral/common"
	"github.com/onflow/numeral/format"
)

const (
	MinBase = 2
	MaxBase = 36
)

// Number is an exact numeric value in a positional system with a base
// in [MinBase, MaxBase], including values with a repeating fractional
// part, e.g. `1.(3)`.
//
// The digit values are stored most significant first.
// The last decimalLength digits lie after the radix point,
// and of those, the last repeatingLength digits form one period
// of the repeating part.
//
// A Number is immutable after construction, and is always canonical:
//
//  1. The integer part has no leading zero,
//     unless it is the single digit 0.
//  2. When no repeating part is present,
//     the fractional part has no trailing zero.
//  3. An all-zero repeating part is collapsed away.
//     A repeating part containing any non-zero digit is preserved
//     digit for digit, including interior zeros.
//  4. Zero is the single digit 0, without a fractional part,
//     and is never negative.
//
// The zero value of the type is invalid, see IsValid
type Number struct {
	digits          []uint8
	base            int
	decimalLength   int
	repeatingLength int
	negative        bool
}

// NewNumber returns the canonical Number with the given parts.
//
// The digits are digit values, not glyphs, most significant first,
// and are copied. The last decimalLength digits form the fractional
// part, and the last repeatingLength of those form one period
// of the repeating part
func NewNumber(
	gauge common.MemoryGauge,
	base int,
	digits []uint8,
	negative bool,
	decimalLength int,
	repeatingLength int,
) (Number, error) {

	if base < MinBase || base > MaxBase {
		return Number{}, InvalidBaseError{Base: base}
	}

	if len(digits) == 0 {
		return Number{}, InvalidNumberError{}
	}

	if decimalLength < 0 ||
		decimalLength > len(digits) ||
		repeatingLength < 0 ||
		repeatingLength > decimalLength {

		return Number{}, InvalidLengthsError{
			Length:          len(digits),
			DecimalLength:   decimalLength,
			RepeatingLength: repeatingLength,
		}
	}

	for _, digit := range digits {
		if int(digit) >= base {
			return Number{}, InvalidDigitError{
				Digit: digit,
				Base:  base,
			}
		}
	}

	n := newNumber(gauge, base, len(digits))
	copy(n.digits, digits)
	n.negative = negative
	n.decimalLength = decimalLength
	n.repeatingLength = repeatingLength

	n.normalize()

	return n, nil
}

// NewZero returns the canonical zero in the given base
func NewZero(gauge common.MemoryGauge, base int) (Number, error) {
	if base < MinBase || base > MaxBase {
		return Number{}, InvalidBaseError{Base: base}
	}
	return newZero(gauge, base), nil
}

// newNumber allocates an all-zero Number with the given digit count.
// The caller fills the digits and normalizes before the value escapes
func newNumber(gauge common.MemoryGauge, base int, length int) Number {
	baseUsage, digitsUsage := common.NewNumberMemoryUsages(length)
	common.UseMemory(gauge, baseUsage)
	common.UseMemory(gauge, digitsUsage)

	return Number{
		base:   base,
		digits: make([]uint8, length),
	}
}

func newZero(gauge common.MemoryGauge, base int) Number {
	return newNumber(gauge, base, 1)
}

// numberFromDigit returns the single-digit Number for the given digit
// value, which must be smaller than the base
func numberFromDigit(gauge common.MemoryGauge, base int, digit uint8) Number {
	n := newNumber(gauge, base, 1)
	n.digits[0] = digit
	return n
}

func (n Number) Base() int {
	return n.base
}

// Digits returns a copy of the digit values, most significant first
func (n Number) Digits() []uint8 {
	digits := make([]uint8, len(n.digits))
	copy(digits, n.digits)
	return digits
}

func (n Number) Length() int {
	return len(n.digits)
}

func (n Number) IsNegative() bool {
	return n.negative
}

func (n Number) DecimalLength() int {
	return n.decimalLength
}

func (n Number) RepeatingLength() int {
	return n.repeatingLength
}

// IsValid returns false for the zero value of the type
// and for the result of a failed operation
func (n Number) IsValid() bool {
	return n.base >= MinBase && len(n.digits) > 0
}

func (n Number) IsZero() bool {
	return len(n.digits) == 1 &&
		n.digits[0] == 0 &&
		n.decimalLength == 0
}

// IsInteger returns true when the number has no fractional part.
// Only such numbers may be used with the integer operations
func (n Number) IsInteger() bool {
	return n.decimalLength == 0 && n.repeatingLength == 0
}

// IsRepeating returns true when the number has a repeating
// fractional part
func (n Number) IsRepeating() bool {
	return n.repeatingLength > 0
}

// Negate returns the number with the opposite sign.
// Zero and invalid numbers are returned unchanged
func (n Number) Negate(gauge common.MemoryGauge) Number {
	if !n.IsValid() || n.IsZero() {
		return n
	}
	common.UseMemory(gauge, common.NumberBaseMemoryUsage)
	n.negative = !n.negative
	return n
}

// withSign returns the number with the given sign.
// Zero is returned unchanged
func (n Number) withSign(negative bool) Number {
	if n.IsZero() {
		return n
	}
	n.negative = negative
	return n
}

// abs returns the magnitude of the number
func (n Number) abs() Number {
	n.negative = false
	return n
}

// Equal returns true when both numbers have the same canonical
// representation. Numbers with different bases are never equal
func (n Number) Equal(other Number) bool {
	return n.base == other.base &&
		n.negative == other.negative &&
		n.decimalLength == other.decimalLength &&
		n.repeatingLength == other.repeatingLength &&
		bytes.Equal(n.digits, other.digits)
}

func (n Number) String() string {
	if !n.IsValid() {
		return format.InvalidNumeral
	}
	return format.Numeral(
		n.base,
		n.digits,
		n.negative,
		n.decimalLength,
		n.repeatingLength,
	)
}

// normalize reduces the number to canonical form, in place.
// It is idempotent, and is called before a freshly built Number
// escapes the package
func (n *Number) normalize() {
	if len(n.digits) == 0 {
		return
	}

	// collapse an all-zero repeating part
	if n.repeatingLength > 0 {
		repeatingStart := len(n.digits) - n.repeatingLength
		if digitsAreZero(n.digits[repeatingStart:]) {
			n.digits = n.digits[:repeatingStart]
			n.decimalLength -= n.repeatingLength
			n.repeatingLength = 0
		}
	}

	// strip leading zeros from the integer part, keeping one digit
	integerLength := len(n.digits) - n.decimalLength
	leadingZeros := 0
	for leadingZeros < integerLength-1 && n.digits[leadingZeros] == 0 {
		leadingZeros++
	}
	if leadingZeros > 0 {
		n.digits = n.digits[leadingZeros:]
	}

	// an empty integer part gains a single zero digit,
	// so the radix point never leads the printed digits
	if n.decimalLength == len(n.digits) {
		digits := make([]uint8, len(n.digits)+1)
		copy(digits[1:], n.digits)
		n.digits = digits
	}

	// strip trailing zeros from a terminating fractional part
	if n.decimalLength > 0 && n.repeatingLength == 0 {
		end := len(n.digits)
		for n.decimalLength > 0 && n.digits[end-1] == 0 {
			end--
			n.decimalLength--
		}
		n.digits = n.digits[:end]
	}

	// canonical zero is never negative
	if len(n.digits) == 1 &&
		n.digits[0] == 0 &&
		n.decimalLength == 0 {

		n.negative = false
	}
}

func digitsAreZero(digits []uint8) bool {
	for _, digit := range digits {
		if digit != 0 {
			return false
		}
	}
	return true
}
