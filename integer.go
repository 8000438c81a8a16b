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
	"github.com/onflow/numeral/errors"
)

// checkIntegerOperands rejects operands the integer operations
// cannot work on, before any digit work begins
func checkIntegerOperands(a, b Number) error {
	if !a.IsValid() || !b.IsValid() {
		return InvalidNumberError{}
	}
	if a.base != b.base {
		return BaseMismatchError{
			LeftBase:  a.base,
			RightBase: b.base,
		}
	}
	if !a.IsInteger() || !b.IsInteger() {
		return NotIntegerOnlyError{}
	}
	return nil
}

// intAddAbs returns |a| + |b| for two integer-only numbers in a shared
// base. The signs of the operands are ignored,
// the result is never negative
func intAddAbs(gauge common.MemoryGauge, a, b Number) (Number, error) {
	if err := checkIntegerOperands(a, b); err != nil {
		return Number{}, err
	}

	base := a.base

	length := len(a.digits)
	if len(b.digits) > length {
		length = len(b.digits)
	}

	// one extra position for a final carry
	result := newNumber(gauge, base, length+1)

	carry := 0
	for i := 0; i < length; i++ {
		sum := carry
		if i < len(a.digits) {
			sum += int(a.digits[len(a.digits)-1-i])
		}
		if i < len(b.digits) {
			sum += int(b.digits[len(b.digits)-1-i])
		}
		result.digits[length-i] = uint8(sum % base)
		carry = sum / base
	}
	result.digits[0] = uint8(carry)

	result.normalize()
	return result, nil
}

// intSubAbs returns |a| - |b| for two integer-only numbers in a shared
// base. The caller must guarantee |a| >= |b|.
// negative sets the sign of the result, which is then normalized,
// so zero stays non-negative
func intSubAbs(gauge common.MemoryGauge, a, b Number, negative bool) (Number, error) {
	if err := checkIntegerOperands(a, b); err != nil {
		return Number{}, err
	}

	base := a.base
	length := len(a.digits)

	result := newNumber(gauge, base, length)

	borrow := 0
	for i := 0; i < length; i++ {
		difference := int(a.digits[length-1-i]) - borrow
		if i < len(b.digits) {
			difference -= int(b.digits[len(b.digits)-1-i])
		}
		borrow = 0
		if difference < 0 {
			difference += base
			borrow = 1
		}
		result.digits[length-1-i] = uint8(difference)
	}

	result.negative = negative

	result.normalize()
	return result, nil
}

// intMulAbs returns |a| × |b| for two integer-only numbers in a shared
// base, by schoolbook multiplication: the digits at positions i and j
// contribute to the result position i+j, with a carry chain per row
func intMulAbs(gauge common.MemoryGauge, a, b Number) (Number, error) {
	if err := checkIntegerOperands(a, b); err != nil {
		return Number{}, err
	}

	base := a.base

	if a.IsZero() || b.IsZero() {
		return newZero(gauge, base), nil
	}

	result := newNumber(gauge, base, len(a.digits)+len(b.digits))

	for i := len(a.digits) - 1; i >= 0; i-- {
		carry := 0
		for j := len(b.digits) - 1; j >= 0; j-- {
			offset := i + j + 1
			product := int(a.digits[i])*int(b.digits[j]) +
				int(result.digits[offset]) +
				carry
			result.digits[offset] = uint8(product % base)
			carry = product / base
		}
		// the position above the row is untouched so far
		result.digits[i] = uint8(carry)
	}

	result.normalize()
	return result, nil
}

// mulDigitAbs returns |n| × digit. The digit must be smaller
// than the base
func mulDigitAbs(gauge common.MemoryGauge, n Number, digit uint8) Number {
	if digit == 0 || n.IsZero() {
		return newZero(gauge, n.base)
	}

	base := n.base
	result := newNumber(gauge, base, len(n.digits)+1)

	carry := 0
	for i := len(n.digits) - 1; i >= 0; i-- {
		product := int(n.digits[i])*int(digit) + carry
		result.digits[i+1] = uint8(product % base)
		carry = product / base
	}
	result.digits[0] = uint8(carry)

	result.normalize()
	return result
}

// shiftAppendDigit returns |n| shifted one position towards the most
// significant end, with the given digit appended at the least
// significant position
func shiftAppendDigit(gauge common.MemoryGauge, n Number, digit uint8) Number {
	if n.IsZero() {
		return numberFromDigit(gauge, n.base, digit)
	}

	result := newNumber(gauge, n.base, len(n.digits)+1)
	copy(result.digits, n.digits)
	result.digits[len(result.digits)-1] = digit
	return result
}

// intDivMod returns the quotient and remainder of |numerator| divided
// by |denominator|, for two integer-only numbers in a shared base.
//
// Long division, most significant digit first: at each step the running
// remainder is shifted one position and the next numerator digit is
// appended; the quotient digit is the largest q in [0, base) with
// denominator × q <= remainder, found by binary search over q;
// the remainder is then reduced by denominator × q
func intDivMod(
	gauge common.MemoryGauge,
	numerator Number,
	denominator Number,
) (
	quotient Number,
	remainder Number,
	err error,
) {
	err = checkIntegerOperands(numerator, denominator)
	if err != nil {
		return Number{}, Number{}, err
	}

	if denominator.IsZero() {
		return Number{}, Number{}, DivisionByZeroError{}
	}

	base := numerator.base

	if compareAbs(numerator, denominator) < 0 {
		return newZero(gauge, base), numerator.abs(), nil
	}

	quotient = newNumber(gauge, base, len(numerator.digits))
	remainder = newZero(gauge, base)

	for i, digit := range numerator.digits {
		remainder = shiftAppendDigit(gauge, remainder, digit)

		// find the largest q in [0, base) with denominator × q <= remainder
		low := 0
		high := base - 1
		for low < high {
			mid := (low + high + 1) / 2
			product := mulDigitAbs(gauge, denominator, uint8(mid))
			if compareAbs(product, remainder) <= 0 {
				low = mid
			} else {
				high = mid - 1
			}
		}
		q := uint8(low)

		if q > 0 {
			product := mulDigitAbs(gauge, denominator, q)
			remainder, err = intSubAbs(gauge, remainder, product, false)
			if err != nil {
				return Number{}, Number{}, err
			}
		}

		quotient.digits[i] = q
	}

	quotient.normalize()
	return quotient, remainder, nil
}

// intGCD returns the greatest common divisor of |a| and |b|,
// by the iterative Euclidean algorithm, with gcd(a, 0) = a.
// The inputs are unmodified
func intGCD(gauge common.MemoryGauge, a, b Number) (Number, error) {
	if err := checkIntegerOperands(a, b); err != nil {
		return Number{}, err
	}

	a = a.abs()
	b = b.abs()

	for !b.IsZero() {
		_, remainder, err := intDivMod(gauge, a, b)
		if err != nil {
			// the divisor is never zero here
			panic(errors.NewUnexpectedErrorFromCause(err))
		}
		a = b
		b = remainder
	}

	return a, nil
}
