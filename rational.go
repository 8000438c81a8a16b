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
	"github.com/onflow/numeral/format"
)

// Rational is an exact numerator and denominator pair over integer-only
// numbers in a shared base. It is the exact-value bridge used to add
// numbers with repeating fractional parts.
//
// A Rational is immutable after construction, and is always canonical:
// the sign lives entirely on the numerator, the denominator is strictly
// positive, numerator and denominator share no common factor,
// and zero is 0/1.
//
// The zero value of the type is invalid, see IsValid
type Rational struct {
	numerator   Number
	denominator Number
}

// NewRational returns the canonical Rational for the given numerator
// and denominator, which must be integer-only numbers in a shared base
func NewRational(gauge common.MemoryGauge, numerator, denominator Number) (Rational, error) {
	if err := checkIntegerOperands(numerator, denominator); err != nil {
		return Rational{}, err
	}
	if denominator.IsZero() {
		return Rational{}, DivisionByZeroError{}
	}

	return rationalNormalize(gauge, Rational{
		numerator:   numerator,
		denominator: denominator,
	})
}

// ToRational converts the number into an exact rational
func (n Number) ToRational(gauge common.MemoryGauge) (Rational, error) {
	if !n.IsValid() {
		return Rational{}, InvalidNumberError{}
	}
	if n.IsRepeating() {
		return rationalFromRepeating(gauge, n)
	}
	return rationalFromTerminating(gauge, n)
}

func (r Rational) Numerator() Number {
	return r.numerator
}

func (r Rational) Denominator() Number {
	return r.denominator
}

// IsValid returns false for the zero value of the type
// and for the result of a failed operation
func (r Rational) IsValid() bool {
	return r.numerator.IsValid() &&
		r.denominator.IsValid()
}

func (r Rational) IsZero() bool {
	return r.numerator.IsZero()
}

// Equal returns true when both rationals have the same canonical
// representation. Rationals with different bases are never equal
func (r Rational) Equal(other Rational) bool {
	return r.numerator.Equal(other.numerator) &&
		r.denominator.Equal(other.denominator)
}

func (r Rational) String() string {
	if !r.IsValid() {
		return format.InvalidNumeral
	}
	return format.Rational(
		r.numerator.base,
		r.numerator.digits,
		r.numerator.negative,
		r.denominator.digits,
	)
}

// Plus returns the exact sum of the two rationals, which must share
// a base
func (r Rational) Plus(gauge common.MemoryGauge, other Rational) (Rational, error) {
	if !r.IsValid() || !other.IsValid() {
		return Rational{}, InvalidNumberError{}
	}
	if r.numerator.base != other.numerator.base {
		return Rational{}, BaseMismatchError{
			LeftBase:  r.numerator.base,
			RightBase: other.numerator.base,
		}
	}

	// cross-multiply magnitudes, tagging each product with the sign
	// of its numerator, then combine the signed integer-only products
	// with the terminating adder

	leftProduct, err := intMulAbs(gauge, r.numerator, other.denominator)
	if err != nil {
		return Rational{}, err
	}
	leftProduct = leftProduct.withSign(r.numerator.negative)

	rightProduct, err := intMulAbs(gauge, other.numerator, r.denominator)
	if err != nil {
		return Rational{}, err
	}
	rightProduct = rightProduct.withSign(other.numerator.negative)

	numerator, err := numberAdd(gauge, leftProduct, rightProduct)
	if err != nil {
		return Rational{}, err
	}

	denominator, err := intMulAbs(gauge, r.denominator, other.denominator)
	if err != nil {
		return Rational{}, err
	}

	return rationalNormalize(gauge, Rational{
		numerator:   numerator,
		denominator: denominator,
	})
}

// rationalNormalize reduces the fraction by the greatest common
// divisor, canonicalizes a zero numerator to 0/1, and moves the sign
// of the denominator onto the numerator
func rationalNormalize(gauge common.MemoryGauge, r Rational) (Rational, error) {
	common.UseMemory(gauge, common.RationalMemoryUsage)

	base := r.numerator.base

	if r.numerator.IsZero() {
		return Rational{
			numerator:   newZero(gauge, base),
			denominator: numberFromDigit(gauge, base, 1),
		}, nil
	}

	negative := r.numerator.negative != r.denominator.negative

	divisor, err := intGCD(gauge, r.numerator, r.denominator)
	if err != nil {
		return Rational{}, err
	}

	numerator, _, err := intDivMod(gauge, r.numerator, divisor)
	if err != nil {
		return Rational{}, err
	}

	denominator, _, err := intDivMod(gauge, r.denominator, divisor)
	if err != nil {
		return Rational{}, err
	}

	return Rational{
		numerator:   numerator.withSign(negative),
		denominator: denominator,
	}, nil
}

// rationalFromTerminating converts a terminating number into
// digits / base^decimalLength
func rationalFromTerminating(gauge common.MemoryGauge, n Number) (Rational, error) {
	numerator := integerFromDigits(gauge, n).withSign(n.negative)

	denominator, err := basePower(gauge, n.base, n.decimalLength)
	if err != nil {
		return Rational{}, err
	}

	return rationalNormalize(gauge, Rational{
		numerator:   numerator,
		denominator: denominator,
	})
}

// rationalFromRepeating converts a repeating number into a rational,
// by the repeating-decimal identity generalized to any base:
// with N the integer value of all digits through one full period,
// and M the integer value of the digits with the period removed,
// the magnitude is (N - M) / (base^nonRepeatingLength × (base^period - 1))
func rationalFromRepeating(gauge common.MemoryGauge, n Number) (Rational, error) {
	base := n.base

	period := n.repeatingLength
	nonRepeatingLength := n.decimalLength - period

	withPeriod := integerFromDigits(gauge, n)

	truncated := n
	truncated.digits = n.digits[:len(n.digits)-period]
	withoutPeriod := integerFromDigits(gauge, truncated)

	// N >= M, as N is M shifted by the period plus the period digits
	numerator, err := intSubAbs(gauge, withPeriod, withoutPeriod, false)
	if err != nil {
		return Rational{}, err
	}
	numerator = numerator.withSign(n.negative)

	nonRepeatingPower, err := basePower(gauge, base, nonRepeatingLength)
	if err != nil {
		return Rational{}, err
	}

	periodPower, err := basePower(gauge, base, period)
	if err != nil {
		return Rational{}, err
	}

	periodDenominator, err := intSubAbs(
		gauge,
		periodPower,
		numberFromDigit(gauge, base, 1),
		false,
	)
	if err != nil {
		return Rational{}, err
	}

	denominator, err := intMulAbs(gauge, nonRepeatingPower, periodDenominator)
	if err != nil {
		return Rational{}, err
	}

	return rationalNormalize(gauge, Rational{
		numerator:   numerator,
		denominator: denominator,
	})
}

// integerFromDigits reads all digits of a number as one integer-only
// magnitude, ignoring the radix point, the period, and the sign
func integerFromDigits(gauge common.MemoryGauge, n Number) Number {
	result := newNumber(gauge, n.base, len(n.digits))
	copy(result.digits, n.digits)
	result.normalize()
	return result
}

// basePower returns base^exponent as a number in that base,
// built by repeated multiplication with the base
func basePower(gauge common.MemoryGauge, base int, exponent int) (Number, error) {
	result := numberFromDigit(gauge, base, 1)

	if exponent == 0 {
		return result, nil
	}

	// the base itself, written in the base, is the two digits 1 0
	baseNumber := newNumber(gauge, base, 2)
	baseNumber.digits[0] = 1

	for i := 0; i < exponent; i++ {
		next, err := intMulAbs(gauge, result, baseNumber)
		if err != nil {
			return Number{}, err
		}
		result = next
	}

	return result, nil
}
