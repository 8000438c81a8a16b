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

// ToNumber converts the rational into its exact positional expansion.
// The expansion either terminates, or repeats from the position where
// a remainder of the digit-by-digit long division recurs.
// Every rational has such an expansion, as there are only
// denominator-many possible remainders
func (r Rational) ToNumber(gauge common.MemoryGauge) (Number, error) {
	if !r.IsValid() {
		return Number{}, InvalidNumberError{}
	}

	quotient, remainder, err := intDivMod(gauge, r.numerator, r.denominator)
	if err != nil {
		return Number{}, err
	}

	if remainder.IsZero() {
		return quotient.withSign(r.numerator.negative), nil
	}

	integerDigits := quotient.digits

	var fractionalDigits []uint8
	var repeatingLength int

	// remainders are recorded with the fractional position at which
	// they were first seen. When one recurs, the digits emitted since
	// that position form the period

	seen := map[string]int{}
	position := 0

	for {
		firstPosition, ok := seen[string(remainder.digits)]
		if ok {
			repeatingLength = position - firstPosition
			break
		}
		seen[string(remainder.digits)] = position

		shifted := shiftAppendDigit(gauge, remainder, 0)

		digitQuotient, nextRemainder, err := intDivMod(gauge, shifted, r.denominator)
		if err != nil {
			return Number{}, err
		}

		// the remainder is smaller than the denominator,
		// so the shifted remainder divides to a single digit
		if len(digitQuotient.digits) != 1 {
			panic(errors.NewUnreachableError())
		}

		fractionalDigits = append(fractionalDigits, digitQuotient.digits[0])
		position++

		if nextRemainder.IsZero() {
			break
		}
		remainder = nextRemainder
	}

	result := newNumber(
		gauge,
		r.numerator.base,
		len(integerDigits)+len(fractionalDigits),
	)
	copy(result.digits, integerDigits)
	copy(result.digits[len(integerDigits):], fractionalDigits)
	result.negative = r.numerator.negative
	result.decimalLength = len(fractionalDigits)
	result.repeatingLength = repeatingLength
	result.normalize()

	return result, nil
}
