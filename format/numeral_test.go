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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumeral(t *testing.T) {

	t.Parallel()

	test := func(expected string, base int, digits []uint8, negative bool, decimalLength, repeatingLength int) {
		t.Run(expected, func(t *testing.T) {
			t.Parallel()

			require.Equal(t,
				expected,
				Numeral(base, digits, negative, decimalLength, repeatingLength),
			)
		})
	}

	test("0", 10, []uint8{0}, false, 0, 0)
	test("1234", 10, []uint8{1, 2, 3, 4}, false, 0, 0)
	test("-12.34", 10, []uint8{1, 2, 3, 4}, true, 2, 0)
	test("0.(3)", 10, []uint8{0, 3}, false, 1, 1)
	test("1.(3)", 10, []uint8{1, 3}, false, 1, 1)
	test("1.2(34)", 10, []uint8{1, 2, 3, 4}, false, 3, 2)
	test("2#101", 2, []uint8{1, 0, 1}, false, 0, 0)
	test("16#F.A(BC)", 16, []uint8{15, 10, 11, 12}, false, 3, 2)
	test("16#-F", 16, []uint8{15}, true, 0, 0)
	test("36#Z", 36, []uint8{35}, false, 0, 0)
}

func TestRational(t *testing.T) {

	t.Parallel()

	test := func(expected string, base int, numeratorDigits []uint8, negative bool, denominatorDigits []uint8) {
		t.Run(expected, func(t *testing.T) {
			t.Parallel()

			require.Equal(t,
				expected,
				Rational(base, numeratorDigits, negative, denominatorDigits),
			)
		})
	}

	test("0/1", 10, []uint8{0}, false, []uint8{1})
	test("5/6", 10, []uint8{5}, false, []uint8{6})
	test("-4/3", 10, []uint8{4}, true, []uint8{3})
	test("617/50", 10, []uint8{6, 1, 7}, false, []uint8{5, 0})
	test("16#1/3", 16, []uint8{1}, false, []uint8{3})
	test("2#-1/11", 2, []uint8{1}, true, []uint8{1, 1})
}
