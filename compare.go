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

// compareAbs compares the absolute values of two terminating numbers,
// returning -1, 0, or 1.
//
// The numbers may differ in total length: integer-part lengths are
// compared first, then the integer digits most significant first,
// then the fractional digits position by position, with the missing
// positions of the shorter fraction read as zero.
// Nothing is padded or allocated
func compareAbs(a, b Number) int {
	aIntegerLength := len(a.digits) - a.decimalLength
	bIntegerLength := len(b.digits) - b.decimalLength

	// both are canonical, so a longer integer part is a larger value
	if aIntegerLength != bIntegerLength {
		if aIntegerLength < bIntegerLength {
			return -1
		}
		return 1
	}

	for i := 0; i < aIntegerLength; i++ {
		aDigit := a.digits[i]
		bDigit := b.digits[i]
		if aDigit != bDigit {
			if aDigit < bDigit {
				return -1
			}
			return 1
		}
	}

	decimalLength := a.decimalLength
	if b.decimalLength > decimalLength {
		decimalLength = b.decimalLength
	}

	for i := 0; i < decimalLength; i++ {
		var aDigit, bDigit uint8
		if i < a.decimalLength {
			aDigit = a.digits[aIntegerLength+i]
		}
		if i < b.decimalLength {
			bDigit = b.digits[bIntegerLength+i]
		}
		if aDigit != bDigit {
			if aDigit < bDigit {
				return -1
			}
			return 1
		}
	}

	return 0
}
