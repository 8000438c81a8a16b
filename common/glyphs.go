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

package common

// Digit values 0-9 map to the glyphs '0'-'9',
// digit values 10-35 map to the glyphs 'A'-'Z'.
// Lowercase glyphs are accepted on input and never produced on output.

const (
	invalidGlyph byte  = 0xFF
	invalidDigit uint8 = 0xFF
)

// GlyphForDigit returns the printable glyph for the given digit value.
// The second return value is false if the digit value has no glyph,
// i.e. it is not in [0, 36).
func GlyphForDigit(digit uint8) (byte, bool) {
	switch {
	case digit <= 9:
		return '0' + digit, true
	case digit <= 35:
		return 'A' + digit - 10, true
	default:
		return invalidGlyph, false
	}
}

// DigitForGlyph returns the digit value for the given glyph.
// The second return value is false if the glyph does not denote a digit.
//
// NOTE: the result is independent of any base:
// callers must check the digit value against their base.
func DigitForGlyph(glyph byte) (uint8, bool) {
	switch {
	case '0' <= glyph && glyph <= '9':
		return glyph - '0', true
	case 'A' <= glyph && glyph <= 'Z':
		return glyph - 'A' + 10, true
	case 'a' <= glyph && glyph <= 'z':
		return glyph - 'a' + 10, true
	default:
		return invalidDigit, false
	}
}
