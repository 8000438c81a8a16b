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

// Package ncf provides the Numeral Compact Format (NCF) codec,
// a deterministic binary encoding for numbers built on CBOR.
//
// Every number has exactly one NCF encoding: the encoder emits CBOR
// following the Core Deterministic Encoding Requirements of RFC 8949,
// and the decoder rejects messages whose parts are not in the
// canonical form they would decode to.
//
// A number is encoded as
// language=CDDL
// numeral-message =
//
//	; cbor-tag-numeral
//	#6.230([
//	  base: uint,
//	  negative: bool,
//	  digits: bytes,
//	  decimal-length: uint,
//	  repeating-length: uint,
//	])
//
// The digits are digit values, not glyphs, most significant first,
// one byte per digit.
package ncf

const (
	// CBORTagNumeral is the tag number of the top-level numeral-message
	CBORTagNumeral = 230
)
