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

package parser

import (
	"github.com/onflow/numeral/errors"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=InvalidNumeralLiteralKind

type InvalidNumeralLiteralKind uint

const (
	InvalidNumeralLiteralKindUnknown InvalidNumeralLiteralKind = iota
	InvalidNumeralLiteralKindInvalidBase
	InvalidNumeralLiteralKindMissingDigits
	InvalidNumeralLiteralKindInvalidDigit
	InvalidNumeralLiteralKindMisplacedRadixPoint
	InvalidNumeralLiteralKindMissingClosingParen
	InvalidNumeralLiteralKindEmptyRepeatingPart
)

func (k InvalidNumeralLiteralKind) Description() string {
	switch k {
	case InvalidNumeralLiteralKindInvalidBase:
		return "invalid base"
	case InvalidNumeralLiteralKindMissingDigits:
		return "missing digits"
	case InvalidNumeralLiteralKindInvalidDigit:
		return "invalid digit for base"
	case InvalidNumeralLiteralKindMisplacedRadixPoint:
		return "misplaced radix point"
	case InvalidNumeralLiteralKindMissingClosingParen:
		return "unterminated repeating part"
	case InvalidNumeralLiteralKindEmptyRepeatingPart:
		return "empty repeating part"
	case InvalidNumeralLiteralKindUnknown:
		return "unknown"
	}

	panic(errors.NewUnreachableError())
}
