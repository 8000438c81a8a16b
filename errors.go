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
	"fmt"

	"github.com/onflow/numeral/errors"
)

// InvalidBaseError

// InvalidBaseError is reported when a base outside [MinBase, MaxBase]
// is used
type InvalidBaseError struct {
	Base int
}

var _ error = InvalidBaseError{}
var _ errors.UserError = InvalidBaseError{}

func (InvalidBaseError) IsUserError() {}

func (e InvalidBaseError) Error() string {
	return fmt.Sprintf(
		"invalid base: %d, expected base in [%d, %d]",
		e.Base,
		MinBase,
		MaxBase,
	)
}

// InvalidDigitError

// InvalidDigitError is reported when a digit value is not smaller
// than the base
type InvalidDigitError struct {
	Digit uint8
	Base  int
}

var _ error = InvalidDigitError{}
var _ errors.UserError = InvalidDigitError{}

func (InvalidDigitError) IsUserError() {}

func (e InvalidDigitError) Error() string {
	return fmt.Sprintf(
		"invalid digit: %d, expected digit in [0, %d)",
		e.Digit,
		e.Base,
	)
}

// InvalidLengthsError

// InvalidLengthsError is reported when the decimal length and the
// repeating length of a number do not satisfy
// 0 <= repeating length <= decimal length <= digit count
type InvalidLengthsError struct {
	Length          int
	DecimalLength   int
	RepeatingLength int
}

var _ error = InvalidLengthsError{}
var _ errors.UserError = InvalidLengthsError{}

func (InvalidLengthsError) IsUserError() {}

func (e InvalidLengthsError) Error() string {
	return fmt.Sprintf(
		"invalid lengths: %d digit(s), decimal length %d, repeating length %d",
		e.Length,
		e.DecimalLength,
		e.RepeatingLength,
	)
}

// InvalidNumberError

// InvalidNumberError is reported when an operand is the invalid
// zero value of Number, e.g. the result of a failed operation
type InvalidNumberError struct{}

var _ error = InvalidNumberError{}
var _ errors.UserError = InvalidNumberError{}

func (InvalidNumberError) IsUserError() {}

func (InvalidNumberError) Error() string {
	return "invalid number"
}

// BaseMismatchError

// BaseMismatchError is reported when the operands of a binary
// operation do not share a base
type BaseMismatchError struct {
	LeftBase  int
	RightBase int
}

var _ error = BaseMismatchError{}
var _ errors.UserError = BaseMismatchError{}

func (BaseMismatchError) IsUserError() {}

func (e BaseMismatchError) Error() string {
	return fmt.Sprintf(
		"mismatched bases: %d and %d",
		e.LeftBase,
		e.RightBase,
	)
}

// NotIntegerOnlyError

// NotIntegerOnlyError is reported when an operand with a fractional
// part is passed to an operation that only accepts integers
type NotIntegerOnlyError struct{}

var _ error = NotIntegerOnlyError{}
var _ errors.UserError = NotIntegerOnlyError{}

func (NotIntegerOnlyError) IsUserError() {}

func (NotIntegerOnlyError) Error() string {
	return "operand is not integer-only"
}

// RepeatingOperandError

// RepeatingOperandError is reported when an operand with a repeating
// fractional part is passed to an operation that only accepts
// terminating numbers
type RepeatingOperandError struct{}

var _ error = RepeatingOperandError{}
var _ errors.UserError = RepeatingOperandError{}

func (RepeatingOperandError) IsUserError() {}

func (RepeatingOperandError) Error() string {
	return "operand has a repeating fractional part"
}

// DivisionByZeroError

type DivisionByZeroError struct{}

var _ error = DivisionByZeroError{}
var _ errors.UserError = DivisionByZeroError{}

func (DivisionByZeroError) IsUserError() {}

func (DivisionByZeroError) Error() string {
	return "division by zero"
}
