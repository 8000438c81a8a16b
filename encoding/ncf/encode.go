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

package ncf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	goRuntime "runtime"

	"github.com/fxamacker/cbor/v2"

	"github.com/onflow/numeral"
	numeralErrors "github.com/onflow/numeral/errors"
)

// CBOREncMode
//
// See https://github.com/fxamacker/cbor:
// "For best performance, reuse EncMode and DecMode after creating them."
var CBOREncMode = func() cbor.EncMode {
	options := cbor.CoreDetEncOptions()
	encMode, err := options.EncMode()
	if err != nil {
		panic(err)
	}
	return encMode
}()

// An Encoder converts numbers into NCF-encoded bytes.
type Encoder struct {
	// NCF codec uses CBOR codec under the hood.
	enc *cbor.StreamEncoder
}

// Encode returns the NCF-encoded representation of the given number.
//
// This function returns an error if the number is invalid.
func Encode(value numeral.Number) ([]byte, error) {
	var w bytes.Buffer

	enc := NewEncoder(&w)
	defer enc.enc.Close()

	err := enc.Encode(value)
	if err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// MustEncode returns the NCF-encoded representation of the given number,
// or panics if the number cannot be encoded.
func MustEncode(value numeral.Number) []byte {
	b, err := Encode(value)
	if err != nil {
		panic(err)
	}
	return b
}

// NewEncoder initializes an Encoder that will write NCF-encoded bytes
// to the given io.Writer.
func NewEncoder(w io.Writer) *Encoder {
	// NCF codec uses CBOR codec under the hood.
	return &Encoder{
		enc: CBOREncMode.NewStreamEncoder(w),
	}
}

// Encode writes the NCF-encoded representation of the given number
// to this encoder's io.Writer.
//
// This function returns an error if the number is invalid.
func (e *Encoder) Encode(value numeral.Number) (err error) {
	// capture panics
	defer func() {
		// Recover panic error if there is any.
		if r := recover(); r != nil {
			// Don't recover Go errors, internal errors, or non-errors.
			switch r := r.(type) {
			case goRuntime.Error, numeralErrors.InternalError:
				panic(r)
			case error:
				err = r
			default:
				panic(r)
			}
		}

		// Add context to error if there is any.
		if err != nil {
			err = fmt.Errorf(
				"ncf: failed to encode numeral (%s): %s",
				value,
				err,
			)
		}
	}()

	if !value.IsValid() {
		return errors.New("cannot encode invalid number")
	}

	err = e.encodeNumeral(value)
	if err != nil {
		return err
	}

	return e.enc.Flush()
}

// encodeNumeral encodes the number as
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
func (e *Encoder) encodeNumeral(value numeral.Number) error {
	// Encode tag number cbor-tag-numeral and array head of length 5.
	err := e.enc.EncodeRawBytes([]byte{
		// tag number
		0xd8, CBORTagNumeral,
		// array, 5 items follow
		0x85,
	})
	if err != nil {
		return err
	}

	// element 0: base
	err = e.enc.EncodeUint64(uint64(value.Base()))
	if err != nil {
		return err
	}

	// element 1: negative
	err = e.enc.EncodeBool(value.IsNegative())
	if err != nil {
		return err
	}

	// element 2: digits
	err = e.enc.EncodeBytes(value.Digits())
	if err != nil {
		return err
	}

	// element 3: decimal-length
	err = e.enc.EncodeUint64(uint64(value.DecimalLength()))
	if err != nil {
		return err
	}

	// element 4: repeating-length
	return e.enc.EncodeUint64(uint64(value.RepeatingLength()))
}
