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
	goRuntime "runtime"

	"github.com/fxamacker/cbor/v2"

	"github.com/onflow/numeral"
	"github.com/onflow/numeral/common"
	numeralErrors "github.com/onflow/numeral/errors"
)

// CBORDecMode
//
// See https://github.com/fxamacker/cbor:
// "For best performance, reuse EncMode and DecMode after creating them."
//
// Security Considerations in Section 10 of RFC 8949 states:
//
//	"Hostile input may be constructed to overrun buffers, to overflow or underflow integer arithmetic,
//	or to cause other decoding disruption. CBOR data items might have lengths or sizes that are
//	intentionally extremely large or too short."
var CBORDecMode = func() cbor.DecMode {
	decMode, err := cbor.DecOptions{
		IndefLength: cbor.IndefLengthForbidden,
		IntDec:      cbor.IntDecConvertNone,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return decMode
}()

// A Decoder decodes NCF-encoded representations of numbers.
type Decoder struct {
	// NCF codec uses CBOR codec under the hood.
	dec   *cbor.StreamDecoder
	gauge common.MemoryGauge
}

// Decode returns a number decoded from its NCF-encoded representation.
//
// This function returns an error if the bytes represent NCF that is
// malformed, or whose parts are not in canonical form.
func Decode(gauge common.MemoryGauge, b []byte) (numeral.Number, error) {
	dec := NewDecoder(gauge, b)

	v, err := dec.Decode()
	if err != nil {
		return numeral.Number{}, err
	}

	if dec.dec.NumBytesDecoded() != len(b) {
		return numeral.Number{}, numeralErrors.NewDefaultUserError(
			"ncf: failed to decode: decoded %d bytes, received %d bytes",
			dec.dec.NumBytesDecoded(),
			len(b),
		)
	}

	return v, nil
}

// MustDecode returns a number decoded from its NCF-encoded representation,
// or panics if the bytes cannot be decoded.
func MustDecode(gauge common.MemoryGauge, b []byte) numeral.Number {
	v, err := Decode(gauge, b)
	if err != nil {
		panic(err)
	}
	return v
}

// NewDecoder initializes a Decoder that will decode NCF-encoded bytes
// from the given bytes.
func NewDecoder(gauge common.MemoryGauge, b []byte) *Decoder {
	// NOTE: encoded data is not copied by decoder.
	// NCF codec uses CBOR codec under the hood.
	return &Decoder{
		dec:   CBORDecMode.NewByteStreamDecoder(b),
		gauge: gauge,
	}
}

// Decode reads NCF-encoded bytes and decodes them to a number.
//
// This function returns an error if the bytes represent NCF that is
// malformed, or whose parts are not in canonical form.
func (d *Decoder) Decode() (value numeral.Number, err error) {
	// Capture panics that occur during decoding.
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
			err = numeralErrors.NewDefaultUserError("ncf: failed to decode: %s", err)
		}
	}()

	// Decode top level message.
	err = decodeCBORTagWithKnownNumber(d.dec, CBORTagNumeral)
	if err != nil {
		return numeral.Number{}, err
	}

	return d.decodeNumeral()
}

// decodeNumeral decodes the encoded numeral-message without tag number as
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
func (d *Decoder) decodeNumeral() (numeral.Number, error) {
	// Decode array head of length 5.
	err := decodeCBORArrayWithKnownSize(d.dec, 5)
	if err != nil {
		return numeral.Number{}, err
	}

	// element 0: base
	base, err := d.dec.DecodeUint64()
	if err != nil {
		return numeral.Number{}, err
	}

	if base < numeral.MinBase || base > numeral.MaxBase {
		return numeral.Number{}, fmt.Errorf("invalid base: %d", base)
	}

	// element 1: negative
	negative, err := d.dec.DecodeBool()
	if err != nil {
		return numeral.Number{}, err
	}

	// element 2: digits
	digits, err := d.dec.DecodeBytes()
	if err != nil {
		return numeral.Number{}, err
	}

	// element 3: decimal-length
	decimalLength, err := d.dec.DecodeUint64()
	if err != nil {
		return numeral.Number{}, err
	}

	if decimalLength > uint64(len(digits)) {
		return numeral.Number{}, fmt.Errorf(
			"decimal length %d exceeds digit count %d",
			decimalLength,
			len(digits),
		)
	}

	// element 4: repeating-length
	repeatingLength, err := d.dec.DecodeUint64()
	if err != nil {
		return numeral.Number{}, err
	}

	if repeatingLength > decimalLength {
		return numeral.Number{}, fmt.Errorf(
			"repeating length %d exceeds decimal length %d",
			repeatingLength,
			decimalLength,
		)
	}

	n, err := numeral.NewNumber(
		d.gauge,
		int(base),
		digits,
		negative,
		int(decimalLength),
		int(repeatingLength),
	)
	if err != nil {
		return numeral.Number{}, err
	}

	// NewNumber normalizes.
	// A message whose parts differ from the canonical form they decode to
	// is rejected, so every number has exactly one valid encoding.
	if n.IsNegative() != negative ||
		n.DecimalLength() != int(decimalLength) ||
		n.RepeatingLength() != int(repeatingLength) ||
		!bytes.Equal(n.Digits(), digits) {

		return numeral.Number{}, errors.New("numeral is not in canonical form")
	}

	return n, nil
}

func decodeCBORArrayWithKnownSize(dec *cbor.StreamDecoder, n uint64) error {
	c, err := dec.DecodeArrayHead()
	if err != nil {
		return err
	}
	if c != n {
		return fmt.Errorf("CBOR array has %d elements (expected %d elements)", c, n)
	}
	return nil
}

func decodeCBORTagWithKnownNumber(dec *cbor.StreamDecoder, n uint64) error {
	tagNum, err := dec.DecodeTagNumber()
	if err != nil {
		return err
	}
	if tagNum != n {
		return fmt.Errorf("CBOR tag number is %d (expected %d)", tagNum, n)
	}
	return nil
}
