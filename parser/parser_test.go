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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/onflow/numeral/ast"
	"github.com/onflow/numeral/parser/lexer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testParseExpression(s string) (ast.Expression, []error) {
	return ParseExpression(nil, []byte(s))
}

func testParseStatements(s string) ([]ast.Statement, []error) {
	return ParseStatements(nil, []byte(s))
}

func TestParseInvalid(t *testing.T) {

	t.Parallel()

	_, errs := testParseExpression("#")
	require.NotEmpty(t, errs)
}

func TestParseBuffering(t *testing.T) {

	t.Parallel()

	t.Run("buffer and accept, valid", func(t *testing.T) {

		t.Parallel()

		_, errs := Parse(
			nil,
			[]byte("a b c d"),
			func(p *parser) any {
				p.mustOneString(lexer.TokenIdentifier, "a")
				p.mustOne(lexer.TokenSpace)

				p.startBuffering()

				p.mustOneString(lexer.TokenIdentifier, "b")
				p.mustOne(lexer.TokenSpace)
				p.mustOneString(lexer.TokenIdentifier, "c")

				p.acceptBuffered()

				p.mustOne(lexer.TokenSpace)
				p.mustOneString(lexer.TokenIdentifier, "d")

				return nil
			},
		)

		assert.Empty(t, errs)
	})

	t.Run("buffer and accept, invalid", func(t *testing.T) {

		t.Parallel()

		_, errs := Parse(
			nil,
			[]byte("a b x d"),
			func(p *parser) any {
				p.mustOneString(lexer.TokenIdentifier, "a")
				p.mustOne(lexer.TokenSpace)

				p.startBuffering()

				p.mustOneString(lexer.TokenIdentifier, "b")
				p.mustOne(lexer.TokenSpace)
				p.mustOneString(lexer.TokenIdentifier, "c")

				p.acceptBuffered()

				p.mustOne(lexer.TokenSpace)
				p.mustOneString(lexer.TokenIdentifier, "d")

				return nil
			},
		)

		assert.Equal(t,
			[]error{
				&SyntaxError{
					Message: "expected token identifier with string value c",
					Pos:     ast.Position{Offset: 4, Line: 1, Column: 4},
				},
			},
			errs,
		)
	})

	t.Run("buffer and replay, valid", func(t *testing.T) {

		t.Parallel()

		_, errs := Parse(
			nil,
			[]byte("a b c d"),
			func(p *parser) any {
				p.mustOneString(lexer.TokenIdentifier, "a")
				p.mustOne(lexer.TokenSpace)

				p.startBuffering()

				p.mustOneString(lexer.TokenIdentifier, "b")
				p.mustOne(lexer.TokenSpace)
				p.mustOneString(lexer.TokenIdentifier, "c")

				p.replayBuffered()

				p.mustOneString(lexer.TokenIdentifier, "b")
				p.mustOne(lexer.TokenSpace)
				p.mustOneString(lexer.TokenIdentifier, "c")
				p.mustOne(lexer.TokenSpace)
				p.mustOneString(lexer.TokenIdentifier, "d")

				return nil
			},
		)

		assert.Empty(t, errs)
	})

	t.Run("buffer and replay, invalid first", func(t *testing.T) {

		t.Parallel()

		_, errs := Parse(
			nil,
			[]byte("a b c d"),
			func(p *parser) any {
				p.mustOneString(lexer.TokenIdentifier, "a")
				p.mustOne(lexer.TokenSpace)

				p.startBuffering()

				firstSucceeded := false
				firstFailed := false

				(func() {
					defer func() {
						if r := recover(); r != nil {
							firstFailed = true
						}
					}()

					p.mustOneString(lexer.TokenIdentifier, "x")
					p.mustOne(lexer.TokenSpace)
					p.mustOneString(lexer.TokenIdentifier, "c")

					firstSucceeded = true
				})()

				assert.True(t, firstFailed)
				assert.False(t, firstSucceeded)

				p.replayBuffered()

				p.mustOneString(lexer.TokenIdentifier, "b")
				p.mustOne(lexer.TokenSpace)
				p.mustOneString(lexer.TokenIdentifier, "c")
				p.mustOne(lexer.TokenSpace)
				p.mustOneString(lexer.TokenIdentifier, "d")

				return nil
			},
		)

		assert.Empty(t, errs)
	})

	t.Run("buffer and replay, invalid first and invalid second", func(t *testing.T) {

		t.Parallel()

		_, errs := Parse(
			nil,
			[]byte("a b c x"),
			func(p *parser) any {
				p.mustOneString(lexer.TokenIdentifier, "a")
				p.mustOne(lexer.TokenSpace)

				p.startBuffering()

				firstSucceeded := false
				firstFailed := false

				(func() {
					defer func() {
						if r := recover(); r != nil {
							firstFailed = true
						}
					}()

					p.mustOneString(lexer.TokenIdentifier, "x")
					p.mustOne(lexer.TokenSpace)
					p.mustOneString(lexer.TokenIdentifier, "c")

					firstSucceeded = true
				})()

				assert.True(t, firstFailed)
				assert.False(t, firstSucceeded)

				p.replayBuffered()

				p.mustOneString(lexer.TokenIdentifier, "b")
				p.mustOne(lexer.TokenSpace)
				p.mustOneString(lexer.TokenIdentifier, "c")
				p.mustOne(lexer.TokenSpace)
				p.mustOneString(lexer.TokenIdentifier, "d")

				return nil
			},
		)

		assert.Equal(t,
			[]error{
				&SyntaxError{
					Message: "expected token identifier with string value d",
					Pos:     ast.Position{Offset: 6, Line: 1, Column: 6},
				},
			},
			errs,
		)
	})
}
