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

package lexer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/onflow/numeral/ast"
	"github.com/onflow/numeral/test_utils"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func withTokens(tokenStream TokenStream, fn func([]Token)) {
	tokens := make([]Token, 0)
	for {
		token := tokenStream.Next()
		tokens = append(tokens, token)
		if token.Is(TokenEOF) {
			fn(tokens)
			return
		}
	}
}

func testLex(t *testing.T, input string, expected []Token) {

	t.Parallel()

	withTokens(Lex([]byte(input), nil), func(tokens []Token) {
		test_utils.AssertEqualWithDiff(t, expected, tokens)
	})
}

func TestLexBasic(t *testing.T) {

	t.Parallel()

	t.Run("two numerals separated by whitespace", func(t *testing.T) {
		testLex(t,
			" 01\t  10",
			[]Token{
				{
					Type:  TokenSpace,
					Value: Space{" ", false},
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 0, Offset: 0},
						EndPos:   ast.Position{Line: 1, Column: 0, Offset: 0},
					},
				},
				{
					Type:  TokenNumeralLiteral,
					Value: "01",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 1, Offset: 1},
						EndPos:   ast.Position{Line: 1, Column: 2, Offset: 2},
					},
				},
				{
					Type:  TokenSpace,
					Value: Space{"\t  ", false},
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 3, Offset: 3},
						EndPos:   ast.Position{Line: 1, Column: 5, Offset: 5},
					},
				},
				{
					Type:  TokenNumeralLiteral,
					Value: "10",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 6, Offset: 6},
						EndPos:   ast.Position{Line: 1, Column: 7, Offset: 7},
					},
				},
				{
					Type: TokenEOF,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 8, Offset: 8},
						EndPos:   ast.Position{Line: 1, Column: 8, Offset: 8},
					},
				},
			},
		)
	})

	t.Run("assignment", func(t *testing.T) {
		testLex(t,
			"x=1",
			[]Token{
				{
					Type:  TokenIdentifier,
					Value: "x",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 0, Offset: 0},
						EndPos:   ast.Position{Line: 1, Column: 0, Offset: 0},
					},
				},
				{
					Type: TokenEqual,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 1, Offset: 1},
						EndPos:   ast.Position{Line: 1, Column: 1, Offset: 1},
					},
				},
				{
					Type:  TokenNumeralLiteral,
					Value: "1",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 2, Offset: 2},
						EndPos:   ast.Position{Line: 1, Column: 2, Offset: 2},
					},
				},
				{
					Type: TokenEOF,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 3, Offset: 3},
						EndPos:   ast.Position{Line: 1, Column: 3, Offset: 3},
					},
				},
			},
		)
	})

	t.Run("operators and parentheses", func(t *testing.T) {
		testLex(t,
			"(1+2)*3/4-5",
			[]Token{
				{
					Type: TokenParenOpen,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 0, Offset: 0},
						EndPos:   ast.Position{Line: 1, Column: 0, Offset: 0},
					},
				},
				{
					Type:  TokenNumeralLiteral,
					Value: "1",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 1, Offset: 1},
						EndPos:   ast.Position{Line: 1, Column: 1, Offset: 1},
					},
				},
				{
					Type: TokenPlus,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 2, Offset: 2},
						EndPos:   ast.Position{Line: 1, Column: 2, Offset: 2},
					},
				},
				{
					Type:  TokenNumeralLiteral,
					Value: "2",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 3, Offset: 3},
						EndPos:   ast.Position{Line: 1, Column: 3, Offset: 3},
					},
				},
				{
					Type: TokenParenClose,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 4, Offset: 4},
						EndPos:   ast.Position{Line: 1, Column: 4, Offset: 4},
					},
				},
				{
					Type: TokenStar,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 5, Offset: 5},
						EndPos:   ast.Position{Line: 1, Column: 5, Offset: 5},
					},
				},
				{
					Type:  TokenNumeralLiteral,
					Value: "3",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 6, Offset: 6},
						EndPos:   ast.Position{Line: 1, Column: 6, Offset: 6},
					},
				},
				{
					Type: TokenSlash,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 7, Offset: 7},
						EndPos:   ast.Position{Line: 1, Column: 7, Offset: 7},
					},
				},
				{
					Type:  TokenNumeralLiteral,
					Value: "4",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 8, Offset: 8},
						EndPos:   ast.Position{Line: 1, Column: 8, Offset: 8},
					},
				},
				{
					Type: TokenMinus,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 9, Offset: 9},
						EndPos:   ast.Position{Line: 1, Column: 9, Offset: 9},
					},
				},
				{
					Type:  TokenNumeralLiteral,
					Value: "5",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 10, Offset: 10},
						EndPos:   ast.Position{Line: 1, Column: 10, Offset: 10},
					},
				},
				{
					Type: TokenEOF,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 11, Offset: 11},
						EndPos:   ast.Position{Line: 1, Column: 11, Offset: 11},
					},
				},
			},
		)
	})

	t.Run("newline in space", func(t *testing.T) {
		testLex(t,
			"1\n2",
			[]Token{
				{
					Type:  TokenNumeralLiteral,
					Value: "1",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 0, Offset: 0},
						EndPos:   ast.Position{Line: 1, Column: 0, Offset: 0},
					},
				},
				{
					Type:  TokenSpace,
					Value: Space{"\n", true},
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 1, Offset: 1},
						EndPos:   ast.Position{Line: 1, Column: 1, Offset: 1},
					},
				},
				{
					Type:  TokenNumeralLiteral,
					Value: "2",
					Range: ast.Range{
						StartPos: ast.Position{Line: 2, Column: 0, Offset: 2},
						EndPos:   ast.Position{Line: 2, Column: 0, Offset: 2},
					},
				},
				{
					Type: TokenEOF,
					Range: ast.Range{
						StartPos: ast.Position{Line: 2, Column: 1, Offset: 3},
						EndPos:   ast.Position{Line: 2, Column: 1, Offset: 3},
					},
				},
			},
		)
	})

	t.Run("identifier with underscore and digits", func(t *testing.T) {
		testLex(t,
			"_total_2",
			[]Token{
				{
					Type:  TokenIdentifier,
					Value: "_total_2",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 0, Offset: 0},
						EndPos:   ast.Position{Line: 1, Column: 7, Offset: 7},
					},
				},
				{
					Type: TokenEOF,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 8, Offset: 8},
						EndPos:   ast.Position{Line: 1, Column: 8, Offset: 8},
					},
				},
			},
		)
	})
}

func TestLexNumeralLiterals(t *testing.T) {

	t.Parallel()

	t.Run("integer", func(t *testing.T) {
		testLex(t,
			"1234",
			[]Token{
				{
					Type:  TokenNumeralLiteral,
					Value: "1234",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 0, Offset: 0},
						EndPos:   ast.Position{Line: 1, Column: 3, Offset: 3},
					},
				},
				{
					Type: TokenEOF,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 4, Offset: 4},
						EndPos:   ast.Position{Line: 1, Column: 4, Offset: 4},
					},
				},
			},
		)
	})

	t.Run("with base marker", func(t *testing.T) {
		testLex(t,
			"2#101",
			[]Token{
				{
					Type:  TokenNumeralLiteral,
					Value: "2#101",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 0, Offset: 0},
						EndPos:   ast.Position{Line: 1, Column: 4, Offset: 4},
					},
				},
				{
					Type: TokenEOF,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 5, Offset: 5},
						EndPos:   ast.Position{Line: 1, Column: 5, Offset: 5},
					},
				},
			},
		)
	})

	t.Run("with fractional part", func(t *testing.T) {
		testLex(t,
			"12.34",
			[]Token{
				{
					Type:  TokenNumeralLiteral,
					Value: "12.34",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 0, Offset: 0},
						EndPos:   ast.Position{Line: 1, Column: 4, Offset: 4},
					},
				},
				{
					Type: TokenEOF,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 5, Offset: 5},
						EndPos:   ast.Position{Line: 1, Column: 5, Offset: 5},
					},
				},
			},
		)
	})

	t.Run("with repeating part", func(t *testing.T) {
		testLex(t,
			"1.2(34)",
			[]Token{
				{
					Type:  TokenNumeralLiteral,
					Value: "1.2(34)",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 0, Offset: 0},
						EndPos:   ast.Position{Line: 1, Column: 6, Offset: 6},
					},
				},
				{
					Type: TokenEOF,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 7, Offset: 7},
						EndPos:   ast.Position{Line: 1, Column: 7, Offset: 7},
					},
				},
			},
		)
	})

	t.Run("with empty non-repeating fractional part", func(t *testing.T) {
		testLex(t,
			"0.(3)",
			[]Token{
				{
					Type:  TokenNumeralLiteral,
					Value: "0.(3)",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 0, Offset: 0},
						EndPos:   ast.Position{Line: 1, Column: 4, Offset: 4},
					},
				},
				{
					Type: TokenEOF,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 5, Offset: 5},
						EndPos:   ast.Position{Line: 1, Column: 5, Offset: 5},
					},
				},
			},
		)
	})

	t.Run("with base, fractional part, and repeating part", func(t *testing.T) {
		testLex(t,
			"16#f.a(bc)",
			[]Token{
				{
					Type:  TokenNumeralLiteral,
					Value: "16#f.a(bc)",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 0, Offset: 0},
						EndPos:   ast.Position{Line: 1, Column: 9, Offset: 9},
					},
				},
				{
					Type: TokenEOF,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 10, Offset: 10},
						EndPos:   ast.Position{Line: 1, Column: 10, Offset: 10},
					},
				},
			},
		)
	})

	t.Run("repeating part without radix point", func(t *testing.T) {
		testLex(t,
			"12(3)",
			[]Token{
				{
					Type:  TokenNumeralLiteral,
					Value: "12(3)",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 0, Offset: 0},
						EndPos:   ast.Position{Line: 1, Column: 4, Offset: 4},
					},
				},
				{
					Type: TokenEOF,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 5, Offset: 5},
						EndPos:   ast.Position{Line: 1, Column: 5, Offset: 5},
					},
				},
			},
		)
	})

	t.Run("missing fractional digits", func(t *testing.T) {
		testLex(t,
			"0.",
			[]Token{
				{
					Type:  TokenError,
					Value: errors.New("missing fractional digits"),
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 1, Offset: 1},
						EndPos:   ast.Position{Line: 1, Column: 1, Offset: 1},
					},
				},
				{
					Type:  TokenNumeralLiteral,
					Value: "0.",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 0, Offset: 0},
						EndPos:   ast.Position{Line: 1, Column: 1, Offset: 1},
					},
				},
				{
					Type: TokenEOF,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 2, Offset: 2},
						EndPos:   ast.Position{Line: 1, Column: 2, Offset: 2},
					},
				},
			},
		)
	})

	t.Run("missing digits after base marker", func(t *testing.T) {
		testLex(t,
			"2#",
			[]Token{
				{
					Type:  TokenError,
					Value: errors.New("missing digits after base marker"),
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 1, Offset: 1},
						EndPos:   ast.Position{Line: 1, Column: 1, Offset: 1},
					},
				},
				{
					Type:  TokenNumeralLiteral,
					Value: "2#",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 0, Offset: 0},
						EndPos:   ast.Position{Line: 1, Column: 1, Offset: 1},
					},
				},
				{
					Type: TokenEOF,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 2, Offset: 2},
						EndPos:   ast.Position{Line: 1, Column: 2, Offset: 2},
					},
				},
			},
		)
	})

	t.Run("missing digits in repeating part", func(t *testing.T) {
		testLex(t,
			"1.2()",
			[]Token{
				{
					Type:  TokenError,
					Value: errors.New("missing digits in repeating part"),
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 3, Offset: 3},
						EndPos:   ast.Position{Line: 1, Column: 3, Offset: 3},
					},
				},
				{
					Type:  TokenNumeralLiteral,
					Value: "1.2(",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 0, Offset: 0},
						EndPos:   ast.Position{Line: 1, Column: 3, Offset: 3},
					},
				},
				{
					Type: TokenParenClose,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 4, Offset: 4},
						EndPos:   ast.Position{Line: 1, Column: 4, Offset: 4},
					},
				},
				{
					Type: TokenEOF,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 5, Offset: 5},
						EndPos:   ast.Position{Line: 1, Column: 5, Offset: 5},
					},
				},
			},
		)
	})

	t.Run("missing closing paren in repeating part", func(t *testing.T) {
		testLex(t,
			"1.(3",
			[]Token{
				{
					Type:  TokenError,
					Value: errors.New("missing ')' at end of repeating part"),
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 3, Offset: 3},
						EndPos:   ast.Position{Line: 1, Column: 3, Offset: 3},
					},
				},
				{
					Type:  TokenNumeralLiteral,
					Value: "1.(3",
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 0, Offset: 0},
						EndPos:   ast.Position{Line: 1, Column: 3, Offset: 3},
					},
				},
				{
					Type: TokenEOF,
					Range: ast.Range{
						StartPos: ast.Position{Line: 1, Column: 4, Offset: 4},
						EndPos:   ast.Position{Line: 1, Column: 4, Offset: 4},
					},
				},
			},
		)
	})
}

func TestRevert(t *testing.T) {

	t.Parallel()

	tokenStream := Lex([]byte("1 2 3"), nil)

	// Assert all tokens

	assert.Equal(t,
		Token{
			Type:  TokenNumeralLiteral,
			Value: "1",
			Range: ast.Range{
				StartPos: ast.Position{Line: 1, Column: 0, Offset: 0},
				EndPos:   ast.Position{Line: 1, Column: 0, Offset: 0},
			},
		},
		tokenStream.Next(),
	)

	assert.Equal(t,
		Token{
			Type:  TokenSpace,
			Value: Space{String: " "},
			Range: ast.Range{
				StartPos: ast.Position{Line: 1, Column: 1, Offset: 1},
				EndPos:   ast.Position{Line: 1, Column: 1, Offset: 1},
			},
		},
		tokenStream.Next(),
	)

	twoCursor := tokenStream.Cursor()

	assert.Equal(t,
		Token{
			Type:  TokenNumeralLiteral,
			Value: "2",
			Range: ast.Range{
				StartPos: ast.Position{Line: 1, Column: 2, Offset: 2},
				EndPos:   ast.Position{Line: 1, Column: 2, Offset: 2},
			},
		},
		tokenStream.Next(),
	)

	assert.Equal(t,
		Token{
			Type:  TokenSpace,
			Value: Space{String: " "},
			Range: ast.Range{
				StartPos: ast.Position{Line: 1, Column: 3, Offset: 3},
				EndPos:   ast.Position{Line: 1, Column: 3, Offset: 3},
			},
		},
		tokenStream.Next(),
	)

	assert.Equal(t,
		Token{
			Type:  TokenNumeralLiteral,
			Value: "3",
			Range: ast.Range{
				StartPos: ast.Position{Line: 1, Column: 4, Offset: 4},
				EndPos:   ast.Position{Line: 1, Column: 4, Offset: 4},
			},
		},
		tokenStream.Next(),
	)

	// Assert EOF keeps on being returned for Next()
	// at the end of the stream

	assert.Equal(t,
		Token{
			Type: TokenEOF,
			Range: ast.Range{
				StartPos: ast.Position{Line: 1, Column: 5, Offset: 5},
				EndPos:   ast.Position{Line: 1, Column: 5, Offset: 5},
			},
		},
		tokenStream.Next(),
	)

	assert.Equal(t,
		Token{
			Type: TokenEOF,
			Range: ast.Range{
				StartPos: ast.Position{Line: 1, Column: 5, Offset: 5},
				EndPos:   ast.Position{Line: 1, Column: 5, Offset: 5},
			},
		},
		tokenStream.Next(),
	)

	// Revert back to token '2'

	tokenStream.Revert(twoCursor)

	// Re-assert tokens

	assert.Equal(t,
		Token{
			Type:  TokenNumeralLiteral,
			Value: "2",
			Range: ast.Range{
				StartPos: ast.Position{Line: 1, Column: 2, Offset: 2},
				EndPos:   ast.Position{Line: 1, Column: 2, Offset: 2},
			},
		},
		tokenStream.Next(),
	)

	assert.Equal(t,
		Token{
			Type:  TokenSpace,
			Value: Space{String: " "},
			Range: ast.Range{
				StartPos: ast.Position{Line: 1, Column: 3, Offset: 3},
				EndPos:   ast.Position{Line: 1, Column: 3, Offset: 3},
			},
		},
		tokenStream.Next(),
	)

	assert.Equal(t,
		Token{
			Type:  TokenNumeralLiteral,
			Value: "3",
			Range: ast.Range{
				StartPos: ast.Position{Line: 1, Column: 4, Offset: 4},
				EndPos:   ast.Position{Line: 1, Column: 4, Offset: 4},
			},
		},
		tokenStream.Next(),
	)

	// Re-assert EOF keeps on being returned for Next()
	// at the end of the stream

	assert.Equal(t,
		Token{
			Type: TokenEOF,
			Range: ast.Range{
				StartPos: ast.Position{Line: 1, Column: 5, Offset: 5},
				EndPos:   ast.Position{Line: 1, Column: 5, Offset: 5},
			},
		},
		tokenStream.Next(),
	)

	assert.Equal(t,
		Token{
			Type: TokenEOF,
			Range: ast.Range{
				StartPos: ast.Position{Line: 1, Column: 5, Offset: 5},
				EndPos:   ast.Position{Line: 1, Column: 5, Offset: 5},
			},
		},
		tokenStream.Next(),
	)

}

func TestEOFsAfterError(t *testing.T) {

	t.Parallel()

	tokenStream := Lex([]byte(`1 ''`), nil)

	// Assert all tokens

	assert.Equal(t,
		Token{
			Type:  TokenNumeralLiteral,
			Value: "1",
			Range: ast.Range{
				StartPos: ast.Position{Line: 1, Column: 0, Offset: 0},
				EndPos:   ast.Position{Line: 1, Column: 0, Offset: 0},
			},
		},
		tokenStream.Next(),
	)

	assert.Equal(t,
		Token{
			Type:  TokenSpace,
			Value: Space{String: " "},
			Range: ast.Range{
				StartPos: ast.Position{Line: 1, Column: 1, Offset: 1},
				EndPos:   ast.Position{Line: 1, Column: 1, Offset: 1},
			},
		},
		tokenStream.Next(),
	)

	assert.Equal(t,
		Token{
			Type:  TokenError,
			Value: errors.New(`unrecognized character: U+0027 '''`),
			Range: ast.Range{
				StartPos: ast.Position{Line: 1, Column: 2, Offset: 2},
				EndPos:   ast.Position{Line: 1, Column: 2, Offset: 2},
			},
		},
		tokenStream.Next(),
	)

	// Assert EOFs keep on being returned for Next()
	// at the end of the stream

	for i := 0; i < 10; i++ {

		require.Equal(t,
			Token{
				Type: TokenEOF,
				Range: ast.Range{
					StartPos: ast.Position{Line: 1, Column: 2, Offset: 2},
					EndPos:   ast.Position{Line: 1, Column: 2, Offset: 2},
				},
			},
			tokenStream.Next(),
		)
	}
}

func TestEOFsAfterEmptyInput(t *testing.T) {

	t.Parallel()

	tokenStream := Lex(nil, nil)

	// Assert EOFs keep on being returned for Next()
	// at the end of the stream

	for i := 0; i < 10; i++ {

		require.Equal(t,
			Token{
				Type: TokenEOF,
				Range: ast.Range{
					StartPos: ast.Position{Line: 1, Column: 0, Offset: 0},
					EndPos:   ast.Position{Line: 1, Column: 0, Offset: 0},
				},
			},
			tokenStream.Next(),
		)
	}
}

func TestLimit(t *testing.T) {

	t.Parallel()

	var b strings.Builder
	for i := 0; i < 300000; i++ {
		b.WriteString("x ")
	}

	code := b.String()

	assert.PanicsWithValue(t,
		TokenLimitReachedError{},
		func() {
			_ = Lex([]byte(code), nil)
		},
	)
}
