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

type TokenStream interface {
	// Next returns the next token.
	// When the stream is exhausted, it returns EOF tokens with the position
	// of the end of the input
	Next() Token
	// Input returns the whole input the tokens were lexed from
	Input() []byte
	// Cursor returns the offset of the next token in the stream
	Cursor() int
	// Revert sets the cursor to a previous offset obtained from Cursor
	Revert(cursor int)
	// Reclaim releases the stream.
	// The stream may not be used anymore after it was reclaimed
	Reclaim()
}
