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
	"github.com/onflow/numeral/ast"
	"github.com/onflow/numeral/common"
	"github.com/onflow/numeral/errors"
	"github.com/onflow/numeral/parser/lexer"
)

// expressionDepthLimit is the limit of how deeply nested an expression can get
const expressionDepthLimit = 1000

type parser struct {
	// tokens is a stream of tokens from the lexer
	tokens lexer.TokenStream
	// current is the current token being parsed
	current lexer.Token
	// errors are the parsing errors encountered during parsing
	errors []error
	// backtrackingCursorStack is the stack of lexer cursors
	// used when backtracking
	backtrackingCursorStack []int
	// bufferedErrorsStack is the stack of parsing errors
	// encountered during buffering
	bufferedErrorsStack [][]error
	// memoryGauge is used for metering memory usage
	memoryGauge common.MemoryGauge
	// expressionDepth is the depth of the currently parsed expression (if >0)
	expressionDepth int
}

// Parse creates a lexer to scan the given input string,
// and uses the given `parse` function to parse tokens into a result.
//
// It can be composed with different parse functions to parse the input string into different results.
// See "ParseExpression", "ParseStatements" as examples.
func Parse[T any](
	memoryGauge common.MemoryGauge,
	code []byte,
	parse func(*parser) T,
) (result T, errs []error) {
	// create a lexer, which turns the input string into tokens
	tokens := lexer.Lex(code, memoryGauge)
	defer tokens.Reclaim()
	return ParseTokenStream(
		memoryGauge,
		tokens,
		parse,
	)
}

func ParseTokenStream[T any](
	memoryGauge common.MemoryGauge,
	tokens lexer.TokenStream,
	parse func(*parser) T,
) (
	result T,
	errs []error,
) {
	p := &parser{
		tokens:      tokens,
		memoryGauge: memoryGauge,
	}

	defer func() {
		if r := recover(); r != nil {
			switch r := r.(type) {
			case ParseError:
				// Parse errors are expected,
				// report and return them
				p.report(r)
				var zero T
				result = zero
				errs = p.errors

			case errors.InternalError, errors.UserError:
				// Fatal errors, e.g. memory errors,
				// are not parse errors: re-panic them
				panic(r)

			case error:
				panic(errors.NewUnexpectedErrorFromCause(r))

			default:
				panic(errors.NewUnexpectedError("parser: %v", r))
			}
		}

		// Flush the buffered errors of any left-over buffering levels.
		// A panic during buffering unwinds past the acceptBuffered
		// or replayBuffered calls which would normally pop them

		for _, bufferedErrors := range p.bufferedErrorsStack {
			errs = append(errs, bufferedErrors...)
		}
	}()

	p.next()

	result = parse(p)

	p.skipSpace()

	if !p.current.Is(lexer.TokenEOF) {
		p.reportSyntaxError("unexpected token: %s", p.current.Type)
	}

	errs = p.errors

	return
}

func (p *parser) syntaxError(message string, params ...any) error {
	return NewSyntaxError(p.current.StartPos, message, params...)
}

func (p *parser) reportSyntaxError(message string, params ...any) {
	err := p.syntaxError(message, params...)
	p.report(err)
}

func (p *parser) report(errs ...error) {
	for _, err := range errs {

		// Only `ParseError`s must be reported.
		// If the reported error is not a parse error, then it is an internal error
		// or a fatal error, e.g. a memory error. Terminate parsing in that case
		parseError, ok := err.(ParseError)
		if !ok {
			panic(err)
		}

		// Add the errors to the buffered errors if buffering,
		// or the final errors if not
		bufferedErrorsDepth := len(p.bufferedErrorsStack)
		if bufferedErrorsDepth > 0 {
			bufferedErrors := &p.bufferedErrorsStack[bufferedErrorsDepth-1]
			*bufferedErrors = append(*bufferedErrors, parseError)
		} else {
			p.errors = append(p.errors, parseError)
		}
	}
}

// next reads the next token and marks it as the "current" token.
// Tokens of type TokenError are reported and skipped.
func (p *parser) next() {
	for {
		token := p.tokens.Next()

		if token.Is(lexer.TokenError) {
			// Report error token as error, skip.
			err, ok := token.Value.(error)
			// we just checked that this is an error token
			if !ok {
				panic(errors.NewUnreachableError())
			}
			parseError, ok := err.(ParseError)
			if !ok {
				parseError = NewSyntaxError(
					token.StartPos,
					err.Error(),
				)
			}
			p.report(parseError)
			continue
		}

		p.current = token

		return
	}
}

func (p *parser) mustOne(tokenType lexer.TokenType) lexer.Token {
	t := p.current
	if !t.Is(tokenType) {
		panic(p.syntaxError("expected token %s", tokenType))
	}
	p.next()
	return t
}

func (p *parser) mustOneString(tokenType lexer.TokenType, string_ string) lexer.Token {
	t := p.current
	if !t.IsString(tokenType, string_) {
		panic(p.syntaxError("expected token %s with string value %s", tokenType, string_))
	}
	p.next()
	return t
}

// skipSpace skips a space token, if any.
// The lexer merges adjacent whitespace into a single token,
// so at most one token needs to be skipped
func (p *parser) skipSpace() {
	if p.current.Is(lexer.TokenSpace) {
		p.next()
	}
}

func (p *parser) startBuffering() {
	// Push the lexer's previous cursor to the stack.
	// When start buffering, the lexer has already advanced to the next token
	p.backtrackingCursorStack = append(
		p.backtrackingCursorStack,
		p.tokens.Cursor()-1,
	)

	// Push an empty slice of errors to the stack
	p.bufferedErrorsStack = append(p.bufferedErrorsStack, nil)
}

func (p *parser) acceptBuffered() {
	// Pop the last backtracking cursor from the stack
	// and ignore it
	lastIndex := len(p.backtrackingCursorStack) - 1
	p.backtrackingCursorStack = p.backtrackingCursorStack[:lastIndex]

	// Pop the last buffered errors from the stack.
	//
	// The element type is a slice (reference type),
	// so we need to prevent a memory leak
	// by explicitly setting the slice to nil
	lastIndex = len(p.bufferedErrorsStack) - 1
	bufferedErrors := p.bufferedErrorsStack[lastIndex]
	p.bufferedErrorsStack[lastIndex] = nil
	p.bufferedErrorsStack = p.bufferedErrorsStack[:lastIndex]

	// Apply the accepted buffered errors to the last errors on the buffered errors stack,
	// or the final errors, if we reached the bottom of the stack
	// (i.e. this acceptance disables buffering)

	if len(p.bufferedErrorsStack) > 0 {
		p.bufferedErrorsStack[lastIndex-1] = append(
			p.bufferedErrorsStack[lastIndex-1],
			bufferedErrors...,
		)
	} else {
		p.errors = append(
			p.errors,
			bufferedErrors...,
		)
	}
}

func (p *parser) replayBuffered() {
	// Pop the last backtracking cursor from the stack
	// and revert the lexer to it
	lastIndex := len(p.backtrackingCursorStack) - 1
	cursor := p.backtrackingCursorStack[lastIndex]
	p.backtrackingCursorStack = p.backtrackingCursorStack[:lastIndex]
	p.tokens.Revert(cursor)
	p.next()

	// Pop the last buffered errors from the stack
	// and ignore them
	lastIndex = len(p.bufferedErrorsStack) - 1
	p.bufferedErrorsStack[lastIndex] = nil
	p.bufferedErrorsStack = p.bufferedErrorsStack[:lastIndex]
}

func (p *parser) tokenToIdentifier(token lexer.Token) ast.Identifier {
	// the value is set by the lexer for identifier tokens
	identifier, ok := token.Value.(string)
	if !ok {
		panic(errors.NewUnreachableError())
	}
	return ast.NewIdentifier(
		p.memoryGauge,
		identifier,
		token.StartPos,
	)
}

// ParseExpression parses a single expression
func ParseExpression(
	memoryGauge common.MemoryGauge,
	code []byte,
) (expression ast.Expression, errs []error) {
	return Parse(
		memoryGauge,
		code,
		func(p *parser) ast.Expression {
			return parseExpression(p, lowestBindingPower)
		},
	)
}

// ParseStatements parses a sequence of newline-separated statements
func ParseStatements(
	memoryGauge common.MemoryGauge,
	code []byte,
) (statements []ast.Statement, errs []error) {
	return Parse(
		memoryGauge,
		code,
		parseStatements,
	)
}
