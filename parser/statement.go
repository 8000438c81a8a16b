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
	"github.com/onflow/numeral/parser/lexer"
)

func parseStatements(p *parser) (statements []ast.Statement) {
	for {
		p.skipSpace()

		if p.current.Is(lexer.TokenEOF) {
			return
		}

		statement := parseStatement(p)

		// Check that the statement is separated from the previous one by a newline
		if len(statements) > 0 {
			previousStatement := statements[len(statements)-1]
			previousLine := previousStatement.EndPosition(p.memoryGauge).Line
			currentStartPos := statement.StartPosition()
			if previousLine == currentStartPos.Line {
				p.report(NewSyntaxError(
					currentStartPos,
					"statements must be separated with a newline",
				))
			}
		}

		statements = append(statements, statement)
	}
}

func parseStatement(p *parser) ast.Statement {
	p.skipSpace()

	// An identifier at the start could be the target of
	// an assignment statement, e.g. `x = 1`.
	// Buffer the tokens, and backtrack to parse an expression statement
	// if no equals sign follows the identifier
	if p.current.Is(lexer.TokenIdentifier) {
		identifierToken := p.current

		p.startBuffering()
		p.next()
		p.skipSpace()

		if p.current.Is(lexer.TokenEqual) {
			p.acceptBuffered()
			p.next()

			identifier := p.tokenToIdentifier(identifierToken)
			value := parseExpression(p, lowestBindingPower)

			return ast.NewAssignmentStatement(
				p.memoryGauge,
				identifier,
				value,
			)
		}

		p.replayBuffered()
	}

	expression := parseExpression(p, lowestBindingPower)
	return ast.NewExpressionStatement(p.memoryGauge, expression)
}
