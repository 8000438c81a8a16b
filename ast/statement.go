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

package ast

import (
	"encoding/json"
	"fmt"

	"github.com/turbolent/prettier"

	"github.com/onflow/numeral/common"
)

type Statement interface {
	Element
	fmt.Stringer
	isStatement()
	Doc() prettier.Doc
}

// ExpressionStatement

type ExpressionStatement struct {
	Expression Expression
}

var _ Statement = &ExpressionStatement{}

func NewExpressionStatement(
	memoryGauge common.MemoryGauge,
	expression Expression,
) *ExpressionStatement {
	common.UseMemory(memoryGauge, common.ExpressionStatementMemoryUsage)
	return &ExpressionStatement{
		Expression: expression,
	}
}

func (*ExpressionStatement) isStatement() {}

func (*ExpressionStatement) ElementType() ElementType {
	return ElementTypeExpressionStatement
}

func (s *ExpressionStatement) Walk(walkChild func(Element)) {
	walkChild(s.Expression)
}

func (s *ExpressionStatement) StartPosition() Position {
	return s.Expression.StartPosition()
}

func (s *ExpressionStatement) EndPosition(memoryGauge common.MemoryGauge) Position {
	return s.Expression.EndPosition(memoryGauge)
}

func (s *ExpressionStatement) String() string {
	return Prettier(s)
}

func (s *ExpressionStatement) Doc() prettier.Doc {
	return s.Expression.Doc()
}

func (s *ExpressionStatement) MarshalJSON() ([]byte, error) {
	type Alias ExpressionStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "ExpressionStatement",
		Range: NewUnmeteredRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// AssignmentStatement

// AssignmentStatement is the AST node for `name = expression`.
// The target is always a plain identifier.
type AssignmentStatement struct {
	Target Identifier
	Value  Expression
}

var _ Statement = &AssignmentStatement{}

func NewAssignmentStatement(
	memoryGauge common.MemoryGauge,
	target Identifier,
	value Expression,
) *AssignmentStatement {
	common.UseMemory(memoryGauge, common.AssignmentStatementMemoryUsage)
	return &AssignmentStatement{
		Target: target,
		Value:  value,
	}
}

func (*AssignmentStatement) isStatement() {}

func (*AssignmentStatement) ElementType() ElementType {
	return ElementTypeAssignmentStatement
}

func (s *AssignmentStatement) Walk(walkChild func(Element)) {
	walkChild(s.Value)
}

func (s *AssignmentStatement) StartPosition() Position {
	return s.Target.StartPosition()
}

func (s *AssignmentStatement) EndPosition(memoryGauge common.MemoryGauge) Position {
	return s.Value.EndPosition(memoryGauge)
}

func (s *AssignmentStatement) String() string {
	return Prettier(s)
}

func (s *AssignmentStatement) Doc() prettier.Doc {
	return prettier.Group{
		Doc: prettier.Concat{
			prettier.Text(s.Target.Identifier),
			prettier.Text(" ="),
			prettier.Line{},
			s.Value.Doc(),
		},
	}
}

func (s *AssignmentStatement) MarshalJSON() ([]byte, error) {
	type Alias AssignmentStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "AssignmentStatement",
		Range: NewUnmeteredRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}
