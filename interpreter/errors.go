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

package interpreter

import (
	"fmt"
	"sort"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/onflow/numeral/ast"
	"github.com/onflow/numeral/common"
	"github.com/onflow/numeral/errors"
)

// NotDeclaredError

type NotDeclaredError struct {
	Name          string
	DeclaredNames []string
	Pos           ast.Position
}

var _ errors.UserError = &NotDeclaredError{}
var _ errors.SecondaryError = &NotDeclaredError{}
var _ ast.HasPosition = &NotDeclaredError{}

func (*NotDeclaredError) IsUserError() {}

func (e *NotDeclaredError) Error() string {
	return fmt.Sprintf("cannot find variable in this scope: `%s`", e.Name)
}

func (e *NotDeclaredError) SecondaryError() string {
	if closestName := e.findClosestName(); closestName != "" {
		return fmt.Sprintf("did you mean `%s`?", closestName)
	}
	return "not found in this scope"
}

// findClosestName searches the declared variable names and finds the name
// with the smallest edit distance from the one the user tried to use.
// In cases of typos, this should provide a helpful hint.
func (e *NotDeclaredError) findClosestName() (closestName string) {
	nameRunes := []rune(e.Name)

	closestDistance := len(e.Name)

	sortedNames := make([]string, len(e.DeclaredNames))
	copy(sortedNames, e.DeclaredNames)
	sort.Strings(sortedNames)

	for _, name := range sortedNames {
		distance := levenshtein.DistanceForStrings(
			nameRunes,
			[]rune(name),
			levenshtein.DefaultOptions,
		)

		// Don't update the closest name if the distance is greater than one already found,
		// or if the edits required would involve a complete replacement of the name's text
		if distance < closestDistance && distance < len(name) {
			closestName = name
			closestDistance = distance
		}
	}

	return
}

func (e *NotDeclaredError) StartPosition() ast.Position {
	return e.Pos
}

func (e *NotDeclaredError) EndPosition(memoryGauge common.MemoryGauge) ast.Position {
	length := len(e.Name)
	return e.Pos.Shifted(memoryGauge, length-1)
}

// PositionedError wraps an arithmetic error with the source range
// of the expression whose evaluation raised it

type PositionedError struct {
	Err error
	ast.Range
}

var _ ast.HasPosition = PositionedError{}

func (e PositionedError) Error() string {
	return e.Err.Error()
}

func (e PositionedError) Unwrap() error {
	return e.Err
}
