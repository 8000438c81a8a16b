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
	"strings"

	"github.com/turbolent/prettier"
)

const prettierMaxLineWidth = 80
const prettierIndent = "    "

type HasDoc interface {
	Doc() prettier.Doc
}

// Prettier formats the given element to a string,
// breaking lines at the default maximum line width
func Prettier(element HasDoc) string {
	var b strings.Builder
	prettier.Prettier(&b, element.Doc(), prettierMaxLineWidth, prettierIndent)
	return b.String()
}
