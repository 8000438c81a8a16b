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
	"github.com/onflow/numeral/common"
)

// Range defines a source range with start and end position
type Range struct {
	StartPos Position
	EndPos   Position
}

var EmptyRange = Range{}

var _ HasPosition = Range{}

func NewRange(memoryGauge common.MemoryGauge, startPos, endPos Position) Range {
	common.UseMemory(memoryGauge, common.RangeMemoryUsage)
	return NewUnmeteredRange(startPos, endPos)
}

func NewUnmeteredRange(startPos, endPos Position) Range {
	return Range{
		StartPos: startPos,
		EndPos:   endPos,
	}
}

func (e Range) StartPosition() Position {
	return e.StartPos
}

func (e Range) EndPosition(common.MemoryGauge) Position {
	return e.EndPos
}

// Source returns the code of the range, including the end position
func (e Range) Source(code []byte) []byte {
	startOffset := e.StartPos.Offset
	endOffset := e.EndPos.Offset + 1
	return code[startOffset:endOffset]
}

// NewRangeFromPositioned constructs the range covered by the given element
func NewRangeFromPositioned(memoryGauge common.MemoryGauge, hasPosition HasPosition) Range {
	common.UseMemory(memoryGauge, common.RangeMemoryUsage)
	return NewUnmeteredRangeFromPositioned(hasPosition)
}

func NewUnmeteredRangeFromPositioned(hasPosition HasPosition) Range {
	return Range{
		StartPos: hasPosition.StartPosition(),
		EndPos:   hasPosition.EndPosition(nil),
	}
}
