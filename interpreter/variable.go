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
	"github.com/onflow/numeral"
	"github.com/onflow/numeral/common"
)

type Variable interface {
	GetValue() numeral.Number
	SetValue(value numeral.Number)
}

type SimpleVariable struct {
	value numeral.Number
}

var _ Variable = &SimpleVariable{}

func (v *SimpleVariable) GetValue() numeral.Number {
	return v.value
}

func (v *SimpleVariable) SetValue(value numeral.Number) {
	v.value = value
}

func NewVariableWithValue(gauge common.MemoryGauge, value numeral.Number) Variable {
	common.UseMemory(gauge, common.VariableMemoryUsage)
	return &SimpleVariable{
		value: value,
	}
}
