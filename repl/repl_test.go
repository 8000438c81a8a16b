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

package repl

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/numeral"
	"github.com/onflow/numeral/common"
	"github.com/onflow/numeral/errors"
	"github.com/onflow/numeral/interpreter"
	"github.com/onflow/numeral/parser"
)

type testREPL struct {
	repl    *REPL
	results []string
	errs    []error
}

func newTestREPL(gauge common.MemoryGauge) *testREPL {
	test := &testREPL{}
	test.repl = NewREPL(
		func(err error, code string) {
			test.errs = append(test.errs, err)
		},
		func(value numeral.Number) {
			test.results = append(test.results, value.String())
		},
		gauge,
	)
	return test
}

func TestREPLResults(t *testing.T) {

	t.Parallel()

	t.Run("expression statement", func(t *testing.T) {
		t.Parallel()

		test := newTestREPL(nil)

		test.repl.Accept("1 + 2")

		require.Empty(t, test.errs)
		assert.Equal(t, []string{"3"}, test.results)
	})

	t.Run("assignment is silent", func(t *testing.T) {
		t.Parallel()

		test := newTestREPL(nil)

		test.repl.Accept("x = 1 + 2")

		require.Empty(t, test.errs)
		assert.Empty(t, test.results)
	})

	t.Run("variables persist across accepts", func(t *testing.T) {
		t.Parallel()

		test := newTestREPL(nil)

		test.repl.Accept("x = 0.(3)")
		test.repl.Accept("x + x")

		require.Empty(t, test.errs)
		assert.Equal(t, []string{"0.(6)"}, test.results)
	})

	t.Run("multiple statements", func(t *testing.T) {
		t.Parallel()

		test := newTestREPL(nil)

		test.repl.Accept("x = 16#F\nx + 16#1\nx - 16#F")

		require.Empty(t, test.errs)
		assert.Equal(t, []string{"16#10", "16#0"}, test.results)
	})

	t.Run("nil result callback", func(t *testing.T) {
		t.Parallel()

		repl := NewREPL(nil, nil, nil)
		repl.Accept("1 + 2")
	})
}

func TestREPLErrors(t *testing.T) {

	t.Parallel()

	t.Run("parse error", func(t *testing.T) {
		t.Parallel()

		test := newTestREPL(nil)

		test.repl.Accept("1 +")

		require.Len(t, test.errs, 1)
		assert.Empty(t, test.results)

		var parserErr parser.Error
		require.ErrorAs(t, test.errs[0], &parserErr)
	})

	t.Run("execution error", func(t *testing.T) {
		t.Parallel()

		test := newTestREPL(nil)

		test.repl.Accept("1 + 2#1")

		require.Len(t, test.errs, 1)

		var baseMismatchErr numeral.BaseMismatchError
		require.ErrorAs(t, test.errs[0], &baseMismatchErr)
	})

	t.Run("not declared", func(t *testing.T) {
		t.Parallel()

		test := newTestREPL(nil)

		test.repl.Accept("missing + 1")

		require.Len(t, test.errs, 1)

		var notDeclaredErr *interpreter.NotDeclaredError
		require.ErrorAs(t, test.errs[0], &notDeclaredErr)
	})

	t.Run("execution stops at the first error", func(t *testing.T) {
		t.Parallel()

		test := newTestREPL(nil)

		test.repl.Accept("missing\n1 + 2")

		require.Len(t, test.errs, 1)
		assert.Empty(t, test.results)
	})

	t.Run("memory limit", func(t *testing.T) {
		t.Parallel()

		test := newTestREPL(&limitingMemoryGauge{limit: 1})

		test.repl.Accept("1 + 2")

		require.Len(t, test.errs, 1)
		assert.Empty(t, test.results)

		var memoryErr errors.MemoryError
		require.ErrorAs(t, test.errs[0], &memoryErr)
	})
}

func TestREPLSuggestions(t *testing.T) {

	t.Parallel()

	test := newTestREPL(nil)

	assert.Empty(t, test.repl.Suggestions())

	test.repl.Accept("tau = 6.28\npi = 3.14")

	assert.Equal(t,
		[]REPLSuggestion{
			{Name: "tau", Description: "6.28"},
			{Name: "pi", Description: "3.14"},
		},
		test.repl.Suggestions(),
	)
}

type limitingMemoryGauge struct {
	limit uint64
	used  uint64
}

func (g *limitingMemoryGauge) MeterMemory(usage common.MemoryUsage) error {
	g.used += usage.Amount
	if g.used > g.limit {
		return fmt.Errorf("memory limit exceeded: %d", g.limit)
	}
	return nil
}
