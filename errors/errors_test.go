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

package errors_test

import (
	"fmt"
	"go/types"
	"reflect"
	"testing"

	"golang.org/x/tools/go/packages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/numeral/interpreter"
	"github.com/onflow/numeral/parser"
)

// TestErrorInterfaceConformance checks whether all the error structs implement
// one of the interfaces
func TestErrorInterfaceConformance(t *testing.T) {
	t.Parallel()

	pkgs, err := packages.Load(
		&packages.Config{
			Mode: packages.NeedImports | packages.NeedTypes,
		},
		"github.com/onflow/numeral/errors",
	)
	require.NoError(t, err)

	pkg := pkgs[0]
	errorsPkgScope := pkg.Types.Scope()

	// Get the builtin scope. Builtin scope is a parent of any pkg scope
	builtinScope := errorsPkgScope.Parent()

	// Get the builtin 'error' interface type
	errorType := builtinScope.Lookup("error").Type()
	errorInterfaceType, isInterface := errorType.Underlying().(*types.Interface)
	require.True(t, isInterface)

	// Get the 'UserError' interface type
	userErrorType := errorsPkgScope.Lookup("UserError").Type()
	userErrorInterfaceType, isInterface := userErrorType.Underlying().(*types.Interface)
	require.True(t, isInterface)

	// Get the 'InternalError' interface type
	internalErrorType := errorsPkgScope.Lookup("InternalError").Type()
	internalErrorInterfaceType, isInterface := internalErrorType.Underlying().(*types.Interface)
	require.True(t, isInterface)

	// Wrapper errors don't implement any interfaces.
	// hence, skip them from the check.
	wrapperErrors := []error{
		parser.Error{},
		interpreter.PositionedError{},
	}

	errorsToSkip := make(map[string]any)
	for _, err := range wrapperErrors {
		typ := reflect.TypeOf(err)
		fullyQualifiedErrStr := fmt.Sprintf("%s.%s", typ.PkgPath(), typ.Name())
		errorsToSkip[fullyQualifiedErrStr] = nil
	}

	// Iterate through all error structs defined in the module,
	// and ensure they implement the interfaces.

	pkgs, err = packages.Load(
		&packages.Config{
			Mode: packages.NeedImports | packages.NeedTypes,
		},
		"github.com/onflow/numeral",
		"github.com/onflow/numeral/parser",
		"github.com/onflow/numeral/interpreter",
	)
	require.NoError(t, err)

	for _, pkg := range pkgs {
		// Should test only valid packages
		require.Len(t, pkg.Errors, 0)

		scope := pkg.Types.Scope()

		for _, name := range scope.Names() {
			object := scope.Lookup(name)
			_, ok := object.(*types.TypeName)
			if !ok {
				continue
			}

			implementationType := object.Type()

			// Methods with pointer receivers are only
			// in the method set of the pointer type
			if !types.Implements(implementationType, errorInterfaceType) {
				implementationType = types.NewPointer(implementationType)
			}

			// Filter out non 'error' types
			if !types.Implements(implementationType, errorInterfaceType) {
				continue
			}

			// All known error types should implement 'UserError' or 'InternalError'.
			implementsUserError := types.Implements(implementationType, userErrorInterfaceType)
			implementsInternalError := types.Implements(implementationType, internalErrorInterfaceType)

			if implementsUserError && implementsInternalError {
				assert.Fail(t,
					fmt.Sprintf("'%s' implements both 'UserError' and 'InternalError'", implementationType))
			}

			if implementsUserError || implementsInternalError {
				continue
			}

			// Only errors that do not implement above are the wrapper errors
			_, ok = errorsToSkip[object.Type().String()]
			assert.True(
				t,
				ok,
				fmt.Sprintf("'%s' does not implement 'UserError' or 'InternalError'", implementationType),
			)
		}
	}
}
