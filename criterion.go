// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package treefind

import (
	"fmt"
	"strings"

	"github.com/srctools/treefind/syntax"
)

// Criterion is a single matching rule testable against a path. All
// criteria are immutable once built and are constructed exclusively
// through the factory functions in this package.
//
// Evaluation is a pure predicate: it never mutates the path and never
// fails for a structurally valid one. A path that does not reach the
// region a criterion needs simply does not satisfy it.
type Criterion interface {
	// Kind returns the coarse category tag of this criterion.
	Kind() Kind

	// IsSatisfiedBy reports whether the program element at the leaf of
	// path is the one this criterion describes. A nil or empty path
	// satisfies no criterion.
	IsSatisfiedBy(path *syntax.Path) bool

	// String returns a stable, human-readable rendering for diagnostics.
	// It is never parsed back.
	String() string
}

const (
	KindInvalid Kind = iota

	KindIs
	KindEnclosedBy
	KindInPackage
	KindInClass
	KindInMethod
	KindNotInMethod
	KindPackage
	KindGenericArrayLocation
	KindField
	KindReceiver
	KindReturnType
	KindSigMethod
	KindParam
	KindLocalVariable
	KindCast
	KindNewObject
	KindInstanceOf
	KindBoundLocation
	KindMethodBound
	KindClassBound
)

// Kind tags each Criterion variant so callers can categorize one without
// inspecting its concrete type. Only [KindReceiver] is consumed outside
// evaluation itself, by [Criteria.IsOnReceiver].
type Kind byte

// String implements [fmt.Stringer] for Kind.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "Invalid"
	case KindIs:
		return "Is"
	case KindEnclosedBy:
		return "EnclosedBy"
	case KindInPackage:
		return "InPackage"
	case KindInClass:
		return "InClass"
	case KindInMethod:
		return "InMethod"
	case KindNotInMethod:
		return "NotInMethod"
	case KindPackage:
		return "Package"
	case KindGenericArrayLocation:
		return "GenericArrayLocation"
	case KindField:
		return "Field"
	case KindReceiver:
		return "Receiver"
	case KindReturnType:
		return "ReturnType"
	case KindSigMethod:
		return "SigMethod"
	case KindParam:
		return "Param"
	case KindLocalVariable:
		return "LocalVariable"
	case KindCast:
		return "Cast"
	case KindNewObject:
		return "NewObject"
	case KindInstanceOf:
		return "InstanceOf"
	case KindBoundLocation:
		return "BoundLocation"
	case KindMethodBound:
		return "MethodBound"
	case KindClassBound:
		return "ClassBound"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// simpleName strips a signature-name down to its simple name: everything
// before the first '('.
func simpleName(name string) string {
	if i := strings.IndexByte(name, '('); i >= 0 {
		return name[:i]
	}
	return name
}

// methodNameMatches reports whether a declared method name satisfies the
// name a criterion was built with. A wanted name that carries a parameter
// list ("foo(int)") matches exactly; one without ("foo") matches any
// overload with that simple name. The convention is shared with the
// component producing the names.
func methodNameMatches(want, declared string) bool {
	if want == declared {
		return true
	}
	if strings.IndexByte(want, '(') >= 0 {
		return false
	}
	return simpleName(declared) == want
}
