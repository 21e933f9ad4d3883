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

// Package el holds the location descriptor value types: small immutable
// values that identify a sub-position of a program element, such as a
// type-parameter bound or a nesting level inside a generic or array type.
//
// Descriptors are pure data. They are produced by whatever component
// translates serialized element addresses, consumed by the criteria in the
// root package, and compared by structural equality.
package el

import (
	"fmt"
	"strings"
)

// BoundLocation identifies one bound of one type parameter or wildcard:
// ParamIndex selects the type parameter (or wildcard) by position within
// its declaring class or method, and BoundIndex selects the bound within
// it, 0 being the first extends-bound.
type BoundLocation struct {
	ParamIndex int
	BoundIndex int
}

// String implements [fmt.Stringer] for BoundLocation.
func (b BoundLocation) String() string {
	return fmt.Sprintf("BoundLocation(param %d, bound %d)", b.ParamIndex, b.BoundIndex)
}

// InnerTypeLocation describes a nesting position inside a generic or array
// type as the ordered sequence of descents from the outermost type: each
// step is the index of the type argument descended into, or 0 for an array
// element-type descent. The empty location is the outermost type itself.
type InnerTypeLocation struct {
	// Steps is owned by this value once constructed; callers must not
	// mutate it. Build values with NewInnerTypeLocation to get a copy.
	Steps []int
}

// NewInnerTypeLocation returns an InnerTypeLocation over a copy of steps.
func NewInnerTypeLocation(steps ...int) InnerTypeLocation {
	if len(steps) == 0 {
		return InnerTypeLocation{}
	}
	s := make([]int, len(steps))
	copy(s, steps)
	return InnerTypeLocation{Steps: s}
}

// Equal reports whether two locations describe the same nesting position.
func (l InnerTypeLocation) Equal(other InnerTypeLocation) bool {
	if len(l.Steps) != len(other.Steps) {
		return false
	}
	for i, s := range l.Steps {
		if s != other.Steps[i] {
			return false
		}
	}
	return true
}

// Depth returns the number of descents from the outermost type.
func (l InnerTypeLocation) Depth() int {
	return len(l.Steps)
}

// String implements [fmt.Stringer] for InnerTypeLocation.
func (l InnerTypeLocation) String() string {
	if len(l.Steps) == 0 {
		return "InnerTypeLocation(outermost)"
	}
	parts := make([]string, len(l.Steps))
	for i, s := range l.Steps {
		parts[i] = fmt.Sprint(s)
	}
	return fmt.Sprintf("InnerTypeLocation(%s)", strings.Join(parts, "."))
}

// LocalLocation identifies a local variable's declaration site by name
// plus a disambiguating index: Index is the variable's ordinal among
// same-named locals of the enclosing method, counted in traversal order,
// so that a name redeclared in sibling scopes stays addressable.
type LocalLocation struct {
	Name  string
	Index int
}

// String implements [fmt.Stringer] for LocalLocation.
func (l LocalLocation) String() string {
	return fmt.Sprintf("LocalLocation(%q #%d)", l.Name, l.Index)
}
