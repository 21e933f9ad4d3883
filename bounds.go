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

	"github.com/srctools/treefind/el"
	"github.com/srctools/treefind/syntax"
)

// genericArrayLocationCriterion matches a type node by its nesting level
// inside generic and array types. With an empty location it matches the
// outermost type position only.
type genericArrayLocationCriterion struct {
	loc el.InnerTypeLocation
}

func (c *genericArrayLocationCriterion) Kind() Kind {
	return KindGenericArrayLocation
}

func (c *genericArrayLocationCriterion) IsSatisfiedBy(path *syntax.Path) bool {
	leaf := path.Leaf()
	if leaf == nil || !leaf.Kind().IsType() {
		return false
	}

	// Collect the descent indices from the leaf up to the outermost
	// enclosing type, innermost first.
	var reversed []int
	for i := path.Len() - 1; i >= 1; i-- {
		st := path.Step(i)
		if st.Role != syntax.RoleTypeArgument && st.Role != syntax.RoleElementType {
			break
		}
		reversed = append(reversed, st.Index)
	}

	if len(reversed) != c.loc.Depth() {
		return false
	}
	for k, want := range c.loc.Steps {
		if reversed[len(reversed)-1-k] != want {
			return false
		}
	}
	return true
}

func (c *genericArrayLocationCriterion) String() string {
	return fmt.Sprintf("at %v", c.loc)
}

// boundStepAt reports whether step i of path is the bound a BoundLocation
// describes: the BoundIndex-th bound of the ParamIndex-th type parameter
// or wildcard.
func boundStepAt(path *syntax.Path, i int, loc el.BoundLocation) bool {
	st := path.Step(i)
	if st.Role != syntax.RoleBound || st.Index != loc.BoundIndex {
		return false
	}
	owner := path.Step(i - 1)
	switch owner.Node.Kind() {
	case syntax.KindTypeParameter, syntax.KindWildcard:
		return owner.Index == loc.ParamIndex
	default:
		return false
	}
}

// boundLocationCriterion matches when the leaf is, or sits inside, the
// type-parameter or wildcard bound a BoundLocation describes, wherever the
// owning declaration lives.
type boundLocationCriterion struct {
	loc el.BoundLocation
}

func (c *boundLocationCriterion) Kind() Kind {
	return KindBoundLocation
}

func (c *boundLocationCriterion) IsSatisfiedBy(path *syntax.Path) bool {
	for i := path.Len() - 1; i >= 2; i-- {
		if boundStepAt(path, i, c.loc) {
			return true
		}
	}
	return false
}

func (c *boundLocationCriterion) String() string {
	return fmt.Sprintf("at %v", c.loc)
}

// methodBoundCriterion matches a bound location whose type parameter is
// declared by the named method. This is stronger than AND-ing an in-method
// check with a bound check: the named method must be the declaration the
// matched type parameter hangs off, not merely some ancestor, which
// matters when type declarations nest.
type methodBoundCriterion struct {
	methodName string
	loc        el.BoundLocation
}

func (c *methodBoundCriterion) Kind() Kind {
	return KindMethodBound
}

func (c *methodBoundCriterion) IsSatisfiedBy(path *syntax.Path) bool {
	for i := path.Len() - 1; i >= 2; i-- {
		if !boundStepAt(path, i, c.loc) {
			continue
		}
		decl := path.Step(i - 2).Node
		if decl.Kind() == syntax.KindMethod && methodNameMatches(c.methodName, decl.Name()) {
			return true
		}
	}
	return false
}

func (c *methodBoundCriterion) String() string {
	return fmt.Sprintf("method %q %v", c.methodName, c.loc)
}

// classBoundCriterion is methodBoundCriterion for class-like declarations.
type classBoundCriterion struct {
	className string
	loc       el.BoundLocation
}

func (c *classBoundCriterion) Kind() Kind {
	return KindClassBound
}

func (c *classBoundCriterion) IsSatisfiedBy(path *syntax.Path) bool {
	for i := path.Len() - 1; i >= 2; i-- {
		if !boundStepAt(path, i, c.loc) {
			continue
		}
		decl := path.Step(i - 2).Node
		if decl.Kind().IsClassLike() && decl.Name() == c.className {
			return true
		}
	}
	return false
}

func (c *classBoundCriterion) String() string {
	return fmt.Sprintf("class %q %v", c.className, c.loc)
}
