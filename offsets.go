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

	"github.com/srctools/treefind/syntax"
)

// offsetCriterion matches the type position of an expression that has no
// declared name to key on: a cast, an object creation, or a type test.
// The expression is identified positionally, as the 0-based ordinal of
// its kind within the enclosing method in pre-order. The numbering is a
// contract shared with the component that produces element addresses; both
// sides must count the same way.
type offsetCriterion struct {
	kind       Kind        // KindCast, KindNewObject, or KindInstanceOf
	exprKind   syntax.Kind // the expression kind counted
	methodName string
	offset     int
}

func (c *offsetCriterion) Kind() Kind {
	return c.kind
}

func (c *offsetCriterion) IsSatisfiedBy(path *syntax.Path) bool {
	for i := path.Len() - 1; i >= 1; i-- {
		st := path.Step(i)
		if st.Role != syntax.RoleType {
			continue
		}
		expr := path.Step(i - 1).Node
		if expr.Kind() != c.exprKind {
			continue
		}
		method := enclosingMethod(path, i-1, c.methodName)
		if method == nil {
			continue
		}
		if exprOrdinal(method, c.exprKind, expr) == c.offset {
			return true
		}
	}
	return false
}

func (c *offsetCriterion) String() string {
	return fmt.Sprintf("%v #%d in method %q", c.kind, c.offset, c.methodName)
}

// exprOrdinal returns target's position among all exprKind nodes under
// method in pre-order, or -1 if target is not found. Pre-order over an
// unchanged tree is deterministic, so a construct keeps its ordinal across
// traversals.
func exprOrdinal(method syntax.Node, exprKind syntax.Kind, target syntax.Node) int {
	ordinal := -1
	n := 0
	syntax.Walk(method, func(p *syntax.Path) bool {
		leaf := p.Leaf()
		if leaf.Kind() != exprKind {
			return true
		}
		if leaf == target {
			ordinal = n
			return false
		}
		n++
		return true
	})
	return ordinal
}
