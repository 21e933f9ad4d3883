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

// enclosingMethod returns the innermost method node at or above step i
// whose name matches want, or nil.
func enclosingMethod(path *syntax.Path, i int, want string) syntax.Node {
	for j := i; j >= 0; j-- {
		n := path.Step(j).Node
		if n.Kind() == syntax.KindMethod && methodNameMatches(want, n.Name()) {
			return n
		}
	}
	return nil
}

// receiverCriterion matches when the leaf is, or sits inside, the explicit
// receiver parameter of the named method.
type receiverCriterion struct {
	methodName string
}

func (c *receiverCriterion) Kind() Kind {
	return KindReceiver
}

func (c *receiverCriterion) IsSatisfiedBy(path *syntax.Path) bool {
	for i := path.Len() - 1; i >= 1; i-- {
		st := path.Step(i)
		if st.Role != syntax.RoleReceiver {
			continue
		}
		parent := path.Step(i - 1).Node
		if parent.Kind() == syntax.KindMethod && methodNameMatches(c.methodName, parent.Name()) {
			return true
		}
	}
	return false
}

func (c *receiverCriterion) String() string {
	return fmt.Sprintf("receiver of method %q", c.methodName)
}

// returnTypeCriterion matches when the leaf sits within the return-type
// position of the named method.
type returnTypeCriterion struct {
	methodName string
}

func (c *returnTypeCriterion) Kind() Kind {
	return KindReturnType
}

func (c *returnTypeCriterion) IsSatisfiedBy(path *syntax.Path) bool {
	for i := path.Len() - 1; i >= 1; i-- {
		st := path.Step(i)
		if st.Role != syntax.RoleReturnType {
			continue
		}
		parent := path.Step(i - 1).Node
		if parent.Kind() == syntax.KindMethod && methodNameMatches(c.methodName, parent.Name()) {
			return true
		}
	}
	return false
}

func (c *returnTypeCriterion) String() string {
	return fmt.Sprintf("return type of method %q", c.methodName)
}

// paramCriterion matches when the leaf is, or sits inside, the formal
// parameter at a given 0-based position of the named method.
type paramCriterion struct {
	methodName string
	pos        int
}

func (c *paramCriterion) Kind() Kind {
	return KindParam
}

func (c *paramCriterion) IsSatisfiedBy(path *syntax.Path) bool {
	for i := path.Len() - 1; i >= 1; i-- {
		st := path.Step(i)
		if st.Role != syntax.RoleParameter || st.Index != c.pos {
			continue
		}
		parent := path.Step(i - 1).Node
		if parent.Kind() == syntax.KindMethod && methodNameMatches(c.methodName, parent.Name()) {
			return true
		}
	}
	return false
}

func (c *paramCriterion) String() string {
	return fmt.Sprintf("param %d of method %q", c.pos, c.methodName)
}

// localCriterion matches when the leaf is, or sits inside, the local
// variable a LocalLocation describes within the named method. The
// descriptor's index is the variable's ordinal among same-named locals of
// the method in pre-order, which is how same-named locals redeclared in
// sibling scopes stay distinguishable.
type localCriterion struct {
	methodName string
	loc        el.LocalLocation
}

func (c *localCriterion) Kind() Kind {
	return KindLocalVariable
}

func (c *localCriterion) IsSatisfiedBy(path *syntax.Path) bool {
	for i := path.Len() - 1; i >= 1; i-- {
		st := path.Step(i)
		if !isLocalStep(st) || st.Node.Name() != c.loc.Name {
			continue
		}
		method := enclosingMethod(path, i-1, c.methodName)
		if method == nil {
			continue
		}
		if localOrdinal(method, c.loc.Name, st.Node) == c.loc.Index {
			return true
		}
	}
	return false
}

func (c *localCriterion) String() string {
	return fmt.Sprintf("local %v in method %q", c.loc, c.methodName)
}

// isLocalStep reports whether a step is a local variable declaration:
// a Variable anywhere other than member, parameter, or receiver position.
func isLocalStep(st syntax.Step) bool {
	if st.Node.Kind() != syntax.KindVariable {
		return false
	}
	switch st.Role {
	case syntax.RoleMember, syntax.RoleParameter, syntax.RoleReceiver:
		return false
	default:
		return true
	}
}

// localOrdinal returns target's position among the local variables named
// name declared under method, in pre-order, or -1 if target is not found.
func localOrdinal(method syntax.Node, name string, target syntax.Node) int {
	ordinal := -1
	n := 0
	syntax.Walk(method, func(p *syntax.Path) bool {
		st := p.LeafStep()
		if p.Len() == 1 || !isLocalStep(st) || st.Node.Name() != name {
			return true
		}
		if st.Node == target {
			ordinal = n
			return false
		}
		n++
		return true
	})
	return ordinal
}
