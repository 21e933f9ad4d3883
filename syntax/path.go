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

package syntax

import (
	"fmt"
	"strings"
)

// Step is one node of a [Path], together with the role and ordinal it
// occupies within its parent. Index counts same-role siblings only: the
// second formal parameter of a method has Role [RoleParameter] and Index 1
// regardless of how many other children the method has.
//
// The root step of a path has Role [RoleNone] and Index 0.
type Step struct {
	Node  Node
	Role  Role
	Index int
}

// Path is the chain of nodes from the root of a tree down to one candidate
// leaf node. All matching runs against paths.
//
// A nil *Path is valid and empty.
type Path struct {
	steps []Step
}

// NewPath returns a path over the given steps, ordered root first. It
// panics if any step carries a nil node.
func NewPath(steps ...Step) *Path {
	for i, s := range steps {
		if s.Node == nil {
			panic(fmt.Sprintf("treefind/syntax: NewPath called with nil node at step %d", i))
		}
	}
	p := &Path{}
	if len(steps) > 0 {
		p.steps = make([]Step, len(steps))
		copy(p.steps, steps)
	}
	return p
}

// PathOf returns the single-step path holding only leaf. This is the form
// used when a candidate node has no parent chain, such as a compilation
// unit itself.
func PathOf(leaf Node) *Path {
	if leaf == nil {
		return nil
	}
	return &Path{steps: []Step{{Node: leaf}}}
}

// Len returns the number of steps in the path.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.steps)
}

// Step returns the i-th step; step 0 is the root, step Len()-1 the leaf.
func (p *Path) Step(i int) Step {
	return p.steps[i]
}

// Leaf returns the node at the bottom of the path, or nil for an empty
// path.
func (p *Path) Leaf() Node {
	if p.Len() == 0 {
		return nil
	}
	return p.steps[len(p.steps)-1].Node
}

// LeafStep returns the bottom step of the path; the zero Step for an empty
// path.
func (p *Path) LeafStep() Step {
	if p.Len() == 0 {
		return Step{}
	}
	return p.steps[len(p.steps)-1]
}

// Root returns the node at the top of the path, or nil for an empty path.
// For paths produced by a whole-file traversal this is the compilation
// unit.
func (p *Path) Root() Node {
	if p.Len() == 0 {
		return nil
	}
	return p.steps[0].Node
}

// Ancestors calls yield for each step from the leaf up to the root,
// leaf included, stopping early if yield returns false.
func (p *Path) Ancestors(yield func(Step) bool) {
	for i := p.Len() - 1; i >= 0; i-- {
		if !yield(p.steps[i]) {
			return
		}
	}
}

// Clone returns a copy of the path that does not share storage with the
// original. Paths handed out by [Walk] are reused between visits; callers
// that retain one must clone it first.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	return NewPath(p.steps...)
}

// String returns a diagnostic rendering of the path, root first, such as
// "CompilationUnit/Class(Bar)/Method(foo)".
func (p *Path) String() string {
	if p.Len() == 0 {
		return "<empty path>"
	}
	var sb strings.Builder
	for i, s := range p.steps {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(s.Node.Kind().String())
		if name := s.Node.Name(); name != "" {
			fmt.Fprintf(&sb, "(%s)", name)
		}
	}
	return sb.String()
}
