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

import "fmt"

// Node is a single node of a parsed source tree, as supplied by whichever
// front end produced it.
//
// Implementations must be immutable once handed to a matcher and must be
// comparable with ==; the basic implementation returned by [New] satisfies
// both. Matching never mutates a node.
//
// Method nodes may carry a signature-name, such as "foo(int,String)", when
// the producer needs to distinguish overloads; a plain simple name is also
// accepted. The convention is shared with whatever component produces the
// names being matched against, and must agree on both sides.
type Node interface {
	// Kind returns the syntactic category of this node.
	Kind() Kind

	// Name returns the declared name of this node, or "" for nodes that
	// do not declare a name.
	Name() string

	// Edges returns this node's children in source order, each tagged
	// with the role it occupies within this node. The returned slice must
	// not be mutated.
	Edges() []Edge
}

// Edge is a role-tagged child of a node.
type Edge struct {
	Role Role
	Node Node
}

// New returns an immutable [Node] with the given kind, declared name, and
// children. It is the reference implementation of the Node contract; tree
// producers are free to supply their own.
//
// New panics if kind is [KindInvalid] or any child node is nil.
func New(kind Kind, name string, edges ...Edge) Node {
	if kind == KindInvalid {
		panic("treefind/syntax: New called with KindInvalid")
	}
	for i, e := range edges {
		if e.Node == nil {
			panic(fmt.Sprintf("treefind/syntax: New called with nil child at index %d", i))
		}
	}
	n := &node{kind: kind, name: name}
	if len(edges) > 0 {
		n.edges = make([]Edge, len(edges))
		copy(n.edges, edges)
	}
	return n
}

type node struct {
	kind  Kind
	name  string
	edges []Edge
}

func (n *node) Kind() Kind    { return n.kind }
func (n *node) Name() string  { return n.name }
func (n *node) Edges() []Edge { return n.edges }

func (n *node) String() string {
	if n.name == "" {
		return n.kind.String()
	}
	return fmt.Sprintf("%v(%s)", n.kind, n.name)
}

// PackageName returns the package name of a compilation unit, taken from
// its package-declaration child. Returns "" if unit is not a compilation
// unit or declares no package (the default package).
func PackageName(unit Node) string {
	if unit == nil || unit.Kind() != KindCompilationUnit {
		return ""
	}
	for _, e := range unit.Edges() {
		if e.Role == RolePackage {
			return e.Node.Name()
		}
	}
	return ""
}
