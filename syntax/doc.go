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

// Package syntax defines the tree-side contract of the matching engine:
// the node and path abstractions that a traversal driver supplies when it
// asks whether a candidate node is the one a set of criteria describes.
//
// A [Node] carries a syntactic [Kind], an optional declared name, and its
// children. Children are tagged with a [Role] describing the position they
// occupy in their parent, which is what lets matching tell a method's
// return type from its parameters without the engine knowing anything
// about how the tree was produced.
//
// A [Path] is the chain of nodes from a tree's root down to one candidate
// leaf, the unit all matching runs against. [Walk] enumerates the paths of
// a whole tree in deterministic pre-order.
//
// This package never mutates a tree; nodes are treated as immutable from
// the moment a path over them is built.
package syntax
