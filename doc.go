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

// Package treefind locates program elements in a parsed source tree from
// structured addresses: "parameter 2 of method foo in class Bar", "the
// first bound of class Baz's first type parameter", and the like. The
// element has no direct node handle, so it must be re-identified in a
// freshly parsed tree by matching structure.
//
// A [Criterion] is one matching rule against a path from the tree root to
// a candidate node; the factory functions in this package build one per
// kind of structural fact ([Is], [InClass], [Param], [Cast], ...). A
// [Criteria] conjoins them: a caller translates an element address into a
// Criteria by repeated [Criteria.Add] calls, then asks
// [Criteria.IsSatisfiedBy] for each candidate path its traversal produces.
// Evaluation short-circuits on the first unsatisfied criterion, so per-node
// cost during a whole-tree scan stays low.
//
// The engine is a pure predicate evaluator: it never mutates the tree or
// the address, reports only boolean non-match, and does no I/O beyond an
// optional trace callback (see [Criteria.Trace]). The tree contract it
// evaluates against lives in the syntax subpackage; descriptor value types
// for sub-element positions live in the el subpackage.
//
// Criterion construction is where errors surface: a factory handed an
// out-of-domain argument, such as a negative parameter position, panics
// immediately instead of producing a criterion that silently never
// matches.
package treefind
