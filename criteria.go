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
	"strings"

	"github.com/srctools/treefind/syntax"
)

// TraceFunc receives the first unsatisfied criterion each time a
// [Criteria] rejects a path. It exists purely for diagnostics; matching
// results do not depend on it.
type TraceFunc func(unsatisfied Criterion, path *syntax.Path)

// Criteria is a conjunction of [Criterion] values representing one
// complete element address. Criteria are kept in insertion order with
// duplicates ignored; order only affects which criterion short-circuits
// evaluation first and the order of diagnostic output.
//
// The zero value is ready to use and is satisfied by every path. A
// Criteria is meant to be populated fully before its first evaluation and
// is not safe for concurrent mutation.
type Criteria struct {
	trace TraceFunc
	seen  map[string]struct{}
	list  []Criterion
}

// NewCriteria returns an empty Criteria.
func NewCriteria() *Criteria {
	return &Criteria{}
}

// Trace installs fn as the diagnostic callback invoked with each
// unsatisfied criterion. A nil fn disables tracing, which is the default.
func (cs *Criteria) Trace(fn TraceFunc) {
	cs.trace = fn
}

// Add inserts c. Adding a criterion equal to one already present is a
// no-op, so satisfaction results never depend on repeated insertion.
func (cs *Criteria) Add(c Criterion) {
	if c == nil {
		panic("treefind: Criteria.Add called with nil Criterion")
	}
	key := c.String()
	if _, ok := cs.seen[key]; ok {
		return
	}
	if cs.seen == nil {
		cs.seen = make(map[string]struct{})
	}
	cs.seen[key] = struct{}{}
	cs.list = append(cs.list, c)
}

// Len returns the number of distinct criteria added.
func (cs *Criteria) Len() int {
	return len(cs.list)
}

// IsSatisfiedBy reports whether the program element at the leaf of path
// satisfies every contained criterion. Evaluation runs in insertion order
// and stops at the first unsatisfied criterion. An empty Criteria is
// satisfied by anything, including a nil path.
func (cs *Criteria) IsSatisfiedBy(path *syntax.Path) bool {
	for _, c := range cs.list {
		if !c.IsSatisfiedBy(path) {
			if cs.trace != nil {
				cs.trace(c, path)
			}
			return false
		}
	}
	return true
}

// IsSatisfiedByLeaf is IsSatisfiedBy for callers that may hold a candidate
// node without a parent chain: when path is nil, leaf is evaluated as a
// single-step path. This is the compilation-unit case, where the root of
// the tree is itself the candidate. When path is non-nil, leaf is ignored.
func (cs *Criteria) IsSatisfiedByLeaf(path *syntax.Path, leaf syntax.Node) bool {
	if path == nil {
		path = syntax.PathOf(leaf)
	}
	return cs.IsSatisfiedBy(path)
}

// IsOnReceiver reports whether any contained criterion targets a method's
// receiver parameter. Callers use this to special-case receiver locations
// before running full matching.
func (cs *Criteria) IsOnReceiver() bool {
	for _, c := range cs.list {
		if c.Kind() == KindReceiver {
			return true
		}
	}
	return false
}

// String lists the contained criteria in insertion order, for diagnostics
// only.
func (cs *Criteria) String() string {
	parts := make([]string, len(cs.list))
	for i, c := range cs.list {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
