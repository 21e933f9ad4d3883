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

// isCriterion matches a leaf of a given kind and declared name.
type isCriterion struct {
	kind syntax.Kind
	name string
}

func (c *isCriterion) Kind() Kind {
	return KindIs
}

func (c *isCriterion) IsSatisfiedBy(path *syntax.Path) bool {
	leaf := path.Leaf()
	if leaf == nil || leaf.Kind() != c.kind {
		return false
	}
	if c.kind == syntax.KindMethod {
		return methodNameMatches(c.name, leaf.Name())
	}
	return leaf.Name() == c.name
}

func (c *isCriterion) String() string {
	return fmt.Sprintf("is %v %q", c.kind, c.name)
}

// packageCriterion matches the package declaration itself. It also
// accepts a compilation-unit leaf, the form that reaches it through the
// nil-path fallback, by looking at the unit's declared package.
type packageCriterion struct {
	name string
}

func (c *packageCriterion) Kind() Kind {
	return KindPackage
}

func (c *packageCriterion) IsSatisfiedBy(path *syntax.Path) bool {
	leaf := path.Leaf()
	if leaf == nil {
		return false
	}
	switch leaf.Kind() {
	case syntax.KindPackage:
		return leaf.Name() == c.name
	case syntax.KindCompilationUnit:
		return syntax.PackageName(leaf) == c.name
	default:
		return false
	}
}

func (c *packageCriterion) String() string {
	return fmt.Sprintf("package decl %q", c.name)
}

// sigMethodCriterion matches a method declaration by its full
// signature-name, never by simple name, so overloads stay distinct.
type sigMethodCriterion struct {
	name string
}

func (c *sigMethodCriterion) Kind() Kind {
	return KindSigMethod
}

func (c *sigMethodCriterion) IsSatisfiedBy(path *syntax.Path) bool {
	leaf := path.Leaf()
	return leaf != nil && leaf.Kind() == syntax.KindMethod && leaf.Name() == c.name
}

func (c *sigMethodCriterion) String() string {
	return fmt.Sprintf("is sig method %q", c.name)
}
