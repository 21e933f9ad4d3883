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

// Criteria that look upward from the leaf. The In* criteria scan the whole
// chain including the leaf itself, so a method declaration counts as being
// "in" itself; enclosedBy scans strict ancestors only.

type enclosedByCriterion struct {
	kind syntax.Kind
}

func (c *enclosedByCriterion) Kind() Kind {
	return KindEnclosedBy
}

func (c *enclosedByCriterion) IsSatisfiedBy(path *syntax.Path) bool {
	for i := path.Len() - 2; i >= 0; i-- {
		if path.Step(i).Node.Kind() == c.kind {
			return true
		}
	}
	return false
}

func (c *enclosedByCriterion) String() string {
	return fmt.Sprintf("enclosed by %v", c.kind)
}

type inPackageCriterion struct {
	name string
}

func (c *inPackageCriterion) Kind() Kind {
	return KindInPackage
}

func (c *inPackageCriterion) IsSatisfiedBy(path *syntax.Path) bool {
	root := path.Root()
	return root != nil && root.Kind() == syntax.KindCompilationUnit &&
		syntax.PackageName(root) == c.name
}

func (c *inPackageCriterion) String() string {
	return fmt.Sprintf("in package %q", c.name)
}

type inClassCriterion struct {
	name string
}

func (c *inClassCriterion) Kind() Kind {
	return KindInClass
}

func (c *inClassCriterion) IsSatisfiedBy(path *syntax.Path) bool {
	found := false
	path.Ancestors(func(s syntax.Step) bool {
		if s.Node.Kind().IsClassLike() && s.Node.Name() == c.name {
			found = true
			return false
		}
		return true
	})
	return found
}

func (c *inClassCriterion) String() string {
	return fmt.Sprintf("in class %q", c.name)
}

type inMethodCriterion struct {
	name string
}

func (c *inMethodCriterion) Kind() Kind {
	return KindInMethod
}

func (c *inMethodCriterion) IsSatisfiedBy(path *syntax.Path) bool {
	found := false
	path.Ancestors(func(s syntax.Step) bool {
		if s.Node.Kind() == syntax.KindMethod && methodNameMatches(c.name, s.Node.Name()) {
			found = true
			return false
		}
		return true
	})
	return found
}

func (c *inMethodCriterion) String() string {
	return fmt.Sprintf("in method %q", c.name)
}

type notInMethodCriterion struct{}

func (c *notInMethodCriterion) Kind() Kind {
	return KindNotInMethod
}

func (c *notInMethodCriterion) IsSatisfiedBy(path *syntax.Path) bool {
	if path.Len() == 0 {
		return false
	}
	inMethod := false
	path.Ancestors(func(s syntax.Step) bool {
		if s.Node.Kind() == syntax.KindMethod {
			inMethod = true
			return false
		}
		return true
	})
	return !inMethod
}

func (c *notInMethodCriterion) String() string {
	return "not in method"
}

// fieldCriterion matches when the leaf is, or sits inside, a field
// declaration with the given name. A field is a Variable in member
// position; the role is what separates it from parameters and locals.
type fieldCriterion struct {
	name string
}

func (c *fieldCriterion) Kind() Kind {
	return KindField
}

func (c *fieldCriterion) IsSatisfiedBy(path *syntax.Path) bool {
	found := false
	path.Ancestors(func(s syntax.Step) bool {
		if s.Role == syntax.RoleMember && s.Node.Kind() == syntax.KindVariable &&
			s.Node.Name() == c.name {
			found = true
			return false
		}
		return true
	})
	return found
}

func (c *fieldCriterion) String() string {
	return fmt.Sprintf("field %q", c.name)
}
