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

// Factory functions, the only supported way to build a Criterion. Each
// validates its arguments up front: an out-of-domain argument is a bug in
// the caller's address translation, and panicking here beats handing back
// a criterion that can never match. Messages are prefixed "treefind:".

// Is builds a criterion matching a program element of the given kind and
// declared name.
func Is(kind syntax.Kind, name string) Criterion {
	if kind == syntax.KindInvalid {
		panic("treefind: Is called with KindInvalid")
	}
	return &isCriterion{kind: kind, name: name}
}

// EnclosedBy builds a criterion matching an element enclosed by a node of
// the given kind.
func EnclosedBy(kind syntax.Kind) Criterion {
	if kind == syntax.KindInvalid {
		panic("treefind: EnclosedBy called with KindInvalid")
	}
	return &enclosedByCriterion{kind: kind}
}

// InPackage builds a criterion matching an element whose compilation unit
// declares the given package. The empty name is the default package.
func InPackage(name string) Criterion {
	return &inPackageCriterion{name: name}
}

// InClass builds a criterion matching an element enclosed by a class,
// interface, or enum declaration with the given name.
func InClass(name string) Criterion {
	if name == "" {
		panic("treefind: InClass called with empty name")
	}
	return &inClassCriterion{name: name}
}

// InMethod builds a criterion matching an element enclosed by a method
// declaration with the given name.
func InMethod(name string) Criterion {
	if name == "" {
		panic("treefind: InMethod called with empty name")
	}
	return &inMethodCriterion{name: name}
}

// NotInMethod builds a criterion matching an element enclosed by no method
// at all, such as a field declaration at class scope.
func NotInMethod() Criterion {
	return &notInMethodCriterion{}
}

// PackageDecl builds a criterion matching the package declaration itself.
func PackageDecl(name string) Criterion {
	return &packageCriterion{name: name}
}

// AtOutermostLocation builds a criterion matching a type node in the
// outermost type position, i.e. not nested inside any generic or array
// type.
func AtOutermostLocation() Criterion {
	return &genericArrayLocationCriterion{}
}

// AtLocation builds a criterion matching a type node at the nesting level
// loc describes. An empty loc is equivalent to [AtOutermostLocation].
func AtLocation(loc el.InnerTypeLocation) Criterion {
	for i, s := range loc.Steps {
		if s < 0 {
			panic(fmt.Sprintf("treefind: AtLocation step %d is negative (%d)", i, s))
		}
	}
	return &genericArrayLocationCriterion{loc: loc}
}

// Field builds a criterion matching an element within the field
// declaration of the given name.
func Field(varName string) Criterion {
	if varName == "" {
		panic("treefind: Field called with empty name")
	}
	return &fieldCriterion{name: varName}
}

// Receiver builds a criterion matching the formal receiver parameter of
// the named method. Its criterion reports [KindReceiver], which
// [Criteria.IsOnReceiver] looks for.
func Receiver(methodName string) Criterion {
	if methodName == "" {
		panic("treefind: Receiver called with empty method name")
	}
	return &receiverCriterion{methodName: methodName}
}

// ReturnType builds a criterion matching an element within the return-type
// position of the named method.
func ReturnType(methodName string) Criterion {
	if methodName == "" {
		panic("treefind: ReturnType called with empty method name")
	}
	return &returnTypeCriterion{methodName: methodName}
}

// IsSigMethod builds a criterion matching a method declaration by its full
// signature-name, distinguishing overloads.
func IsSigMethod(methodName string) Criterion {
	if methodName == "" {
		panic("treefind: IsSigMethod called with empty method name")
	}
	return &sigMethodCriterion{name: methodName}
}

// Param builds a criterion matching the formal parameter at 0-based
// position pos of the named method.
func Param(methodName string, pos int) Criterion {
	if methodName == "" {
		panic("treefind: Param called with empty method name")
	}
	if pos < 0 {
		panic(fmt.Sprintf("treefind: Param called with negative position %d", pos))
	}
	return &paramCriterion{methodName: methodName, pos: pos}
}

// Local builds a criterion matching the local variable loc describes
// within the named method.
func Local(methodName string, loc el.LocalLocation) Criterion {
	if methodName == "" {
		panic("treefind: Local called with empty method name")
	}
	if loc.Name == "" {
		panic("treefind: Local called with empty variable name")
	}
	if loc.Index < 0 {
		panic(fmt.Sprintf("treefind: Local called with negative index %d", loc.Index))
	}
	return &localCriterion{methodName: methodName, loc: loc}
}

// Cast builds a criterion matching the type position of the offset-th cast
// expression (0-based, pre-order) within the named method.
func Cast(methodName string, offset int) Criterion {
	return newOffsetCriterion(KindCast, syntax.KindCast, methodName, offset)
}

// NewObject builds a criterion matching the type position of the offset-th
// object-creation expression (0-based, pre-order) within the named method.
func NewObject(methodName string, offset int) Criterion {
	return newOffsetCriterion(KindNewObject, syntax.KindNewClass, methodName, offset)
}

// InstanceOf builds a criterion matching the type position of the
// offset-th type-test expression (0-based, pre-order) within the named
// method.
func InstanceOf(methodName string, offset int) Criterion {
	return newOffsetCriterion(KindInstanceOf, syntax.KindInstanceOf, methodName, offset)
}

func newOffsetCriterion(kind Kind, exprKind syntax.Kind, methodName string, offset int) Criterion {
	if methodName == "" {
		panic(fmt.Sprintf("treefind: %v called with empty method name", kind))
	}
	if offset < 0 {
		panic(fmt.Sprintf("treefind: %v called with negative offset %d", kind, offset))
	}
	return &offsetCriterion{kind: kind, exprKind: exprKind, methodName: methodName, offset: offset}
}

// AtBoundLocation builds a criterion matching the type-parameter or
// wildcard bound loc describes, regardless of which declaration owns it.
func AtBoundLocation(loc el.BoundLocation) Criterion {
	validateBound("AtBoundLocation", loc)
	return &boundLocationCriterion{loc: loc}
}

// MethodBound builds a criterion matching the bound loc describes on a
// type parameter declared by the named method.
func MethodBound(methodName string, loc el.BoundLocation) Criterion {
	if methodName == "" {
		panic("treefind: MethodBound called with empty method name")
	}
	validateBound("MethodBound", loc)
	return &methodBoundCriterion{methodName: methodName, loc: loc}
}

// ClassBound builds a criterion matching the bound loc describes on a type
// parameter declared by the named class.
func ClassBound(className string, loc el.BoundLocation) Criterion {
	if className == "" {
		panic("treefind: ClassBound called with empty class name")
	}
	validateBound("ClassBound", loc)
	return &classBoundCriterion{className: className, loc: loc}
}

func validateBound(factory string, loc el.BoundLocation) {
	if loc.ParamIndex < 0 || loc.BoundIndex < 0 {
		panic(fmt.Sprintf("treefind: %s called with negative bound location %v", factory, loc))
	}
}
