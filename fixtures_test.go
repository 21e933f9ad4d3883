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

package treefind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/srctools/treefind"
	"github.com/srctools/treefind/syntax"
)

// fixture is one hand-built compilation unit covering every syntactic
// region the criteria can target. Roughly:
//
//	package com.example;
//	class Bar<T extends Comparable, U extends Serializable & Cloneable> {
//	    int answer;
//	    List<String[]> names;
//	    String foo(Bar this, int a, long b, String c) {
//	        String x = (String) raw;        // cast #0
//	        { int x = new HashMap(); }      // newA (#0), local x #1
//	        var y = (Number) n;             // cast #1
//	        o instanceof String;            // instanceof #0
//	        new ArrayList();                // newB (#1)
//	    }
//	    <M extends Number> void gen() {}
//	    void baz(int)  {}                   // overloads carrying
//	    void baz(long) {}                   // signature-names
//	}
//	class Baz { String foo() {} }
//	class Outer<T extends A> { class Inner<S extends B> {} }
type fixture struct {
	unit syntax.Node

	classBar, classBaz syntax.Node

	methodFoo   syntax.Node
	fooReturn   syntax.Node
	fooReceiver syntax.Node
	fooParams   [3]syntax.Node

	fieldAnswer syntax.Node
	fieldNames  syntax.Node
	namesType   syntax.Node // List<String[]>
	namesArg    syntax.Node // String[]
	namesElem   syntax.Node // String

	localX0, localX1, localY syntax.Node

	cast0, castType0 syntax.Node
	cast1, castType1 syntax.Node
	newA, newTypeA   syntax.Node
	newB, newTypeB   syntax.Node
	inst0, instType0 syntax.Node

	barTypeParamT, barBoundT0 syntax.Node
	barTypeParamU             syntax.Node
	barBoundU0, barBoundU1    syntax.Node
	methodGen, genBound       syntax.Node

	bazMethodFoo syntax.Node

	methodBazInt, methodBazLong syntax.Node

	classOuter, classInner syntax.Node
	outerBound, innerBound syntax.Node
}

func newFixture() *fixture {
	f := &fixture{}

	f.barBoundT0 = syntax.New(syntax.KindNamedType, "Comparable")
	f.barTypeParamT = syntax.New(syntax.KindTypeParameter, "T",
		syntax.Edge{Role: syntax.RoleBound, Node: f.barBoundT0},
	)
	f.barBoundU0 = syntax.New(syntax.KindNamedType, "Serializable")
	f.barBoundU1 = syntax.New(syntax.KindNamedType, "Cloneable")
	f.barTypeParamU = syntax.New(syntax.KindTypeParameter, "U",
		syntax.Edge{Role: syntax.RoleBound, Node: f.barBoundU0},
		syntax.Edge{Role: syntax.RoleBound, Node: f.barBoundU1},
	)

	f.fieldAnswer = syntax.New(syntax.KindVariable, "answer",
		syntax.Edge{Role: syntax.RoleType, Node: syntax.New(syntax.KindPrimitiveType, "int")},
	)

	f.namesElem = syntax.New(syntax.KindNamedType, "String")
	f.namesArg = syntax.New(syntax.KindArrayType, "",
		syntax.Edge{Role: syntax.RoleElementType, Node: f.namesElem},
	)
	f.namesType = syntax.New(syntax.KindParameterizedType, "List",
		syntax.Edge{Role: syntax.RoleTypeArgument, Node: f.namesArg},
	)
	f.fieldNames = syntax.New(syntax.KindVariable, "names",
		syntax.Edge{Role: syntax.RoleType, Node: f.namesType},
	)

	f.fooReturn = syntax.New(syntax.KindNamedType, "String")
	f.fooReceiver = syntax.New(syntax.KindVariable, "this",
		syntax.Edge{Role: syntax.RoleType, Node: syntax.New(syntax.KindNamedType, "Bar")},
	)
	f.fooParams = [3]syntax.Node{
		syntax.New(syntax.KindVariable, "a",
			syntax.Edge{Role: syntax.RoleType, Node: syntax.New(syntax.KindPrimitiveType, "int")}),
		syntax.New(syntax.KindVariable, "b",
			syntax.Edge{Role: syntax.RoleType, Node: syntax.New(syntax.KindPrimitiveType, "long")}),
		syntax.New(syntax.KindVariable, "c",
			syntax.Edge{Role: syntax.RoleType, Node: syntax.New(syntax.KindNamedType, "String")}),
	}

	f.castType0 = syntax.New(syntax.KindNamedType, "String")
	f.cast0 = syntax.New(syntax.KindCast, "",
		syntax.Edge{Role: syntax.RoleType, Node: f.castType0},
		syntax.Edge{Role: syntax.RoleExpression, Node: syntax.New(syntax.KindIdentifier, "raw")},
	)
	f.localX0 = syntax.New(syntax.KindVariable, "x",
		syntax.Edge{Role: syntax.RoleType, Node: syntax.New(syntax.KindNamedType, "String")},
		syntax.Edge{Role: syntax.RoleInitializer, Node: f.cast0},
	)

	f.newTypeA = syntax.New(syntax.KindNamedType, "HashMap")
	f.newA = syntax.New(syntax.KindNewClass, "",
		syntax.Edge{Role: syntax.RoleType, Node: f.newTypeA},
	)
	f.localX1 = syntax.New(syntax.KindVariable, "x",
		syntax.Edge{Role: syntax.RoleType, Node: syntax.New(syntax.KindPrimitiveType, "int")},
		syntax.Edge{Role: syntax.RoleInitializer, Node: f.newA},
	)
	innerBlock := syntax.New(syntax.KindBlock, "",
		syntax.Edge{Role: syntax.RoleStatement, Node: f.localX1},
	)

	f.castType1 = syntax.New(syntax.KindNamedType, "Number")
	f.cast1 = syntax.New(syntax.KindCast, "",
		syntax.Edge{Role: syntax.RoleType, Node: f.castType1},
		syntax.Edge{Role: syntax.RoleExpression, Node: syntax.New(syntax.KindIdentifier, "n")},
	)
	f.localY = syntax.New(syntax.KindVariable, "y",
		syntax.Edge{Role: syntax.RoleInitializer, Node: f.cast1},
	)

	f.instType0 = syntax.New(syntax.KindNamedType, "String")
	f.inst0 = syntax.New(syntax.KindInstanceOf, "",
		syntax.Edge{Role: syntax.RoleExpression, Node: syntax.New(syntax.KindIdentifier, "o")},
		syntax.Edge{Role: syntax.RoleType, Node: f.instType0},
	)

	f.newTypeB = syntax.New(syntax.KindNamedType, "ArrayList")
	f.newB = syntax.New(syntax.KindNewClass, "",
		syntax.Edge{Role: syntax.RoleType, Node: f.newTypeB},
	)

	fooBody := syntax.New(syntax.KindBlock, "",
		syntax.Edge{Role: syntax.RoleStatement, Node: f.localX0},
		syntax.Edge{Role: syntax.RoleStatement, Node: innerBlock},
		syntax.Edge{Role: syntax.RoleStatement, Node: f.localY},
		syntax.Edge{Role: syntax.RoleStatement, Node: f.inst0},
		syntax.Edge{Role: syntax.RoleStatement, Node: f.newB},
	)
	f.methodFoo = syntax.New(syntax.KindMethod, "foo",
		syntax.Edge{Role: syntax.RoleReturnType, Node: f.fooReturn},
		syntax.Edge{Role: syntax.RoleReceiver, Node: f.fooReceiver},
		syntax.Edge{Role: syntax.RoleParameter, Node: f.fooParams[0]},
		syntax.Edge{Role: syntax.RoleParameter, Node: f.fooParams[1]},
		syntax.Edge{Role: syntax.RoleParameter, Node: f.fooParams[2]},
		syntax.Edge{Role: syntax.RoleBody, Node: fooBody},
	)

	f.genBound = syntax.New(syntax.KindNamedType, "Number")
	genTypeParam := syntax.New(syntax.KindTypeParameter, "M",
		syntax.Edge{Role: syntax.RoleBound, Node: f.genBound},
	)
	f.methodGen = syntax.New(syntax.KindMethod, "gen",
		syntax.Edge{Role: syntax.RoleTypeParameter, Node: genTypeParam},
		syntax.Edge{Role: syntax.RoleReturnType, Node: syntax.New(syntax.KindPrimitiveType, "void")},
		syntax.Edge{Role: syntax.RoleBody, Node: syntax.New(syntax.KindBlock, "")},
	)

	f.methodBazInt = syntax.New(syntax.KindMethod, "baz(int)",
		syntax.Edge{Role: syntax.RoleReturnType, Node: syntax.New(syntax.KindPrimitiveType, "void")},
		syntax.Edge{Role: syntax.RoleParameter, Node: syntax.New(syntax.KindVariable, "v",
			syntax.Edge{Role: syntax.RoleType, Node: syntax.New(syntax.KindPrimitiveType, "int")})},
		syntax.Edge{Role: syntax.RoleBody, Node: syntax.New(syntax.KindBlock, "")},
	)
	f.methodBazLong = syntax.New(syntax.KindMethod, "baz(long)",
		syntax.Edge{Role: syntax.RoleReturnType, Node: syntax.New(syntax.KindPrimitiveType, "void")},
		syntax.Edge{Role: syntax.RoleParameter, Node: syntax.New(syntax.KindVariable, "v",
			syntax.Edge{Role: syntax.RoleType, Node: syntax.New(syntax.KindPrimitiveType, "long")})},
		syntax.Edge{Role: syntax.RoleBody, Node: syntax.New(syntax.KindBlock, "")},
	)

	f.classBar = syntax.New(syntax.KindClass, "Bar",
		syntax.Edge{Role: syntax.RoleTypeParameter, Node: f.barTypeParamT},
		syntax.Edge{Role: syntax.RoleTypeParameter, Node: f.barTypeParamU},
		syntax.Edge{Role: syntax.RoleMember, Node: f.fieldAnswer},
		syntax.Edge{Role: syntax.RoleMember, Node: f.fieldNames},
		syntax.Edge{Role: syntax.RoleMember, Node: f.methodFoo},
		syntax.Edge{Role: syntax.RoleMember, Node: f.methodGen},
		syntax.Edge{Role: syntax.RoleMember, Node: f.methodBazInt},
		syntax.Edge{Role: syntax.RoleMember, Node: f.methodBazLong},
	)

	f.bazMethodFoo = syntax.New(syntax.KindMethod, "foo",
		syntax.Edge{Role: syntax.RoleReturnType, Node: syntax.New(syntax.KindNamedType, "String")},
		syntax.Edge{Role: syntax.RoleBody, Node: syntax.New(syntax.KindBlock, "")},
	)
	f.classBaz = syntax.New(syntax.KindClass, "Baz",
		syntax.Edge{Role: syntax.RoleMember, Node: f.bazMethodFoo},
	)

	f.outerBound = syntax.New(syntax.KindNamedType, "A")
	f.innerBound = syntax.New(syntax.KindNamedType, "B")
	f.classInner = syntax.New(syntax.KindClass, "Inner",
		syntax.Edge{Role: syntax.RoleTypeParameter, Node: syntax.New(syntax.KindTypeParameter, "S",
			syntax.Edge{Role: syntax.RoleBound, Node: f.innerBound})},
	)
	f.classOuter = syntax.New(syntax.KindClass, "Outer",
		syntax.Edge{Role: syntax.RoleTypeParameter, Node: syntax.New(syntax.KindTypeParameter, "T",
			syntax.Edge{Role: syntax.RoleBound, Node: f.outerBound})},
		syntax.Edge{Role: syntax.RoleMember, Node: f.classInner},
	)

	f.unit = syntax.New(syntax.KindCompilationUnit, "",
		syntax.Edge{Role: syntax.RolePackage, Node: syntax.New(syntax.KindPackage, "com.example")},
		syntax.Edge{Role: syntax.RoleMember, Node: f.classBar},
		syntax.Edge{Role: syntax.RoleMember, Node: f.classBaz},
		syntax.Edge{Role: syntax.RoleMember, Node: f.classOuter},
	)
	return f
}

// pathTo returns the path from the fixture root down to target.
func pathTo(t *testing.T, root, target syntax.Node) *syntax.Path {
	t.Helper()
	var found *syntax.Path
	syntax.Walk(root, func(p *syntax.Path) bool {
		if p.Leaf() == target {
			found = p.Clone()
			return false
		}
		return true
	})
	require.NotNil(t, found, "target node not present in fixture tree")
	return found
}

// matchingLeaves runs cs over every path of root and collects the leaves
// that satisfied it.
func matchingLeaves(root syntax.Node, cs *treefind.Criteria) []syntax.Node {
	var out []syntax.Node
	syntax.Walk(root, func(p *syntax.Path) bool {
		if cs.IsSatisfiedBy(p) {
			out = append(out, p.Leaf())
		}
		return true
	})
	return out
}

// criteria builds a Criteria from the given criteria in order.
func criteria(cs ...treefind.Criterion) *treefind.Criteria {
	out := treefind.NewCriteria()
	for _, c := range cs {
		out.Add(c)
	}
	return out
}
