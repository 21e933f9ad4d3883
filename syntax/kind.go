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

const (
	KindInvalid Kind = iota // The zero Kind; no well-formed node has it.

	KindCompilationUnit   // A single source file.
	KindPackage           // A package declaration.
	KindImport            // An import declaration.
	KindClass             // A class declaration.
	KindInterface         // An interface declaration.
	KindEnum              // An enum declaration.
	KindMethod            // A method or constructor declaration.
	KindVariable          // A field, parameter, or local variable declaration.
	KindTypeParameter     // A declared type parameter.
	KindWildcard          // A wildcard type argument.
	KindNamedType         // A use of a named (possibly qualified) type.
	KindPrimitiveType     // A use of a primitive type.
	KindParameterizedType // A generic type use with type arguments.
	KindArrayType         // An array type use.
	KindCast              // A cast expression.
	KindNewClass          // An object-creation expression.
	KindInstanceOf        // A type-test expression.
	KindBlock             // A statement block.
	KindIdentifier        // An identifier expression.
	KindLiteral           // A literal expression.
)

// Kind identifies the syntactic category of a [Node].
type Kind byte

// IsClassLike returns whether this kind declares a type that can enclose
// members (class, interface, or enum declarations).
func (k Kind) IsClassLike() bool {
	return k == KindClass || k == KindInterface || k == KindEnum
}

// IsType returns whether this kind is a type use, i.e. a node that can
// occupy a type position and nest inside generic and array types.
func (k Kind) IsType() bool {
	switch k {
	case KindNamedType, KindPrimitiveType, KindParameterizedType, KindArrayType, KindWildcard:
		return true
	default:
		return false
	}
}

// String implements [fmt.Stringer] for Kind.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "Invalid"
	case KindCompilationUnit:
		return "CompilationUnit"
	case KindPackage:
		return "Package"
	case KindImport:
		return "Import"
	case KindClass:
		return "Class"
	case KindInterface:
		return "Interface"
	case KindEnum:
		return "Enum"
	case KindMethod:
		return "Method"
	case KindVariable:
		return "Variable"
	case KindTypeParameter:
		return "TypeParameter"
	case KindWildcard:
		return "Wildcard"
	case KindNamedType:
		return "NamedType"
	case KindPrimitiveType:
		return "PrimitiveType"
	case KindParameterizedType:
		return "ParameterizedType"
	case KindArrayType:
		return "ArrayType"
	case KindCast:
		return "Cast"
	case KindNewClass:
		return "NewClass"
	case KindInstanceOf:
		return "InstanceOf"
	case KindBlock:
		return "Block"
	case KindIdentifier:
		return "Identifier"
	case KindLiteral:
		return "Literal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

const (
	RoleNone Role = iota // The root of a tree, or an untagged child.

	RolePackage       // The package declaration of a compilation unit.
	RoleImport        // An import declaration of a compilation unit.
	RoleMember        // A member of a class-like declaration.
	RoleTypeParameter // A type parameter of a class-like or method declaration.
	RoleBound         // A bound of a type parameter or wildcard.
	RoleReceiver      // The explicit receiver parameter of a method.
	RoleParameter     // A formal parameter of a method.
	RoleReturnType    // The return type of a method.
	RoleBody          // The body of a method.
	RoleStatement     // A statement of a block.
	RoleType          // The type position of a declaration or expression.
	RoleTypeArgument  // A type argument of a parameterized type.
	RoleElementType   // The element type of an array type.
	RoleExpression    // An operand expression.
	RoleInitializer   // The initializer of a variable.
	RoleArgument      // An argument of an invocation or instantiation.
)

// Role identifies the position a node occupies within its parent. Roles are
// carried on edges rather than nodes so that the same kind of node can be
// matched differently depending on where it appears: a Variable child of a
// method is a parameter or a local depending on its role, and only the role
// distinguishes a method's return type from its parameter types.
type Role byte

// String implements [fmt.Stringer] for Role.
func (r Role) String() string {
	switch r {
	case RoleNone:
		return "None"
	case RolePackage:
		return "Package"
	case RoleImport:
		return "Import"
	case RoleMember:
		return "Member"
	case RoleTypeParameter:
		return "TypeParameter"
	case RoleBound:
		return "Bound"
	case RoleReceiver:
		return "Receiver"
	case RoleParameter:
		return "Parameter"
	case RoleReturnType:
		return "ReturnType"
	case RoleBody:
		return "Body"
	case RoleStatement:
		return "Statement"
	case RoleType:
		return "Type"
	case RoleTypeArgument:
		return "TypeArgument"
	case RoleElementType:
		return "ElementType"
	case RoleExpression:
		return "Expression"
	case RoleInitializer:
		return "Initializer"
	case RoleArgument:
		return "Argument"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// roleTotal is the number of distinct Role values; used to size per-role
// counters during traversal.
const roleTotal = int(RoleArgument) + 1
