/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edm

import "strconv"

// Kind of EDM type
type TypeKind uint8

const (
	TypeKind_null TypeKind = iota

	// Built-in primitive types from «Edm» namespace
	TypeKind_Primitive

	TypeKind_Enum

	// Named primitive type with facets
	TypeKind_TypeDefinition

	TypeKind_Complex

	// Complex type with key
	TypeKind_Entity

	// Vocabulary term
	TypeKind_Term

	TypeKind_count
)

var typeKindNames = [TypeKind_count]string{
	TypeKind_null:           "TypeKind_null",
	TypeKind_Primitive:      "TypeKind_Primitive",
	TypeKind_Enum:           "TypeKind_Enum",
	TypeKind_TypeDefinition: "TypeKind_TypeDefinition",
	TypeKind_Complex:        "TypeKind_Complex",
	TypeKind_Entity:         "TypeKind_Entity",
	TypeKind_Term:           "TypeKind_Term",
}

func (k TypeKind) String() string {
	if k < TypeKind_count {
		return typeKindNames[k]
	}
	return "TypeKind(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// Returns is kind structured (complex or entity)
func (k TypeKind) IsStructured() bool {
	return k == TypeKind_Complex || k == TypeKind_Entity
}

// Kind of operation
type OperationKind uint8

const (
	OperationKind_null OperationKind = iota
	OperationKind_Action
	OperationKind_Function
	OperationKind_count
)

func (k OperationKind) String() string {
	switch k {
	case OperationKind_Action:
		return "OperationKind_Action"
	case OperationKind_Function:
		return "OperationKind_Function"
	case OperationKind_null:
		return "OperationKind_null"
	}
	return "OperationKind(" + strconv.FormatUint(uint64(k), 10) + ")"
}
