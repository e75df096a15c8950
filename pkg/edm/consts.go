/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edm

// Namespace of built-in primitive types
const EdmNamespace = "Edm"

const (
	qNameDelimiter = "."

	overloadKeySeparator      = "|"
	overloadKeyNullBinding    = "-"
	overloadKeyParamSeparator = ","
)

// Inheritance deeper than this is treated as a cycle
const maxInheritanceDepth = 256

// Underlying type of enum types declared without one
const DefaultEnumUnderlyingKind = PrimitiveKind_Int32
