/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import "strconv"

func (op BinaryOperator) String() string {
	if op < BinaryOperator_count {
		return binaryOperatorNames[op]
	}
	return "BinaryOperator(" + strconv.FormatUint(uint64(op), 10) + ")"
}

func (op UnaryOperator) String() string {
	if op < UnaryOperator_count {
		return unaryOperatorNames[op]
	}
	return "UnaryOperator(" + strconv.FormatUint(uint64(op), 10) + ")"
}

// Returns method name as used in expressions, e.g. «geo.distance»
func (k MethodKind) String() string {
	if k < MethodKind_count {
		return methodNames[k]
	}
	return "MethodKind(" + strconv.FormatUint(uint64(k), 10) + ")"
}

func (k ResourceKind) String() string {
	if k < ResourceKind_count {
		return resourceKindNames[k]
	}
	return "ResourceKind(" + strconv.FormatUint(uint64(k), 10) + ")"
}
