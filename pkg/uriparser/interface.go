/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import "github.com/voedger/odata/pkg/edm"

// Node of parsed expression tree.
//
// Implemented by *Literal, *Member, *Binary, *Unary, *Method, *Alias and *TypeLiteral.
type Expression interface {
	// Returns result type of expression. Returns nil if type is unknown:
	// null and JSON literals, undefined aliases, search terms, invalid cast literals.
	Type() edm.IType
	isExpression()
}

// Segment of resource path.
//
// Each implementation computes own type and collection-ness.
type UriResource interface {
	Kind() ResourceKind
	// Returns type of segment value. For collections returns type of collection item
	Type() edm.IType
	IsCollection() bool
	// Returns segment text, e.g. entity set or property name
	Segment() string
	isResource()
}
