/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import "github.com/voedger/odata/pkg/edm"

// Literal value. Text is the literal as written, including quotes and type prefixes
type Literal struct {
	Text string
	Typ  edm.IType
}

func (e *Literal) Type() edm.IType { return e.Typ }

// Member path, e.g. «Customer/Address/City».
//
// StartTypeFilter is set if path starts with a type cast of the referenced type
type Member struct {
	Resources       []UriResource
	StartTypeFilter edm.IType
}

// Returns type of the last path segment, or start type filter for empty path
func (e *Member) Type() edm.IType {
	if n := len(e.Resources); n > 0 {
		return e.Resources[n-1].Type()
	}
	return e.StartTypeFilter
}

func (e *Member) IsCollection() bool {
	if n := len(e.Resources); n > 0 {
		return e.Resources[n-1].IsCollection()
	}
	return false
}

type Binary struct {
	Left     Expression
	Operator BinaryOperator
	Right    Expression
	Typ      edm.IType
}

func (e *Binary) Type() edm.IType { return e.Typ }

type Unary struct {
	Operator UnaryOperator
	Operand  Expression
	Typ      edm.IType
}

func (e *Unary) Type() edm.IType { return e.Typ }

// Built-in method call
type Method struct {
	Kind       MethodKind
	Parameters []Expression
	Typ        edm.IType
}

func (e *Method) Type() edm.IType { return e.Typ }

// Parameter alias reference. Value is nil if alias is not defined
type Alias struct {
	Name  string
	Value Expression
}

func (e *Alias) Type() edm.IType {
	if e.Value == nil {
		return nil
	}
	return e.Value.Type()
}

// Type name used as cast or isof argument. Typ is nil for unknown «Edm» types
type TypeLiteral struct {
	Typ edm.IType
}

func (e *TypeLiteral) Type() edm.IType { return e.Typ }

func (*Literal) isExpression()     {}
func (*Member) isExpression()      {}
func (*Binary) isExpression()      {}
func (*Unary) isExpression()       {}
func (*Method) isExpression()      {}
func (*Alias) isExpression()       {}
func (*TypeLiteral) isExpression() {}

// Returns is expression collection-valued
func isCollection(e Expression) bool {
	switch e := e.(type) {
	case *Member:
		return e.IsCollection()
	case *Alias:
		return e.Value != nil && isCollection(e.Value)
	}
	return false
}
