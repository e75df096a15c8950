/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

// Key or function parameter.
//
// Value is exactly one of:
//   - Text: literal as written, «null» for null;
//   - Alias: parameter alias name, Expression then holds resolved alias value or nil if alias is not defined;
//   - Expression: sub-expression;
//   - ReferencedProperty: key value is taken from principal property through referential constraint
type UriParameter struct {
	Name               string
	Text               string
	Alias              string
	Expression         Expression
	ReferencedProperty string
}
