/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"maps"

	"github.com/voedger/odata/pkg/edm"
	"github.com/voedger/odata/pkg/uritoken"
)

// Resolves alias value against target type. Returns nil if alias is not defined.
//
// Aliases may refer to other aliases, cycles are reported as semantic errors.
// Values for collection or structured targets may be JSON
func (ep *exprParser) resolveAlias(name string, target edm.IType, collection bool) (Expression, error) {
	if ep.resolving[name] {
		return nil, errSemantic(SemanticErrorKey_AliasValue, "alias «%s» refers to itself", name)
	}
	text, ok := ep.aliases[name]
	if !ok {
		return nil, nil
	}

	tok, err := uritoken.New(text)
	if err != nil {
		return nil, lexError(err)
	}
	aliases := maps.Clone(ep.aliases)
	delete(aliases, name)
	resolving := maps.Clone(ep.resolving)
	resolving[name] = true
	inner := &exprParser{
		Parser:     ep.Parser,
		tok:        tok,
		referenced: ep.referenced,
		crossjoin:  ep.crossjoin,
		aliases:    aliases,
		resolving:  resolving,
		lambdas:    ep.lambdas,
		depth:      ep.depth,
	}

	tok.Next(uritoken.Kind_BWS)
	var value Expression
	if collection || (target != nil && target.Kind().IsStructured()) {
		if tok.Next(uritoken.Kind_JSONArrayOrObject) {
			value = &Literal{Text: tok.Text()}
		}
	}
	if value == nil {
		if value, err = inner.parseExpression(); err != nil {
			return nil, err
		}
	}
	tok.Next(uritoken.Kind_BWS)
	if !tok.Next(uritoken.Kind_EOF) {
		return nil, inner.errSyntax("illegal value of alias «%s»", name)
	}
	if !isNullLiteral(value) && !valueCompatible(target, value) {
		return nil, errSemantic(SemanticErrorKey_AliasValue, "value of alias «%s» is not compatible to «%s»", name, typeName(target))
	}
	return value, nil
}

// Integer literal is compatible with integral target if it fits into it
func valueCompatible(target edm.IType, value Expression) bool {
	if lit, ok := value.(*Literal); ok {
		tk := edm.PrimitiveKindOf(target)
		if tk.IsIntegral() && edm.PrimitiveKindOf(lit.Typ).IsIntegral() {
			return integerFits(lit.Text, tk)
		}
	}
	return isCompatible(target, value.Type())
}
