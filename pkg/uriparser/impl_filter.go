/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/odata/pkg/edm"
	"github.com/voedger/odata/pkg/uritoken"
)

// ParseExpression parses common expression from tokenizer position.
// Tokenizer is left after the expression
func (p *Parser) ParseExpression(tok *uritoken.Tokenizer, referenced edm.IType, crossjoin []string, aliases Aliases) (Expression, error) {
	return p.newExprParser(tok, referenced, crossjoin, aliases).parseExpression()
}

// ParseFilter parses $filter. Expression must be a single boolean value
func (p *Parser) ParseFilter(text string, referenced edm.IType, crossjoin []string, aliases Aliases) (*FilterOption, error) {
	ep, err := p.newTextParser(text, referenced, crossjoin, aliases)
	if err != nil {
		return nil, err
	}
	ep.tok.Next(uritoken.Kind_BWS)
	e, err := ep.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := ep.requireEOF(); err != nil {
		return nil, err
	}
	opt, err := filterOf(e)
	if err != nil {
		return nil, err
	}
	if logger.IsTrace() {
		logger.Trace("$filter:", Dump(opt.Expression))
	}
	return opt, nil
}

func (ep *exprParser) parseFilter() (*FilterOption, error) {
	ep.tok.Next(uritoken.Kind_BWS)
	e, err := ep.parseExpression()
	if err != nil {
		return nil, err
	}
	return filterOf(e)
}

func filterOf(e Expression) (*FilterOption, error) {
	if isCollection(e) {
		return nil, errSemantic(SemanticErrorKey_CollectionNotAllowed, "$filter expression must be single-valued")
	}
	if t := e.Type(); t != nil && !isPrimitive(t, edm.PrimitiveKind_Boolean) {
		return nil, errSemantic(SemanticErrorKey_IncompatibleTypes, "$filter expression must be boolean, found «%s»", typeName(t))
	}
	return &FilterOption{Expression: e}, nil
}
