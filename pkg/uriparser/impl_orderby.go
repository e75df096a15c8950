/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"slices"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/odata/pkg/edm"
	"github.com/voedger/odata/pkg/uritoken"
)

// ParseOrderBy parses $orderby: comma separated expressions with optional «asc» or «desc».
//
// Items must be single-valued sortable primitives or enumerations
func (p *Parser) ParseOrderBy(text string, referenced edm.IType, crossjoin []string, aliases Aliases) (*OrderByOption, error) {
	ep, err := p.newTextParser(text, referenced, crossjoin, aliases)
	if err != nil {
		return nil, err
	}
	opt, err := ep.parseOrderBy()
	if err != nil {
		return nil, err
	}
	if err := ep.requireEOF(); err != nil {
		return nil, err
	}
	if logger.IsTrace() {
		logger.Trace("$orderby:", DumpOrderBy(opt))
	}
	return opt, nil
}

func (ep *exprParser) parseOrderBy() (*OrderByOption, error) {
	opt := &OrderByOption{}
	for {
		ep.tok.Next(uritoken.Kind_BWS)
		e, err := ep.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := checkSortable(e); err != nil {
			return nil, err
		}
		item := &OrderByItem{Expression: e}
		switch {
		case ep.tok.Next(uritoken.Kind_DescSuffix):
			item.Descending = true
		case ep.tok.Next(uritoken.Kind_AscSuffix):
		}
		opt.Items = append(opt.Items, item)
		ep.tok.Next(uritoken.Kind_BWS)
		if !ep.tok.Next(uritoken.Kind_Comma) {
			return opt, nil
		}
	}
}

func checkSortable(e Expression) error {
	if isCollection(e) {
		return errQueryOption(optionOrderBy, MsgNotSortableCollection)
	}
	t := e.Type()
	if t == nil {
		return nil
	}
	if _, ok := t.(*edm.EnumType); ok {
		return nil
	}
	if !slices.Contains(sortableKinds, edm.PrimitiveKindOf(t)) {
		return errQueryOption(optionOrderBy, MsgNotSortableType, typeName(t))
	}
	return nil
}
