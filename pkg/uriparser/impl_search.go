/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"fmt"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/odata/pkg/uritoken"
)

// ParseSearch parses $search expression.
//
// Operators by precedence from highest: NOT, AND (may be implicit), OR.
// Terms are words and phrases, returned as untyped literals
func (p *Parser) ParseSearch(text string) (*SearchOption, error) {
	tokens, err := uritoken.Search(text)
	if err != nil {
		return nil, lexError(err)
	}
	sp := &searchParser{input: text, tokens: tokens, maxDepth: p.cfg.MaxDepth}
	if len(tokens) == 0 {
		return nil, sp.errSyntax("search expression expected")
	}
	e, err := sp.parseOr(0)
	if err != nil {
		return nil, err
	}
	if sp.pos < len(sp.tokens) {
		return nil, sp.errSyntax("unexpected search token")
	}
	opt := &SearchOption{Expression: e}
	if logger.IsTrace() {
		logger.Trace("$search:", Dump(e))
	}
	return opt, nil
}

func (sp *searchParser) peek() uritoken.SearchKind {
	if sp.pos < len(sp.tokens) {
		return sp.tokens[sp.pos].Kind
	}
	return uritoken.SearchKind_null
}

func (sp *searchParser) next(k uritoken.SearchKind) (uritoken.SearchToken, bool) {
	if sp.peek() != k {
		return uritoken.SearchToken{}, false
	}
	sp.pos++
	return sp.tokens[sp.pos-1], true
}

func (sp *searchParser) errSyntax(msg string, args ...any) error {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	pos := len(sp.input)
	if sp.pos < len(sp.tokens) {
		pos = sp.tokens[sp.pos].Position
	}
	return &SyntaxError{Message: msg, Text: sp.input[pos:], Position: pos}
}

func (sp *searchParser) parseOr(depth int) (Expression, error) {
	if depth > sp.maxDepth {
		return nil, sp.errSyntax("search expression nested too deeply")
	}
	left, err := sp.parseAnd(depth)
	if err != nil {
		return nil, err
	}
	for {
		if _, ok := sp.next(uritoken.SearchKind_Or); !ok {
			return left, nil
		}
		right, err := sp.parseAnd(depth)
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Operator: BinaryOperator_Or, Right: right}
	}
}

func (sp *searchParser) parseAnd(depth int) (Expression, error) {
	left, err := sp.parseNot(depth)
	if err != nil {
		return nil, err
	}
	for {
		_, explicit := sp.next(uritoken.SearchKind_And)
		switch sp.peek() {
		case uritoken.SearchKind_Word, uritoken.SearchKind_Phrase, uritoken.SearchKind_Open, uritoken.SearchKind_Not:
		default:
			if explicit {
				return nil, sp.errSyntax("search term expected after AND")
			}
			return left, nil
		}
		right, err := sp.parseNot(depth)
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Operator: BinaryOperator_And, Right: right}
	}
}

func (sp *searchParser) parseNot(depth int) (Expression, error) {
	if _, ok := sp.next(uritoken.SearchKind_Not); ok {
		operand, err := sp.parsePrimary(depth)
		if err != nil {
			return nil, err
		}
		return &Unary{Operator: UnaryOperator_Not, Operand: operand}, nil
	}
	return sp.parsePrimary(depth)
}

func (sp *searchParser) parsePrimary(depth int) (Expression, error) {
	if _, ok := sp.next(uritoken.SearchKind_Open); ok {
		e, err := sp.parseOr(depth + 1)
		if err != nil {
			return nil, err
		}
		if _, ok := sp.next(uritoken.SearchKind_Close); !ok {
			return nil, sp.errSyntax("expected %v", uritoken.SearchKind_Close)
		}
		return e, nil
	}
	if t, ok := sp.next(uritoken.SearchKind_Word); ok {
		return &Literal{Text: t.Text}, nil
	}
	if t, ok := sp.next(uritoken.SearchKind_Phrase); ok {
		return &Literal{Text: t.Text}, nil
	}
	if sp.pos >= len(sp.tokens) {
		return nil, sp.errSyntax("unexpected end of search expression")
	}
	return nil, sp.errSyntax("search term expected")
}

// Returns length of $search value inside expand options: up to «;» or unbalanced «)» outside of phrases
func searchExtent(s string) int {
	depth, quoted, escaped := 0, false, false
	for i, r := range s {
		switch {
		case escaped:
			escaped = false
		case quoted && r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
		case quoted:
		case r == '(':
			depth++
		case r == ')':
			if depth == 0 {
				return i
			}
			depth--
		case r == ';':
			if depth == 0 {
				return i
			}
		}
	}
	return len(s)
}
