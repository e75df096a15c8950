/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/voedger/odata/pkg/edm"
	"github.com/voedger/odata/pkg/uritoken"
)

// Binary operator levels, lowest precedence first
var binaryLevels = [][]operatorToken{
	orOperators,
	andOperators,
	equalityOperators,
	relationalOperators,
	additiveOperators,
	multiplicativeOperators,
}

const relationalLevel = 3

func (p *Parser) newExprParser(tok *uritoken.Tokenizer, referenced edm.IType, crossjoin []string, aliases Aliases) *exprParser {
	return &exprParser{
		Parser:     p,
		tok:        tok,
		referenced: typeOrNil(referenced),
		crossjoin:  crossjoin,
		aliases:    aliases,
		resolving:  map[string]bool{},
	}
}

// Returns parser over text
func (p *Parser) newTextParser(text string, referenced edm.IType, crossjoin []string, aliases Aliases) (*exprParser, error) {
	tok, err := uritoken.New(text)
	if err != nil {
		return nil, lexError(err)
	}
	return p.newExprParser(tok, referenced, crossjoin, aliases), nil
}

func (ep *exprParser) require(k uritoken.Kind) error {
	if ep.tok.Next(k) {
		return nil
	}
	return ep.errSyntax("expected %v", k)
}

// Requires optional whitespace and end of input
func (ep *exprParser) requireEOF() error {
	ep.tok.Next(uritoken.Kind_BWS)
	if ep.tok.Next(uritoken.Kind_EOF) {
		return nil
	}
	return ep.errSyntax("unexpected input")
}

func (ep *exprParser) errSyntax(msg string, args ...any) error {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &SyntaxError{Message: msg, Text: ep.tok.Remaining(), Position: ep.tok.Offset()}
}

func (ep *exprParser) parseExpression() (Expression, error) {
	if ep.depth++; ep.depth > ep.cfg.MaxDepth {
		return nil, ep.errSyntax("expression nested too deeply")
	}
	defer func() { ep.depth-- }()
	return ep.parseLevel(0)
}

func (ep *exprParser) parseLevel(level int) (Expression, error) {
	if level == len(binaryLevels) {
		return ep.parseUnary()
	}
	// isof is a terminal of relational level
	if level == relationalLevel && ep.tok.Next(uritoken.Kind_IsOfMethod) {
		return ep.parseIsOfOrCast(MethodKind_IsOf)
	}
	left, err := ep.parseLevel(level + 1)
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ep.nextOperator(binaryLevels[level])
		if !ok {
			return left, nil
		}
		right, err := ep.parseLevel(level + 1)
		if err != nil {
			return nil, err
		}
		if left, err = ep.binary(left, op, right); err != nil {
			return nil, err
		}
	}
}

func (ep *exprParser) nextOperator(ops []operatorToken) (BinaryOperator, bool) {
	for _, o := range ops {
		if ep.tok.Next(o.kind) {
			return o.op, true
		}
	}
	return BinaryOperator_null, false
}

func (ep *exprParser) parseUnary() (Expression, error) {
	switch {
	case ep.tok.Next(uritoken.Kind_MinusOperator):
		operand, err := ep.parsePrimary()
		if err != nil {
			return nil, err
		}
		if err := ep.checkNoCollection(operand); err != nil {
			return nil, err
		}
		if !isPrimitive(operand.Type(), edm.PrimitiveKind_Duration) {
			if err := ep.checkNumeric(operand); err != nil {
				return nil, err
			}
		}
		return &Unary{Operator: UnaryOperator_Minus, Operand: operand, Typ: operand.Type()}, nil
	case ep.tok.Next(uritoken.Kind_NotOperator):
		operand, err := ep.parsePrimary()
		if err != nil {
			return nil, err
		}
		if err := ep.checkBoolean(operand); err != nil {
			return nil, err
		}
		return &Unary{Operator: UnaryOperator_Not, Operand: operand, Typ: booleanType()}, nil
	case ep.tok.Next(uritoken.Kind_CastMethod):
		return ep.parseIsOfOrCast(MethodKind_Cast)
	}
	return ep.parsePrimary()
}

// Value optionally followed by «has» enum flag test
func (ep *exprParser) parsePrimary() (Expression, error) {
	left, err := ep.parseValue()
	if err != nil {
		return nil, err
	}
	enum, ok := left.Type().(*edm.EnumType)
	if !ok || !ep.tok.Next(uritoken.Kind_HasOperator) {
		return left, nil
	}
	if err := ep.checkNoCollection(left); err != nil {
		return nil, err
	}
	if !ep.tok.Next(uritoken.Kind_EnumValue) {
		return nil, ep.errSyntax("enumeration value expected")
	}
	right, err := ep.enumLiteral(ep.tok.Text())
	if err != nil {
		return nil, err
	}
	if right.Typ.QName() != enum.QName() {
		return nil, errSemantic(SemanticErrorKey_IncompatibleTypes, "«has» operands have different enumeration types «%v» and «%v»", enum.QName(), right.Typ.QName())
	}
	return &Binary{Left: left, Operator: BinaryOperator_Has, Right: right, Typ: booleanType()}, nil
}

func (ep *exprParser) parseValue() (Expression, error) {
	tok := ep.tok
	switch {
	case tok.Next(uritoken.Kind_Open):
		tok.Next(uritoken.Kind_BWS)
		e, err := ep.parseExpression()
		if err != nil {
			return nil, err
		}
		tok.Next(uritoken.Kind_BWS)
		if err := ep.require(uritoken.Kind_Close); err != nil {
			return nil, err
		}
		return e, nil
	case tok.Next(uritoken.Kind_ParameterAliasName):
		name := tok.Text()
		value, err := ep.resolveAlias(name, nil, false)
		if err != nil {
			return nil, err
		}
		return &Alias{Name: name, Value: value}, nil
	case tok.Next(uritoken.Kind_JSONArrayOrObject):
		// JSON values are consumed by function parameters and aliases of structured or collection type
		return nil, errSemantic(SemanticErrorKey_IncompatibleTypes, "JSON value «%s» is not allowed as operand", tok.Text())
	case tok.Next(uritoken.Kind_Root):
		return ep.parseRoot()
	case tok.Next(uritoken.Kind_It):
		return ep.parseIt()
	}

	if lit, ok, err := ep.nextLiteral(); ok || err != nil {
		return lit, err
	}

	for _, k := range methodTokenOrder {
		if tok.Next(k) {
			return ep.parseMethod(methodTokens[k])
		}
	}

	switch {
	case tok.Next(uritoken.Kind_QualifiedName):
		return ep.parseFirstQualifiedName()
	case tok.Next(uritoken.Kind_ODataIdentifier):
		return ep.parseFirstIdentifier()
	}
	if tok.Next(uritoken.Kind_EOF) {
		return nil, ep.errSyntax("unexpected end of input")
	}
	return nil, ep.errSyntax("unexpected token")
}

// Returns primitive, enumeration or null literal if next token is a literal
func (ep *exprParser) nextLiteral() (*Literal, bool, error) {
	tok := ep.tok
	if tok.Next(uritoken.Kind_Null) {
		return &Literal{Text: tok.Text()}, true, nil
	}
	for _, lk := range literalKinds {
		if !tok.Next(lk.token) {
			continue
		}
		if lk.kind == edm.PrimitiveKind_null {
			return &Literal{Text: tok.Text(), Typ: integerType(tok.Text())}, true, nil
		}
		return &Literal{Text: tok.Text(), Typ: edm.PrimitiveTypeOf(lk.kind)}, true, nil
	}
	if tok.Next(uritoken.Kind_EnumValue) {
		lit, err := ep.enumLiteral(tok.Text())
		return lit, true, err
	}
	return nil, false, nil
}

// Returns the smallest integer type which holds literal value.
// Values out of Int64 range are Decimal
func integerType(text string) edm.IType {
	v, err := strconv.ParseInt(text, 10, 64)
	switch {
	case err != nil:
		return edm.PrimitiveTypeOf(edm.PrimitiveKind_Decimal)
	case v >= -128 && v <= 127:
		return edm.PrimitiveTypeOf(edm.PrimitiveKind_SByte)
	case v >= 0 && v <= 255:
		return edm.PrimitiveTypeOf(edm.PrimitiveKind_Byte)
	case v >= -32768 && v <= 32767:
		return edm.PrimitiveTypeOf(edm.PrimitiveKind_Int16)
	case v >= -2147483648 && v <= 2147483647:
		return edm.PrimitiveTypeOf(edm.PrimitiveKind_Int32)
	}
	return edm.PrimitiveTypeOf(edm.PrimitiveKind_Int64)
}

// Parses «NS.Enum'Member1,Member2'» literal. Values may be member names or integers
func (ep *exprParser) enumLiteral(text string) (*Literal, error) {
	i := strings.IndexByte(text, '\'')
	name, err := edm.ParseQName(text[:i])
	if err != nil {
		return nil, errSemantic(SemanticErrorKey_UnknownType, "enumeration literal «%s» has invalid type name", text)
	}
	enum := ep.cat.EnumType(name)
	if enum == nil {
		return nil, errSemantic(SemanticErrorKey_UnknownType, "enumeration type «%v» is not found", name)
	}
	values := strings.Split(text[i+1:len(text)-1], ",")
	if len(values) > 1 && !enum.IsFlags() {
		return nil, errSemantic(SemanticErrorKey_IncompatibleTypes, "enumeration «%v» is not flags, multiple values are not allowed", name)
	}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if enum.Member(v) != nil {
			continue
		}
		if _, err := strconv.ParseInt(v, 10, 64); err == nil {
			continue
		}
		return nil, errSemantic(SemanticErrorKey_InvalidParameterValue, "«%s» is not a member of enumeration «%v»", v, name)
	}
	return &Literal{Text: text, Typ: enum}, nil
}

func (ep *exprParser) parseMethod(kind MethodKind) (Expression, error) {
	var params []Expression
	ep.tok.Next(uritoken.Kind_BWS)
	if !ep.tok.Next(uritoken.Kind_Close) {
		for {
			ep.tok.Next(uritoken.Kind_BWS)
			e, err := ep.parseExpression()
			if err != nil {
				return nil, err
			}
			params = append(params, e)
			ep.tok.Next(uritoken.Kind_BWS)
			if !ep.tok.Next(uritoken.Kind_Comma) {
				break
			}
		}
		if err := ep.require(uritoken.Kind_Close); err != nil {
			return nil, err
		}
	}
	typ, err := ep.checkMethod(kind, params)
	if err != nil {
		return nil, err
	}
	return &Method{Kind: kind, Parameters: params, Typ: typ}, nil
}

// Parses cast or isof arguments: optional expression and type literal
func (ep *exprParser) parseIsOfOrCast(kind MethodKind) (Expression, error) {
	ep.tok.Next(uritoken.Kind_BWS)
	first, err := ep.parseExpression()
	if err != nil {
		return nil, err
	}
	params := []Expression{first}
	lit, isLiteral := first.(*TypeLiteral)
	if !isLiteral {
		ep.tok.Next(uritoken.Kind_BWS)
		if err := ep.require(uritoken.Kind_Comma); err != nil {
			return nil, err
		}
		ep.tok.Next(uritoken.Kind_BWS)
		second, err := ep.parseExpression()
		if err != nil {
			return nil, err
		}
		if lit, isLiteral = second.(*TypeLiteral); !isLiteral {
			return nil, errSemantic(SemanticErrorKey_IncompatibleTypes, "type literal expected as the last argument of %v", kind)
		}
		params = append(params, second)
	}
	ep.tok.Next(uritoken.Kind_BWS)
	if err := ep.require(uritoken.Kind_Close); err != nil {
		return nil, err
	}
	if kind == MethodKind_IsOf {
		return &Method{Kind: kind, Parameters: params, Typ: booleanType()}, nil
	}
	operand := ep.referenced
	if len(params) > 1 {
		operand = first.Type()
	}
	if !castable(operand, lit.Typ) {
		return nil, errSemantic(SemanticErrorKey_IncompatibleTypes, "«%v» can not be cast to «%v»", typeName(operand), typeName(lit.Typ))
	}
	return &Method{Kind: kind, Parameters: params, Typ: lit.Typ}, nil
}

// Structured types are castable along inheritance chain only
func castable(from, to edm.IType) bool {
	if from == nil || to == nil {
		return true
	}
	if !from.Kind().IsStructured() && !to.Kind().IsStructured() {
		return true
	}
	return edm.CompatibleTo(from, to) || edm.CompatibleTo(to, from)
}
