/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"slices"
	"strings"

	"github.com/voedger/odata/pkg/edm"
	"github.com/voedger/odata/pkg/uritoken"
)

// Parses key predicate after «(» up to and including «)».
//
// Keys referenced by partner navigation constraints may be omitted, as well as keys with default values
func (ep *exprParser) parseKeyPredicate(et *edm.EntityType, partner *edm.NavigationProperty) ([]*UriParameter, error) {
	ep.tok.Next(uritoken.Kind_BWS)
	if ep.tok.Next(uritoken.Kind_Close) {
		return nil, errSemantic(SemanticErrorKey_KeyPredicate, "empty key predicate for «%v»", et.QName())
	}
	refs := et.KeyPropertyRefs()
	if len(refs) == 0 {
		return nil, errSemantic(SemanticErrorKey_KeyPredicate, "entity type «%v» has no key", et.QName())
	}

	referenced := map[string]string{}
	if partner != nil {
		for _, r := range refs {
			if n := partner.ReferencedPropertyName(r.KeyPredicateName()); n != "" {
				referenced[r.KeyPredicateName()] = n
			}
		}
	}

	var (
		params []*UriParameter
		err    error
	)
	switch {
	case ep.compoundKeyFollows():
		params, err = ep.compoundKey(et, refs)
	case len(refs)-len(referenced) == 1:
		params, err = ep.simpleKey(refs, referenced)
	default:
		return nil, errSemantic(SemanticErrorKey_KeyPredicate, "entity type «%v» has compound key, «name=value» pairs expected", et.QName())
	}
	if err != nil {
		return nil, err
	}

	for _, r := range refs {
		name := r.KeyPredicateName()
		if slices.ContainsFunc(params, func(p *UriParameter) bool { return p.Name == name }) {
			continue
		}
		if ref, ok := referenced[name]; ok {
			params = append(params, &UriParameter{Name: name, ReferencedProperty: ref})
			continue
		}
		if prop := r.Property(); prop != nil && prop.DefaultValue() != "" {
			params = append(params, &UriParameter{Name: name, Text: prop.DefaultValue()})
		}
	}
	if len(params) != len(refs) {
		return nil, errSemantic(SemanticErrorKey_KeyPredicate, "key of «%v» expects %d values, found %d", et.QName(), len(refs), len(params))
	}
	return params, nil
}

// Returns is «name=» next
func (ep *exprParser) compoundKeyFollows() bool {
	m := ep.tok.Mark()
	defer ep.tok.Reset(m)
	if !ep.tok.Next(uritoken.Kind_ODataIdentifier) {
		return false
	}
	ep.tok.Next(uritoken.Kind_BWS)
	return ep.tok.Next(uritoken.Kind_Eq)
}

// Single value of the only key which is not referenced by partner
func (ep *exprParser) simpleKey(refs []*edm.KeyPropertyRef, referenced map[string]string) ([]*UriParameter, error) {
	var ref *edm.KeyPropertyRef
	for _, r := range refs {
		if _, ok := referenced[r.KeyPredicateName()]; !ok {
			ref = r
			break
		}
	}
	param, err := ep.keyValue(ref)
	if err != nil {
		return nil, err
	}
	ep.tok.Next(uritoken.Kind_BWS)
	if err := ep.require(uritoken.Kind_Close); err != nil {
		return nil, err
	}
	return []*UriParameter{param}, nil
}

func (ep *exprParser) compoundKey(et *edm.EntityType, refs []*edm.KeyPropertyRef) ([]*UriParameter, error) {
	var params []*UriParameter
	seen := map[string]bool{}
	for {
		ep.tok.Next(uritoken.Kind_BWS)
		if err := ep.require(uritoken.Kind_ODataIdentifier); err != nil {
			return nil, err
		}
		name := ep.tok.Text()
		if seen[name] {
			return nil, errSemantic(SemanticErrorKey_DuplicateParameter, "duplicate key «%s»", name)
		}
		seen[name] = true
		if len(params) >= len(refs) {
			return nil, errSemantic(SemanticErrorKey_KeyPredicate, "too many keys for «%v»", et.QName())
		}
		ref := et.KeyPropertyRef(name)
		if ref == nil {
			return nil, errSemantic(SemanticErrorKey_KeyPredicate, "«%s» is not a key of «%v»", name, et.QName())
		}
		ep.tok.Next(uritoken.Kind_BWS)
		if err := ep.require(uritoken.Kind_Eq); err != nil {
			return nil, err
		}
		ep.tok.Next(uritoken.Kind_BWS)
		param, err := ep.keyValue(ref)
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		ep.tok.Next(uritoken.Kind_BWS)
		if !ep.tok.Next(uritoken.Kind_Comma) {
			break
		}
	}
	if err := ep.require(uritoken.Kind_Close); err != nil {
		return nil, err
	}
	return params, nil
}

// Key value is an alias or a literal of key property type
func (ep *exprParser) keyValue(ref *edm.KeyPropertyRef) (*UriParameter, error) {
	name := ref.KeyPredicateName()
	prop := ref.Property()
	if prop == nil {
		return nil, errSemantic(SemanticErrorKey_KeyPredicate, "key property «%s» is not resolved", ref.Name())
	}
	if ep.tok.Next(uritoken.Kind_ParameterAliasName) {
		alias := ep.tok.Text()
		value, err := ep.resolveAlias(alias, prop.Type(), false)
		if err != nil {
			return nil, err
		}
		if value == nil || isNullLiteral(value) {
			return nil, errSemantic(SemanticErrorKey_AliasValue, "alias «%s» for key «%s» is missing or null", alias, name)
		}
		return &UriParameter{Name: name, Alias: alias, Expression: value}, nil
	}
	text, err := ep.nextKeyValue(prop.Type())
	if err != nil {
		return nil, err
	}
	return &UriParameter{Name: name, Text: text}, nil
}

// Consumes literal of key type t and returns its text
func (ep *exprParser) nextKeyValue(t edm.IType) (string, error) {
	if enum, ok := t.(*edm.EnumType); ok {
		if !ep.tok.Next(uritoken.Kind_EnumValue) {
			return "", ep.errSyntax("value of enumeration «%v» expected", enum.QName())
		}
		lit, err := ep.enumLiteral(ep.tok.Text())
		if err != nil {
			return "", err
		}
		if lit.Typ.QName() != enum.QName() {
			return "", errSemantic(SemanticErrorKey_IncompatibleTypes, "value of enumeration «%v» expected, found «%v»", enum.QName(), lit.Typ.QName())
		}
		return lit.Text, nil
	}

	k := edm.PrimitiveKindOf(t)
	if k.IsGeospatial() {
		for _, lk := range literalKinds {
			if lk.kind == k && ep.tok.Next(lk.token) {
				return ep.tok.Text(), nil
			}
		}
	}
	for _, token := range keyValueTokens[k] {
		if !ep.tok.Next(token) {
			continue
		}
		text := ep.tok.Text()
		if k.IsIntegral() && !integerFits(text, k) {
			return "", errSemantic(SemanticErrorKey_KeyPredicate, "key value «%s» is out of range of «%s»", text, typeName(t))
		}
		return text, nil
	}
	return "", ep.errSyntax("key value of type «%s» expected", typeName(t))
}

// ParseKeyPredicate parses key predicate text following «(», including closing «)».
//
// If partner is not nil, then keys covered by partner referential constraints may be omitted
func (p *Parser) ParseKeyPredicate(text string, et *edm.EntityType, partner *edm.NavigationProperty, aliases Aliases) ([]*UriParameter, error) {
	ep, err := p.newTextParser(text, et, nil, aliases)
	if err != nil {
		return nil, err
	}
	keys, err := ep.parseKeyPredicate(et, partner)
	if err != nil {
		return nil, err
	}
	if err := ep.requireEOF(); err != nil {
		return nil, err
	}
	return keys, nil
}

// ParseNavigationKeyPredicate parses key predicate of collection-valued navigation if «(» follows.
// Returns nil if navigation is single-valued or no key predicate follows
func (p *Parser) ParseNavigationKeyPredicate(tok *uritoken.Tokenizer, nav *edm.NavigationProperty, aliases Aliases) ([]*UriParameter, error) {
	if !nav.IsCollection() || !tok.Next(uritoken.Kind_Open) {
		return nil, nil
	}
	et := nav.Type()
	if et == nil {
		return nil, errSemantic(SemanticErrorKey_UnknownType, "target type «%v» of navigation «%s» is not found", nav.TypeName(), nav.Name())
	}
	return p.newExprParser(tok, et, nil, aliases).parseKeyPredicate(et, nav.Partner())
}

// ParseKeyAsSegment parses key value written as path segment, e.g. «/Products/5».
//
// Entity type must have a single key. Raw string values are quoted
func (p *Parser) ParseKeyAsSegment(segment string, et *edm.EntityType) (*UriParameter, error) {
	refs := et.KeyPropertyRefs()
	if len(refs) != 1 {
		return nil, errSemantic(SemanticErrorKey_KeyPredicate, "key as segment requires single key, «%v» has %d", et.QName(), len(refs))
	}
	prop := refs[0].Property()
	if prop == nil {
		return nil, errSemantic(SemanticErrorKey_KeyPredicate, "key property «%s» is not resolved", refs[0].Name())
	}
	text := segment
	if isPrimitive(prop.Type(), edm.PrimitiveKind_String) && !strings.HasPrefix(segment, "'") {
		text = "'" + strings.ReplaceAll(segment, "'", "''") + "'"
	}
	ep, err := p.newTextParser(text, et, nil, nil)
	if err != nil {
		return nil, err
	}
	value, err := ep.nextKeyValue(prop.Type())
	if err != nil {
		return nil, err
	}
	if err := ep.requireEOF(); err != nil {
		return nil, err
	}
	return &UriParameter{Name: refs[0].KeyPredicateName(), Text: value}, nil
}
