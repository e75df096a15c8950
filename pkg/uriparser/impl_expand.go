/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"strings"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/odata/pkg/edm"
	"github.com/voedger/odata/pkg/uritoken"
)

// ParseExpand parses $expand items with nested options.
//
// Sibling items must have different paths. Options which make sense for collections only
// are rejected for single-valued navigations
func (p *Parser) ParseExpand(text string, referenced edm.IType, aliases Aliases) (*ExpandOption, error) {
	ep, err := p.newTextParser(text, referenced, nil, aliases)
	if err != nil {
		return nil, err
	}
	opt, err := ep.parseExpand()
	if err != nil {
		return nil, err
	}
	if err := ep.requireEOF(); err != nil {
		return nil, err
	}
	if logger.IsTrace() {
		logger.Trace("$expand:", DumpExpand(opt))
	}
	return opt, nil
}

// Returns parser which shares tokenizer and aliases but resolves members against referenced
func (ep *exprParser) nested(referenced edm.IType) *exprParser {
	return &exprParser{
		Parser:     ep.Parser,
		tok:        ep.tok,
		referenced: typeOrNil(referenced),
		aliases:    ep.aliases,
		resolving:  ep.resolving,
		depth:      ep.depth,
	}
}

func (ep *exprParser) parseExpand() (*ExpandOption, error) {
	if ep.depth++; ep.depth > ep.cfg.MaxDepth {
		return nil, ep.errSyntax("expand nested too deeply")
	}
	defer func() { ep.depth-- }()

	opt := &ExpandOption{}
	paths := map[string]bool{}
	for {
		ep.tok.Next(uritoken.Kind_BWS)
		item, err := ep.parseExpandItem()
		if err != nil {
			return nil, err
		}
		path := expandPath(item)
		if paths[path] {
			return nil, ep.errSyntax("duplicate expand path «%s»", path)
		}
		paths[path] = true
		opt.Items = append(opt.Items, item)
		ep.tok.Next(uritoken.Kind_BWS)
		if !ep.tok.Next(uritoken.Kind_Comma) {
			return opt, nil
		}
	}
}

// Path of item which identifies it among siblings
func expandPath(item *ExpandItem) string {
	if item.Star {
		return "*"
	}
	segments := make([]string, 0, len(item.Resources)+1)
	if item.TypeFilter != nil {
		segments = append(segments, item.TypeFilter.QName().String())
	}
	for _, r := range item.Resources {
		segments = append(segments, r.Segment())
	}
	return strings.Join(segments, "/")
}

func (ep *exprParser) parseExpandItem() (*ExpandItem, error) {
	item := &ExpandItem{}
	if ep.tok.Next(uritoken.Kind_Star) {
		item.Star = true
		switch {
		case ep.tok.Next(uritoken.Kind_Slash):
			if err := ep.require(uritoken.Kind_Ref); err != nil {
				return nil, err
			}
			item.Ref = true
			if err := ep.cfg.Features.Check(Feature_ExpandRef, "«*/$ref»"); err != nil {
				return nil, err
			}
		case ep.tok.Next(uritoken.Kind_Open):
			ep.tok.Next(uritoken.Kind_BWS)
			if err := ep.require(uritoken.Kind_Levels); err != nil {
				return nil, err
			}
			if err := ep.parseLevels(item, nil); err != nil {
				return nil, err
			}
			ep.tok.Next(uritoken.Kind_BWS)
			if err := ep.require(uritoken.Kind_Close); err != nil {
				return nil, err
			}
		}
		return item, nil
	}

	mb := &memberBuilder{start: ep.referenced}
	if ep.tok.Next(uritoken.Kind_QualifiedName) {
		name, err := edm.ParseQName(ep.tok.Text())
		if err != nil {
			return nil, errSemantic(SemanticErrorKey_UnknownType, "%v", err)
		}
		st := ep.structuredType(name)
		if st == nil {
			return nil, errSemantic(SemanticErrorKey_UnknownType, "structured type «%v» is not found", name)
		}
		if ep.referenced != nil && !edm.CompatibleTo(st, ep.referenced) {
			return nil, errSemantic(SemanticErrorKey_IncompatibleTypes, "type «%v» is not compatible to «%v»", name, ep.referenced.QName())
		}
		if err := ep.cfg.Features.Check(Feature_TypeCast, "type cast to «"+name.String()+"»"); err != nil {
			return nil, err
		}
		item.TypeFilter, mb.start = st, st
		if err := ep.require(uritoken.Kind_Slash); err != nil {
			return nil, err
		}
	}
	if err := ep.require(uritoken.Kind_ODataIdentifier); err != nil {
		return nil, err
	}
	nav, err := ep.expandNavigation(mb)
	if err != nil {
		return nil, err
	}

	if ep.tok.Next(uritoken.Kind_Slash) {
		if ep.tok.Next(uritoken.Kind_QualifiedName) {
			name, err := edm.ParseQName(ep.tok.Text())
			if err != nil {
				return nil, errSemantic(SemanticErrorKey_UnknownType, "%v", err)
			}
			et := ep.cat.EntityType(name)
			if et == nil {
				return nil, errSemantic(SemanticErrorKey_UnknownType, "entity type «%v» is not found", name)
			}
			if _, err := ep.typeCast(mb, et); err != nil {
				return nil, err
			}
			if ep.tok.Next(uritoken.Kind_Slash) {
				if err := ep.expandSuffix(item); err != nil {
					return nil, err
				}
			}
		} else if err := ep.expandSuffix(item); err != nil {
			return nil, err
		}
	}
	item.Resources = mb.resources

	if ep.tok.Next(uritoken.Kind_Open) {
		if err := ep.parseExpandOptions(item, nav, mb.lastType()); err != nil {
			return nil, err
		}
	}
	return item, nil
}

// «$ref» or «$count» after «/»
func (ep *exprParser) expandSuffix(item *ExpandItem) error {
	switch {
	case ep.tok.Next(uritoken.Kind_Ref):
		item.Ref = true
		return ep.cfg.Features.Check(Feature_ExpandRef, "«$ref» in expand")
	case ep.tok.Next(uritoken.Kind_Count):
		item.CountPath = true
		return nil
	}
	return ep.errSyntax("$ref, $count or type cast expected")
}

// Walks complex properties with optional casts up to navigation property. Property name is the current token
func (ep *exprParser) expandNavigation(mb *memberBuilder) (*edm.NavigationProperty, error) {
	for {
		name := ep.tok.Text()
		t := mb.lastType()
		st := structuredOf(t)
		if st == nil {
			return nil, errSemantic(SemanticErrorKey_UnknownProperty, "property «%s» must follow a structured type", name)
		}
		if nav := st.NavigationProperty(name); nav != nil {
			if nav.Type() == nil {
				return nil, errSemantic(SemanticErrorKey_UnknownType, "target type «%v» of navigation «%s» is not found", nav.TypeName(), name)
			}
			mb.add(&NavigationResource{Property: nav})
			return nav, nil
		}
		prop := st.StructuralProperty(name)
		if prop == nil {
			return nil, errSemantic(SemanticErrorKey_UnknownProperty, "property «%s» is not declared in type «%v»", name, t.QName())
		}
		if _, isComplex := prop.Type().(*edm.ComplexType); !isComplex {
			return nil, errSemantic(SemanticErrorKey_UnknownProperty, "property «%s» is not a navigation property", name)
		}
		mb.add(&ComplexPropertyResource{Property: prop})
		if err := ep.require(uritoken.Kind_Slash); err != nil {
			return nil, err
		}
		if ep.tok.Next(uritoken.Kind_QualifiedName) {
			cast, err := edm.ParseQName(ep.tok.Text())
			if err != nil {
				return nil, errSemantic(SemanticErrorKey_UnknownType, "%v", err)
			}
			ct := ep.cat.ComplexType(cast)
			if ct == nil {
				return nil, errSemantic(SemanticErrorKey_UnknownType, "complex type «%v» is not found", cast)
			}
			if _, err := ep.typeCast(mb, ct); err != nil {
				return nil, err
			}
			if err := ep.require(uritoken.Kind_Slash); err != nil {
				return nil, err
			}
		}
		if err := ep.require(uritoken.Kind_ODataIdentifier); err != nil {
			return nil, err
		}
	}
}

// Parses «opt=value;…)» after «(». Options are resolved against target type
func (ep *exprParser) parseExpandOptions(item *ExpandItem, nav *edm.NavigationProperty, target edm.IType) error {
	seen := map[uritoken.Kind]bool{}
	for {
		ep.tok.Next(uritoken.Kind_BWS)
		kind, ok := ep.nextExpandOption()
		if !ok {
			return ep.errSyntax("expand option expected")
		}
		name := optionNames[kind]
		if seen[kind] {
			return ep.errSyntax("duplicate expand option «%s»", name)
		}
		seen[kind] = true
		if err := checkExpandOption(item, nav, kind); err != nil {
			return err
		}
		ep.tok.Next(uritoken.Kind_BWS)
		if err := ep.require(uritoken.Kind_Eq); err != nil {
			return err
		}
		ep.tok.Next(uritoken.Kind_BWS)
		if err := ep.parseExpandOption(item, nav, target, kind); err != nil {
			return err
		}
		ep.tok.Next(uritoken.Kind_BWS)
		if !ep.tok.Next(uritoken.Kind_Semi) {
			break
		}
	}
	return ep.require(uritoken.Kind_Close)
}

func (ep *exprParser) nextExpandOption() (uritoken.Kind, bool) {
	for _, k := range expandOptionKinds {
		if ep.tok.Next(k) {
			return k, true
		}
	}
	return uritoken.Kind_null, false
}

// Checks is option allowed for $ref, $count or single-valued navigation
func checkExpandOption(item *ExpandItem, nav *edm.NavigationProperty, kind uritoken.Kind) error {
	name := optionNames[kind]
	switch {
	case item.Ref && !refExpandOptions[kind]:
		return errQueryOption(name, MsgNotAllowedForRef)
	case item.CountPath && kind != uritoken.Kind_Filter && kind != uritoken.Kind_Search:
		return errQueryOption(name, MsgNotAllowedForCount)
	case !nav.IsCollection() && collectionOnlyOptions[kind]:
		return errQueryOption(name, MsgNotAllowedForSingle, nav.Name())
	}
	return nil
}

func (ep *exprParser) parseExpandOption(item *ExpandItem, nav *edm.NavigationProperty, target edm.IType, kind uritoken.Kind) (err error) {
	sub := ep.nested(target)
	switch kind {
	case uritoken.Kind_Filter:
		item.Filter, err = sub.parseFilter()
	case uritoken.Kind_Select:
		item.Select, err = sub.parseSelect(nav.IsCollection())
	case uritoken.Kind_Expand:
		item.Expand, err = sub.parseExpand()
	case uritoken.Kind_OrderBy:
		item.OrderBy, err = sub.parseOrderBy()
	case uritoken.Kind_Skip:
		item.Skip, err = ep.nextNonNegative(optionNames[kind])
	case uritoken.Kind_Top:
		item.Top, err = ep.nextNonNegative(optionNames[kind])
	case uritoken.Kind_Count:
		if !ep.tok.Next(uritoken.Kind_BooleanValue) {
			return errQueryOption(optionNames[kind], MsgNotBoolean, ep.tok.Remaining())
		}
		var count bool
		if count, err = ep.ParseCount(ep.tok.Text()); err == nil {
			item.Count = &count
		}
	case uritoken.Kind_Search:
		n := searchExtent(ep.tok.Remaining())
		if err := ep.tok.Skip(n); err != nil {
			return lexError(err)
		}
		item.Search, err = ep.ParseSearch(ep.tok.Text())
	case uritoken.Kind_Levels:
		err = ep.parseLevels(item, nav)
	}
	return err
}

// Integer value of $top or $skip
func (ep *exprParser) nextNonNegative(option string) (*int, error) {
	if !ep.tok.Next(uritoken.Kind_IntegerValue) {
		return nil, errQueryOption(option, MsgNotNonNegativeInteger, ep.tok.Remaining())
	}
	v, err := parseNonNegative(option, ep.tok.Text())
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Parses $levels value after «$levels». Navigation is nil for «*»
func (ep *exprParser) parseLevels(item *ExpandItem, nav *edm.NavigationProperty) error {
	option := optionNames[uritoken.Kind_Levels]
	if nav == nil {
		ep.tok.Next(uritoken.Kind_BWS)
		if err := ep.require(uritoken.Kind_Eq); err != nil {
			return err
		}
		ep.tok.Next(uritoken.Kind_BWS)
	}
	levels := &Levels{}
	switch {
	case ep.tok.Next(uritoken.Kind_Max):
		levels.Max = true
	case ep.tok.Next(uritoken.Kind_IntegerValue):
		v, err := parseNonNegative(option, ep.tok.Text())
		if err != nil {
			return err
		}
		levels.Value = v
	default:
		return errQueryOption(option, MsgNotNonNegativeInteger, ep.tok.Remaining())
	}
	if nav != nil && !cyclic(nav, ep.referenced) {
		return errQueryOption(option, MsgNotCyclic, nav.Name())
	}
	item.Levels = levels
	return ep.cfg.Features.Check(Feature_Levels, "«$levels»")
}

// Returns is navigation target related to source type by inheritance
func cyclic(nav *edm.NavigationProperty, source edm.IType) bool {
	target := nav.Type()
	if source == nil || target == nil {
		return true
	}
	return edm.CompatibleTo(target, source) || edm.CompatibleTo(source, target)
}
