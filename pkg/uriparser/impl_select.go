/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/odata/pkg/edm"
	"github.com/voedger/odata/pkg/uritoken"
)

// ParseSelect parses $select items: «*», «Namespace.*», property paths with optional leading type cast,
// bound actions and functions.
//
// isCollection specifies is the selected resource a collection, it selects bound operations overloads
func (p *Parser) ParseSelect(text string, referenced edm.IType, isCollection bool) (*SelectOption, error) {
	ep, err := p.newTextParser(text, referenced, nil, nil)
	if err != nil {
		return nil, err
	}
	opt, err := ep.parseSelect(isCollection)
	if err != nil {
		return nil, err
	}
	if err := ep.requireEOF(); err != nil {
		return nil, err
	}
	if logger.IsTrace() {
		logger.Trace("$select:", DumpSelect(opt))
	}
	return opt, nil
}

func (ep *exprParser) parseSelect(isCollection bool) (*SelectOption, error) {
	opt := &SelectOption{}
	for {
		ep.tok.Next(uritoken.Kind_BWS)
		item, err := ep.parseSelectItem(isCollection)
		if err != nil {
			return nil, err
		}
		opt.Items = append(opt.Items, item)
		ep.tok.Next(uritoken.Kind_BWS)
		if !ep.tok.Next(uritoken.Kind_Comma) {
			return opt, nil
		}
	}
}

func (ep *exprParser) parseSelectItem(isCollection bool) (*SelectItem, error) {
	if ep.tok.Next(uritoken.Kind_Star) {
		return &SelectItem{Star: true}, nil
	}
	if ns, ok := ep.nextAllOperations(); ok {
		if !ep.cat.HasNamespace(ns) {
			return nil, errSemantic(SemanticErrorKey_UnknownNamespace, "namespace «%s» is not found", ns)
		}
		name := ep.cat.ResolveAlias(edm.NewQName(ns, "*"))
		return &SelectItem{AllOperationsInSchema: name}, nil
	}

	item := &SelectItem{}
	mb := &memberBuilder{start: ep.referenced}
	switch {
	case ep.tok.Next(uritoken.Kind_QualifiedName):
		name, err := edm.ParseQName(ep.tok.Text())
		if err != nil {
			return nil, errSemantic(SemanticErrorKey_UnknownType, "%v", err)
		}
		st := ep.structuredType(name)
		if st == nil {
			if err := ep.selectOperation(mb, name, isCollection); err != nil {
				return nil, err
			}
			break
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
		if ep.tok.Next(uritoken.Kind_QualifiedName) {
			fn, err := edm.ParseQName(ep.tok.Text())
			if err != nil {
				return nil, errSemantic(SemanticErrorKey_UnknownFunction, "%v", err)
			}
			if err := ep.selectOperation(mb, fn, isCollection); err != nil {
				return nil, err
			}
			break
		}
		if err := ep.require(uritoken.Kind_ODataIdentifier); err != nil {
			return nil, err
		}
		if err := ep.selectPath(mb); err != nil {
			return nil, err
		}
	case ep.tok.Next(uritoken.Kind_ODataIdentifier):
		if err := ep.selectPath(mb); err != nil {
			return nil, err
		}
	default:
		return nil, ep.errSyntax("select item expected")
	}
	item.Resources = mb.resources
	return item, nil
}

// Consumes «Namespace.*» and returns namespace
func (ep *exprParser) nextAllOperations() (string, bool) {
	m := ep.tok.Mark()
	if ep.tok.Next(uritoken.Kind_QualifiedName) || ep.tok.Next(uritoken.Kind_ODataIdentifier) {
		ns := ep.tok.Text()
		if ep.tok.Next(uritoken.Kind_Dot) && ep.tok.Next(uritoken.Kind_Star) {
			return ns, true
		}
	}
	ep.tok.Reset(m)
	return "", false
}

// Property path. Complex properties may be followed by type cast and nested properties,
// navigation properties end the path
func (ep *exprParser) selectPath(mb *memberBuilder) error {
	for {
		name := ep.tok.Text()
		t := mb.lastType()
		st := structuredOf(t)
		if st == nil {
			return errSemantic(SemanticErrorKey_UnknownProperty, "property «%s» must follow a structured type", name)
		}
		if nav := st.NavigationProperty(name); nav != nil {
			mb.add(&NavigationResource{Property: nav})
			return nil
		}
		prop := st.StructuralProperty(name)
		if prop == nil {
			return errSemantic(SemanticErrorKey_UnknownProperty, "property «%s» is not declared in type «%v»", name, t.QName())
		}
		if _, isComplex := prop.Type().(*edm.ComplexType); !isComplex {
			mb.add(&PrimitivePropertyResource{Property: prop})
			return nil
		}
		mb.add(&ComplexPropertyResource{Property: prop})
		if !ep.tok.Next(uritoken.Kind_Slash) {
			return nil
		}
		if ep.tok.Next(uritoken.Kind_QualifiedName) {
			cast, err := edm.ParseQName(ep.tok.Text())
			if err != nil {
				return errSemantic(SemanticErrorKey_UnknownType, "%v", err)
			}
			ct := ep.cat.ComplexType(cast)
			if ct == nil {
				return errSemantic(SemanticErrorKey_UnknownType, "complex type «%v» is not found", cast)
			}
			if _, err := ep.typeCast(mb, ct); err != nil {
				return err
			}
			if err := ep.require(uritoken.Kind_Slash); err != nil {
				return err
			}
		}
		if err := ep.require(uritoken.Kind_ODataIdentifier); err != nil {
			return err
		}
	}
}

// Bound action or function. Function may specify parameter names to select overload: «NS.Func(a,b)»
func (ep *exprParser) selectOperation(mb *memberBuilder, name edm.QName, isCollection bool) error {
	binding := mb.lastType()
	if binding == nil {
		return errSemantic(SemanticErrorKey_UnknownFunction, "operation «%v» can not be selected without referenced type", name)
	}

	if ep.tok.Next(uritoken.Kind_Open) {
		names, err := ep.parameterNames()
		if err != nil {
			return err
		}
		fn := ep.boundFunction(name, binding, isCollection, names)
		if fn == nil {
			return errSemantic(SemanticErrorKey_UnknownFunction, "bound function «%v» with parameters %v is not found", name, names)
		}
		mb.add(&FunctionResource{Function: fn})
		return nil
	}

	for _, t := range typeChain(binding) {
		if a := ep.cat.BoundAction(name, t.QName(), isCollection); a != nil {
			mb.add(&ActionResource{Action: a})
			return nil
		}
	}
	for _, t := range typeChain(binding) {
		for _, fn := range ep.cat.BoundFunctionsWithName(name) {
			if fn.BindingTypeName() == t.QName() && fn.IsBindingCollection() == isCollection {
				mb.add(&FunctionResource{Function: fn})
				return nil
			}
		}
	}
	return errSemantic(SemanticErrorKey_UnknownFunction, "bound action or function «%v» is not found", name)
}

// Parses «a,b)» after «(»
func (ep *exprParser) parameterNames() ([]string, error) {
	names := []string{}
	ep.tok.Next(uritoken.Kind_BWS)
	if ep.tok.Next(uritoken.Kind_Close) {
		return names, nil
	}
	for {
		ep.tok.Next(uritoken.Kind_BWS)
		if err := ep.require(uritoken.Kind_ODataIdentifier); err != nil {
			return nil, err
		}
		names = append(names, ep.tok.Text())
		ep.tok.Next(uritoken.Kind_BWS)
		if !ep.tok.Next(uritoken.Kind_Comma) {
			break
		}
	}
	if err := ep.require(uritoken.Kind_Close); err != nil {
		return nil, err
	}
	return names, nil
}

// Returns t followed by its base types
func typeChain(t edm.IType) []edm.IType {
	var chain []edm.IType
	for ; t != nil && len(chain) <= maxInheritanceDepth; t = baseType(t) {
		chain = append(chain, t)
	}
	return chain
}
