/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"github.com/voedger/odata/pkg/edm"
	"github.com/voedger/odata/pkg/uritoken"
)

// Function at the start of member. Bound to referenced type, else unbound
func (ep *exprParser) parseFunction(mb *memberBuilder, name edm.QName) error {
	args, err := ep.parseFunctionParameters()
	if err != nil {
		return err
	}
	names := argumentNames(args)
	fn := ep.boundFunction(name, ep.referenced, false, names)
	if fn == nil {
		fn = ep.boundFunction(name, ep.referenced, true, names)
	}
	if fn == nil {
		fn = ep.cat.UnboundFunction(name, names)
	}
	if fn == nil {
		return errSemantic(SemanticErrorKey_UnknownFunction, "function «%v» with parameters %v is not found", name, names)
	}
	params, err := ep.validateFunctionParameters(fn, args)
	if err != nil {
		return err
	}
	return ep.parseFunctionRest(mb, fn, params)
}

// Function bound to the last segment
func (ep *exprParser) parseBoundFunction(mb *memberBuilder, name edm.QName) error {
	binding, collection := mb.lastType(), mb.lastIsCollection()
	args, err := ep.parseFunctionParameters()
	if err != nil {
		return err
	}
	names := argumentNames(args)
	fn := ep.boundFunction(name, binding, collection, names)
	if fn == nil {
		return errSemantic(SemanticErrorKey_UnknownFunction, "bound function «%v» with parameters %v is not found", name, names)
	}
	params, err := ep.validateFunctionParameters(fn, args)
	if err != nil {
		return err
	}
	return ep.parseFunctionRest(mb, fn, params)
}

// Returns function bound to binding type or one of its base types
func (ep *exprParser) boundFunction(name edm.QName, binding edm.IType, collection bool, names []string) *edm.Operation {
	for _, t := range typeChain(binding) {
		if fn := ep.cat.BoundFunction(name, t.QName(), collection, names); fn != nil {
			return fn
		}
	}
	return nil
}

// Appends function segment and continues path if function is composable
func (ep *exprParser) parseFunctionRest(mb *memberBuilder, fn *edm.Operation, params []*UriParameter) error {
	res := &FunctionResource{Function: fn, Parameters: params}
	mb.add(res)

	rt := fn.ReturnType()
	if rt == nil || !fn.IsComposable() {
		if ep.peek(uritoken.Kind_Slash) {
			return errSemantic(SemanticErrorKey_NotComposable, "function «%v» is not composable", fn.QName())
		}
		return nil
	}

	switch rt.Type().(type) {
	case *edm.EntityType:
		if rt.IsCollection() {
			return ep.parseCollectionNavigation(mb, res)
		}
		return ep.parseSingleNavigation(mb)
	case *edm.ComplexType:
		if !rt.IsCollection() {
			return ep.parseComplexPath(mb)
		}
	default:
		if !rt.IsCollection() {
			return ep.parseSinglePath(mb)
		}
	}
	if ep.tok.Next(uritoken.Kind_Slash) {
		return ep.parseCollectionPath(mb)
	}
	return nil
}

// Parses «(name=value,…)». Value is an alias, JSON or expression
func (ep *exprParser) parseFunctionParameters() ([]functionArgument, error) {
	if err := ep.require(uritoken.Kind_Open); err != nil {
		return nil, err
	}
	ep.tok.Next(uritoken.Kind_BWS)
	if ep.tok.Next(uritoken.Kind_Close) {
		return nil, nil
	}
	var args []functionArgument
	seen := map[string]bool{}
	for {
		ep.tok.Next(uritoken.Kind_BWS)
		if err := ep.require(uritoken.Kind_ODataIdentifier); err != nil {
			return nil, err
		}
		name := ep.tok.Text()
		if seen[name] {
			return nil, errSemantic(SemanticErrorKey_DuplicateParameter, "duplicate function parameter «%s»", name)
		}
		seen[name] = true
		ep.tok.Next(uritoken.Kind_BWS)
		if err := ep.require(uritoken.Kind_Eq); err != nil {
			return nil, err
		}
		ep.tok.Next(uritoken.Kind_BWS)

		arg := functionArgument{param: &UriParameter{Name: name}}
		switch {
		case ep.tok.Next(uritoken.Kind_ParameterAliasName):
			arg.param.Alias = ep.tok.Text()
		case ep.tok.Next(uritoken.Kind_JSONArrayOrObject):
			arg.param.Text = ep.tok.Text()
		default:
			e, err := ep.parseExpression()
			if err != nil {
				return nil, err
			}
			if lit, ok := e.(*Literal); ok {
				arg.param.Text = lit.Text
			} else {
				arg.param.Expression = e
			}
			arg.typ = e.Type()
		}
		args = append(args, arg)

		ep.tok.Next(uritoken.Kind_BWS)
		if !ep.tok.Next(uritoken.Kind_Comma) {
			break
		}
	}
	if err := ep.require(uritoken.Kind_Close); err != nil {
		return nil, err
	}
	return args, nil
}

func argumentNames(args []functionArgument) []string {
	names := make([]string, 0, len(args))
	for _, a := range args {
		names = append(names, a.param.Name)
	}
	return names
}

// Checks arguments against selected overload and resolves aliases
func (ep *exprParser) validateFunctionParameters(fn *edm.Operation, args []functionArgument) ([]*UriParameter, error) {
	params := make([]*UriParameter, 0, len(args))
	for _, a := range args {
		p := fn.Parameter(a.param.Name)
		if p == nil {
			return nil, errSemantic(SemanticErrorKey_InvalidParameterValue, "function «%v» has no parameter «%s»", fn.QName(), a.param.Name)
		}
		switch {
		case a.param.Alias != "":
			value, err := ep.resolveAlias(a.param.Alias, p.Type(), p.IsCollection())
			if err != nil {
				return nil, err
			}
			if (value == nil || isNullLiteral(value)) && !p.IsNullable() {
				return nil, errSemantic(SemanticErrorKey_InvalidParameterValue, "alias «%s» for not nullable parameter «%s» is missing or null", a.param.Alias, p.Name())
			}
			a.param.Expression = value
		case a.param.Text == nullLiteral:
			if !p.IsNullable() {
				return nil, errSemantic(SemanticErrorKey_InvalidParameterValue, "parameter «%s» is not nullable", p.Name())
			}
		default:
			if !argumentCompatible(p, a) {
				return nil, errSemantic(SemanticErrorKey_IncompatibleTypes, "value of parameter «%s» is not compatible to «%v»", p.Name(), p.TypeName())
			}
		}
		params = append(params, a.param)
	}
	return params, nil
}

func argumentCompatible(p *edm.Parameter, a functionArgument) bool {
	if a.param.Expression != nil && isCollection(a.param.Expression) != p.IsCollection() {
		return false
	}
	if a.typ == nil {
		return true
	}
	if a.param.Expression == nil && a.param.Text != "" {
		// integer literal must fit into target type
		target := edm.PrimitiveKindOf(p.Type())
		if target.IsIntegral() && edm.PrimitiveKindOf(a.typ).IsIntegral() {
			return integerFits(a.param.Text, target)
		}
	}
	return isCompatible(p.Type(), a.typ)
}

func isNullLiteral(e Expression) bool {
	lit, ok := e.(*Literal)
	return ok && lit.Text == nullLiteral
}
