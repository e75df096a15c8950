/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edm

import (
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Action or function
type Operation struct {
	name          QName
	kind          OperationKind
	bound         bool
	composable    bool
	entitySetPath string
	params        []*Parameter
	byName        map[string]*Parameter
	returnType    *ReturnType
	key           string
}

func newOperation(cat *Catalog, name QName, kind OperationKind, def *OperationDef) *Operation {
	op := &Operation{
		name:          name,
		kind:          kind,
		bound:         def.IsBound && len(def.Parameters) > 0,
		composable:    kind == OperationKind_Function && def.IsComposable,
		entitySetPath: def.EntitySetPath,
		byName:        make(map[string]*Parameter, len(def.Parameters)),
	}
	for _, p := range def.Parameters {
		par := newParameter(cat, p)
		op.params = append(op.params, par)
		op.byName[p.Name] = par
	}
	if def.ReturnType != nil {
		op.returnType = newReturnType(cat, def.ReturnType)
	}
	if kind == OperationKind_Action {
		op.key = OverloadKey(name, op.BindingTypeName(), op.IsBindingCollection(), nil)
	} else {
		op.key = OverloadKey(name, op.BindingTypeName(), op.IsBindingCollection(), op.ParameterNames())
	}
	return op
}

func (op *Operation) QName() QName { return op.name }

func (op *Operation) Kind() OperationKind { return op.kind }

func (op *Operation) IsAction() bool { return op.kind == OperationKind_Action }

func (op *Operation) IsFunction() bool { return op.kind == OperationKind_Function }

func (op *Operation) IsBound() bool { return op.bound }

// Returns is function composable: result can be followed by further path segments
func (op *Operation) IsComposable() bool { return op.composable }

func (op *Operation) EntitySetPath() string { return op.entitySetPath }

// All parameters in declaration order, binding parameter first
func (op *Operation) Parameters() []*Parameter { return op.params }

// Returns parameter by name, nil if not found
func (op *Operation) Parameter(name string) *Parameter { return op.byName[name] }

// Names of non-binding parameters in declaration order
func (op *Operation) ParameterNames() []string {
	params := op.params
	if op.bound {
		params = params[1:]
	}
	names := make([]string, 0, len(params))
	for _, p := range params {
		names = append(names, p.name)
	}
	return names
}

// Returns binding parameter, nil for unbound operation
func (op *Operation) BindingParameter() *Parameter {
	if op.bound {
		return op.params[0]
	}
	return nil
}

// Returns canonical name of binding parameter type, NullQName for unbound operation
func (op *Operation) BindingTypeName() QName {
	if p := op.BindingParameter(); p != nil {
		return p.typeName
	}
	return NullQName
}

func (op *Operation) IsBindingCollection() bool {
	if p := op.BindingParameter(); p != nil {
		return p.collection
	}
	return false
}

// Returns return type, nil if operation returns nothing
func (op *Operation) ReturnType() *ReturnType { return op.returnType }

// Returns key which distinguishes overloads of operation.
//
// Actions are distinguished by binding only, functions by binding and parameter names.
func (op *Operation) OverloadKey() string { return op.key }

func (op *Operation) String() string { return op.key }

// Builds overload key from operation name, binding type name and collection flag and non-binding parameter names.
//
// Parameter names are sorted, so the key does not depend on parameters order.
func OverloadKey(name, bindingType QName, isBindingCollection bool, parameterNames []string) string {
	b := strings.Builder{}
	b.WriteString(name.String())
	b.WriteString(overloadKeySeparator)
	if bindingType.IsNull() {
		b.WriteString(overloadKeyNullBinding)
	} else {
		b.WriteString(bindingType.String())
	}
	b.WriteString(overloadKeySeparator)
	b.WriteString(strconv.FormatBool(isBindingCollection))
	b.WriteString(overloadKeySeparator)
	names := slices.Clone(parameterNames)
	slices.Sort(names)
	b.WriteString(strings.Join(names, overloadKeyParamSeparator))
	return b.String()
}

// Operation parameter
type Parameter struct {
	Facets
	name       string
	typeName   QName
	collection bool
	nullable   bool
	typ        func() IType
}

func newParameter(cat *Catalog, def *ParameterDef) *Parameter {
	p := &Parameter{
		Facets:   makeFacets(def.FacetsDef),
		name:     def.Name,
		nullable: boolOr(def.Nullable, true),
	}
	p.typeName, p.collection = cat.typeRef(def.Type)
	p.collection = p.collection || def.Collection
	p.typ = sync.OnceValue(func() IType { return cat.Type(p.typeName) })
	return p
}

func (p *Parameter) Name() string { return p.name }

func (p *Parameter) TypeName() QName { return p.typeName }

// Returns parameter type, nil if not resolved
func (p *Parameter) Type() IType { return p.typ() }

func (p *Parameter) IsCollection() bool { return p.collection }

func (p *Parameter) IsNullable() bool { return p.nullable }

// Operation return type
type ReturnType struct {
	typeName   QName
	collection bool
	nullable   bool
	typ        func() IType
}

func newReturnType(cat *Catalog, def *ReturnTypeDef) *ReturnType {
	r := &ReturnType{nullable: boolOr(def.Nullable, true)}
	r.typeName, r.collection = cat.typeRef(def.Type)
	r.collection = r.collection || def.Collection
	r.typ = sync.OnceValue(func() IType { return cat.Type(r.typeName) })
	return r
}

func (r *ReturnType) TypeName() QName { return r.typeName }

func (r *ReturnType) Type() IType { return r.typ() }

func (r *ReturnType) IsCollection() bool { return r.collection }

func (r *ReturnType) IsNullable() bool { return r.nullable }
