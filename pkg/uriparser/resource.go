/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import "github.com/voedger/odata/pkg/edm"

// Entity set. Collection unless key predicates are specified
type EntitySetResource struct {
	EntitySet     *edm.EntitySet
	KeyPredicates []*UriParameter
}

func (r *EntitySetResource) Kind() ResourceKind { return ResourceKind_EntitySet }
func (r *EntitySetResource) Type() edm.IType    { return entityType(r.EntitySet.EntityType()) }
func (r *EntitySetResource) IsCollection() bool { return len(r.KeyPredicates) == 0 }
func (r *EntitySetResource) Segment() string    { return r.EntitySet.Name() }

type SingletonResource struct {
	Singleton *edm.Singleton
}

func (r *SingletonResource) Kind() ResourceKind { return ResourceKind_Singleton }
func (r *SingletonResource) Type() edm.IType    { return entityType(r.Singleton.EntityType()) }
func (r *SingletonResource) IsCollection() bool { return false }
func (r *SingletonResource) Segment() string    { return r.Singleton.Name() }

// Navigation property. To-many navigation with key predicates addresses single entity
type NavigationResource struct {
	Property      *edm.NavigationProperty
	KeyPredicates []*UriParameter
}

func (r *NavigationResource) Kind() ResourceKind { return ResourceKind_Navigation }
func (r *NavigationResource) Type() edm.IType    { return entityType(r.Property.Type()) }
func (r *NavigationResource) IsCollection() bool {
	return r.Property.IsCollection() && len(r.KeyPredicates) == 0
}
func (r *NavigationResource) Segment() string { return r.Property.Name() }

// Property of primitive, type definition or enumeration type
type PrimitivePropertyResource struct {
	Property *edm.Property
}

func (r *PrimitivePropertyResource) Kind() ResourceKind { return ResourceKind_PrimitiveProperty }
func (r *PrimitivePropertyResource) Type() edm.IType    { return r.Property.Type() }
func (r *PrimitivePropertyResource) IsCollection() bool { return r.Property.IsCollection() }
func (r *PrimitivePropertyResource) Segment() string    { return r.Property.Name() }

type ComplexPropertyResource struct {
	Property *edm.Property
}

func (r *ComplexPropertyResource) Kind() ResourceKind { return ResourceKind_ComplexProperty }
func (r *ComplexPropertyResource) Type() edm.IType    { return r.Property.Type() }
func (r *ComplexPropertyResource) IsCollection() bool { return r.Property.IsCollection() }
func (r *ComplexPropertyResource) Segment() string    { return r.Property.Name() }

// Cast of the previous segment to derived structured type
type TypeCastResource struct {
	Typ        edm.IType
	Collection bool
}

func (r *TypeCastResource) Kind() ResourceKind { return ResourceKind_TypeCast }
func (r *TypeCastResource) Type() edm.IType    { return r.Typ }
func (r *TypeCastResource) IsCollection() bool { return r.Collection }
func (r *TypeCastResource) Segment() string    { return r.Typ.QName().String() }

// Bound or unbound function call
type FunctionResource struct {
	Function      *edm.Operation
	Parameters    []*UriParameter
	KeyPredicates []*UriParameter
}

func (r *FunctionResource) Kind() ResourceKind { return ResourceKind_Function }

func (r *FunctionResource) Type() edm.IType {
	if rt := r.Function.ReturnType(); rt != nil {
		return rt.Type()
	}
	return nil
}

func (r *FunctionResource) IsCollection() bool {
	rt := r.Function.ReturnType()
	return rt != nil && rt.IsCollection() && len(r.KeyPredicates) == 0
}

func (r *FunctionResource) Segment() string { return r.Function.QName().String() }

// Bound action. Only allowed as the last $select item segment
type ActionResource struct {
	Action *edm.Operation
}

func (r *ActionResource) Kind() ResourceKind { return ResourceKind_Action }

func (r *ActionResource) Type() edm.IType {
	if rt := r.Action.ReturnType(); rt != nil {
		return rt.Type()
	}
	return nil
}

func (r *ActionResource) IsCollection() bool {
	rt := r.Action.ReturnType()
	return rt != nil && rt.IsCollection()
}

func (r *ActionResource) Segment() string { return r.Action.QName().String() }

type CountResource struct{}

func (r *CountResource) Kind() ResourceKind { return ResourceKind_Count }
func (r *CountResource) Type() edm.IType    { return edm.PrimitiveTypeOf(edm.PrimitiveKind_Int32) }
func (r *CountResource) IsCollection() bool { return false }
func (r *CountResource) Segment() string    { return "$count" }

type RefResource struct {
	Typ        edm.IType
	Collection bool
}

func (r *RefResource) Kind() ResourceKind { return ResourceKind_Ref }
func (r *RefResource) Type() edm.IType    { return r.Typ }
func (r *RefResource) IsCollection() bool { return r.Collection }
func (r *RefResource) Segment() string    { return "$ref" }

// Variable of any or all lambda. Typed with collection item type
type LambdaVariableResource struct {
	Name string
	Typ  edm.IType
}

func (r *LambdaVariableResource) Kind() ResourceKind { return ResourceKind_LambdaVariable }
func (r *LambdaVariableResource) Type() edm.IType    { return r.Typ }
func (r *LambdaVariableResource) IsCollection() bool { return false }
func (r *LambdaVariableResource) Segment() string    { return r.Name }

// Current instance of the referenced type
type ItResource struct {
	Typ        edm.IType
	Collection bool
}

func (r *ItResource) Kind() ResourceKind { return ResourceKind_It }
func (r *ItResource) Type() edm.IType    { return r.Typ }
func (r *ItResource) IsCollection() bool { return r.Collection }
func (r *ItResource) Segment() string    { return "$it" }

// Service root. Followed by entity set or singleton segment
type RootResource struct{}

func (r *RootResource) Kind() ResourceKind { return ResourceKind_Root }
func (r *RootResource) Type() edm.IType    { return nil }
func (r *RootResource) IsCollection() bool { return false }
func (r *RootResource) Segment() string    { return "$root" }

// any or all lambda. Predicate is nil for «any()»
type LambdaResource struct {
	All       bool
	Variable  string
	Predicate Expression
}

func (r *LambdaResource) Kind() ResourceKind {
	if r.All {
		return ResourceKind_LambdaAll
	}
	return ResourceKind_LambdaAny
}

func (r *LambdaResource) Type() edm.IType    { return edm.PrimitiveTypeOf(edm.PrimitiveKind_Boolean) }
func (r *LambdaResource) IsCollection() bool { return false }

func (r *LambdaResource) Segment() string {
	if r.All {
		return "all"
	}
	return "any"
}

func (*EntitySetResource) isResource()         {}
func (*SingletonResource) isResource()         {}
func (*NavigationResource) isResource()        {}
func (*PrimitivePropertyResource) isResource() {}
func (*ComplexPropertyResource) isResource()   {}
func (*TypeCastResource) isResource()          {}
func (*FunctionResource) isResource()          {}
func (*ActionResource) isResource()            {}
func (*CountResource) isResource()             {}
func (*RefResource) isResource()               {}
func (*LambdaVariableResource) isResource()    {}
func (*ItResource) isResource()                {}
func (*RootResource) isResource()              {}
func (*LambdaResource) isResource()            {}

// Avoids typed nil inside interface
func entityType(t *edm.EntityType) edm.IType {
	if t == nil {
		return nil
	}
	return t
}
