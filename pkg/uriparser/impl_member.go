/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"slices"

	"github.com/voedger/odata/pkg/edm"
	"github.com/voedger/odata/pkg/uritoken"
)

func (mb *memberBuilder) add(r UriResource) { mb.resources = append(mb.resources, r) }

// Returns type of the last segment, start type for empty path
func (mb *memberBuilder) lastType() edm.IType {
	if n := len(mb.resources); n > 0 {
		return mb.resources[n-1].Type()
	}
	return mb.start
}

func (mb *memberBuilder) lastIsCollection() bool {
	if n := len(mb.resources); n > 0 {
		return mb.resources[n-1].IsCollection()
	}
	return false
}

func (ep *exprParser) parseRoot() (Expression, error) {
	mb := &memberBuilder{}
	mb.add(&RootResource{})
	if err := ep.require(uritoken.Kind_Slash); err != nil {
		return nil, err
	}
	if err := ep.require(uritoken.Kind_ODataIdentifier); err != nil {
		return nil, err
	}
	name := ep.tok.Text()
	ec := ep.cat.EntityContainer(edm.NullQName)
	if ec == nil {
		return nil, errSemantic(SemanticErrorKey_UnknownEntitySet, "default entity container is not found")
	}
	if es := ec.EntitySet(name); es != nil {
		et := es.EntityType()
		if et == nil {
			return nil, errSemantic(SemanticErrorKey_UnknownType, "type «%v» of entity set «%s» is not found", es.EntityTypeName(), name)
		}
		if err := ep.require(uritoken.Kind_Open); err != nil {
			return nil, err
		}
		keys, err := ep.parseKeyPredicate(et, nil)
		if err != nil {
			return nil, err
		}
		mb.add(&EntitySetResource{EntitySet: es, KeyPredicates: keys})
	} else if s := ec.Singleton(name); s != nil {
		mb.add(&SingletonResource{Singleton: s})
	} else {
		return nil, errSemantic(SemanticErrorKey_UnknownEntitySet, "entity set or singleton «%s» is not found", name)
	}
	if err := ep.parseSingleNavigation(mb); err != nil {
		return nil, err
	}
	return &Member{Resources: mb.resources}, nil
}

func (ep *exprParser) parseIt() (Expression, error) {
	mb := &memberBuilder{}
	mb.add(&ItResource{Typ: ep.referenced})
	if ep.tok.Next(uritoken.Kind_Slash) {
		if err := ep.parseMemberSegment(mb, true); err != nil {
			return nil, err
		}
	}
	return &Member{Resources: mb.resources}, nil
}

// Qualified name at the start of member: type literal, leading type cast or function call
func (ep *exprParser) parseFirstQualifiedName() (Expression, error) {
	name, err := edm.ParseQName(ep.tok.Text())
	if err != nil {
		return nil, errSemantic(SemanticErrorKey_UnknownType, "%v", err)
	}
	if st := ep.structuredType(name); st != nil {
		if !ep.tok.Next(uritoken.Kind_Slash) {
			return &TypeLiteral{Typ: st}, nil
		}
		if ep.referenced != nil && !edm.CompatibleTo(st, ep.referenced) {
			return nil, errSemantic(SemanticErrorKey_IncompatibleTypes, "type «%v» is not compatible to «%v»", name, ep.referenced.QName())
		}
		if err := ep.cfg.Features.Check(Feature_TypeCast, "type cast to «"+name.String()+"»"); err != nil {
			return nil, err
		}
		mb := &memberBuilder{start: st}
		if err := ep.parseMemberSegment(mb, false); err != nil {
			return nil, err
		}
		return &Member{Resources: mb.resources, StartTypeFilter: st}, nil
	}
	if t := ep.cat.Type(name); t != nil {
		return &TypeLiteral{Typ: t}, nil
	}
	if name.Namespace() == edm.EdmNamespace {
		// unknown primitive type makes invalid cast
		return &TypeLiteral{}, nil
	}
	if ep.peek(uritoken.Kind_Open) {
		mb := &memberBuilder{start: ep.referenced}
		if err := ep.parseFunction(mb, name); err != nil {
			return nil, err
		}
		return &Member{Resources: mb.resources}, nil
	}
	return nil, errSemantic(SemanticErrorKey_UnknownType, "type or function «%v» is not found", name)
}

// Identifier at the start of member: crossjoin entity set, property or lambda variable
func (ep *exprParser) parseFirstIdentifier() (Expression, error) {
	name := ep.tok.Text()
	mb := &memberBuilder{start: ep.referenced}

	if len(ep.crossjoin) > 0 {
		if !slices.Contains(ep.crossjoin, name) {
			return nil, errSemantic(SemanticErrorKey_UnknownEntitySet, "«%s» is not an entity set of crossjoin", name)
		}
		var es *edm.EntitySet
		if ec := ep.cat.EntityContainer(edm.NullQName); ec != nil {
			es = ec.EntitySet(name)
		}
		if es == nil {
			return nil, errSemantic(SemanticErrorKey_UnknownEntitySet, "entity set «%s» is not found", name)
		}
		mb.add(&EntitySetResource{EntitySet: es})
		if ep.tok.Next(uritoken.Kind_Slash) {
			if err := ep.parseMemberSegment(mb, true); err != nil {
				return nil, err
			}
		}
		if err := ep.cfg.Features.Check(Feature_CrossJoin, "crossjoin member «"+name+"»"); err != nil {
			return nil, err
		}
		return &Member{Resources: mb.resources}, nil
	}

	if st := structuredOf(ep.referenced); st == nil || (st.StructuralProperty(name) == nil && st.NavigationProperty(name) == nil) {
		if v := ep.lambdaVariable(name); v != nil {
			mb.add(&LambdaVariableResource{Name: v.Name, Typ: v.Typ})
			if err := ep.parseSingleNavigation(mb); err != nil {
				return nil, err
			}
			return &Member{Resources: mb.resources}, nil
		}
	}
	if err := ep.parsePropertyPath(mb); err != nil {
		return nil, err
	}
	return &Member{Resources: mb.resources}, nil
}

// Returns innermost lambda variable with name, nil if not in scope
func (ep *exprParser) lambdaVariable(name string) *LambdaVariableResource {
	for i := len(ep.lambdas) - 1; i >= 0; i-- {
		if ep.lambdas[i].Name == name {
			return ep.lambdas[i]
		}
	}
	return nil
}

// Parses segment after «/»: qualified name or property
func (ep *exprParser) parseMemberSegment(mb *memberBuilder, allowTypeFilter bool) error {
	switch {
	case ep.tok.Next(uritoken.Kind_QualifiedName):
		return ep.parseQualifiedSegment(mb, allowTypeFilter)
	case ep.tok.Next(uritoken.Kind_ODataIdentifier):
		return ep.parsePropertyPath(mb)
	}
	return ep.errSyntax("property or qualified name expected")
}

// Type cast or bound function
func (ep *exprParser) parseQualifiedSegment(mb *memberBuilder, allowTypeFilter bool) error {
	name, err := edm.ParseQName(ep.tok.Text())
	if err != nil {
		return errSemantic(SemanticErrorKey_UnknownType, "%v", err)
	}
	st := ep.structuredType(name)
	if st == nil {
		return ep.parseBoundFunction(mb, name)
	}
	if !allowTypeFilter {
		return errSemantic(SemanticErrorKey_IncompatibleTypes, "type casts are not chainable, «%v»", name)
	}
	if _, err := ep.typeCast(mb, st); err != nil {
		return err
	}
	if !ep.tok.Next(uritoken.Kind_Slash) {
		return nil
	}
	switch {
	case ep.tok.Next(uritoken.Kind_QualifiedName):
		fn, err := edm.ParseQName(ep.tok.Text())
		if err != nil {
			return errSemantic(SemanticErrorKey_UnknownFunction, "%v", err)
		}
		return ep.parseBoundFunction(mb, fn)
	case ep.tok.Next(uritoken.Kind_ODataIdentifier):
		return ep.parsePropertyPath(mb)
	}
	return ep.errSyntax("property or qualified name expected")
}

// Appends cast of the last segment to derived type t
func (ep *exprParser) typeCast(mb *memberBuilder, t edm.IType) (*TypeCastResource, error) {
	if cur := mb.lastType(); cur != nil && !edm.CompatibleTo(t, cur) {
		return nil, errSemantic(SemanticErrorKey_IncompatibleTypes, "type «%v» is not compatible to «%v»", t.QName(), cur.QName())
	}
	cast := &TypeCastResource{Typ: t, Collection: mb.lastIsCollection()}
	mb.add(cast)
	if err := ep.cfg.Features.Check(Feature_TypeCast, "type cast to «"+t.QName().String()+"»"); err != nil {
		return nil, err
	}
	return cast, nil
}

// Property of the last segment type. Property name is the current token
func (ep *exprParser) parsePropertyPath(mb *memberBuilder) error {
	name := ep.tok.Text()
	t := mb.lastType()
	st := structuredOf(t)
	if st == nil {
		if t == nil {
			return errSemantic(SemanticErrorKey_UnknownProperty, "property «%s» can not be resolved without referenced type", name)
		}
		return errSemantic(SemanticErrorKey_UnknownProperty, "property «%s» must follow a structured type, not «%v»", name, t.QName())
	}

	if prop := st.StructuralProperty(name); prop != nil {
		if _, isComplex := prop.Type().(*edm.ComplexType); isComplex {
			mb.add(&ComplexPropertyResource{Property: prop})
			if !prop.IsCollection() {
				return ep.parseComplexPath(mb)
			}
		} else {
			mb.add(&PrimitivePropertyResource{Property: prop})
			if !prop.IsCollection() {
				return ep.parseSinglePath(mb)
			}
		}
		if ep.tok.Next(uritoken.Kind_Slash) {
			return ep.parseCollectionPath(mb)
		}
		return nil
	}

	if nav := st.NavigationProperty(name); nav != nil {
		res := &NavigationResource{Property: nav}
		mb.add(res)
		if nav.IsCollection() {
			return ep.parseCollectionNavigation(mb, res)
		}
		if ep.peek(uritoken.Kind_Open) {
			return errSemantic(SemanticErrorKey_KeyPredicate, "key predicate is not allowed for single-valued navigation «%s»", name)
		}
		return ep.parseSingleNavigation(mb)
	}

	return errSemantic(SemanticErrorKey_UnknownProperty, "property «%s» is not declared in type «%v»", name, t.QName())
}

func (ep *exprParser) parseSingleNavigation(mb *memberBuilder) error {
	if ep.tok.Next(uritoken.Kind_Slash) {
		return ep.parseMemberSegment(mb, true)
	}
	return nil
}

// Continues path after entity collection: type cast, bound function, key predicate or collection path.
// Keys are attached to keyed resource
func (ep *exprParser) parseCollectionNavigation(mb *memberBuilder, keyed UriResource) error {
	var cast *TypeCastResource
	if ep.tok.Next(uritoken.Kind_Slash) {
		if !ep.tok.Next(uritoken.Kind_QualifiedName) {
			return ep.parseCollectionPath(mb)
		}
		name, err := edm.ParseQName(ep.tok.Text())
		if err != nil {
			return errSemantic(SemanticErrorKey_UnknownType, "%v", err)
		}
		et := ep.cat.EntityType(name)
		if et == nil {
			return ep.parseBoundFunction(mb, name)
		}
		if cast, err = ep.typeCast(mb, et); err != nil {
			return err
		}
	}

	if ep.tok.Next(uritoken.Kind_Open) {
		et, ok := mb.lastType().(*edm.EntityType)
		if !ok {
			return errSemantic(SemanticErrorKey_KeyPredicate, "key predicate requires entity type")
		}
		var partner *edm.NavigationProperty
		if nav, ok := keyed.(*NavigationResource); ok {
			partner = nav.Property.Partner()
		}
		keys, err := ep.parseKeyPredicate(et, partner)
		if err != nil {
			return err
		}
		switch r := keyed.(type) {
		case *NavigationResource:
			r.KeyPredicates = keys
		case *FunctionResource:
			r.KeyPredicates = keys
		case *EntitySetResource:
			r.KeyPredicates = keys
		}
		if cast != nil {
			cast.Collection = false
		}
		return ep.parseSingleNavigation(mb)
	}

	if ep.tok.Next(uritoken.Kind_Slash) {
		return ep.parseCollectionPath(mb)
	}
	return nil
}

// Path after «/» following a collection: $count, any, all or bound function
func (ep *exprParser) parseCollectionPath(mb *memberBuilder) error {
	switch {
	case ep.tok.Next(uritoken.Kind_Count):
		mb.add(&CountResource{})
		return nil
	case ep.tok.Next(uritoken.Kind_Any):
		return ep.parseLambda(mb, false)
	case ep.tok.Next(uritoken.Kind_All):
		return ep.parseLambda(mb, true)
	case ep.tok.Next(uritoken.Kind_QualifiedName):
		name, err := edm.ParseQName(ep.tok.Text())
		if err != nil {
			return errSemantic(SemanticErrorKey_UnknownFunction, "%v", err)
		}
		return ep.parseBoundFunction(mb, name)
	}
	return ep.errSyntax("$count, any, all or bound function expected")
}

func (ep *exprParser) parseComplexPath(mb *memberBuilder) error {
	if !ep.tok.Next(uritoken.Kind_Slash) {
		return nil
	}
	if !ep.tok.Next(uritoken.Kind_QualifiedName) {
		return ep.parseComplexPathRest(mb)
	}
	name, err := edm.ParseQName(ep.tok.Text())
	if err != nil {
		return errSemantic(SemanticErrorKey_UnknownType, "%v", err)
	}
	ct := ep.cat.ComplexType(name)
	if ct == nil {
		return ep.parseBoundFunction(mb, name)
	}
	if _, err := ep.typeCast(mb, ct); err != nil {
		return err
	}
	if ep.tok.Next(uritoken.Kind_Slash) {
		return ep.parseComplexPathRest(mb)
	}
	return nil
}

func (ep *exprParser) parseComplexPathRest(mb *memberBuilder) error {
	switch {
	case ep.tok.Next(uritoken.Kind_QualifiedName):
		name, err := edm.ParseQName(ep.tok.Text())
		if err != nil {
			return errSemantic(SemanticErrorKey_UnknownFunction, "%v", err)
		}
		return ep.parseBoundFunction(mb, name)
	case ep.tok.Next(uritoken.Kind_ODataIdentifier):
		return ep.parsePropertyPath(mb)
	}
	return ep.errSyntax("property or bound function expected")
}

// Single primitive value may only be followed by bound function
func (ep *exprParser) parseSinglePath(mb *memberBuilder) error {
	if !ep.tok.Next(uritoken.Kind_Slash) {
		return nil
	}
	if err := ep.require(uritoken.Kind_QualifiedName); err != nil {
		return err
	}
	name, err := edm.ParseQName(ep.tok.Text())
	if err != nil {
		return errSemantic(SemanticErrorKey_UnknownFunction, "%v", err)
	}
	return ep.parseBoundFunction(mb, name)
}

// Parses «any(v: predicate)», «all(v: predicate)» or «any()».
// Lambda variable is visible inside predicate only
func (ep *exprParser) parseLambda(mb *memberBuilder, all bool) error {
	if err := ep.require(uritoken.Kind_Open); err != nil {
		return err
	}
	itemType := mb.lastType()
	ep.tok.Next(uritoken.Kind_BWS)
	if !all && ep.tok.Next(uritoken.Kind_Close) {
		mb.add(&LambdaResource{})
		return nil
	}
	if err := ep.require(uritoken.Kind_ODataIdentifier); err != nil {
		return err
	}
	name := ep.tok.Text()
	ep.tok.Next(uritoken.Kind_BWS)
	if err := ep.require(uritoken.Kind_Colon); err != nil {
		return err
	}
	ep.tok.Next(uritoken.Kind_BWS)

	ep.lambdas = append(ep.lambdas, &LambdaVariableResource{Name: name, Typ: itemType})
	predicate, err := ep.parseExpression()
	ep.lambdas = ep.lambdas[:len(ep.lambdas)-1]
	if err != nil {
		return err
	}

	ep.tok.Next(uritoken.Kind_BWS)
	if err := ep.require(uritoken.Kind_Close); err != nil {
		return err
	}
	if t := predicate.Type(); (t != nil && !isPrimitive(t, edm.PrimitiveKind_Boolean)) || isCollection(predicate) {
		return errSemantic(SemanticErrorKey_IncompatibleTypes, "lambda predicate must be a single boolean expression")
	}
	mb.add(&LambdaResource{All: all, Variable: name, Predicate: predicate})
	return nil
}

// Returns is next token of kind k, does not consume it
func (ep *exprParser) peek(k uritoken.Kind) bool {
	m := ep.tok.Mark()
	defer ep.tok.Reset(m)
	return ep.tok.Next(k)
}

// Returns entity or complex type by name, nil if not found
func (ep *exprParser) structuredType(name edm.QName) edm.IType {
	if et := ep.cat.EntityType(name); et != nil {
		return et
	}
	if ct := ep.cat.ComplexType(name); ct != nil {
		return ct
	}
	return nil
}
