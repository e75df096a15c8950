/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edm

type typ struct {
	name QName
	kind TypeKind
}

func makeType(name QName, kind TypeKind) typ {
	return typ{name: name, kind: kind}
}

func (t *typ) QName() QName { return t.name }

func (t *typ) Kind() TypeKind { return t.kind }

func (t *typ) String() string { return t.name.String() }

func (t *typ) isType() {}

// Built-in primitive type
type PrimitiveType struct {
	typ
	primitiveKind PrimitiveKind
}

func (t *PrimitiveType) PrimitiveKind() PrimitiveKind { return t.primitiveKind }

func (t *PrimitiveType) IsNumeric() bool { return t.primitiveKind.IsNumeric() }

func (t *PrimitiveType) IsIntegral() bool { return t.primitiveKind.IsIntegral() }

func (t *PrimitiveType) IsGeospatial() bool { return t.primitiveKind.IsGeospatial() }

var primitiveTypes = func() (res [PrimitiveKind_count]*PrimitiveType) {
	for k := PrimitiveKind_null + 1; k < PrimitiveKind_count; k++ {
		res[k] = &PrimitiveType{
			typ:           makeType(NewQName(EdmNamespace, k.TypeName()), TypeKind_Primitive),
			primitiveKind: k,
		}
	}
	return res
}()

var primitiveTypesByName = func() map[string]*PrimitiveType {
	m := make(map[string]*PrimitiveType, PrimitiveKind_count)
	for _, t := range primitiveTypes {
		if t != nil {
			m[t.name.Name()] = t
		}
	}
	return m
}()

// Returns built-in primitive type of specified kind, or nil
func PrimitiveTypeOf(k PrimitiveKind) *PrimitiveType {
	if k < PrimitiveKind_count {
		return primitiveTypes[k]
	}
	return nil
}

// Returns built-in primitive type by name inside «Edm» namespace, e.g. «Int32». Returns nil if unknown
func PrimitiveTypeByName(name string) *PrimitiveType {
	return primitiveTypesByName[name]
}

// Returns primitive kind of type, or PrimitiveKind_null if type is not primitive.
//
// Type definitions are reduced to their underlying primitive type.
func PrimitiveKindOf(t IType) PrimitiveKind {
	switch t := t.(type) {
	case *PrimitiveType:
		return t.primitiveKind
	case *TypeDefinition:
		return t.underlying.primitiveKind
	}
	return PrimitiveKind_null
}

// Returns is type primitive kind k
func IsPrimitive(t IType, k PrimitiveKind) bool {
	p, ok := t.(*PrimitiveType)
	return ok && p.primitiveKind == k
}

// Facets of property, parameter or type definition
type Facets struct {
	MaxLength *int
	Precision *int
	Scale     *int
	Unicode   bool
	SRID      string
}

func makeFacets(def FacetsDef) Facets {
	return Facets{
		MaxLength: def.MaxLength,
		Precision: def.Precision,
		Scale:     def.Scale,
		Unicode:   boolOr(def.Unicode, true),
		SRID:      def.SRID,
	}
}

// Returns is a compatible to b: same type, or a is structured type derived from b
func CompatibleTo(a, b IType) bool {
	if a == nil || b == nil {
		return false
	}
	switch a := a.(type) {
	case *EntityType:
		return a.CompatibleTo(b)
	case *ComplexType:
		return a.CompatibleTo(b)
	}
	return a.QName() == b.QName() && a.Kind() == b.Kind()
}
