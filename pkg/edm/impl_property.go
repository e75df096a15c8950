/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edm

import "sync"

// Structural property
type Property struct {
	Facets
	name         string
	typeName     QName
	collection   bool
	nullable     bool
	defaultValue string
	typ          func() IType
}

func newProperty(cat *Catalog, def *PropertyDef) *Property {
	p := &Property{
		Facets:       makeFacets(def.FacetsDef),
		name:         def.Name,
		nullable:     boolOr(def.Nullable, true),
		defaultValue: def.DefaultValue,
	}
	p.typeName, p.collection = cat.typeRef(def.Type)
	p.collection = p.collection || def.Collection
	p.typ = sync.OnceValue(func() IType { return cat.Type(p.typeName) })
	return p
}

func (p *Property) Name() string { return p.name }

func (p *Property) TypeName() QName { return p.typeName }

// Returns property type. Returns nil if type can not be resolved
func (p *Property) Type() IType { return p.typ() }

func (p *Property) IsCollection() bool { return p.collection }

func (p *Property) IsNullable() bool { return p.nullable }

// Returns is property type primitive or type definition
func (p *Property) IsPrimitive() bool {
	switch p.Type().(type) {
	case *PrimitiveType, *TypeDefinition:
		return true
	}
	return false
}

// Returns default value text, empty if not declared
func (p *Property) DefaultValue() string { return p.defaultValue }

// Navigation property
type NavigationProperty struct {
	name           string
	typeName       QName
	collection     bool
	nullable       bool
	containsTarget bool
	partner        string
	constraints    []ReferentialConstraint
	target         func() *EntityType
}

// Dependent property equals principal (referenced) property
type ReferentialConstraint struct {
	Property           string
	ReferencedProperty string
}

func newNavigationProperty(cat *Catalog, def *NavigationPropertyDef) *NavigationProperty {
	n := &NavigationProperty{
		name:           def.Name,
		containsTarget: def.ContainsTarget,
		partner:        def.Partner,
	}
	n.typeName, n.collection = cat.typeRef(def.Type)
	n.collection = n.collection || def.Collection
	n.nullable = boolOr(def.Nullable, !n.collection)
	for _, c := range def.ReferentialConstraints {
		n.constraints = append(n.constraints, ReferentialConstraint{Property: c.Property, ReferencedProperty: c.ReferencedProperty})
	}
	n.target = sync.OnceValue(func() *EntityType { return cat.EntityType(n.typeName) })
	return n
}

func (n *NavigationProperty) Name() string { return n.name }

func (n *NavigationProperty) TypeName() QName { return n.typeName }

// Returns target entity type, nil if not resolved
func (n *NavigationProperty) Type() *EntityType { return n.target() }

func (n *NavigationProperty) IsCollection() bool { return n.collection }

func (n *NavigationProperty) IsNullable() bool { return n.nullable }

func (n *NavigationProperty) ContainsTarget() bool { return n.containsTarget }

func (n *NavigationProperty) PartnerName() string { return n.partner }

// Returns partner navigation property declared on target type, nil if no partner
func (n *NavigationProperty) Partner() *NavigationProperty {
	if n.partner == "" {
		return nil
	}
	if t := n.Type(); t != nil {
		return t.NavigationProperty(n.partner)
	}
	return nil
}

func (n *NavigationProperty) ReferentialConstraints() []ReferentialConstraint { return n.constraints }

// Returns name of dependent property which references principal property, empty if not constrained
func (n *NavigationProperty) ReferencingPropertyName(referencedName string) string {
	for _, c := range n.constraints {
		if c.ReferencedProperty == referencedName {
			return c.Property
		}
	}
	return ""
}

// Returns name of principal property referenced by dependent property, empty if not constrained
func (n *NavigationProperty) ReferencedPropertyName(propertyName string) string {
	for _, c := range n.constraints {
		if c.Property == propertyName {
			return c.ReferencedProperty
		}
	}
	return ""
}
