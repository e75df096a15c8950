/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edm

import (
	"sync"
)

// Common part of complex and entity types
type StructuredType struct {
	typ
	cat      *Catalog
	abstract bool
	open     bool
	baseName QName
	base     func() *StructuredType
	ownProps map[string]*Property
	ownNavs  map[string]*NavigationProperty
	members  func() *structuredMembers
}

// Effective members: inherited overlaid by own
type structuredMembers struct {
	props map[string]*Property
	navs  map[string]*NavigationProperty
}

func makeStructuredType(cat *Catalog, name QName, kind TypeKind, def *StructuredTypeDef) StructuredType {
	st := StructuredType{
		typ:      makeType(name, kind),
		cat:      cat,
		abstract: def.Abstract,
		open:     def.OpenType,
		ownProps: make(map[string]*Property, len(def.Properties)),
		ownNavs:  make(map[string]*NavigationProperty, len(def.NavigationProperties)),
	}
	if def.BaseType != "" {
		st.baseName, _ = cat.typeRef(def.BaseType)
	}
	for _, p := range def.Properties {
		st.ownProps[p.Name] = newProperty(cat, p)
	}
	for _, n := range def.NavigationProperties {
		st.ownNavs[n.Name] = newNavigationProperty(cat, n)
	}
	return st
}

// Binds lazy base resolver and effective members. Must be called once the structured type is at its final address
func (st *StructuredType) bind(base func() *StructuredType) {
	st.base = sync.OnceValue(base)
	st.members = sync.OnceValue(st.buildMembers)
}

func (st *StructuredType) buildMembers() *structuredMembers {
	m := &structuredMembers{
		props: make(map[string]*Property),
		navs:  make(map[string]*NavigationProperty),
	}
	if b := st.base(); b != nil {
		bm := b.members()
		for n, p := range bm.props {
			m.props[n] = p
		}
		for n, p := range bm.navs {
			m.navs[n] = p
		}
	}
	for n, p := range st.ownProps {
		delete(m.navs, n)
		m.props[n] = p
	}
	for n, p := range st.ownNavs {
		delete(m.props, n)
		m.navs[n] = p
	}
	return m
}

func (st *StructuredType) IsAbstract() bool { return st.abstract }

func (st *StructuredType) IsOpen() bool { return st.open }

// Returns name of base type, NullQName if type has no base
func (st *StructuredType) BaseTypeName() QName { return st.baseName }

// Returns structural property by name, own or inherited. Returns nil if not found
func (st *StructuredType) StructuralProperty(name string) *Property {
	return st.members().props[name]
}

// Returns navigation property by name, own or inherited. Returns nil if not found
func (st *StructuredType) NavigationProperty(name string) *NavigationProperty {
	return st.members().navs[name]
}

// Returns own (not inherited) structural property
func (st *StructuredType) OwnStructuralProperty(name string) *Property {
	return st.ownProps[name]
}

// Returns own (not inherited) navigation property
func (st *StructuredType) OwnNavigationProperty(name string) *NavigationProperty {
	return st.ownNavs[name]
}

// Sorted names of structural properties, own and inherited
func (st *StructuredType) PropertyNames() []string {
	return sortedKeys(st.members().props)
}

// Sorted names of navigation properties, own and inherited
func (st *StructuredType) NavigationPropertyNames() []string {
	return sortedKeys(st.members().navs)
}

// Returns is type compatible to t: t is the same type or one of the base types
func (st *StructuredType) CompatibleTo(t IType) bool {
	if t == nil {
		return false
	}
	name, kind := t.QName(), t.Kind()
	depth := 0
	for s := st; s != nil; s = s.base() {
		if s.name == name && s.kind == kind {
			return true
		}
		if depth++; depth > maxInheritanceDepth {
			return false
		}
	}
	return false
}

// Complex type
type ComplexType struct {
	StructuredType
}

func newComplexType(cat *Catalog, name QName, def *ComplexTypeDef) *ComplexType {
	ct := &ComplexType{StructuredType: makeStructuredType(cat, name, TypeKind_Complex, &def.StructuredTypeDef)}
	ct.bind(func() *StructuredType {
		if b := ct.BaseType(); b != nil {
			return &b.StructuredType
		}
		return nil
	})
	return ct
}

// Returns base complex type or nil
func (ct *ComplexType) BaseType() *ComplexType {
	if ct.baseName.IsNull() {
		return nil
	}
	return ct.cat.ComplexType(ct.baseName)
}

// Entity type
type EntityType struct {
	StructuredType
	hasStream bool
	ownKeys   []*KeyPropertyRef
}

func newEntityType(cat *Catalog, name QName, def *EntityTypeDef) *EntityType {
	et := &EntityType{
		StructuredType: makeStructuredType(cat, name, TypeKind_Entity, &def.StructuredTypeDef),
		hasStream:      def.HasStream,
	}
	for _, k := range def.Key {
		et.ownKeys = append(et.ownKeys, &KeyPropertyRef{name: k.Name, alias: k.Alias, owner: et})
	}
	et.bind(func() *StructuredType {
		if b := et.BaseType(); b != nil {
			return &b.StructuredType
		}
		return nil
	})
	return et
}

// Returns base entity type or nil
func (et *EntityType) BaseType() *EntityType {
	if et.baseName.IsNull() {
		return nil
	}
	return et.cat.EntityType(et.baseName)
}

func (et *EntityType) HasStream() bool { return et.hasStream }

// Returns key property references. If type declares no own key, then key of base type is returned
func (et *EntityType) KeyPropertyRefs() []*KeyPropertyRef {
	depth := 0
	for t := et; t != nil; t = t.BaseType() {
		if len(t.ownKeys) > 0 {
			return t.ownKeys
		}
		if depth++; depth > maxInheritanceDepth {
			break
		}
	}
	return nil
}

// Returns key property reference by key predicate name (alias or property name). Returns nil if not found
func (et *EntityType) KeyPropertyRef(name string) *KeyPropertyRef {
	for _, k := range et.KeyPropertyRefs() {
		if k.KeyPredicateName() == name {
			return k
		}
	}
	return nil
}

// Returns names used in key predicates, in key declaration order
func (et *EntityType) KeyPredicateNames() []string {
	keys := et.KeyPropertyRefs()
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.KeyPredicateName())
	}
	return names
}

// Reference to key property
type KeyPropertyRef struct {
	name  string
	alias string
	owner *EntityType
}

// Returns property path, complex members are separated by «/»
func (k *KeyPropertyRef) Name() string { return k.name }

func (k *KeyPropertyRef) Alias() string { return k.alias }

// Returns alias if specified, else property path
func (k *KeyPropertyRef) KeyPredicateName() string {
	if k.alias != "" {
		return k.alias
	}
	return k.name
}

// Resolves key property through path. Returns nil if path is broken
func (k *KeyPropertyRef) Property() *Property {
	st := &k.owner.StructuredType
	var prop *Property
	for _, seg := range splitPath(k.name) {
		if st == nil {
			return nil
		}
		if prop = st.StructuralProperty(seg); prop == nil {
			return nil
		}
		st = nil
		if ct, ok := prop.Type().(*ComplexType); ok {
			st = &ct.StructuredType
		}
	}
	return prop
}
