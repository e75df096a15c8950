/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edm

// Enumeration type
type EnumType struct {
	typ
	underlying *PrimitiveType
	flags      bool
	members    []*EnumMember
	byName     map[string]*EnumMember
}

type EnumMember struct {
	name  string
	value int64
}

func (m *EnumMember) Name() string { return m.name }

func (m *EnumMember) Value() int64 { return m.value }

func newEnumType(cat *Catalog, name QName, def *EnumTypeDef) *EnumType {
	et := &EnumType{
		typ:        makeType(name, TypeKind_Enum),
		underlying: PrimitiveTypeOf(DefaultEnumUnderlyingKind),
		flags:      def.IsFlags,
		byName:     make(map[string]*EnumMember, len(def.Members)),
	}
	if def.UnderlyingType != "" {
		if u, ok := cat.Type(cat.typeName(def.UnderlyingType)).(*PrimitiveType); ok && u.IsIntegral() {
			et.underlying = u
		}
	}
	for i, m := range def.Members {
		member := &EnumMember{name: m.Name, value: int64(i)}
		if m.Value != nil {
			member.value = *m.Value
		}
		et.members = append(et.members, member)
		et.byName[m.Name] = member
	}
	return et
}

// Returns underlying integral type
func (et *EnumType) UnderlyingType() *PrimitiveType { return et.underlying }

func (et *EnumType) IsFlags() bool { return et.flags }

// Returns members in declaration order
func (et *EnumType) Members() []*EnumMember { return et.members }

// Returns member by name, nil if not found
func (et *EnumType) Member(name string) *EnumMember { return et.byName[name] }

// Type definition: named primitive type with facets
type TypeDefinition struct {
	typ
	Facets
	underlying *PrimitiveType
}

func newTypeDefinition(cat *Catalog, name QName, def *TypeDefinitionDef) *TypeDefinition {
	td := &TypeDefinition{
		typ:    makeType(name, TypeKind_TypeDefinition),
		Facets: makeFacets(def.FacetsDef),
	}
	if u, ok := cat.Type(cat.typeName(def.UnderlyingType)).(*PrimitiveType); ok {
		td.underlying = u
	} else {
		td.underlying = PrimitiveTypeOf(PrimitiveKind_String)
	}
	return td
}

func (td *TypeDefinition) UnderlyingType() *PrimitiveType { return td.underlying }

// Vocabulary term
type Term struct {
	typ
	typeName     QName
	collection   bool
	nullable     bool
	baseTerm     QName
	appliesTo    []string
	defaultValue string
	cat          *Catalog
}

func newTerm(cat *Catalog, name QName, def *TermDef) *Term {
	t := &Term{
		typ:          makeType(name, TypeKind_Term),
		nullable:     boolOr(def.Nullable, true),
		appliesTo:    def.AppliesTo,
		defaultValue: def.DefaultValue,
		cat:          cat,
	}
	t.typeName, t.collection = cat.typeRef(def.Type)
	t.collection = t.collection || def.Collection
	if def.BaseTerm != "" {
		t.baseTerm, _ = cat.typeRef(def.BaseTerm)
	}
	return t
}

func (t *Term) TypeName() QName { return t.typeName }

// Returns term value type
func (t *Term) Type() IType { return t.cat.Type(t.typeName) }

func (t *Term) IsCollection() bool { return t.collection }

func (t *Term) IsNullable() bool { return t.nullable }

// Returns base term or nil
func (t *Term) BaseTerm() *Term {
	if t.baseTerm.IsNull() {
		return nil
	}
	return t.cat.Term(t.baseTerm)
}

// Returns kinds of elements the term can be applied to, e.g. «Property», «EntityType»
func (t *Term) AppliesTo() []string { return t.appliesTo }

func (t *Term) DefaultValue() string { return t.defaultValue }
