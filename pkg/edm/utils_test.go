/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edm

import (
	"sync"
	"time"
)

// Schema provider over schema definitions, for tests only
type testProvider []*SchemaDef

func (p testProvider) Aliases() map[string]string {
	aa := map[string]string{}
	for _, s := range p {
		if s.Alias != "" {
			aa[s.Alias] = s.Namespace
		}
	}
	return aa
}

func (p testProvider) Namespaces() []string {
	nn := []string{}
	for _, s := range p {
		nn = append(nn, s.Namespace)
	}
	return nn
}

func find[T any](p testProvider, n QName, list func(*SchemaDef) []T, name func(T) string) (res []T) {
	for _, s := range p {
		if s.Namespace != n.Namespace() {
			continue
		}
		for _, t := range list(s) {
			if name(t) == n.Name() {
				res = append(res, t)
			}
		}
	}
	return res
}

func first[T any](tt []T) (t T) {
	if len(tt) > 0 {
		t = tt[0]
	}
	return t
}

func (p testProvider) EntityType(n QName) *EntityTypeDef {
	return first(find(p, n, func(s *SchemaDef) []*EntityTypeDef { return s.EntityTypes },
		func(t *EntityTypeDef) string { return t.Name }))
}

func (p testProvider) ComplexType(n QName) *ComplexTypeDef {
	return first(find(p, n, func(s *SchemaDef) []*ComplexTypeDef { return s.ComplexTypes },
		func(t *ComplexTypeDef) string { return t.Name }))
}

func (p testProvider) EnumType(n QName) *EnumTypeDef {
	return first(find(p, n, func(s *SchemaDef) []*EnumTypeDef { return s.EnumTypes },
		func(t *EnumTypeDef) string { return t.Name }))
}

func (p testProvider) TypeDefinition(n QName) *TypeDefinitionDef {
	return first(find(p, n, func(s *SchemaDef) []*TypeDefinitionDef { return s.TypeDefinitions },
		func(t *TypeDefinitionDef) string { return t.Name }))
}

func (p testProvider) Term(n QName) *TermDef {
	return first(find(p, n, func(s *SchemaDef) []*TermDef { return s.Terms },
		func(t *TermDef) string { return t.Name }))
}

func (p testProvider) Actions(n QName) []*OperationDef {
	return find(p, n, func(s *SchemaDef) []*OperationDef { return s.Actions },
		func(t *OperationDef) string { return t.Name })
}

func (p testProvider) Functions(n QName) []*OperationDef {
	return find(p, n, func(s *SchemaDef) []*OperationDef { return s.Functions },
		func(t *OperationDef) string { return t.Name })
}

func (p testProvider) EntityContainer(n QName) *EntityContainerDef {
	for _, s := range p {
		if c := s.EntityContainer; c != nil && (n.IsNull() || NewQName(s.Namespace, c.Name) == n) {
			c.Namespace = s.Namespace
			return c
		}
	}
	return nil
}

func ptr[T any](v T) *T { return &v }

func testShopSchema() *SchemaDef {
	return &SchemaDef{
		Namespace: "Shop",
		Alias:     "S",
		EntityTypes: []*EntityTypeDef{
			{
				StructuredTypeDef: StructuredTypeDef{
					Name:     "Base",
					Abstract: true,
					Properties: []*PropertyDef{
						{Name: "ID", Type: "Edm.Int32", Nullable: ptr(false)},
						{Name: "Name", Type: "Edm.String", FacetsDef: FacetsDef{MaxLength: ptr(50)}},
					},
				},
				Key: []*PropertyRefDef{{Name: "ID"}},
			},
			{
				StructuredTypeDef: StructuredTypeDef{
					Name:     "Item",
					BaseType: "S.Base",
					Properties: []*PropertyDef{
						{Name: "Price", Type: "Edm.Decimal"},
						{Name: "Tags", Type: "Collection(Edm.String)"},
						{Name: "Address", Type: "S.Addr"},
					},
					NavigationProperties: []*NavigationPropertyDef{
						{Name: "Lines", Type: "Collection(Shop.Line)", Partner: "Item"},
					},
				},
			},
			{
				StructuredTypeDef: StructuredTypeDef{
					Name: "Line",
					Properties: []*PropertyDef{
						{Name: "ItemID", Type: "Edm.Int32"},
						{Name: "No", Type: "Edm.Int32"},
					},
					NavigationProperties: []*NavigationPropertyDef{
						{
							Name: "Item", Type: "Shop.Item", Partner: "Lines", Nullable: ptr(false),
							ReferentialConstraints: []*ReferentialConstraintDef{{Property: "ItemID", ReferencedProperty: "ID"}},
						},
					},
				},
				Key: []*PropertyRefDef{{Name: "ItemID"}, {Name: "No", Alias: "Number"}},
			},
			{StructuredTypeDef: StructuredTypeDef{Name: "CycleA", BaseType: "Shop.CycleB"}},
			{StructuredTypeDef: StructuredTypeDef{Name: "CycleB", BaseType: "Shop.CycleA"}},
		},
		ComplexTypes: []*ComplexTypeDef{
			{StructuredTypeDef: StructuredTypeDef{Name: "Addr", Properties: []*PropertyDef{{Name: "City", Type: "Edm.String"}}}},
			{StructuredTypeDef: StructuredTypeDef{Name: "PostAddr", BaseType: "Shop.Addr", Properties: []*PropertyDef{{Name: "Zip", Type: "Edm.String"}}}},
		},
		EnumTypes: []*EnumTypeDef{
			{
				Name:           "Color",
				UnderlyingType: "Edm.Byte",
				Members:        []*EnumMemberDef{{Name: "Red"}, {Name: "Green", Value: ptr(int64(5))}, {Name: "Blue"}},
			},
			{Name: "Size", UnderlyingType: "Edm.String", Members: []*EnumMemberDef{{Name: "S"}}},
		},
		TypeDefinitions: []*TypeDefinitionDef{
			{Name: "Code", UnderlyingType: "Edm.String", FacetsDef: FacetsDef{MaxLength: ptr(8)}},
		},
		Terms: []*TermDef{
			{Name: "Label", Type: "Edm.String", AppliesTo: []string{"Property"}},
		},
		Functions: []*OperationDef{
			{
				Name:       "Find",
				Parameters: []*ParameterDef{{Name: "a", Type: "Edm.Int32"}, {Name: "b", Type: "Edm.String"}},
				ReturnType: &ReturnTypeDef{Type: "Collection(Shop.Item)"},
			},
			{
				Name:       "Find",
				Parameters: []*ParameterDef{{Name: "a", Type: "Edm.Int32"}},
				ReturnType: &ReturnTypeDef{Type: "Shop.Item"},
			},
			{
				Name:         "Cost",
				IsBound:      true,
				IsComposable: true,
				Parameters:   []*ParameterDef{{Name: "item", Type: "S.Item"}, {Name: "rate", Type: "Edm.Decimal"}},
				ReturnType:   &ReturnTypeDef{Type: "Edm.Decimal"},
			},
			{
				Name:       "Cost",
				IsBound:    true,
				Parameters: []*ParameterDef{{Name: "items", Type: "Collection(Shop.Item)"}},
				ReturnType: &ReturnTypeDef{Type: "Edm.Decimal"},
			},
		},
		Actions: []*OperationDef{
			{Name: "Reset"},
			{Name: "Touch", IsBound: true, Parameters: []*ParameterDef{{Name: "item", Type: "Shop.Item"}}},
		},
		EntityContainer: &EntityContainerDef{
			Name: "Default",
			EntitySets: []*EntitySetDef{
				{
					Name: "Items", EntityType: "Shop.Item",
					NavigationPropertyBindings: []*NavigationPropertyBindingDef{{Path: "Lines", Target: "Lines"}},
				},
				{Name: "Lines", EntityType: "Shop.Line", IncludeInServiceDocument: ptr(false)},
			},
			Singletons:      []*SingletonDef{{Name: "Featured", Type: "Shop.Item"}},
			ActionImports:   []*ActionImportDef{{Name: "ResetAll", Action: "Shop.Reset"}},
			FunctionImports: []*FunctionImportDef{{Name: "FindItems", Function: "Shop.Find", EntitySet: "Items"}},
		},
	}
}

func testShopCatalog(params CatalogParams) *Catalog {
	return NewCatalog(testProvider{testShopSchema()}, params)
}

// Records catalog metrics in memory
type testMetrics struct {
	sync.Mutex
	lookups      map[string]int
	materialized int
}

func newTestMetrics() *testMetrics { return &testMetrics{lookups: map[string]int{}} }

func (m *testMetrics) Lookup(table, result string) {
	m.Lock()
	defer m.Unlock()
	m.lookups[table+"/"+result]++
}

func (m *testMetrics) Materialized(string, time.Duration) {
	m.Lock()
	defer m.Unlock()
	m.materialized++
}

func (m *testMetrics) count(table, result string) int {
	m.Lock()
	defer m.Unlock()
	return m.lookups[table+"/"+result]
}
