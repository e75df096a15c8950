/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edmschema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/odata/pkg/edm"
)

func TestLoadFile(t *testing.T) {
	for _, file := range []string{"shop.yaml", "shop.xml"} {
		t.Run(file, func(t *testing.T) {
			require := require.New(t)
			p, err := LoadFile(filepath.Join("testdata", file))
			require.NoError(err)
			require.Equal("Shop", p.Aliases()["S"])

			cat := edm.NewCatalog(p, edm.NewDefaultCatalogParams())
			item := cat.EntityType(edm.NewQName("S", "Item"))
			require.NotNil(item)
			require.Equal([]string{"ID"}, item.KeyPredicateNames())
			require.Equal(40, *item.StructuralProperty("Name").MaxLength)
			require.False(item.StructuralProperty("ID").IsNullable())
			require.True(item.StructuralProperty("Tags").IsCollection())

			line := cat.EntityType(edm.NewQName("Shop", "Line"))
			require.Same(line, item.NavigationProperty("Lines").Type())
			require.Equal("ID", line.NavigationProperty("Item").ReferencedPropertyName("ItemID"))
			require.Same(item.NavigationProperty("Lines"), line.NavigationProperty("Item").Partner())

			ec := cat.EntityContainer(edm.NullQName)
			require.NotNil(ec)
			require.Equal(edm.NewQName("Shop", "Default"), ec.QName())
			require.Same(item, ec.EntitySet("Items").EntityType())
		})
	}

	t.Run("not found", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoadYAML(t *testing.T) {
	t.Run("several documents", func(t *testing.T) {
		require := require.New(t)
		f, err := os.Open(filepath.Join("testdata", "shop.yaml"))
		require.NoError(err)
		defer f.Close()

		schemas, err := ReadYAML(f)
		require.NoError(err)
		require.Len(schemas, 2)

		p, err := NewProvider(schemas...)
		require.NoError(err)
		require.ElementsMatch([]string{"Shop", "Shop.Extra"}, p.Namespaces())
		require.NotNil(p.ComplexType(edm.NewQName("Shop.Extra", "Addr")))
		require.Len(p.Functions(edm.NewQName("Shop", "Find")), 1)
		require.Nil(p.EntityType(edm.NewQName("Shop", "Nothing")))
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := LoadYAML(strings.NewReader("schemas:\n  - namespace: A\n    entitySets: []\n"))
		require.ErrorIs(t, err, edm.ErrInvalidError)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := LoadYAML(strings.NewReader("schemas: [\n"))
		require.ErrorIs(t, err, edm.ErrInvalidError)
	})
}

func TestLoadCSDL(t *testing.T) {
	t.Run("elements", func(t *testing.T) {
		require := require.New(t)
		f, err := os.Open(filepath.Join("testdata", "shop.xml"))
		require.NoError(err)
		defer f.Close()

		p, err := LoadCSDL(f)
		require.NoError(err)
		require.Equal("Org.OData.Core.V1", p.Aliases()["Core"])

		item := p.EntityType(edm.NewQName("Shop", "Item"))
		require.Nil(item.Properties[2].MaxLength, "MaxLength=max has no numeric value")
		require.Equal("Edm.String", item.Properties[3].Type)
		require.True(item.Properties[3].Collection)

		access := p.EnumType(edm.NewQName("Shop", "Access"))
		require.True(access.IsFlags)
		require.Equal(int64(2), *access.Members[1].Value)

		require.Equal([]string{"Property", "EntityType"}, p.Term(edm.NewQName("Shop", "Label")).AppliesTo)

		cost := p.Functions(edm.NewQName("Shop", "Cost"))
		require.Len(cost, 1)
		require.True(cost[0].IsComposable)
		require.Equal(10, *cost[0].Parameters[1].Precision)

		ec := p.EntityContainer(edm.NullQName)
		require.Equal("Shop", ec.Namespace)
		require.Equal("Lines", ec.EntitySets[0].NavigationPropertyBindings[0].Target)
		require.Equal("S.Reset", ec.ActionImports[0].Action)
	})

	t.Run("errors", func(t *testing.T) {
		for name, xml := range map[string]string{
			"malformed": "<Edmx><DataServices>",
			"enum value": `<Edmx><DataServices><Schema Namespace="A">
				<EnumType Name="E"><Member Name="X" Value="x"/></EnumType>
				</Schema></DataServices></Edmx>`,
		} {
			t.Run(name, func(t *testing.T) {
				_, err := LoadCSDL(strings.NewReader(xml))
				require.ErrorIs(t, err, edm.ErrInvalidError)
			})
		}

		_, err := LoadCSDL(strings.NewReader(`<Edmx><DataServices><Schema Namespace="A">
			<EntityContainer Name="C1"/><EntityContainer Name="C2"/>
			</Schema></DataServices></Edmx>`))
		require.ErrorIs(t, err, edm.ErrAlreadyExistsError)
	})
}

func keyed(name string, base string) *edm.EntityTypeDef {
	et := &edm.EntityTypeDef{StructuredTypeDef: edm.StructuredTypeDef{Name: name, BaseType: base}}
	if base == "" {
		et.Key = []*edm.PropertyRefDef{{Name: "ID"}}
		et.Properties = []*edm.PropertyDef{{Name: "ID", Type: "Edm.Int32"}}
	}
	return et
}

func TestNewProvider_Errors(t *testing.T) {
	v0 := int64(0)
	tests := []struct {
		name    string
		schemas []*edm.SchemaDef
		err     error
	}{
		{"empty namespace", []*edm.SchemaDef{{}}, edm.ErrInvalidError},
		{"duplicate namespace", []*edm.SchemaDef{{Namespace: "A"}, {Namespace: "A"}}, edm.ErrAlreadyExistsError},
		{"duplicate element", []*edm.SchemaDef{{
			Namespace:    "A",
			EntityTypes:  []*edm.EntityTypeDef{keyed("T", "")},
			ComplexTypes: []*edm.ComplexTypeDef{{StructuredTypeDef: edm.StructuredTypeDef{Name: "T"}}},
		}}, edm.ErrAlreadyExistsError},
		{"action and function with same name", []*edm.SchemaDef{{
			Namespace: "A",
			Actions:   []*edm.OperationDef{{Name: "Op"}},
			Functions: []*edm.OperationDef{{Name: "Op"}},
		}}, edm.ErrAlreadyExistsError},
		{"alias for two namespaces", []*edm.SchemaDef{{Namespace: "A", Alias: "X"}, {Namespace: "B", Alias: "X"}}, edm.ErrAlreadyExistsError},
		{"alias hides namespace", []*edm.SchemaDef{{Namespace: "A", Alias: "B"}, {Namespace: "B"}}, edm.ErrInvalidError},
		{"cyclic base types", []*edm.SchemaDef{{
			Namespace:   "A",
			EntityTypes: []*edm.EntityTypeDef{keyed("T1", "A.T2"), keyed("T2", "A.T1")},
		}}, edm.ErrCyclicError},
		{"invalid base type", []*edm.SchemaDef{{
			Namespace:   "A",
			EntityTypes: []*edm.EntityTypeDef{keyed("T", "bad")},
		}}, edm.ErrInvalidError},
		{"entity type without key", []*edm.SchemaDef{{
			Namespace:   "A",
			EntityTypes: []*edm.EntityTypeDef{{StructuredTypeDef: edm.StructuredTypeDef{Name: "T"}}},
		}}, edm.ErrInvalidError},
		{"duplicate enum value", []*edm.SchemaDef{{
			Namespace: "A",
			EnumTypes: []*edm.EnumTypeDef{{Name: "E", Members: []*edm.EnumMemberDef{{Name: "X"}, {Name: "Y", Value: &v0}}}},
		}}, edm.ErrAlreadyExistsError},
		{"ambiguous function overload", []*edm.SchemaDef{{
			Namespace: "A",
			Functions: []*edm.OperationDef{
				{Name: "F", Parameters: []*edm.ParameterDef{{Name: "a", Type: "Edm.Int32"}, {Name: "b", Type: "Edm.Int32"}}},
				{Name: "F", Parameters: []*edm.ParameterDef{{Name: "b", Type: "Edm.String"}, {Name: "a", Type: "Edm.String"}}},
			},
		}}, edm.ErrAlreadyExistsError},
		{"ambiguous bound action", []*edm.SchemaDef{{
			Namespace:   "A",
			Alias:       "AA",
			EntityTypes: []*edm.EntityTypeDef{keyed("T", "")},
			Actions: []*edm.OperationDef{
				{Name: "Do", IsBound: true, Parameters: []*edm.ParameterDef{{Name: "t", Type: "A.T"}}},
				{Name: "Do", IsBound: true, Parameters: []*edm.ParameterDef{{Name: "x", Type: "AA.T"}, {Name: "y", Type: "Edm.Int32"}}},
			},
		}}, edm.ErrAlreadyExistsError},
		{"two entity containers", []*edm.SchemaDef{
			{Namespace: "A", EntityContainer: &edm.EntityContainerDef{Name: "C"}},
			{Namespace: "B", EntityContainer: &edm.EntityContainerDef{Name: "C"}},
		}, edm.ErrAlreadyExistsError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProvider(tt.schemas...)
			require.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("valid", func(t *testing.T) {
		require := require.New(t)
		abstract := &edm.EntityTypeDef{StructuredTypeDef: edm.StructuredTypeDef{Name: "Abs", Abstract: true}}
		_, err := NewProvider(&edm.SchemaDef{
			Namespace:   "A",
			EntityTypes: []*edm.EntityTypeDef{abstract, keyed("T", ""), keyed("D", "A.T")},
			EnumTypes:   []*edm.EnumTypeDef{{Name: "F", IsFlags: true, Members: []*edm.EnumMemberDef{{Name: "X"}, {Name: "Y", Value: &v0}}}},
			Functions: []*edm.OperationDef{
				{Name: "F2", Parameters: []*edm.ParameterDef{{Name: "a", Type: "Edm.Int32"}}},
				{Name: "F2", Parameters: []*edm.ParameterDef{{Name: "b", Type: "Edm.Int32"}}},
			},
		})
		require.NoError(err)
	})
}
