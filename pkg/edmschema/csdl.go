/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edmschema

import (
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/voedger/odata/pkg/edm"
)

// CSDL XML document (edmx:Edmx)
type csdlEdmx struct {
	XMLName      xml.Name         `xml:"Edmx"`
	Version      string           `xml:"Version,attr"`
	References   []csdlReference  `xml:"Reference"`
	DataServices csdlDataServices `xml:"DataServices"`
}

type csdlReference struct {
	Uri      string        `xml:"Uri,attr"`
	Includes []csdlInclude `xml:"Include"`
}

type csdlInclude struct {
	Namespace string `xml:"Namespace,attr"`
	Alias     string `xml:"Alias,attr"`
}

type csdlDataServices struct {
	Schemas []csdlSchema `xml:"Schema"`
}

type csdlSchema struct {
	Namespace       string                `xml:"Namespace,attr"`
	Alias           string                `xml:"Alias,attr"`
	EntityTypes     []csdlEntityType      `xml:"EntityType"`
	ComplexTypes    []csdlStructuredType  `xml:"ComplexType"`
	EnumTypes       []csdlEnumType        `xml:"EnumType"`
	TypeDefinitions []csdlTypeDefinition  `xml:"TypeDefinition"`
	Terms           []csdlTerm            `xml:"Term"`
	Actions         []csdlOperation       `xml:"Action"`
	Functions       []csdlOperation       `xml:"Function"`
	EntityContainer []csdlEntityContainer `xml:"EntityContainer"`
}

type csdlStructuredType struct {
	Name                 string                   `xml:"Name,attr"`
	BaseType             string                   `xml:"BaseType,attr"`
	Abstract             bool                     `xml:"Abstract,attr"`
	OpenType             bool                     `xml:"OpenType,attr"`
	Properties           []csdlProperty           `xml:"Property"`
	NavigationProperties []csdlNavigationProperty `xml:"NavigationProperty"`
}

type csdlEntityType struct {
	csdlStructuredType
	HasStream bool    `xml:"HasStream,attr"`
	Key       csdlKey `xml:"Key"`
}

type csdlKey struct {
	PropertyRefs []csdlPropertyRef `xml:"PropertyRef"`
}

type csdlPropertyRef struct {
	Name  string `xml:"Name,attr"`
	Alias string `xml:"Alias,attr"`
}

// Facet attributes. MaxLength may be «max», Scale may be «variable» or «floating»
type csdlFacets struct {
	MaxLength string `xml:"MaxLength,attr"`
	Precision string `xml:"Precision,attr"`
	Scale     string `xml:"Scale,attr"`
	Unicode   *bool  `xml:"Unicode,attr"`
	SRID      string `xml:"SRID,attr"`
}

type csdlProperty struct {
	csdlFacets
	Name         string `xml:"Name,attr"`
	Type         string `xml:"Type,attr"`
	Nullable     *bool  `xml:"Nullable,attr"`
	DefaultValue string `xml:"DefaultValue,attr"`
}

type csdlNavigationProperty struct {
	Name                   string                      `xml:"Name,attr"`
	Type                   string                      `xml:"Type,attr"`
	Nullable               *bool                       `xml:"Nullable,attr"`
	Partner                string                      `xml:"Partner,attr"`
	ContainsTarget         bool                        `xml:"ContainsTarget,attr"`
	ReferentialConstraints []csdlReferentialConstraint `xml:"ReferentialConstraint"`
}

type csdlReferentialConstraint struct {
	Property           string `xml:"Property,attr"`
	ReferencedProperty string `xml:"ReferencedProperty,attr"`
}

type csdlEnumType struct {
	Name           string           `xml:"Name,attr"`
	UnderlyingType string           `xml:"UnderlyingType,attr"`
	IsFlags        bool             `xml:"IsFlags,attr"`
	Members        []csdlEnumMember `xml:"Member"`
}

type csdlEnumMember struct {
	Name  string `xml:"Name,attr"`
	Value string `xml:"Value,attr"`
}

type csdlTypeDefinition struct {
	csdlFacets
	Name           string `xml:"Name,attr"`
	UnderlyingType string `xml:"UnderlyingType,attr"`
}

type csdlTerm struct {
	Name         string `xml:"Name,attr"`
	Type         string `xml:"Type,attr"`
	Nullable     *bool  `xml:"Nullable,attr"`
	BaseTerm     string `xml:"BaseTerm,attr"`
	AppliesTo    string `xml:"AppliesTo,attr"`
	DefaultValue string `xml:"DefaultValue,attr"`
}

type csdlOperation struct {
	Name          string          `xml:"Name,attr"`
	IsBound       bool            `xml:"IsBound,attr"`
	IsComposable  bool            `xml:"IsComposable,attr"`
	EntitySetPath string          `xml:"EntitySetPath,attr"`
	Parameters    []csdlParameter `xml:"Parameter"`
	ReturnType    *csdlReturnType `xml:"ReturnType"`
}

type csdlParameter struct {
	csdlFacets
	Name     string `xml:"Name,attr"`
	Type     string `xml:"Type,attr"`
	Nullable *bool  `xml:"Nullable,attr"`
}

type csdlReturnType struct {
	Type     string `xml:"Type,attr"`
	Nullable *bool  `xml:"Nullable,attr"`
}

type csdlEntityContainer struct {
	Name            string               `xml:"Name,attr"`
	EntitySets      []csdlEntitySet      `xml:"EntitySet"`
	Singletons      []csdlSingleton      `xml:"Singleton"`
	ActionImports   []csdlActionImport   `xml:"ActionImport"`
	FunctionImports []csdlFunctionImport `xml:"FunctionImport"`
}

type csdlNavigationPropertyBinding struct {
	Path   string `xml:"Path,attr"`
	Target string `xml:"Target,attr"`
}

type csdlEntitySet struct {
	Name                       string                          `xml:"Name,attr"`
	EntityType                 string                          `xml:"EntityType,attr"`
	IncludeInServiceDocument   *bool                           `xml:"IncludeInServiceDocument,attr"`
	NavigationPropertyBindings []csdlNavigationPropertyBinding `xml:"NavigationPropertyBinding"`
}

type csdlSingleton struct {
	Name                       string                          `xml:"Name,attr"`
	Type                       string                          `xml:"Type,attr"`
	NavigationPropertyBindings []csdlNavigationPropertyBinding `xml:"NavigationPropertyBinding"`
}

type csdlActionImport struct {
	Name      string `xml:"Name,attr"`
	Action    string `xml:"Action,attr"`
	EntitySet string `xml:"EntitySet,attr"`
}

type csdlFunctionImport struct {
	Name                     string `xml:"Name,attr"`
	Function                 string `xml:"Function,attr"`
	EntitySet                string `xml:"EntitySet,attr"`
	IncludeInServiceDocument bool   `xml:"IncludeInServiceDocument,attr"`
}

// Reads schemas from CSDL XML stream
func ReadCSDL(r io.Reader) ([]*edm.SchemaDef, error) {
	doc := csdlEdmx{}
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: csdl: %w", edm.ErrInvalidError, err)
	}

	var refs []*edm.ReferenceDef
	for _, r := range doc.References {
		for _, inc := range r.Includes {
			refs = append(refs, &edm.ReferenceDef{Namespace: inc.Namespace, Alias: inc.Alias})
		}
	}

	schemas := make([]*edm.SchemaDef, 0, len(doc.DataServices.Schemas))
	for i := range doc.DataServices.Schemas {
		s, err := doc.DataServices.Schemas[i].def()
		if err != nil {
			return nil, err
		}
		if i == 0 {
			s.References = refs
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}

// Loads schema provider from CSDL XML stream
func LoadCSDL(r io.Reader) (edm.ISchemaProvider, error) {
	schemas, err := ReadCSDL(r)
	if err != nil {
		return nil, err
	}
	return NewProvider(schemas...)
}

func isCSDLFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xml")
}

func (s *csdlSchema) def() (*edm.SchemaDef, error) {
	def := &edm.SchemaDef{Namespace: s.Namespace, Alias: s.Alias}

	for _, t := range s.EntityTypes {
		et := &edm.EntityTypeDef{StructuredTypeDef: t.csdlStructuredType.def(), HasStream: t.HasStream}
		for _, k := range t.Key.PropertyRefs {
			et.Key = append(et.Key, &edm.PropertyRefDef{Name: k.Name, Alias: k.Alias})
		}
		def.EntityTypes = append(def.EntityTypes, et)
	}
	for _, t := range s.ComplexTypes {
		def.ComplexTypes = append(def.ComplexTypes, &edm.ComplexTypeDef{StructuredTypeDef: t.def()})
	}
	for _, t := range s.EnumTypes {
		et := &edm.EnumTypeDef{Name: t.Name, UnderlyingType: t.UnderlyingType, IsFlags: t.IsFlags}
		for _, m := range t.Members {
			md := &edm.EnumMemberDef{Name: m.Name}
			if m.Value != "" {
				v, err := strconv.ParseInt(m.Value, 10, 64)
				if err != nil {
					return nil, edm.ErrInvalid("enum «%s.%s» member «%s» value «%s»", s.Namespace, t.Name, m.Name, m.Value)
				}
				md.Value = &v
			}
			et.Members = append(et.Members, md)
		}
		def.EnumTypes = append(def.EnumTypes, et)
	}
	for _, t := range s.TypeDefinitions {
		def.TypeDefinitions = append(def.TypeDefinitions, &edm.TypeDefinitionDef{
			Name: t.Name, UnderlyingType: t.UnderlyingType, FacetsDef: t.csdlFacets.def(),
		})
	}
	for _, t := range s.Terms {
		td := &edm.TermDef{Name: t.Name, Nullable: t.Nullable, BaseTerm: t.BaseTerm, DefaultValue: t.DefaultValue}
		td.Type, td.Collection = edm.ParseTypeRef(t.Type)
		if t.AppliesTo != "" {
			td.AppliesTo = strings.Fields(t.AppliesTo)
		}
		def.Terms = append(def.Terms, td)
	}
	for _, a := range s.Actions {
		def.Actions = append(def.Actions, a.def())
	}
	for _, f := range s.Functions {
		def.Functions = append(def.Functions, f.def())
	}
	switch len(s.EntityContainer) {
	case 0:
	case 1:
		def.EntityContainer = s.EntityContainer[0].def()
	default:
		return nil, edm.ErrAlreadyExists("schema «%s» declares %d entity containers", s.Namespace, len(s.EntityContainer))
	}
	return def, nil
}

func (t *csdlStructuredType) def() edm.StructuredTypeDef {
	def := edm.StructuredTypeDef{Name: t.Name, BaseType: t.BaseType, Abstract: t.Abstract, OpenType: t.OpenType}
	for _, p := range t.Properties {
		pd := &edm.PropertyDef{Name: p.Name, Nullable: p.Nullable, DefaultValue: p.DefaultValue, FacetsDef: p.csdlFacets.def()}
		pd.Type, pd.Collection = edm.ParseTypeRef(p.Type)
		def.Properties = append(def.Properties, pd)
	}
	for _, n := range t.NavigationProperties {
		nd := &edm.NavigationPropertyDef{Name: n.Name, Nullable: n.Nullable, Partner: n.Partner, ContainsTarget: n.ContainsTarget}
		nd.Type, nd.Collection = edm.ParseTypeRef(n.Type)
		for _, c := range n.ReferentialConstraints {
			nd.ReferentialConstraints = append(nd.ReferentialConstraints,
				&edm.ReferentialConstraintDef{Property: c.Property, ReferencedProperty: c.ReferencedProperty})
		}
		def.NavigationProperties = append(def.NavigationProperties, nd)
	}
	return def
}

func (f *csdlFacets) def() edm.FacetsDef {
	return edm.FacetsDef{
		MaxLength: atoiOrNil(f.MaxLength),
		Precision: atoiOrNil(f.Precision),
		Scale:     atoiOrNil(f.Scale),
		Unicode:   f.Unicode,
		SRID:      f.SRID,
	}
}

func (o *csdlOperation) def() *edm.OperationDef {
	def := &edm.OperationDef{Name: o.Name, IsBound: o.IsBound, IsComposable: o.IsComposable, EntitySetPath: o.EntitySetPath}
	for _, p := range o.Parameters {
		pd := &edm.ParameterDef{Name: p.Name, Nullable: p.Nullable, FacetsDef: p.csdlFacets.def()}
		pd.Type, pd.Collection = edm.ParseTypeRef(p.Type)
		def.Parameters = append(def.Parameters, pd)
	}
	if r := o.ReturnType; r != nil {
		rd := &edm.ReturnTypeDef{Nullable: r.Nullable}
		rd.Type, rd.Collection = edm.ParseTypeRef(r.Type)
		def.ReturnType = rd
	}
	return def
}

func (c *csdlEntityContainer) def() *edm.EntityContainerDef {
	def := &edm.EntityContainerDef{Name: c.Name}
	for _, es := range c.EntitySets {
		def.EntitySets = append(def.EntitySets, &edm.EntitySetDef{
			Name:                       es.Name,
			EntityType:                 es.EntityType,
			IncludeInServiceDocument:   es.IncludeInServiceDocument,
			NavigationPropertyBindings: bindingDefs(es.NavigationPropertyBindings),
		})
	}
	for _, s := range c.Singletons {
		def.Singletons = append(def.Singletons, &edm.SingletonDef{
			Name:                       s.Name,
			Type:                       s.Type,
			NavigationPropertyBindings: bindingDefs(s.NavigationPropertyBindings),
		})
	}
	for _, a := range c.ActionImports {
		def.ActionImports = append(def.ActionImports, &edm.ActionImportDef{Name: a.Name, Action: a.Action, EntitySet: a.EntitySet})
	}
	for _, f := range c.FunctionImports {
		def.FunctionImports = append(def.FunctionImports, &edm.FunctionImportDef{
			Name: f.Name, Function: f.Function, EntitySet: f.EntitySet, IncludeInServiceDocument: f.IncludeInServiceDocument,
		})
	}
	return def
}

func bindingDefs(bb []csdlNavigationPropertyBinding) []*edm.NavigationPropertyBindingDef {
	var defs []*edm.NavigationPropertyBindingDef
	for _, b := range bb {
		defs = append(defs, &edm.NavigationPropertyBindingDef{Path: b.Path, Target: b.Target})
	}
	return defs
}

func atoiOrNil(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
