/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edm

// Raw schema definitions supplied by ISchemaProvider.
//
// Type references are qualified names, optionally alias-qualified. «Collection(NS.Type)» form is accepted
// as well as the Collection flag.

type SchemaDef struct {
	Namespace       string               `yaml:"namespace" json:"namespace"`
	Alias           string               `yaml:"alias,omitempty" json:"alias,omitempty"`
	References      []*ReferenceDef      `yaml:"references,omitempty" json:"references,omitempty"`
	EntityTypes     []*EntityTypeDef     `yaml:"entityTypes,omitempty" json:"entityTypes,omitempty"`
	ComplexTypes    []*ComplexTypeDef    `yaml:"complexTypes,omitempty" json:"complexTypes,omitempty"`
	EnumTypes       []*EnumTypeDef       `yaml:"enumTypes,omitempty" json:"enumTypes,omitempty"`
	TypeDefinitions []*TypeDefinitionDef `yaml:"typeDefinitions,omitempty" json:"typeDefinitions,omitempty"`
	Terms           []*TermDef           `yaml:"terms,omitempty" json:"terms,omitempty"`
	Actions         []*OperationDef      `yaml:"actions,omitempty" json:"actions,omitempty"`
	Functions       []*OperationDef      `yaml:"functions,omitempty" json:"functions,omitempty"`
	EntityContainer *EntityContainerDef  `yaml:"entityContainer,omitempty" json:"entityContainer,omitempty"`
}

// Included namespace of referenced schema
type ReferenceDef struct {
	Namespace string `yaml:"namespace" json:"namespace"`
	Alias     string `yaml:"alias,omitempty" json:"alias,omitempty"`
}

type StructuredTypeDef struct {
	Name                 string                   `yaml:"name" json:"name"`
	BaseType             string                   `yaml:"baseType,omitempty" json:"baseType,omitempty"`
	Abstract             bool                     `yaml:"abstract,omitempty" json:"abstract,omitempty"`
	OpenType             bool                     `yaml:"openType,omitempty" json:"openType,omitempty"`
	Properties           []*PropertyDef           `yaml:"properties,omitempty" json:"properties,omitempty"`
	NavigationProperties []*NavigationPropertyDef `yaml:"navigationProperties,omitempty" json:"navigationProperties,omitempty"`
}

type EntityTypeDef struct {
	StructuredTypeDef `yaml:",inline"`
	Key               []*PropertyRefDef `yaml:"key,omitempty" json:"key,omitempty"`
	HasStream         bool              `yaml:"hasStream,omitempty" json:"hasStream,omitempty"`
}

type ComplexTypeDef struct {
	StructuredTypeDef `yaml:",inline"`
}

// Key property reference. Name is a path, complex members are separated by «/»
type PropertyRefDef struct {
	Name  string `yaml:"name" json:"name"`
	Alias string `yaml:"alias,omitempty" json:"alias,omitempty"`
}

// Facets shared by properties, parameters and type definitions
type FacetsDef struct {
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	Precision *int   `yaml:"precision,omitempty" json:"precision,omitempty"`
	Scale     *int   `yaml:"scale,omitempty" json:"scale,omitempty"`
	Unicode   *bool  `yaml:"unicode,omitempty" json:"unicode,omitempty"`
	SRID      string `yaml:"srid,omitempty" json:"srid,omitempty"`
}

type PropertyDef struct {
	Name         string `yaml:"name" json:"name"`
	Type         string `yaml:"type" json:"type"`
	Collection   bool   `yaml:"collection,omitempty" json:"collection,omitempty"`
	Nullable     *bool  `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	DefaultValue string `yaml:"defaultValue,omitempty" json:"defaultValue,omitempty"`
	FacetsDef    `yaml:",inline"`
}

type NavigationPropertyDef struct {
	Name                   string                      `yaml:"name" json:"name"`
	Type                   string                      `yaml:"type" json:"type"`
	Collection             bool                        `yaml:"collection,omitempty" json:"collection,omitempty"`
	Nullable               *bool                       `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	Partner                string                      `yaml:"partner,omitempty" json:"partner,omitempty"`
	ContainsTarget         bool                        `yaml:"containsTarget,omitempty" json:"containsTarget,omitempty"`
	ReferentialConstraints []*ReferentialConstraintDef `yaml:"referentialConstraints,omitempty" json:"referentialConstraints,omitempty"`
}

type ReferentialConstraintDef struct {
	Property           string `yaml:"property" json:"property"`
	ReferencedProperty string `yaml:"referencedProperty" json:"referencedProperty"`
}

type EnumTypeDef struct {
	Name           string           `yaml:"name" json:"name"`
	UnderlyingType string           `yaml:"underlyingType,omitempty" json:"underlyingType,omitempty"`
	IsFlags        bool             `yaml:"isFlags,omitempty" json:"isFlags,omitempty"`
	Members        []*EnumMemberDef `yaml:"members" json:"members"`
}

// Enum member. Members without value are numbered by declaration order
type EnumMemberDef struct {
	Name  string `yaml:"name" json:"name"`
	Value *int64 `yaml:"value,omitempty" json:"value,omitempty"`
}

type TypeDefinitionDef struct {
	Name           string `yaml:"name" json:"name"`
	UnderlyingType string `yaml:"underlyingType" json:"underlyingType"`
	FacetsDef      `yaml:",inline"`
}

type TermDef struct {
	Name         string   `yaml:"name" json:"name"`
	Type         string   `yaml:"type" json:"type"`
	Collection   bool     `yaml:"collection,omitempty" json:"collection,omitempty"`
	Nullable     *bool    `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	BaseTerm     string   `yaml:"baseTerm,omitempty" json:"baseTerm,omitempty"`
	AppliesTo    []string `yaml:"appliesTo,omitempty" json:"appliesTo,omitempty"`
	DefaultValue string   `yaml:"defaultValue,omitempty" json:"defaultValue,omitempty"`
}

// Action or function definition. Bound operations take binding parameter first
type OperationDef struct {
	Name          string          `yaml:"name" json:"name"`
	IsBound       bool            `yaml:"isBound,omitempty" json:"isBound,omitempty"`
	IsComposable  bool            `yaml:"isComposable,omitempty" json:"isComposable,omitempty"`
	EntitySetPath string          `yaml:"entitySetPath,omitempty" json:"entitySetPath,omitempty"`
	Parameters    []*ParameterDef `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	ReturnType    *ReturnTypeDef  `yaml:"returnType,omitempty" json:"returnType,omitempty"`
}

type ParameterDef struct {
	Name       string `yaml:"name" json:"name"`
	Type       string `yaml:"type" json:"type"`
	Collection bool   `yaml:"collection,omitempty" json:"collection,omitempty"`
	Nullable   *bool  `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	FacetsDef  `yaml:",inline"`
}

type ReturnTypeDef struct {
	Type       string `yaml:"type" json:"type"`
	Collection bool   `yaml:"collection,omitempty" json:"collection,omitempty"`
	Nullable   *bool  `yaml:"nullable,omitempty" json:"nullable,omitempty"`
}

type EntityContainerDef struct {
	// Namespace of schema declaring container. Filled by provider
	Namespace       string               `yaml:"-" json:"namespace"`
	Name            string               `yaml:"name" json:"name"`
	EntitySets      []*EntitySetDef      `yaml:"entitySets,omitempty" json:"entitySets,omitempty"`
	Singletons      []*SingletonDef      `yaml:"singletons,omitempty" json:"singletons,omitempty"`
	ActionImports   []*ActionImportDef   `yaml:"actionImports,omitempty" json:"actionImports,omitempty"`
	FunctionImports []*FunctionImportDef `yaml:"functionImports,omitempty" json:"functionImports,omitempty"`
}

type EntitySetDef struct {
	Name                       string                          `yaml:"name" json:"name"`
	EntityType                 string                          `yaml:"entityType" json:"entityType"`
	IncludeInServiceDocument   *bool                           `yaml:"includeInServiceDocument,omitempty" json:"includeInServiceDocument,omitempty"`
	NavigationPropertyBindings []*NavigationPropertyBindingDef `yaml:"navigationPropertyBindings,omitempty" json:"navigationPropertyBindings,omitempty"`
}

type SingletonDef struct {
	Name                       string                          `yaml:"name" json:"name"`
	Type                       string                          `yaml:"type" json:"type"`
	NavigationPropertyBindings []*NavigationPropertyBindingDef `yaml:"navigationPropertyBindings,omitempty" json:"navigationPropertyBindings,omitempty"`
}

type NavigationPropertyBindingDef struct {
	Path   string `yaml:"path" json:"path"`
	Target string `yaml:"target" json:"target"`
}

type ActionImportDef struct {
	Name      string `yaml:"name" json:"name"`
	Action    string `yaml:"action" json:"action"`
	EntitySet string `yaml:"entitySet,omitempty" json:"entitySet,omitempty"`
}

type FunctionImportDef struct {
	Name                     string `yaml:"name" json:"name"`
	Function                 string `yaml:"function" json:"function"`
	EntitySet                string `yaml:"entitySet,omitempty" json:"entitySet,omitempty"`
	IncludeInServiceDocument bool   `yaml:"includeInServiceDocument,omitempty" json:"includeInServiceDocument,omitempty"`
}
