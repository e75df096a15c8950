/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edm

// EDM type.
//
// Implemented by *PrimitiveType, *EnumType, *TypeDefinition, *ComplexType, *EntityType and *Term.
type IType interface {
	QName() QName
	Kind() TypeKind

	isType()
}

// Catalog of schema elements.
//
// All resolvers accept qualified names with namespace or alias.
// Unknown names are resolved to nil, not to error.
//
// @ConcurrentAccess
type ICatalog interface {
	EntityType(QName) *EntityType
	ComplexType(QName) *ComplexType
	EnumType(QName) *EnumType
	TypeDefinition(QName) *TypeDefinition
	Term(QName) *Term

	// Returns type by name: primitive («Edm» namespace), type definition, enumeration, complex or entity type
	Type(QName) IType

	// Unbound actions are not overloadable
	UnboundAction(QName) *Operation

	// Returns all unbound overloads of function
	UnboundFunctions(QName) []*Operation

	// Returns unbound function overload with specified parameter names. Order of names is not significant
	UnboundFunction(name QName, parameterNames []string) *Operation

	BoundAction(name, bindingType QName, isBindingCollection bool) *Operation
	BoundFunction(name, bindingType QName, isBindingCollection bool, parameterNames []string) *Operation

	// Returns all bound overloads of function
	BoundFunctionsWithName(QName) []*Operation

	// Returns entity container. NullQName is the default container
	EntityContainer(QName) *EntityContainer

	// Replaces alias in qualified name with namespace. Returns name as is if no alias matches
	ResolveAlias(QName) QName

	// Returns is namespace (or alias) declared in catalog
	HasNamespace(string) bool
}

// Supplies raw schema element definitions.
//
// Each method returns nil if element is not defined. Names passed are canonical: aliases are already resolved.
type ISchemaProvider interface {
	// Alias -> namespace
	Aliases() map[string]string

	// Namespaces declared by provider
	Namespaces() []string

	EntityType(QName) *EntityTypeDef
	ComplexType(QName) *ComplexTypeDef
	EnumType(QName) *EnumTypeDef
	TypeDefinition(QName) *TypeDefinitionDef
	Term(QName) *TermDef

	// All overloads of action with name
	Actions(QName) []*OperationDef

	// All overloads of function with name
	Functions(QName) []*OperationDef

	// Returns entity container definition. NullQName is the default container
	EntityContainer(QName) *EntityContainerDef
}

// Resolves namespaces which are not declared in catalog
type ICrossReferences interface {
	// Returns catalog declaring namespace, or nil
	Catalog(namespace string) ICatalog
}
