/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"github.com/voedger/odata/pkg/edm"
	"github.com/voedger/odata/pkg/uritoken"
)

// Parser configuration
type Config struct {
	// Enabled features which are gated by default
	Features Features
	// Maximum nesting of expressions, including parenthesized groups, method arguments, lambdas and aliases
	MaxDepth int
}

// Parses OData expressions and system query options against catalog.
//
// Parser holds no per-request state.
//
// @ConcurrentAccess
type Parser struct {
	cat edm.ICatalog
	cfg Config
}

// Parameter aliases: name with leading «@» → raw value text
type Aliases map[string]string

// Binary operator
type BinaryOperator uint8

const (
	BinaryOperator_null BinaryOperator = iota
	BinaryOperator_Or
	BinaryOperator_And
	BinaryOperator_Eq
	BinaryOperator_Ne
	BinaryOperator_Gt
	BinaryOperator_Ge
	BinaryOperator_Lt
	BinaryOperator_Le
	BinaryOperator_Has
	BinaryOperator_Add
	BinaryOperator_Sub
	BinaryOperator_Mul
	BinaryOperator_Div
	BinaryOperator_Mod
	BinaryOperator_count
)

// Unary operator
type UnaryOperator uint8

const (
	UnaryOperator_null UnaryOperator = iota
	UnaryOperator_Minus
	UnaryOperator_Not
	UnaryOperator_count
)

// Built-in method
type MethodKind uint8

const (
	MethodKind_null MethodKind = iota
	MethodKind_Contains
	MethodKind_StartsWith
	MethodKind_EndsWith
	MethodKind_Length
	MethodKind_IndexOf
	MethodKind_Substring
	MethodKind_ToLower
	MethodKind_ToUpper
	MethodKind_Trim
	MethodKind_Concat
	MethodKind_Year
	MethodKind_Month
	MethodKind_Day
	MethodKind_Hour
	MethodKind_Minute
	MethodKind_Second
	MethodKind_FractionalSeconds
	MethodKind_TotalSeconds
	MethodKind_Date
	MethodKind_Time
	MethodKind_TotalOffsetMinutes
	MethodKind_MinDateTime
	MethodKind_MaxDateTime
	MethodKind_Now
	MethodKind_Round
	MethodKind_Floor
	MethodKind_Ceiling
	MethodKind_GeoDistance
	MethodKind_GeoLength
	MethodKind_GeoIntersects
	MethodKind_Cast
	MethodKind_IsOf
	MethodKind_count
)

// Kind of resource path segment
type ResourceKind uint8

const (
	ResourceKind_null ResourceKind = iota
	ResourceKind_EntitySet
	ResourceKind_Singleton
	ResourceKind_Navigation
	ResourceKind_PrimitiveProperty
	ResourceKind_ComplexProperty
	ResourceKind_TypeCast
	ResourceKind_Function
	ResourceKind_Action
	ResourceKind_Count
	ResourceKind_Ref
	ResourceKind_LambdaVariable
	ResourceKind_It
	ResourceKind_Root
	ResourceKind_LambdaAny
	ResourceKind_LambdaAll
	ResourceKind_count
)

// Per-parse state. Created for each top-level parse and for each alias value
type exprParser struct {
	*Parser
	tok        *uritoken.Tokenizer
	referenced edm.IType
	crossjoin  []string
	aliases    Aliases
	// aliases which values are being parsed
	resolving map[string]bool
	// lambda variables in scope, innermost last
	lambdas []*LambdaVariableResource
	depth   int
}

// Resource path under construction
type memberBuilder struct {
	resources []UriResource
	start     edm.IType
}

type operatorToken struct {
	kind uritoken.Kind
	op   BinaryOperator
}

// Parsed function parameter with literal type, if parameter value is literal
type functionArgument struct {
	param *UriParameter
	typ   edm.IType
}

type methodSignature struct {
	// allowed primitive kinds per parameter
	params [][]edm.PrimitiveKind
	// number of required parameters, the rest are optional
	required int
	result   func(params []Expression) edm.IType
}

// Recursive descent over $search tokens
type searchParser struct {
	input    string
	tokens   []uritoken.SearchToken
	pos      int
	maxDepth int
}
