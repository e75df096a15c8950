/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uritoken

import "github.com/alecthomas/participle/v2/lexer"

// Kind is a token kind which a caller may ask the Tokenizer for.
//
// The tokenizer is kind-directed: the caller states which kind it expects
// next and the tokenizer either consumes a matching token or leaves the
// position untouched.
type Kind uint8

const (
	Kind_null Kind = iota

	Kind_EOF
	// Optional whitespace. Always matches.
	Kind_BWS

	Kind_Open
	Kind_Close
	Kind_Comma
	Kind_Semi
	Kind_Slash
	Kind_Eq
	Kind_Star
	Kind_Colon
	Kind_Dot

	// Keywords
	Kind_It
	Kind_Root
	Kind_Count
	Kind_Ref
	Kind_Levels
	Kind_Filter
	Kind_Select
	Kind_Expand
	Kind_OrderBy
	Kind_Skip
	Kind_Top
	Kind_Search
	Kind_Max
	Kind_Any
	Kind_All
	Kind_AscSuffix
	Kind_DescSuffix

	// Literals
	Kind_Null
	Kind_BooleanValue
	Kind_StringValue
	Kind_IntegerValue
	Kind_DecimalValue
	Kind_DoubleValue
	Kind_DateValue
	Kind_DateTimeOffsetValue
	Kind_TimeOfDayValue
	Kind_DurationValue
	Kind_GuidValue
	Kind_BinaryValue
	Kind_EnumValue
	Kind_GeographyPoint
	Kind_GeographyLineString
	Kind_GeographyPolygon
	Kind_GeographyMultiPoint
	Kind_GeographyMultiLineString
	Kind_GeographyMultiPolygon
	Kind_GeographyCollection
	Kind_GeometryPoint
	Kind_GeometryLineString
	Kind_GeometryPolygon
	Kind_GeometryMultiPoint
	Kind_GeometryMultiLineString
	Kind_GeometryMultiPolygon
	Kind_GeometryCollection
	Kind_JSONArrayOrObject

	// Names
	Kind_ODataIdentifier
	Kind_QualifiedName
	Kind_ParameterAliasName

	// Operators
	Kind_OrOperator
	Kind_AndOperator
	Kind_EqualsOperator
	Kind_NotEqualsOperator
	Kind_GreaterThanOperator
	Kind_GreaterThanOrEqualsOperator
	Kind_LessThanOperator
	Kind_LessThanOrEqualsOperator
	Kind_HasOperator
	Kind_AddOperator
	Kind_SubOperator
	Kind_MulOperator
	Kind_DivOperator
	Kind_ModOperator
	Kind_MinusOperator
	Kind_NotOperator

	// Methods. A method token includes the opening parenthesis.
	Kind_CastMethod
	Kind_CeilingMethod
	Kind_ConcatMethod
	Kind_ContainsMethod
	Kind_DateMethod
	Kind_DayMethod
	Kind_EndsWithMethod
	Kind_FloorMethod
	Kind_FractionalSecondsMethod
	Kind_GeoDistanceMethod
	Kind_GeoIntersectsMethod
	Kind_GeoLengthMethod
	Kind_HourMethod
	Kind_IndexOfMethod
	Kind_IsOfMethod
	Kind_LengthMethod
	Kind_MaxDateTimeMethod
	Kind_MinDateTimeMethod
	Kind_MinuteMethod
	Kind_MonthMethod
	Kind_NowMethod
	Kind_RoundMethod
	Kind_SecondMethod
	Kind_StartsWithMethod
	Kind_SubstringMethod
	Kind_TimeMethod
	Kind_ToLowerMethod
	Kind_TotalOffsetMinutesMethod
	Kind_TotalSecondsMethod
	Kind_ToUpperMethod
	Kind_TrimMethod
	Kind_YearMethod

	Kind_count
)

// Tokenizer walks an OData expression text.
//
// Tokenizer is not safe for concurrent use.
type Tokenizer struct {
	input  string
	tokens []lexer.Token
	pos    int
	last   span
}

// Mark is a saved tokenizer position, see Tokenizer.Mark and Tokenizer.Reset
type Mark struct {
	pos  int
	last span
}

type span struct {
	start int
	text  string
}

// SearchKind is a token kind of the $search tokenizer
type SearchKind uint8

const (
	SearchKind_null SearchKind = iota
	SearchKind_Open
	SearchKind_Close
	SearchKind_And
	SearchKind_Or
	SearchKind_Not
	SearchKind_Word
	SearchKind_Phrase
	SearchKind_count
)

// SearchToken is a classified $search token
type SearchToken struct {
	Kind SearchKind
	// Word text, or the unquoted and unescaped phrase
	Text     string
	Position int
}
