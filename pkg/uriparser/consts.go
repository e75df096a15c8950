/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"github.com/voedger/odata/pkg/edm"
	"github.com/voedger/odata/pkg/uritoken"
)

const DefaultMaxDepth = 100

const (
	nullLiteral         = "null"
	maxInheritanceDepth = 64
)

// System query options
const (
	optionSelect    = "$select"
	optionExpand    = "$expand"
	optionFilter    = "$filter"
	optionOrderBy   = "$orderby"
	optionSearch    = "$search"
	optionTop       = "$top"
	optionSkip      = "$skip"
	optionCount     = "$count"
	optionLevels    = "$levels"
	optionSkipToken = "$skiptoken"
	optionID        = "$id"
	optionFormat    = "$format"
)

// Operators of binary precedence levels, lowest first
var (
	orOperators = []operatorToken{
		{uritoken.Kind_OrOperator, BinaryOperator_Or},
	}
	andOperators = []operatorToken{
		{uritoken.Kind_AndOperator, BinaryOperator_And},
	}
	equalityOperators = []operatorToken{
		{uritoken.Kind_EqualsOperator, BinaryOperator_Eq},
		{uritoken.Kind_NotEqualsOperator, BinaryOperator_Ne},
	}
	relationalOperators = []operatorToken{
		{uritoken.Kind_GreaterThanOperator, BinaryOperator_Gt},
		{uritoken.Kind_GreaterThanOrEqualsOperator, BinaryOperator_Ge},
		{uritoken.Kind_LessThanOperator, BinaryOperator_Lt},
		{uritoken.Kind_LessThanOrEqualsOperator, BinaryOperator_Le},
	}
	additiveOperators = []operatorToken{
		{uritoken.Kind_AddOperator, BinaryOperator_Add},
		{uritoken.Kind_SubOperator, BinaryOperator_Sub},
	}
	multiplicativeOperators = []operatorToken{
		{uritoken.Kind_MulOperator, BinaryOperator_Mul},
		{uritoken.Kind_DivOperator, BinaryOperator_Div},
		{uritoken.Kind_ModOperator, BinaryOperator_Mod},
	}
)

var binaryOperatorNames = [BinaryOperator_count]string{
	BinaryOperator_null: "null",
	BinaryOperator_Or:   "or",
	BinaryOperator_And:  "and",
	BinaryOperator_Eq:   "eq",
	BinaryOperator_Ne:   "ne",
	BinaryOperator_Gt:   "gt",
	BinaryOperator_Ge:   "ge",
	BinaryOperator_Lt:   "lt",
	BinaryOperator_Le:   "le",
	BinaryOperator_Has:  "has",
	BinaryOperator_Add:  "add",
	BinaryOperator_Sub:  "sub",
	BinaryOperator_Mul:  "mul",
	BinaryOperator_Div:  "div",
	BinaryOperator_Mod:  "mod",
}

var unaryOperatorNames = [UnaryOperator_count]string{
	UnaryOperator_null:  "null",
	UnaryOperator_Minus: "-",
	UnaryOperator_Not:   "not",
}

// Tokens of built-in methods. cast and isof are parsed separately
var methodTokens = map[uritoken.Kind]MethodKind{
	uritoken.Kind_ContainsMethod:           MethodKind_Contains,
	uritoken.Kind_StartsWithMethod:         MethodKind_StartsWith,
	uritoken.Kind_EndsWithMethod:           MethodKind_EndsWith,
	uritoken.Kind_LengthMethod:             MethodKind_Length,
	uritoken.Kind_IndexOfMethod:            MethodKind_IndexOf,
	uritoken.Kind_SubstringMethod:          MethodKind_Substring,
	uritoken.Kind_ToLowerMethod:            MethodKind_ToLower,
	uritoken.Kind_ToUpperMethod:            MethodKind_ToUpper,
	uritoken.Kind_TrimMethod:               MethodKind_Trim,
	uritoken.Kind_ConcatMethod:             MethodKind_Concat,
	uritoken.Kind_YearMethod:               MethodKind_Year,
	uritoken.Kind_MonthMethod:              MethodKind_Month,
	uritoken.Kind_DayMethod:                MethodKind_Day,
	uritoken.Kind_HourMethod:               MethodKind_Hour,
	uritoken.Kind_MinuteMethod:             MethodKind_Minute,
	uritoken.Kind_SecondMethod:             MethodKind_Second,
	uritoken.Kind_FractionalSecondsMethod:  MethodKind_FractionalSeconds,
	uritoken.Kind_TotalSecondsMethod:       MethodKind_TotalSeconds,
	uritoken.Kind_DateMethod:               MethodKind_Date,
	uritoken.Kind_TimeMethod:               MethodKind_Time,
	uritoken.Kind_TotalOffsetMinutesMethod: MethodKind_TotalOffsetMinutes,
	uritoken.Kind_MinDateTimeMethod:        MethodKind_MinDateTime,
	uritoken.Kind_MaxDateTimeMethod:        MethodKind_MaxDateTime,
	uritoken.Kind_NowMethod:                MethodKind_Now,
	uritoken.Kind_RoundMethod:              MethodKind_Round,
	uritoken.Kind_FloorMethod:              MethodKind_Floor,
	uritoken.Kind_CeilingMethod:            MethodKind_Ceiling,
	uritoken.Kind_GeoDistanceMethod:        MethodKind_GeoDistance,
	uritoken.Kind_GeoLengthMethod:          MethodKind_GeoLength,
	uritoken.Kind_GeoIntersectsMethod:      MethodKind_GeoIntersects,
}

// Methods are tried in this order, map iteration order is random
var methodTokenOrder = func() []uritoken.Kind {
	res := make([]uritoken.Kind, 0, len(methodTokens))
	for k := uritoken.Kind_null; k < uritoken.Kind_count; k++ {
		if _, ok := methodTokens[k]; ok {
			res = append(res, k)
		}
	}
	return res
}()

var methodNames = [MethodKind_count]string{
	MethodKind_null:               "null",
	MethodKind_Contains:           "contains",
	MethodKind_StartsWith:         "startswith",
	MethodKind_EndsWith:           "endswith",
	MethodKind_Length:             "length",
	MethodKind_IndexOf:            "indexof",
	MethodKind_Substring:          "substring",
	MethodKind_ToLower:            "tolower",
	MethodKind_ToUpper:            "toupper",
	MethodKind_Trim:               "trim",
	MethodKind_Concat:             "concat",
	MethodKind_Year:               "year",
	MethodKind_Month:              "month",
	MethodKind_Day:                "day",
	MethodKind_Hour:               "hour",
	MethodKind_Minute:             "minute",
	MethodKind_Second:             "second",
	MethodKind_FractionalSeconds:  "fractionalseconds",
	MethodKind_TotalSeconds:       "totalseconds",
	MethodKind_Date:               "date",
	MethodKind_Time:               "time",
	MethodKind_TotalOffsetMinutes: "totaloffsetminutes",
	MethodKind_MinDateTime:        "mindatetime",
	MethodKind_MaxDateTime:        "maxdatetime",
	MethodKind_Now:                "now",
	MethodKind_Round:              "round",
	MethodKind_Floor:              "floor",
	MethodKind_Ceiling:            "ceiling",
	MethodKind_GeoDistance:        "geo.distance",
	MethodKind_GeoLength:          "geo.length",
	MethodKind_GeoIntersects:      "geo.intersects",
	MethodKind_Cast:               "cast",
	MethodKind_IsOf:               "isof",
}

var resourceKindNames = [ResourceKind_count]string{
	ResourceKind_null:              "null",
	ResourceKind_EntitySet:         "EntitySet",
	ResourceKind_Singleton:         "Singleton",
	ResourceKind_Navigation:        "Navigation",
	ResourceKind_PrimitiveProperty: "PrimitiveProperty",
	ResourceKind_ComplexProperty:   "ComplexProperty",
	ResourceKind_TypeCast:          "TypeCast",
	ResourceKind_Function:          "Function",
	ResourceKind_Action:            "Action",
	ResourceKind_Count:             "Count",
	ResourceKind_Ref:               "Ref",
	ResourceKind_LambdaVariable:    "LambdaVariable",
	ResourceKind_It:                "It",
	ResourceKind_Root:              "Root",
	ResourceKind_LambdaAny:         "LambdaAny",
	ResourceKind_LambdaAll:         "LambdaAll",
}

// Primitive kinds allowed for relational operators
var orderableKinds = []edm.PrimitiveKind{
	edm.PrimitiveKind_Byte, edm.PrimitiveKind_SByte, edm.PrimitiveKind_Int16, edm.PrimitiveKind_Int32,
	edm.PrimitiveKind_Int64, edm.PrimitiveKind_Decimal, edm.PrimitiveKind_Single, edm.PrimitiveKind_Double,
	edm.PrimitiveKind_Boolean, edm.PrimitiveKind_Guid, edm.PrimitiveKind_String, edm.PrimitiveKind_Date,
	edm.PrimitiveKind_TimeOfDay, edm.PrimitiveKind_DateTimeOffset, edm.PrimitiveKind_Duration,
}

// Primitive kinds allowed in $orderby: orderable and Binary
var sortableKinds = append([]edm.PrimitiveKind{edm.PrimitiveKind_Binary}, orderableKinds...)

// Order in which primitive literals are tried. Integer literals have no fixed kind
var literalKinds = []struct {
	token uritoken.Kind
	kind  edm.PrimitiveKind
}{
	{uritoken.Kind_BooleanValue, edm.PrimitiveKind_Boolean},
	{uritoken.Kind_StringValue, edm.PrimitiveKind_String},
	{uritoken.Kind_DoubleValue, edm.PrimitiveKind_Double},
	{uritoken.Kind_DecimalValue, edm.PrimitiveKind_Decimal},
	{uritoken.Kind_GuidValue, edm.PrimitiveKind_Guid},
	{uritoken.Kind_DateTimeOffsetValue, edm.PrimitiveKind_DateTimeOffset},
	{uritoken.Kind_DateValue, edm.PrimitiveKind_Date},
	{uritoken.Kind_TimeOfDayValue, edm.PrimitiveKind_TimeOfDay},
	{uritoken.Kind_IntegerValue, edm.PrimitiveKind_null},
	{uritoken.Kind_DurationValue, edm.PrimitiveKind_Duration},
	{uritoken.Kind_BinaryValue, edm.PrimitiveKind_Binary},
	{uritoken.Kind_GeographyPoint, edm.PrimitiveKind_GeographyPoint},
	{uritoken.Kind_GeographyLineString, edm.PrimitiveKind_GeographyLineString},
	{uritoken.Kind_GeographyPolygon, edm.PrimitiveKind_GeographyPolygon},
	{uritoken.Kind_GeographyMultiPoint, edm.PrimitiveKind_GeographyMultiPoint},
	{uritoken.Kind_GeographyMultiLineString, edm.PrimitiveKind_GeographyMultiLineString},
	{uritoken.Kind_GeographyMultiPolygon, edm.PrimitiveKind_GeographyMultiPolygon},
	{uritoken.Kind_GeographyCollection, edm.PrimitiveKind_GeographyCollection},
	{uritoken.Kind_GeometryPoint, edm.PrimitiveKind_GeometryPoint},
	{uritoken.Kind_GeometryLineString, edm.PrimitiveKind_GeometryLineString},
	{uritoken.Kind_GeometryPolygon, edm.PrimitiveKind_GeometryPolygon},
	{uritoken.Kind_GeometryMultiPoint, edm.PrimitiveKind_GeometryMultiPoint},
	{uritoken.Kind_GeometryMultiLineString, edm.PrimitiveKind_GeometryMultiLineString},
	{uritoken.Kind_GeometryMultiPolygon, edm.PrimitiveKind_GeometryMultiPolygon},
	{uritoken.Kind_GeometryCollection, edm.PrimitiveKind_GeometryCollection},
}

// Literal token kinds of key values by key property primitive kind
var keyValueTokens = map[edm.PrimitiveKind][]uritoken.Kind{
	edm.PrimitiveKind_Boolean:        {uritoken.Kind_BooleanValue},
	edm.PrimitiveKind_Byte:           {uritoken.Kind_IntegerValue},
	edm.PrimitiveKind_SByte:          {uritoken.Kind_IntegerValue},
	edm.PrimitiveKind_Int16:          {uritoken.Kind_IntegerValue},
	edm.PrimitiveKind_Int32:          {uritoken.Kind_IntegerValue},
	edm.PrimitiveKind_Int64:          {uritoken.Kind_IntegerValue},
	edm.PrimitiveKind_Decimal:        {uritoken.Kind_DecimalValue, uritoken.Kind_IntegerValue},
	edm.PrimitiveKind_Single:         {uritoken.Kind_DoubleValue, uritoken.Kind_DecimalValue, uritoken.Kind_IntegerValue},
	edm.PrimitiveKind_Double:         {uritoken.Kind_DoubleValue, uritoken.Kind_DecimalValue, uritoken.Kind_IntegerValue},
	edm.PrimitiveKind_String:         {uritoken.Kind_StringValue},
	edm.PrimitiveKind_Guid:           {uritoken.Kind_GuidValue},
	edm.PrimitiveKind_Date:           {uritoken.Kind_DateValue},
	edm.PrimitiveKind_DateTimeOffset: {uritoken.Kind_DateTimeOffsetValue},
	edm.PrimitiveKind_TimeOfDay:      {uritoken.Kind_TimeOfDayValue},
	edm.PrimitiveKind_Duration:       {uritoken.Kind_DurationValue},
	edm.PrimitiveKind_Binary:         {uritoken.Kind_BinaryValue},
}

// System query options allowed inside expand, in the order they are tried
var expandOptionKinds = []uritoken.Kind{
	uritoken.Kind_Filter, uritoken.Kind_Select, uritoken.Kind_Expand, uritoken.Kind_OrderBy,
	uritoken.Kind_Skip, uritoken.Kind_Top, uritoken.Kind_Count, uritoken.Kind_Search, uritoken.Kind_Levels,
}

var optionNames = map[uritoken.Kind]string{
	uritoken.Kind_Filter:  optionFilter,
	uritoken.Kind_Select:  optionSelect,
	uritoken.Kind_Expand:  optionExpand,
	uritoken.Kind_OrderBy: optionOrderBy,
	uritoken.Kind_Skip:    optionSkip,
	uritoken.Kind_Top:     optionTop,
	uritoken.Kind_Count:   optionCount,
	uritoken.Kind_Search:  optionSearch,
	uritoken.Kind_Levels:  optionLevels,
}

// Options allowed for «$ref» expand items
var refExpandOptions = map[uritoken.Kind]bool{
	uritoken.Kind_Filter:  true,
	uritoken.Kind_Search:  true,
	uritoken.Kind_OrderBy: true,
	uritoken.Kind_Skip:    true,
	uritoken.Kind_Top:     true,
	uritoken.Kind_Count:   true,
}

// Options which are not allowed for single-valued targets
var collectionOnlyOptions = map[uritoken.Kind]bool{
	uritoken.Kind_OrderBy: true,
	uritoken.Kind_Skip:    true,
	uritoken.Kind_Top:     true,
	uritoken.Kind_Count:   true,
	uritoken.Kind_Search:  true,
}

// System query options which are not allowed for single-valued resources
var collectionOnlyQueryOptions = []string{optionFilter, optionOrderBy, optionSearch, optionTop, optionSkip, optionCount}
