/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uritoken

import "strconv"

var kindNames = [Kind_count]string{
	Kind_null:                        "null",
	Kind_EOF:                         "EOF",
	Kind_BWS:                         "BWS",
	Kind_Open:                        "Open",
	Kind_Close:                       "Close",
	Kind_Comma:                       "Comma",
	Kind_Semi:                        "Semi",
	Kind_Slash:                       "Slash",
	Kind_Eq:                          "Eq",
	Kind_Star:                        "Star",
	Kind_Colon:                       "Colon",
	Kind_Dot:                         "Dot",
	Kind_It:                          "It",
	Kind_Root:                        "Root",
	Kind_Count:                       "Count",
	Kind_Ref:                         "Ref",
	Kind_Levels:                      "Levels",
	Kind_Filter:                      "Filter",
	Kind_Select:                      "Select",
	Kind_Expand:                      "Expand",
	Kind_OrderBy:                     "OrderBy",
	Kind_Skip:                        "Skip",
	Kind_Top:                         "Top",
	Kind_Search:                      "Search",
	Kind_Max:                         "Max",
	Kind_Any:                         "Any",
	Kind_All:                         "All",
	Kind_AscSuffix:                   "AscSuffix",
	Kind_DescSuffix:                  "DescSuffix",
	Kind_Null:                        "Null",
	Kind_BooleanValue:                "BooleanValue",
	Kind_StringValue:                 "StringValue",
	Kind_IntegerValue:                "IntegerValue",
	Kind_DecimalValue:                "DecimalValue",
	Kind_DoubleValue:                 "DoubleValue",
	Kind_DateValue:                   "DateValue",
	Kind_DateTimeOffsetValue:         "DateTimeOffsetValue",
	Kind_TimeOfDayValue:              "TimeOfDayValue",
	Kind_DurationValue:               "DurationValue",
	Kind_GuidValue:                   "GuidValue",
	Kind_BinaryValue:                 "BinaryValue",
	Kind_EnumValue:                   "EnumValue",
	Kind_GeographyPoint:              "GeographyPoint",
	Kind_GeographyLineString:         "GeographyLineString",
	Kind_GeographyPolygon:            "GeographyPolygon",
	Kind_GeographyMultiPoint:         "GeographyMultiPoint",
	Kind_GeographyMultiLineString:    "GeographyMultiLineString",
	Kind_GeographyMultiPolygon:       "GeographyMultiPolygon",
	Kind_GeographyCollection:         "GeographyCollection",
	Kind_GeometryPoint:               "GeometryPoint",
	Kind_GeometryLineString:          "GeometryLineString",
	Kind_GeometryPolygon:             "GeometryPolygon",
	Kind_GeometryMultiPoint:          "GeometryMultiPoint",
	Kind_GeometryMultiLineString:     "GeometryMultiLineString",
	Kind_GeometryMultiPolygon:        "GeometryMultiPolygon",
	Kind_GeometryCollection:          "GeometryCollection",
	Kind_JSONArrayOrObject:           "JSONArrayOrObject",
	Kind_ODataIdentifier:             "ODataIdentifier",
	Kind_QualifiedName:               "QualifiedName",
	Kind_ParameterAliasName:          "ParameterAliasName",
	Kind_OrOperator:                  "OrOperator",
	Kind_AndOperator:                 "AndOperator",
	Kind_EqualsOperator:              "EqualsOperator",
	Kind_NotEqualsOperator:           "NotEqualsOperator",
	Kind_GreaterThanOperator:         "GreaterThanOperator",
	Kind_GreaterThanOrEqualsOperator: "GreaterThanOrEqualsOperator",
	Kind_LessThanOperator:            "LessThanOperator",
	Kind_LessThanOrEqualsOperator:    "LessThanOrEqualsOperator",
	Kind_HasOperator:                 "HasOperator",
	Kind_AddOperator:                 "AddOperator",
	Kind_SubOperator:                 "SubOperator",
	Kind_MulOperator:                 "MulOperator",
	Kind_DivOperator:                 "DivOperator",
	Kind_ModOperator:                 "ModOperator",
	Kind_MinusOperator:               "MinusOperator",
	Kind_NotOperator:                 "NotOperator",
	Kind_CastMethod:                  "CastMethod",
	Kind_CeilingMethod:               "CeilingMethod",
	Kind_ConcatMethod:                "ConcatMethod",
	Kind_ContainsMethod:              "ContainsMethod",
	Kind_DateMethod:                  "DateMethod",
	Kind_DayMethod:                   "DayMethod",
	Kind_EndsWithMethod:              "EndsWithMethod",
	Kind_FloorMethod:                 "FloorMethod",
	Kind_FractionalSecondsMethod:     "FractionalSecondsMethod",
	Kind_GeoDistanceMethod:           "GeoDistanceMethod",
	Kind_GeoIntersectsMethod:         "GeoIntersectsMethod",
	Kind_GeoLengthMethod:             "GeoLengthMethod",
	Kind_HourMethod:                  "HourMethod",
	Kind_IndexOfMethod:               "IndexOfMethod",
	Kind_IsOfMethod:                  "IsOfMethod",
	Kind_LengthMethod:                "LengthMethod",
	Kind_MaxDateTimeMethod:           "MaxDateTimeMethod",
	Kind_MinDateTimeMethod:           "MinDateTimeMethod",
	Kind_MinuteMethod:                "MinuteMethod",
	Kind_MonthMethod:                 "MonthMethod",
	Kind_NowMethod:                   "NowMethod",
	Kind_RoundMethod:                 "RoundMethod",
	Kind_SecondMethod:                "SecondMethod",
	Kind_StartsWithMethod:            "StartsWithMethod",
	Kind_SubstringMethod:             "SubstringMethod",
	Kind_TimeMethod:                  "TimeMethod",
	Kind_ToLowerMethod:               "ToLowerMethod",
	Kind_TotalOffsetMinutesMethod:    "TotalOffsetMinutesMethod",
	Kind_TotalSecondsMethod:          "TotalSecondsMethod",
	Kind_ToUpperMethod:               "ToUpperMethod",
	Kind_TrimMethod:                  "TrimMethod",
	Kind_YearMethod:                  "YearMethod",
}

func (k Kind) String() string {
	if k < Kind_count {
		return kindNames[k]
	}
	return "Kind(" + strconv.FormatUint(uint64(k), 10) + ")"
}

var searchKindNames = [SearchKind_count]string{
	SearchKind_null:   "null",
	SearchKind_Open:   "Open",
	SearchKind_Close:  "Close",
	SearchKind_And:    "And",
	SearchKind_Or:     "Or",
	SearchKind_Not:    "Not",
	SearchKind_Word:   "Word",
	SearchKind_Phrase: "Phrase",
}

func (k SearchKind) String() string {
	if k < SearchKind_count {
		return searchKindNames[k]
	}
	return "SearchKind(" + strconv.FormatUint(uint64(k), 10) + ")"
}
