/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uritoken

// Raw lexer token names
const (
	tokWhitespace     = "Whitespace"
	tokString         = "String"
	tokDuration       = "Duration"
	tokBinary         = "Binary"
	tokGeo            = "Geo"
	tokEnum           = "Enum"
	tokDateTimeOffset = "DateTimeOffset"
	tokDate           = "Date"
	tokGuid           = "Guid"
	tokTimeOfDay      = "TimeOfDay"
	tokNumber         = "Number"
	tokAlias          = "Alias"
	tokKeyword        = "Keyword"
	tokIdent          = "Ident"
	tokPunct          = "Punct"
	tokOther          = "Other"
)

const (
	identStart = `[\p{L}\p{Nl}_]`
	identRest  = `[\p{L}\p{Nl}\p{Nd}\p{Mn}\p{Mc}\p{Pc}\p{Cf}]`
	ident      = identStart + identRest + `*`
	seconds    = `(?::\d{2}(?:\.\d{1,12})?)?`
)

// Rules are tried in order, the first matching rule wins
var rules = []struct{ name, pattern string }{
	{tokWhitespace, `[ \t]+`},
	{tokDuration, `(?i:duration)'[^']*'`},
	{tokBinary, `(?i:binary)'[^']*'`},
	{tokGeo, `(?i:geography|geometry)'[^']*'`},
	{tokEnum, ident + `(?:\.` + ident + `)+'(?:[^']|'')*'`},
	{tokString, `'(?:[^']|'')*'`},
	{tokGuid, `[0-9A-Fa-f]{8}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{12}`},
	{tokDateTimeOffset, `\d{4}-\d{2}-\d{2}[Tt]\d{2}:\d{2}` + seconds + `(?:[Zz]|[+-]\d{2}:\d{2})`},
	{tokDate, `\d{4}-\d{2}-\d{2}`},
	{tokTimeOfDay, `\d{2}:\d{2}` + seconds},
	{tokNumber, `-?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?`},
	{tokAlias, `@` + ident},
	{tokKeyword, `\$[A-Za-z]+`},
	{tokIdent, ident},
	{tokPunct, `[()\[\]{},;/=*:.\-]`},
	{tokOther, `(?s:.)`},
}

const maxIdentifierLength = 128

var punctuation = map[Kind]string{
	Kind_Open:  "(",
	Kind_Close: ")",
	Kind_Comma: ",",
	Kind_Semi:  ";",
	Kind_Slash: "/",
	Kind_Eq:    "=",
	Kind_Star:  "*",
	Kind_Colon: ":",
	Kind_Dot:   ".",
}

var keywords = map[Kind]string{
	Kind_It:      "$it",
	Kind_Root:    "$root",
	Kind_Count:   "$count",
	Kind_Ref:     "$ref",
	Kind_Levels:  "$levels",
	Kind_Filter:  "$filter",
	Kind_Select:  "$select",
	Kind_Expand:  "$expand",
	Kind_OrderBy: "$orderby",
	Kind_Skip:    "$skip",
	Kind_Top:     "$top",
	Kind_Search:  "$search",
}

// Binary operators must be surrounded by whitespace
var binaryOperators = map[Kind]string{
	Kind_OrOperator:                  "or",
	Kind_AndOperator:                 "and",
	Kind_EqualsOperator:              "eq",
	Kind_NotEqualsOperator:           "ne",
	Kind_GreaterThanOperator:         "gt",
	Kind_GreaterThanOrEqualsOperator: "ge",
	Kind_LessThanOperator:            "lt",
	Kind_LessThanOrEqualsOperator:    "le",
	Kind_HasOperator:                 "has",
	Kind_AddOperator:                 "add",
	Kind_SubOperator:                 "sub",
	Kind_MulOperator:                 "mul",
	Kind_DivOperator:                 "div",
	Kind_ModOperator:                 "mod",
}

var methods = map[Kind]string{
	Kind_CastMethod:               "cast",
	Kind_CeilingMethod:            "ceiling",
	Kind_ConcatMethod:             "concat",
	Kind_ContainsMethod:           "contains",
	Kind_DateMethod:               "date",
	Kind_DayMethod:                "day",
	Kind_EndsWithMethod:           "endswith",
	Kind_FloorMethod:              "floor",
	Kind_FractionalSecondsMethod:  "fractionalseconds",
	Kind_GeoDistanceMethod:        "geo.distance",
	Kind_GeoIntersectsMethod:      "geo.intersects",
	Kind_GeoLengthMethod:          "geo.length",
	Kind_HourMethod:               "hour",
	Kind_IndexOfMethod:            "indexof",
	Kind_IsOfMethod:               "isof",
	Kind_LengthMethod:             "length",
	Kind_MaxDateTimeMethod:        "maxdatetime",
	Kind_MinDateTimeMethod:        "mindatetime",
	Kind_MinuteMethod:             "minute",
	Kind_MonthMethod:              "month",
	Kind_NowMethod:                "now",
	Kind_RoundMethod:              "round",
	Kind_SecondMethod:             "second",
	Kind_StartsWithMethod:         "startswith",
	Kind_SubstringMethod:          "substring",
	Kind_TimeMethod:               "time",
	Kind_ToLowerMethod:            "tolower",
	Kind_TotalOffsetMinutesMethod: "totaloffsetminutes",
	Kind_TotalSecondsMethod:       "totalseconds",
	Kind_ToUpperMethod:            "toupper",
	Kind_TrimMethod:               "trim",
	Kind_YearMethod:               "year",
}

type geoKind struct {
	geography bool
	shape     string
}

var geoKinds = map[Kind]geoKind{
	Kind_GeographyPoint:           {true, "point"},
	Kind_GeographyLineString:      {true, "linestring"},
	Kind_GeographyPolygon:         {true, "polygon"},
	Kind_GeographyMultiPoint:      {true, "multipoint"},
	Kind_GeographyMultiLineString: {true, "multilinestring"},
	Kind_GeographyMultiPolygon:    {true, "multipolygon"},
	Kind_GeographyCollection:      {true, "collection"},
	Kind_GeometryPoint:            {false, "point"},
	Kind_GeometryLineString:       {false, "linestring"},
	Kind_GeometryPolygon:          {false, "polygon"},
	Kind_GeometryMultiPoint:       {false, "multipoint"},
	Kind_GeometryMultiLineString:  {false, "multilinestring"},
	Kind_GeometryMultiPolygon:     {false, "multipolygon"},
	Kind_GeometryCollection:       {false, "collection"},
}

// Search lexer token names
const (
	searchWhitespace = "Whitespace"
	searchOpen       = "Open"
	searchClose      = "Close"
	searchPhrase     = "Phrase"
	searchWord       = "Word"
	searchOther      = "Other"
)

var searchRules = []struct{ name, pattern string }{
	{searchWhitespace, `\s+`},
	{searchOpen, `\(`},
	{searchClose, `\)`},
	{searchPhrase, `"(?:[^"\\]|\\.)*"`},
	{searchWord, `[^\s()"]+`},
	{searchOther, `(?s:.)`},
}

var searchOperators = map[string]SearchKind{
	"AND": SearchKind_And,
	"OR":  SearchKind_Or,
	"NOT": SearchKind_Not,
}
