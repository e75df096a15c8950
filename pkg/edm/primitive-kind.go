/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edm

import "strconv"

// Kind of built-in primitive type
type PrimitiveKind uint8

const (
	PrimitiveKind_null PrimitiveKind = iota
	PrimitiveKind_Binary
	PrimitiveKind_Boolean
	PrimitiveKind_Byte
	PrimitiveKind_Date
	PrimitiveKind_DateTimeOffset
	PrimitiveKind_Decimal
	PrimitiveKind_Double
	PrimitiveKind_Duration
	PrimitiveKind_Guid
	PrimitiveKind_Int16
	PrimitiveKind_Int32
	PrimitiveKind_Int64
	PrimitiveKind_SByte
	PrimitiveKind_Single
	PrimitiveKind_Stream
	PrimitiveKind_String
	PrimitiveKind_TimeOfDay

	PrimitiveKind_Geography
	PrimitiveKind_GeographyPoint
	PrimitiveKind_GeographyLineString
	PrimitiveKind_GeographyPolygon
	PrimitiveKind_GeographyMultiPoint
	PrimitiveKind_GeographyMultiLineString
	PrimitiveKind_GeographyMultiPolygon
	PrimitiveKind_GeographyCollection

	PrimitiveKind_Geometry
	PrimitiveKind_GeometryPoint
	PrimitiveKind_GeometryLineString
	PrimitiveKind_GeometryPolygon
	PrimitiveKind_GeometryMultiPoint
	PrimitiveKind_GeometryMultiLineString
	PrimitiveKind_GeometryMultiPolygon
	PrimitiveKind_GeometryCollection

	PrimitiveKind_count
)

// Names of primitive types inside «Edm» namespace
var primitiveKindNames = [PrimitiveKind_count]string{
	PrimitiveKind_Binary:                   "Binary",
	PrimitiveKind_Boolean:                  "Boolean",
	PrimitiveKind_Byte:                     "Byte",
	PrimitiveKind_Date:                     "Date",
	PrimitiveKind_DateTimeOffset:           "DateTimeOffset",
	PrimitiveKind_Decimal:                  "Decimal",
	PrimitiveKind_Double:                   "Double",
	PrimitiveKind_Duration:                 "Duration",
	PrimitiveKind_Guid:                     "Guid",
	PrimitiveKind_Int16:                    "Int16",
	PrimitiveKind_Int32:                    "Int32",
	PrimitiveKind_Int64:                    "Int64",
	PrimitiveKind_SByte:                    "SByte",
	PrimitiveKind_Single:                   "Single",
	PrimitiveKind_Stream:                   "Stream",
	PrimitiveKind_String:                   "String",
	PrimitiveKind_TimeOfDay:                "TimeOfDay",
	PrimitiveKind_Geography:                "Geography",
	PrimitiveKind_GeographyPoint:           "GeographyPoint",
	PrimitiveKind_GeographyLineString:      "GeographyLineString",
	PrimitiveKind_GeographyPolygon:         "GeographyPolygon",
	PrimitiveKind_GeographyMultiPoint:      "GeographyMultiPoint",
	PrimitiveKind_GeographyMultiLineString: "GeographyMultiLineString",
	PrimitiveKind_GeographyMultiPolygon:    "GeographyMultiPolygon",
	PrimitiveKind_GeographyCollection:      "GeographyCollection",
	PrimitiveKind_Geometry:                 "Geometry",
	PrimitiveKind_GeometryPoint:            "GeometryPoint",
	PrimitiveKind_GeometryLineString:       "GeometryLineString",
	PrimitiveKind_GeometryPolygon:          "GeometryPolygon",
	PrimitiveKind_GeometryMultiPoint:       "GeometryMultiPoint",
	PrimitiveKind_GeometryMultiLineString:  "GeometryMultiLineString",
	PrimitiveKind_GeometryMultiPolygon:     "GeometryMultiPolygon",
	PrimitiveKind_GeometryCollection:       "GeometryCollection",
}

func (k PrimitiveKind) String() string {
	if k > PrimitiveKind_null && k < PrimitiveKind_count {
		return "PrimitiveKind_" + primitiveKindNames[k]
	}
	if k == PrimitiveKind_null {
		return "PrimitiveKind_null"
	}
	return "PrimitiveKind(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// Returns name of primitive type inside «Edm» namespace, e.g. «Int32»
func (k PrimitiveKind) TypeName() string {
	if k < PrimitiveKind_count {
		return primitiveKindNames[k]
	}
	return ""
}

// Returns is kind one of the numeric kinds: integral, Decimal, Single or Double
func (k PrimitiveKind) IsNumeric() bool {
	switch k {
	case PrimitiveKind_Byte, PrimitiveKind_SByte, PrimitiveKind_Int16, PrimitiveKind_Int32, PrimitiveKind_Int64,
		PrimitiveKind_Decimal, PrimitiveKind_Single, PrimitiveKind_Double:
		return true
	}
	return false
}

// Returns is kind an integral kind. Integral kinds can underlay enumerations
func (k PrimitiveKind) IsIntegral() bool {
	switch k {
	case PrimitiveKind_Byte, PrimitiveKind_SByte, PrimitiveKind_Int16, PrimitiveKind_Int32, PrimitiveKind_Int64:
		return true
	}
	return false
}

func (k PrimitiveKind) IsGeography() bool {
	return k >= PrimitiveKind_Geography && k <= PrimitiveKind_GeographyCollection
}

func (k PrimitiveKind) IsGeometry() bool {
	return k >= PrimitiveKind_Geometry && k <= PrimitiveKind_GeometryCollection
}

func (k PrimitiveKind) IsGeospatial() bool {
	return k.IsGeography() || k.IsGeometry()
}
