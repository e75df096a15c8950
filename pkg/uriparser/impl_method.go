/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"github.com/voedger/odata/pkg/edm"
)

func kinds(kk ...edm.PrimitiveKind) []edm.PrimitiveKind { return kk }

var (
	stringKinds     = kinds(edm.PrimitiveKind_String)
	integerKinds    = kinds(edm.PrimitiveKind_SByte, edm.PrimitiveKind_Byte, edm.PrimitiveKind_Int16, edm.PrimitiveKind_Int32, edm.PrimitiveKind_Int64)
	dateKinds       = kinds(edm.PrimitiveKind_Date, edm.PrimitiveKind_DateTimeOffset)
	timeKinds       = kinds(edm.PrimitiveKind_TimeOfDay, edm.PrimitiveKind_DateTimeOffset)
	dateTimeKinds   = kinds(edm.PrimitiveKind_DateTimeOffset)
	durationKinds   = kinds(edm.PrimitiveKind_Duration)
	roundingKinds   = kinds(edm.PrimitiveKind_Decimal, edm.PrimitiveKind_Single, edm.PrimitiveKind_Double)
	pointKinds      = kinds(edm.PrimitiveKind_GeographyPoint, edm.PrimitiveKind_GeometryPoint)
	lineStringKinds = kinds(edm.PrimitiveKind_GeographyLineString, edm.PrimitiveKind_GeometryLineString)
	polygonKinds    = kinds(edm.PrimitiveKind_GeographyPolygon, edm.PrimitiveKind_GeometryPolygon)
	stringPair      = [][]edm.PrimitiveKind{stringKinds, stringKinds}
	noParams        = [][]edm.PrimitiveKind{}
)

func returns(k edm.PrimitiveKind) func([]Expression) edm.IType {
	return func([]Expression) edm.IType { return primitiveType(k) }
}

// Double for Double and Single arguments, else Decimal
func roundingResult(params []Expression) edm.IType {
	switch edm.PrimitiveKindOf(params[0].Type()) {
	case edm.PrimitiveKind_Double, edm.PrimitiveKind_Single:
		return primitiveType(edm.PrimitiveKind_Double)
	}
	return primitiveType(edm.PrimitiveKind_Decimal)
}

var methodSignatures = map[MethodKind]methodSignature{
	MethodKind_Contains:           {stringPair, 2, returns(edm.PrimitiveKind_Boolean)},
	MethodKind_StartsWith:         {stringPair, 2, returns(edm.PrimitiveKind_Boolean)},
	MethodKind_EndsWith:           {stringPair, 2, returns(edm.PrimitiveKind_Boolean)},
	MethodKind_Length:             {[][]edm.PrimitiveKind{stringKinds}, 1, returns(edm.PrimitiveKind_Int32)},
	MethodKind_IndexOf:            {stringPair, 2, returns(edm.PrimitiveKind_Int32)},
	MethodKind_Substring:          {[][]edm.PrimitiveKind{stringKinds, integerKinds, integerKinds}, 2, returns(edm.PrimitiveKind_String)},
	MethodKind_ToLower:            {[][]edm.PrimitiveKind{stringKinds}, 1, returns(edm.PrimitiveKind_String)},
	MethodKind_ToUpper:            {[][]edm.PrimitiveKind{stringKinds}, 1, returns(edm.PrimitiveKind_String)},
	MethodKind_Trim:               {[][]edm.PrimitiveKind{stringKinds}, 1, returns(edm.PrimitiveKind_String)},
	MethodKind_Concat:             {stringPair, 2, returns(edm.PrimitiveKind_String)},
	MethodKind_Year:               {[][]edm.PrimitiveKind{dateKinds}, 1, returns(edm.PrimitiveKind_Int32)},
	MethodKind_Month:              {[][]edm.PrimitiveKind{dateKinds}, 1, returns(edm.PrimitiveKind_Int32)},
	MethodKind_Day:                {[][]edm.PrimitiveKind{dateKinds}, 1, returns(edm.PrimitiveKind_Int32)},
	MethodKind_Hour:               {[][]edm.PrimitiveKind{timeKinds}, 1, returns(edm.PrimitiveKind_Int32)},
	MethodKind_Minute:             {[][]edm.PrimitiveKind{timeKinds}, 1, returns(edm.PrimitiveKind_Int32)},
	MethodKind_Second:             {[][]edm.PrimitiveKind{timeKinds}, 1, returns(edm.PrimitiveKind_Int32)},
	MethodKind_FractionalSeconds:  {[][]edm.PrimitiveKind{timeKinds}, 1, returns(edm.PrimitiveKind_Decimal)},
	MethodKind_TotalSeconds:       {[][]edm.PrimitiveKind{durationKinds}, 1, returns(edm.PrimitiveKind_Decimal)},
	MethodKind_Date:               {[][]edm.PrimitiveKind{dateTimeKinds}, 1, returns(edm.PrimitiveKind_Date)},
	MethodKind_Time:               {[][]edm.PrimitiveKind{dateTimeKinds}, 1, returns(edm.PrimitiveKind_TimeOfDay)},
	MethodKind_TotalOffsetMinutes: {[][]edm.PrimitiveKind{dateTimeKinds}, 1, returns(edm.PrimitiveKind_Int32)},
	MethodKind_MinDateTime:        {noParams, 0, returns(edm.PrimitiveKind_DateTimeOffset)},
	MethodKind_MaxDateTime:        {noParams, 0, returns(edm.PrimitiveKind_DateTimeOffset)},
	MethodKind_Now:                {noParams, 0, returns(edm.PrimitiveKind_DateTimeOffset)},
	MethodKind_Round:              {[][]edm.PrimitiveKind{roundingKinds}, 1, roundingResult},
	MethodKind_Floor:              {[][]edm.PrimitiveKind{roundingKinds}, 1, roundingResult},
	MethodKind_Ceiling:            {[][]edm.PrimitiveKind{roundingKinds}, 1, roundingResult},
	MethodKind_GeoDistance:        {[][]edm.PrimitiveKind{pointKinds, pointKinds}, 2, returns(edm.PrimitiveKind_Double)},
	MethodKind_GeoLength:          {[][]edm.PrimitiveKind{lineStringKinds}, 1, returns(edm.PrimitiveKind_Double)},
	MethodKind_GeoIntersects:      {[][]edm.PrimitiveKind{pointKinds, polygonKinds}, 2, returns(edm.PrimitiveKind_Boolean)},
}

// Checks method arguments and returns result type.
//
// Wrong number of arguments is a syntax error, wrong argument types are semantic errors.
// Arguments of unknown type (null, untyped aliases) are accepted
func (ep *exprParser) checkMethod(kind MethodKind, params []Expression) (edm.IType, error) {
	sig, ok := methodSignatures[kind]
	if !ok {
		return nil, errSemantic(SemanticErrorKey_UnknownFunction, "method «%v» is not supported", kind)
	}
	if len(params) < sig.required || len(params) > len(sig.params) {
		if sig.required == len(sig.params) {
			return nil, ep.errSyntax("method «%v» expects %d arguments, found %d", kind, sig.required, len(params))
		}
		return nil, ep.errSyntax("method «%v» expects %d to %d arguments, found %d", kind, sig.required, len(sig.params), len(params))
	}
	for i, p := range params {
		if err := ep.checkNoCollection(p); err != nil {
			return nil, err
		}
		t := p.Type()
		if t == nil {
			continue
		}
		if !acceptsKind(sig.params[i], edm.PrimitiveKindOf(t)) {
			return nil, errSemantic(SemanticErrorKey_IncompatibleTypes, "argument %d of method «%v» has incompatible type «%s»", i+1, kind, typeName(t))
		}
	}
	return sig.result(params), nil
}

// Returns is argument of kind k acceptable where one of allowed kinds expected. Implicit widening applies
func acceptsKind(allowed []edm.PrimitiveKind, k edm.PrimitiveKind) bool {
	if k == edm.PrimitiveKind_null {
		return false
	}
	for _, a := range allowed {
		if widens(k, a) {
			return true
		}
	}
	return false
}
