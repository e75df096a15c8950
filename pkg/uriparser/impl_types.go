/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"slices"
	"strconv"

	"github.com/voedger/odata/pkg/edm"
)

func booleanType() edm.IType { return edm.PrimitiveTypeOf(edm.PrimitiveKind_Boolean) }

func primitiveType(k edm.PrimitiveKind) edm.IType { return edm.PrimitiveTypeOf(k) }

// Returns is t primitive kind k. Type definitions are reduced to underlying type
func isPrimitive(t edm.IType, k edm.PrimitiveKind) bool {
	return t != nil && edm.PrimitiveKindOf(t) == k
}

func isNumeric(t edm.IType) bool {
	return t != nil && edm.PrimitiveKindOf(t).IsNumeric()
}

// Returns nil for typed nil pointers
func typeOrNil(t edm.IType) edm.IType {
	switch v := t.(type) {
	case *edm.EntityType:
		if v == nil {
			return nil
		}
	case *edm.ComplexType:
		if v == nil {
			return nil
		}
	case *edm.PrimitiveType:
		if v == nil {
			return nil
		}
	case *edm.EnumType:
		if v == nil {
			return nil
		}
	case *edm.TypeDefinition:
		if v == nil {
			return nil
		}
	}
	return t
}

func structuredOf(t edm.IType) *edm.StructuredType {
	switch t := t.(type) {
	case *edm.EntityType:
		return &t.StructuredType
	case *edm.ComplexType:
		return &t.StructuredType
	}
	return nil
}

// Returns base type of entity or complex type, nil if none
func baseType(t edm.IType) edm.IType {
	switch t := t.(type) {
	case *edm.EntityType:
		if b := t.BaseType(); b != nil {
			return b
		}
	case *edm.ComplexType:
		if b := t.BaseType(); b != nil {
			return b
		}
	}
	return nil
}

func typeName(t edm.IType) string {
	if t == nil {
		return nullLiteral
	}
	return t.QName().String()
}

func (ep *exprParser) checkNoCollection(e Expression) error {
	if isCollection(e) {
		return errSemantic(SemanticErrorKey_CollectionNotAllowed, "collection-valued operand is not allowed")
	}
	return nil
}

func (ep *exprParser) checkBoolean(e Expression) error {
	if err := ep.checkNoCollection(e); err != nil {
		return err
	}
	if t := e.Type(); t != nil && !isPrimitive(t, edm.PrimitiveKind_Boolean) {
		return errSemantic(SemanticErrorKey_IncompatibleTypes, "boolean operand expected, found «%s»", typeName(t))
	}
	return nil
}

func (ep *exprParser) checkNumeric(e Expression) error {
	if t := e.Type(); t != nil && !isNumeric(t) {
		return errSemantic(SemanticErrorKey_IncompatibleTypes, "numeric operand expected, found «%s»", typeName(t))
	}
	return nil
}

// Builds binary node, checks operand types and determines result type
func (ep *exprParser) binary(left Expression, op BinaryOperator, right Expression) (Expression, error) {
	if err := ep.checkNoCollection(left); err != nil {
		return nil, err
	}
	if err := ep.checkNoCollection(right); err != nil {
		return nil, err
	}
	lt, rt := left.Type(), right.Type()
	var typ edm.IType
	switch op {
	case BinaryOperator_Or, BinaryOperator_And:
		if err := ep.checkBoolean(left); err != nil {
			return nil, err
		}
		if err := ep.checkBoolean(right); err != nil {
			return nil, err
		}
		typ = booleanType()
	case BinaryOperator_Eq, BinaryOperator_Ne:
		if !equalityComparable(lt, rt) {
			return nil, errIncompatibleOperands(op, lt, rt)
		}
		typ = booleanType()
	case BinaryOperator_Gt, BinaryOperator_Ge, BinaryOperator_Lt, BinaryOperator_Le:
		if !relationalComparable(lt, rt) {
			return nil, errIncompatibleOperands(op, lt, rt)
		}
		typ = booleanType()
	default:
		t, ok := arithmeticType(op, lt, rt)
		if !ok {
			return nil, errIncompatibleOperands(op, lt, rt)
		}
		typ = t
	}
	return &Binary{Left: left, Operator: op, Right: right, Typ: typ}, nil
}

func errIncompatibleOperands(op BinaryOperator, lt, rt edm.IType) error {
	return errSemantic(SemanticErrorKey_IncompatibleTypes, "operands of «%v» have incompatible types «%s» and «%s»", op, typeName(lt), typeName(rt))
}

// Same type, or both primitive and comparable: same primitive kind or both numeric
func equalityComparable(lt, rt edm.IType) bool {
	if lt == nil || rt == nil {
		return true
	}
	if lt.QName() == rt.QName() {
		return true
	}
	lk, rk := edm.PrimitiveKindOf(lt), edm.PrimitiveKindOf(rt)
	if lk == edm.PrimitiveKind_null || rk == edm.PrimitiveKind_null {
		return false
	}
	return lk == rk || (lk.IsNumeric() && rk.IsNumeric())
}

// Same enumeration, or orderable primitives which are comparable
func relationalComparable(lt, rt edm.IType) bool {
	if le, ok := lt.(*edm.EnumType); ok {
		re, ok := rt.(*edm.EnumType)
		return rt == nil || (ok && le.QName() == re.QName())
	}
	if _, ok := rt.(*edm.EnumType); ok {
		return lt == nil
	}
	for _, t := range []edm.IType{lt, rt} {
		if t != nil && !slices.Contains(orderableKinds, edm.PrimitiveKindOf(t)) {
			return false
		}
	}
	return equalityComparable(lt, rt)
}

// Result type of add, sub, mul, div and mod. Returns false if operands are not applicable
func arithmeticType(op BinaryOperator, lt, rt edm.IType) (edm.IType, bool) {
	lk, rk := edm.PrimitiveKindOf(lt), edm.PrimitiveKindOf(rt)

	if op == BinaryOperator_Add || op == BinaryOperator_Sub {
		if t, ok, temporal := temporalType(op, lt, rt, lk, rk); temporal {
			return t, ok
		}
	}

	for i, t := range []edm.IType{lt, rt} {
		if t != nil && !([]edm.PrimitiveKind{lk, rk}[i]).IsNumeric() {
			return nil, false
		}
	}
	if lt == nil || rt == nil {
		return nil, true
	}

	switch op {
	case BinaryOperator_Mul:
		if lk == edm.PrimitiveKind_Byte && rk == edm.PrimitiveKind_Byte {
			return primitiveType(edm.PrimitiveKind_Int32), true
		}
	case BinaryOperator_Div:
		if lk == edm.PrimitiveKind_Byte && rk == edm.PrimitiveKind_Byte {
			return primitiveType(edm.PrimitiveKind_Byte), true
		}
	case BinaryOperator_Mod:
		return primitiveType(modKind(lk, rk)), true
	}
	return primitiveType(promotedKind(lk, rk)), true
}

// Date and time arithmetic. temporal is false if neither operand is temporal
func temporalType(op BinaryOperator, lt, rt edm.IType, lk, rk edm.PrimitiveKind) (t edm.IType, ok bool, temporal bool) {
	isTemporal := func(k edm.PrimitiveKind) bool {
		return k == edm.PrimitiveKind_Date || k == edm.PrimitiveKind_DateTimeOffset || k == edm.PrimitiveKind_Duration
	}
	if !isTemporal(lk) && !isTemporal(rk) {
		return nil, false, false
	}
	switch {
	case lt == nil || rt == nil:
		return nil, true, true
	case rk == edm.PrimitiveKind_Duration && isTemporal(lk):
		return lt, true, true
	case op == BinaryOperator_Sub && lk == rk && (lk == edm.PrimitiveKind_Date || lk == edm.PrimitiveKind_DateTimeOffset):
		return primitiveType(edm.PrimitiveKind_Duration), true, true
	}
	return nil, false, true
}

// Numeric promotion of add and sub
func promotedKind(lk, rk edm.PrimitiveKind) edm.PrimitiveKind {
	either := func(kk ...edm.PrimitiveKind) bool {
		return slices.Contains(kk, lk) || slices.Contains(kk, rk)
	}
	switch {
	case either(edm.PrimitiveKind_Double, edm.PrimitiveKind_Single):
		return edm.PrimitiveKind_Double
	case either(edm.PrimitiveKind_Decimal, edm.PrimitiveKind_Int64):
		return edm.PrimitiveKind_Decimal
	case either(edm.PrimitiveKind_Int32):
		return edm.PrimitiveKind_Int64
	case either(edm.PrimitiveKind_Int16):
		return edm.PrimitiveKind_Int32
	}
	return edm.PrimitiveKind_Int16
}

// Rank of numeric kinds, narrowest first
var numericRank = []edm.PrimitiveKind{
	edm.PrimitiveKind_SByte, edm.PrimitiveKind_Byte, edm.PrimitiveKind_Int16, edm.PrimitiveKind_Int32,
	edm.PrimitiveKind_Int64, edm.PrimitiveKind_Single, edm.PrimitiveKind_Double,
}

// Result of mod: Decimal if any operand is Decimal, Single if any operand is Single, else the narrower
func modKind(lk, rk edm.PrimitiveKind) edm.PrimitiveKind {
	switch {
	case lk == edm.PrimitiveKind_Decimal || rk == edm.PrimitiveKind_Decimal:
		return edm.PrimitiveKind_Decimal
	case lk == edm.PrimitiveKind_Single || rk == edm.PrimitiveKind_Single:
		return edm.PrimitiveKind_Single
	}
	if slices.Index(numericRank, lk) <= slices.Index(numericRank, rk) {
		return lk
	}
	return rk
}

// Implicit widening of primitive kinds
var widening = map[edm.PrimitiveKind][]edm.PrimitiveKind{
	edm.PrimitiveKind_SByte:   {edm.PrimitiveKind_Int16},
	edm.PrimitiveKind_Byte:    {edm.PrimitiveKind_Int16},
	edm.PrimitiveKind_Int16:   {edm.PrimitiveKind_Int32, edm.PrimitiveKind_Single},
	edm.PrimitiveKind_Int32:   {edm.PrimitiveKind_Int64},
	edm.PrimitiveKind_Int64:   {edm.PrimitiveKind_Decimal},
	edm.PrimitiveKind_Decimal: {edm.PrimitiveKind_Double},
	edm.PrimitiveKind_Single:  {edm.PrimitiveKind_Double},

	edm.PrimitiveKind_GeographyPoint:           {edm.PrimitiveKind_Geography},
	edm.PrimitiveKind_GeographyLineString:      {edm.PrimitiveKind_Geography},
	edm.PrimitiveKind_GeographyPolygon:         {edm.PrimitiveKind_Geography},
	edm.PrimitiveKind_GeographyMultiPoint:      {edm.PrimitiveKind_Geography},
	edm.PrimitiveKind_GeographyMultiLineString: {edm.PrimitiveKind_Geography},
	edm.PrimitiveKind_GeographyMultiPolygon:    {edm.PrimitiveKind_Geography},
	edm.PrimitiveKind_GeographyCollection:      {edm.PrimitiveKind_Geography},
	edm.PrimitiveKind_GeometryPoint:            {edm.PrimitiveKind_Geometry},
	edm.PrimitiveKind_GeometryLineString:       {edm.PrimitiveKind_Geometry},
	edm.PrimitiveKind_GeometryPolygon:          {edm.PrimitiveKind_Geometry},
	edm.PrimitiveKind_GeometryMultiPoint:       {edm.PrimitiveKind_Geometry},
	edm.PrimitiveKind_GeometryMultiLineString:  {edm.PrimitiveKind_Geometry},
	edm.PrimitiveKind_GeometryMultiPolygon:     {edm.PrimitiveKind_Geometry},
	edm.PrimitiveKind_GeometryCollection:       {edm.PrimitiveKind_Geometry},
}

// Returns is value of actual type acceptable where target type is expected.
// Nil type on either side is compatible
func isCompatible(target, actual edm.IType) bool {
	if target == nil || actual == nil {
		return true
	}
	if target.Kind().IsStructured() {
		return edm.CompatibleTo(actual, target)
	}
	if target.Kind() == edm.TypeKind_Enum || actual.Kind() == edm.TypeKind_Enum {
		return target.QName() == actual.QName()
	}
	tk, ak := edm.PrimitiveKindOf(target), edm.PrimitiveKindOf(actual)
	if tk == edm.PrimitiveKind_null || ak == edm.PrimitiveKind_null {
		return target.QName() == actual.QName()
	}
	return widens(ak, tk)
}

// Returns is from equal to or implicitly widened to to
func widens(from, to edm.PrimitiveKind) bool {
	if from == to {
		return true
	}
	for _, w := range widening[from] {
		if widens(w, to) {
			return true
		}
	}
	return false
}

// Returns is integer literal in range of integral kind
func integerFits(text string, k edm.PrimitiveKind) bool {
	var err error
	switch k {
	case edm.PrimitiveKind_Byte:
		_, err = strconv.ParseUint(text, 10, 8)
	case edm.PrimitiveKind_SByte:
		_, err = strconv.ParseInt(text, 10, 8)
	case edm.PrimitiveKind_Int16:
		_, err = strconv.ParseInt(text, 10, 16)
	case edm.PrimitiveKind_Int32:
		_, err = strconv.ParseInt(text, 10, 32)
	case edm.PrimitiveKind_Int64:
		_, err = strconv.ParseInt(text, 10, 64)
	default:
		return false
	}
	return err == nil
}
