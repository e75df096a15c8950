/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edm

import (
	"slices"
	"strings"
)

// Null (empty) QName. Used as the key of the default entity container
var NullQName = QName{}

// Qualified name of schema element: namespace and name.
//
// Namespaces are dotted («Org.OData.Core.V1»), so the name is the part after the last dot.
type QName struct {
	namespace string
	name      string
}

// Builds a qualified name from namespace and name
func NewQName(namespace, name string) QName {
	return QName{namespace: namespace, name: name}
}

// Parses a qualified name from string. Splits at the last dot
func ParseQName(s string) (QName, error) {
	i := strings.LastIndex(s, qNameDelimiter)
	if i <= 0 || i == len(s)-1 {
		return NullQName, ErrInvalidQName(s)
	}
	return NewQName(s[:i], s[i+1:]), nil
}

// Parses a qualified name from string.
//
// # Panics:
//   - if string is not a valid qualified name
func MustParseQName(s string) QName {
	q, err := ParseQName(s)
	if err != nil {
		panic(err)
	}
	return q
}

// Compares two qualified names
func CompareQName(a, b QName) int {
	if a.namespace != b.namespace {
		return strings.Compare(a.namespace, b.namespace)
	}
	return strings.Compare(a.name, b.name)
}

func (qn QName) Namespace() string { return qn.namespace }

func (qn QName) Name() string { return qn.name }

func (qn QName) IsNull() bool { return qn == NullQName }

// Returns «namespace.name», or empty string for NullQName
func (qn QName) String() string {
	if qn.IsNull() {
		return ""
	}
	return qn.namespace + qNameDelimiter + qn.name
}

func (qn QName) MarshalText() ([]byte, error) {
	return []byte(qn.String()), nil
}

func (qn *QName) UnmarshalText(text []byte) (err error) {
	if len(text) == 0 {
		*qn = NullQName
		return nil
	}
	*qn, err = ParseQName(string(text))
	return err
}

// Sorted slice of QNames without duplicates
type QNames []QName

func QNamesFrom(n ...QName) QNames {
	qq := QNames{}
	qq.Add(n...)
	return qq
}

func (qns *QNames) Add(n ...QName) {
	for _, q := range n {
		if i, ok := qns.Find(q); !ok {
			*qns = slices.Insert(*qns, i, q)
		}
	}
}

func (qns QNames) Contains(n QName) bool {
	_, ok := qns.Find(n)
	return ok
}

func (qns QNames) Find(n QName) (int, bool) {
	return slices.BinarySearchFunc(qns, n, CompareQName)
}
