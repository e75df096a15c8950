/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edmschema

import "github.com/voedger/odata/pkg/edm"

func errDuplicateElement(ns, name string) error {
	return edm.ErrAlreadyExists("schema element «%s.%s»", ns, name)
}

func errDuplicateOverload(key string) error {
	return edm.ErrAlreadyExists("operation overload «%s»", key)
}

func errCyclicBaseType(name edm.QName) error {
	return edm.ErrCyclic("base type chain of «%v»", name)
}
