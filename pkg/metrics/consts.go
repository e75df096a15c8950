/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metrics

const (
	namespace = "odata"
	subsystem = "catalog"
)

const (
	labelTable  = "table"
	labelResult = "result"
)

// Lookup result resolved through cross-reference
const ResultCrossReference = "xref"
