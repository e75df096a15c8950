/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metrics

// Creates new catalog metrics. Use MustRegister to expose them
func NewCatalogMetrics() *CatalogMetrics {
	return newCatalogMetrics()
}
