/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edm

import (
	"github.com/voedger/odata/pkg/metrics"
	"github.com/voedger/odata/pkg/objcache"
)

// Catalog construction parameters
type CatalogParams struct {
	// Backend of memo tables. With bounded backends an evicted element is
	// materialized again, so repeated lookups return equal, not identical, elements
	CacheProvider objcache.CacheProvider

	// Size of each memo table. Ignored by unbounded provider
	CacheSize int

	// Optional resolver of namespaces not declared by schema provider
	CrossReferences ICrossReferences

	// Optional lookup metrics
	Metrics metrics.ICatalogMetrics
}

// Cross references by namespace
type CrossReferences map[string]ICatalog

func (x CrossReferences) Catalog(namespace string) ICatalog {
	return x[namespace]
}
