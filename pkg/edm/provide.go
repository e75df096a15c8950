/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edm

import "github.com/voedger/odata/pkg/objcache"

func NewDefaultCatalogParams() CatalogParams {
	return CatalogParams{
		CacheProvider: objcache.Unbounded,
		CacheSize:     objcache.DefaultCacheSize,
	}
}

// Creates new catalog over schema provider
func NewCatalog(provider ISchemaProvider, params CatalogParams) *Catalog {
	return newCatalog(provider, params)
}
