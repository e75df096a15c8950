/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package boltstore

import "os"

const (
	bucketAliases         = "aliases"
	bucketNamespaces      = "namespaces"
	bucketEntityTypes     = "entityTypes"
	bucketComplexTypes    = "complexTypes"
	bucketEnumTypes       = "enumTypes"
	bucketTypeDefinitions = "typeDefinitions"
	bucketTerms           = "terms"
	bucketActions         = "actions"
	bucketFunctions       = "functions"
	bucketContainers      = "containers"
	bucketMeta            = "meta"
)

var allBuckets = []string{
	bucketAliases,
	bucketNamespaces,
	bucketEntityTypes,
	bucketComplexTypes,
	bucketEnumTypes,
	bucketTypeDefinitions,
	bucketTerms,
	bucketActions,
	bucketFunctions,
	bucketContainers,
	bucketMeta,
}

// Key in meta bucket with name of default entity container
const metaDefaultContainer = "defaultContainer"

const fileMode os.FileMode = 0o644
