/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edm

import (
	"maps"
	"slices"
	"strings"
)

const (
	collectionPrefix = "Collection("
	collectionSuffix = ")"
)

// Splits type reference «Collection(NS.Type)» to «NS.Type» and collection flag
func ParseTypeRef(s string) (name string, collection bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, collectionPrefix) && strings.HasSuffix(s, collectionSuffix) {
		return s[len(collectionPrefix) : len(s)-len(collectionSuffix)], true
	}
	return s, false
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// Returns names of map sorted
func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

func splitPath(path string) []string {
	return strings.Split(path, "/")
}
