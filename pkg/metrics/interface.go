/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 *
 */

package metrics

import "time"

// Metrics of catalog lookups.
//
// Naming best practices: https://prometheus.io/docs/practices/naming/
//
// @ConcurrentAccess
type ICatalogMetrics interface {
	// Increases lookups counter of table with result («hit», «miss», «notfound», «xref»)
	Lookup(table, result string)

	// Observes duration of materialization of schema element from provider
	Materialized(table string, d time.Duration)
}
