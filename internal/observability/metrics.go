// Package observability exposes Prometheus metrics for the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "timbiriche_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// CatalogDegraded counts catalog reads that degraded to an empty
	// result because the store was unavailable. Without this counter an
	// empty page is indistinguishable from a legitimately empty catalog.
	CatalogDegraded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "timbiriche_catalog_degraded_total",
		Help: "Catalog reads that returned empty results due to storage errors",
	}, []string{"view"})

	// CacheInvalidations counts view invalidation signals by view key.
	CacheInvalidations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "timbiriche_cache_invalidations_total",
		Help: "Total cache invalidation signals by view",
	}, []string{"view"})

	// ListingMutations counts listing lifecycle operations by type and outcome.
	ListingMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "timbiriche_listing_mutations_total",
		Help: "Listing lifecycle mutations by operation and outcome",
	}, []string{"operation", "outcome"})
)
