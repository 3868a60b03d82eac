package query

import (
	"cmdwiki/internal/domain"
)

// CatalogSource is the read-only catalog the engine derives views from
type CatalogSource interface {
	Snapshot() *domain.Catalog
	Version() uint64
}

// cacheKey identifies one memoised view
type cacheKey struct {
	filters domain.Filters
	version uint64
}

// Stats reports memo cache activity
type Stats struct {
	Hits   int
	Misses int
	Size   int
}
