package search

import (
	"cmdwiki/internal/domain"
)

// Engine is the part of the filter engine the search service drives
type Engine interface {
	Filters() domain.Filters
	SetQuery(query string) bool
	MatchCount() int
}
