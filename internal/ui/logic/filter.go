package logic

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"cmdwiki/internal/domain"
)

// Fold returns the case-folded form of s used for case-insensitive matching
func Fold(s string) string {
	return cases.Fold().String(s)
}

// MatchesEntry checks whether any searchable field of the entry contains the
// already folded query
func MatchesEntry(entry domain.Entry, foldedQuery string) bool {
	if foldedQuery == "" {
		return true
	}
	if strings.Contains(Fold(entry.Title), foldedQuery) ||
		strings.Contains(Fold(entry.Command), foldedQuery) {
		return true
	}
	return entry.Description != nil && strings.Contains(Fold(*entry.Description), foldedQuery)
}

// ComputeFilteredView derives the visible part of the catalog. It is pure:
// the catalog is only read and equal inputs give equal output.
//
// A selection narrows the catalog to that category (or to nothing when the
// name is unknown). A non-empty query keeps entries whose title, command or
// description contains it case-insensitively; categories left without
// entries are dropped. Catalog order is preserved throughout.
func ComputeFilteredView(c *domain.Catalog, query string, sel domain.Selection) domain.FilteredView {
	view := domain.FilteredView{}
	if c == nil {
		return view
	}

	folded := ""
	if query != "" {
		folded = Fold(query)
	}

	for _, cat := range c.Categories {
		if sel.IsSet() && !sel.Is(cat.Name) {
			continue
		}

		entries := make([]domain.ViewEntry, 0, len(cat.Entries))
		for i, entry := range cat.Entries {
			if query != "" && !MatchesEntry(entry, folded) {
				continue
			}
			entries = append(entries, domain.ViewEntry{
				Key:   domain.EntryKey{Category: cat.Name, Index: i},
				Entry: entry,
			})
		}

		if len(entries) == 0 {
			continue
		}
		view = append(view, domain.ViewCategory{Name: cat.Name, Entries: entries})
	}

	return view
}

// MatchRange finds the first case-insensitive occurrence of query in text and
// returns its byte range in text
func MatchRange(text, query string) (start, end int, ok bool) {
	if query == "" || text == "" {
		return 0, 0, false
	}
	folded := Fold(query)
	if !strings.Contains(Fold(text), folded) {
		return 0, 0, false
	}

	for i := 0; i < len(text); {
		for j := i; j < len(text); {
			_, size := utf8.DecodeRuneInString(text[j:])
			j += size
			candidate := Fold(text[i:j])
			if candidate == folded {
				return i, j, true
			}
			if len(candidate) >= len(folded) {
				break
			}
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return 0, 0, false
}
