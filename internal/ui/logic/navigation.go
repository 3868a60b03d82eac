package logic

import (
	"cmdwiki/internal/domain"
)

// Row is one cursor position in the flattened view
type Row struct {
	Category      string
	CategoryIndex int // position of the category within the view
	Entry         domain.ViewEntry
}

// Flatten lists the entries of a view in display order
func Flatten(view domain.FilteredView) []Row {
	rows := make([]Row, 0, view.EntryCount())
	for ci, cat := range view {
		for _, e := range cat.Entries {
			rows = append(rows, Row{Category: cat.Name, CategoryIndex: ci, Entry: e})
		}
	}
	return rows
}

// IndexOfKey returns the row holding key, or -1
func IndexOfKey(rows []Row, key domain.EntryKey) int {
	for i, r := range rows {
		if r.Entry.Key == key {
			return i
		}
	}
	return -1
}

// NextCategoryStart returns the first row of the category after the one at
// index, or index when it is already in the last category
func NextCategoryStart(rows []Row, index int) int {
	if index < 0 || index >= len(rows) {
		return index
	}
	current := rows[index].CategoryIndex
	for i := index + 1; i < len(rows); i++ {
		if rows[i].CategoryIndex != current {
			return i
		}
	}
	return index
}

// PreviousCategoryStart returns the first row of the current category, or of
// the previous category when index is already on a first row
func PreviousCategoryStart(rows []Row, index int) int {
	if index <= 0 || index >= len(rows) {
		return index
	}
	start := categoryStart(rows, index)
	if start < index {
		return start
	}
	return categoryStart(rows, index-1)
}

func categoryStart(rows []Row, index int) int {
	current := rows[index].CategoryIndex
	for index > 0 && rows[index-1].CategoryIndex == current {
		index--
	}
	return index
}
