package model

import "sort"

// SortByName orders records by name ascending. Equal names keep their
// relative order.
func SortByName(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].name < records[j].name
	})
}

// IsSortedByName reports whether records are in ascending name order.
func IsSortedByName(records []Record) bool {
	return sort.SliceIsSorted(records, func(i, j int) bool {
		return records[i].name < records[j].name
	})
}
