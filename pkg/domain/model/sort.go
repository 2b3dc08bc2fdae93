package model

// SortMode selects the comparator applied to the catalog before rendering.
// Values other than the constants below keep the listing order.
type SortMode string

const (
	SortByName     SortMode = "name"
	SortByNameDesc SortMode = "name-desc"
	SortByDate     SortMode = "date"
	SortByDateOld  SortMode = "date-old"
)
