package domain

// DefaultPageSize is the number of rows shown per table page.
const DefaultPageSize = 10

// PageSpec selects a 1-based page of a fixed size.
type PageSpec struct {
	Page int
	Size int
}
