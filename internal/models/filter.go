package models

// TransactionFilter selects transactions by sale month and optional
// search, sold and price constraints. A Month outside 1..12 matches
// nothing.
type TransactionFilter struct {
	Month int

	// Search is matched case-insensitively as a substring of title or
	// description. SearchPrice, when set, is OR-ed with those branches.
	Search      string
	SearchPrice *float64

	Sold *bool

	// MinPrice and MaxPrice are inclusive; PriceAbove is exclusive.
	MinPrice   *float64
	PriceAbove *float64
	MaxPrice   *float64
}

// HasSearch reports whether the filter carries any search branch.
func (f TransactionFilter) HasSearch() bool {
	return f.Search != "" || f.SearchPrice != nil
}
