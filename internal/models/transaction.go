package models

import (
	"time"
)

// Transaction is a single sale record as delivered by the product feed.
// ID comes from the feed and is not unique in the store.
type Transaction struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Price       float64   `json:"price" db:"price"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	Image       string    `json:"image" db:"image"`
	Sold        bool      `json:"sold" db:"sold"`
	DateOfSale  time.Time `json:"dateOfSale" db:"date_of_sale"`
}

// GroupField names a derived key transactions can be aggregated by.
type GroupField string

const (
	GroupByCategory GroupField = "category"
	GroupBySold     GroupField = "sold"
)

// Group is one bucket of a grouped aggregation. Key holds the group value
// rendered as text ("true"/"false" for sold).
type Group struct {
	Key   string
	Count int64
	Sum   float64
}
