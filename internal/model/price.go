package model

import "time"

// PriceCacheEntry is one cached market price. An entry is fresh while its
// age is strictly below the cache expiry window; stale entries are treated
// as absent by readers but stay in the file until the next full replacement.
type PriceCacheEntry struct {
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// PricePoint is one daily price observation in an item's history series.
// Date is a calendar day in YYYY-MM-DD form.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}
