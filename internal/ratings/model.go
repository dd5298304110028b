package ratings

import "time"

// Key partitions ratings by mess, day-of-week and meal, with the item
// already reduced to its normalized dish key.
type Key struct {
	Mess string
	Day  string
	Meal string
	Item string
}

// Record is the running community rating for one key. Rating is the
// incremental mean rounded to one decimal; Count is the number of votes.
type Record struct {
	Rating      float64   `json:"rating"`
	Count       int       `json:"count"`
	LastUpdated time.Time `json:"last_updated"`
}

// Stats aggregates across every rated item.
type Stats struct {
	TotalItems    int     `json:"total_items"`
	TotalRatings  int     `json:"total_ratings"`
	AverageRating float64 `json:"average_rating"`
}

// Activity is broadcast to the live feed when a rating lands.
type Activity struct {
	Type   string    `json:"type"`
	Item   string    `json:"item"`
	Rating int       `json:"rating"`
	Mess   string    `json:"mess"`
	Day    string    `json:"day"`
	Meal   string    `json:"meal"`
	At     time.Time `json:"at"`
}
