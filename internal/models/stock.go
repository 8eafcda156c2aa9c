package models

import "time"

// Beer represents one purchasable beverage in stock.
type Beer struct {
	// Name is the unique key for the beer.
	Name string `json:"name"`

	// Price is the unit price in whole currency units.
	Price int `json:"price"`

	// Quantity is the number of units currently available.
	// Never negative: a purchase exceeding availability is rejected before mutation.
	Quantity int `json:"quantity"`
}

// Stock is a snapshot of the full inventory.
type Stock struct {
	// LastUpdated is the time of the most recent replenishment or reservation.
	LastUpdated time.Time `json:"last_updated"`

	// Beers lists all known beverages in insertion order.
	Beers []Beer `json:"beers"`
}
