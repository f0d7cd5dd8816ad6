// Package provider reads daily exchange rates from a remote XML feed.
package provider

import (
	"context"
)

// BaseCurrency is the implicit reference currency of the feed. Every rate in
// a day's document is the number of units of the listed currency per one
// unit of BaseCurrency.
const BaseCurrency = "EUR"

// DocumentFetcher retrieves and parses the rate document at a URL.
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) (*RateDocument, error)
}

// RatesReader defines the rate lookups offered over a day's document.
type RatesReader interface {
	GetRate(ctx context.Context, code string, year, month, day int) (float64, error)
	GetCrossRate(ctx context.Context, from, to string, year, month, day int) (float64, error)
}
