package provider

import "errors"

// ErrFetchFailed indicates the day's document could not be retrieved.
var ErrFetchFailed = errors.New("fetch failed")

// ErrMalformedDocument indicates the fetched content is not a usable rate document.
var ErrMalformedDocument = errors.New("malformed document")

// ErrCurrencyNotFound indicates the requested code is absent from the document.
var ErrCurrencyNotFound = errors.New("currency not found")

// ErrMalformedRate indicates a rate value is not a plain decimal number.
var ErrMalformedRate = errors.New("malformed rate value")

// ErrInvalidRate indicates a rate that cannot be used as a divisor.
var ErrInvalidRate = errors.New("invalid rate")
