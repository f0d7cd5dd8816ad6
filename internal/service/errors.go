package service

import "errors"

// ErrInvalidDate indicates the year, month or day is not usable.
var ErrInvalidDate = errors.New("invalid date")

// ErrMissingCurrency indicates a currency code parameter is empty.
var ErrMissingCurrency = errors.New("currency code is required")
