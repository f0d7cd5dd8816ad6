package service

import "fmt"

// RateResult is a rate returned by the service layer.
//   - single lookup: Base is provider.BaseCurrency, Quote is the requested code.
//   - cross lookup: Base is the "from" code, Quote is the "to" code.
type RateResult struct {
	Base  string
	Quote string
	Date  Date
	Rate  float64
}

// Date is a requested feed day. It is not checked against the calendar.
type Date struct {
	Year  int
	Month int
	Day   int
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
