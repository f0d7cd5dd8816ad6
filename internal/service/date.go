package service

import (
	"fmt"
	"strconv"
)

// ParseDate converts path segments into a Date. Month must be within 1-12 and
// day within 1-31; combinations such as 31 February are passed through.
func ParseDate(year, month, day string) (Date, error) {
	y, err := parseDigits(year, 4, 4)
	if err != nil {
		return Date{}, fmt.Errorf("%w: year %q", ErrInvalidDate, year)
	}
	m, err := parseDigits(month, 1, 2)
	if err != nil || m < 1 || m > 12 {
		return Date{}, fmt.Errorf("%w: month %q", ErrInvalidDate, month)
	}
	d, err := parseDigits(day, 1, 2)
	if err != nil || d < 1 || d > 31 {
		return Date{}, fmt.Errorf("%w: day %q", ErrInvalidDate, day)
	}
	return Date{Year: y, Month: m, Day: d}, nil
}

// parseDigits accepts only ASCII digits, between minLen and maxLen of them.
func parseDigits(s string, minLen, maxLen int) (int, error) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, strconv.ErrSyntax
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}
