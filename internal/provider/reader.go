package provider

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var _ RatesReader = (*RateReader)(nil)

// feedExtension is appended to every day path.
const feedExtension = ".xml"

// RateReader looks up daily rates in documents served under a base URL.
// All requests are relative to the base URL: for a base of
// http://api.finance.xaviermedia.com/api/ the document for 25 June 2010 is
// http://api.finance.xaviermedia.com/api/2010/06/25.xml.
type RateReader struct {
	baseURL string
	fetcher DocumentFetcher
	log     *zap.SugaredLogger
}

// NewRateReader creates a new RateReader. The base URL is not validated here;
// a bad one surfaces as ErrFetchFailed on the first lookup.
func NewRateReader(baseURL string, fetcher DocumentFetcher, logger *zap.SugaredLogger) *RateReader {
	if fetcher == nil {
		fetcher = NewHTTPFetcher(defaultFetchTimeout)
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &RateReader{
		baseURL: baseURL,
		fetcher: fetcher,
		log:     logger,
	}
}

// DayURL forms the document URL for the given date. Month and day are
// zero-padded to two digits; no calendar validation is applied.
func (r *RateReader) DayURL(year, month, day int) string {
	return fmt.Sprintf("%s%d/%02d/%02d%s", r.baseURL, year, month, day, feedExtension)
}

// GetRate returns the rate of code against BaseCurrency on the given date.
func (r *RateReader) GetRate(ctx context.Context, code string, year, month, day int) (float64, error) {
	doc, err := r.fetchDay(ctx, year, month, day)
	if err != nil {
		return 0, err
	}
	return r.lookup(doc, code)
}

// GetCrossRate returns the rate of from against to on the given date, that is
// the number of units of from per one unit of to. The day's document is
// fetched once and used for both lookups.
func (r *RateReader) GetCrossRate(ctx context.Context, from, to string, year, month, day int) (float64, error) {
	doc, err := r.fetchDay(ctx, year, month, day)
	if err != nil {
		return 0, err
	}

	rateFrom, err := r.lookup(doc, from)
	if err != nil {
		return 0, err
	}
	rateTo, err := r.lookup(doc, to)
	if err != nil {
		return 0, err
	}
	if rateTo == 0 {
		return 0, fmt.Errorf("%w: %s rate is zero", ErrInvalidRate, to)
	}

	return rateFrom / rateTo, nil
}

func (r *RateReader) fetchDay(ctx context.Context, year, month, day int) (*RateDocument, error) {
	url := r.DayURL(year, month, day)
	r.log.Debugw("Fetching rate document", "url", url)

	doc, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		r.log.Warnw("Rate document fetch failed", "url", url, "error", err)
		return nil, err
	}
	return doc, nil
}

// lookup finds the first currency_code equal to code and parses the rate at
// the same position. Matching is exact and case-sensitive.
func (r *RateReader) lookup(doc *RateDocument, code string) (float64, error) {
	codes, rates, err := doc.entries()
	if err != nil {
		return 0, err
	}

	for i, c := range codes {
		if c != code {
			continue
		}
		return parseRate(code, rates[i])
	}

	r.log.Warnw("Currency not in rate document", "currency", code, "available", len(codes))
	return 0, fmt.Errorf("%w: %q", ErrCurrencyNotFound, code)
}

// parseRate accepts plain decimal text only, independent of locale.
func parseRate(code, text string) (float64, error) {
	if strings.ContainsAny(text, "xX_") {
		return 0, fmt.Errorf("%w: %s rate %q", ErrMalformedRate, code, text)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s rate %q", ErrMalformedRate, code, text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s rate %q is not finite", ErrMalformedRate, code, text)
	}
	return v, nil
}
