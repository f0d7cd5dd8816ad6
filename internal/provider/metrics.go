package provider

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ DocumentFetcher = (*InstrumentedFetcher)(nil)

// Fetch outcomes used as the "outcome" label.
const (
	outcomeSuccess   = "success"
	outcomeFetch     = "fetch_failed"
	outcomeMalformed = "malformed_document"
	outcomeOther     = "error"
)

// InstrumentedFetcher wraps a DocumentFetcher with Prometheus metrics.
type InstrumentedFetcher struct {
	next     DocumentFetcher
	fetches  *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewInstrumentedFetcher creates a new InstrumentedFetcher and registers its
// collectors with reg. A nil reg leaves the collectors unregistered.
func NewInstrumentedFetcher(next DocumentFetcher, reg prometheus.Registerer) *InstrumentedFetcher {
	f := &InstrumentedFetcher{
		next: next,
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "xrate",
			Name:      "document_fetches_total",
			Help:      "Rate document fetches by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "xrate",
			Name:      "document_fetch_duration_seconds",
			Help:      "Time spent fetching and parsing a rate document.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(f.fetches, f.duration)
	}
	return f
}

// Fetch delegates to the wrapped fetcher and records the outcome.
func (f *InstrumentedFetcher) Fetch(ctx context.Context, url string) (*RateDocument, error) {
	start := time.Now()
	doc, err := f.next.Fetch(ctx, url)
	f.duration.Observe(time.Since(start).Seconds())
	f.fetches.WithLabelValues(outcome(err)).Inc()
	return doc, err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, ErrFetchFailed):
		return outcomeFetch
	case errors.Is(err, ErrMalformedDocument):
		return outcomeMalformed
	default:
		return outcomeOther
	}
}
