// Package service implements the request-facing rate lookups.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"xrate/internal/provider"
)

// RateServiceInterface defines the operations available for rate lookups.
type RateServiceInterface interface {
	GetRate(ctx context.Context, code, year, month, day string) (*RateResult, error)
	GetCrossRate(ctx context.Context, from, to, year, month, day string) (*RateResult, error)
}

var _ RateServiceInterface = (*RateService)(nil)

// RateService turns request parameters into provider lookups.
type RateService struct {
	reader provider.RatesReader
	log    *zap.SugaredLogger
}

// NewRateService creates a new RateService
func NewRateService(reader provider.RatesReader, logger *zap.SugaredLogger) *RateService {
	return &RateService{
		reader: reader,
		log:    logger,
	}
}

// GetRate returns the rate of code against provider.BaseCurrency on the given day.
func (s *RateService) GetRate(ctx context.Context, code, year, month, day string) (*RateResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrMissingCurrency
	}
	date, err := ParseDate(year, month, day)
	if err != nil {
		return nil, err
	}

	rate, err := s.reader.GetRate(ctx, code, date.Year, date.Month, date.Day)
	if err != nil {
		s.log.Errorw("Rate lookup failed", "currency", code, "date", date.String(), "error", err)
		return nil, err
	}

	s.log.Infow("Rate lookup", "currency", code, "date", date.String(), "rate", rate)
	return &RateResult{
		Base:  provider.BaseCurrency,
		Quote: code,
		Date:  date,
		Rate:  rate,
	}, nil
}

// GetCrossRate returns the number of units of from per one unit of to on the given day.
func (s *RateService) GetCrossRate(ctx context.Context, from, to, year, month, day string) (*RateResult, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" {
		return nil, ErrMissingCurrency
	}
	date, err := ParseDate(year, month, day)
	if err != nil {
		return nil, err
	}

	rate, err := s.reader.GetCrossRate(ctx, from, to, date.Year, date.Month, date.Day)
	if err != nil {
		s.log.Errorw("Cross rate lookup failed", "from", from, "to", to, "date", date.String(), "error", err)
		return nil, err
	}

	s.log.Infow("Cross rate lookup", "from", from, "to", to, "date", date.String(), "rate", rate)
	return &RateResult{
		Base:  from,
		Quote: to,
		Date:  date,
		Rate:  rate,
	}, nil
}
