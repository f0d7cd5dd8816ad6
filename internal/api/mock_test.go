package api

import (
	"context"

	"xrate/internal/service"
)

// mockRateService implements service.RateServiceInterface for testing.
type mockRateService struct {
	getRateFunc      func(ctx context.Context, code, year, month, day string) (*service.RateResult, error)
	getCrossRateFunc func(ctx context.Context, from, to, year, month, day string) (*service.RateResult, error)
}

func (m *mockRateService) GetRate(ctx context.Context, code, year, month, day string) (*service.RateResult, error) {
	return m.getRateFunc(ctx, code, year, month, day)
}

func (m *mockRateService) GetCrossRate(ctx context.Context, from, to, year, month, day string) (*service.RateResult, error) {
	return m.getCrossRateFunc(ctx, from, to, year, month, day)
}
