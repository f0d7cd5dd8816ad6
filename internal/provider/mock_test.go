package provider

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, url string) (*RateDocument, error) {
	args := m.Called(ctx, url)
	doc, _ := args.Get(0).(*RateDocument)
	return doc, args.Error(1)
}
