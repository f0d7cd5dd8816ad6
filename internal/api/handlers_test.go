package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"xrate/internal/provider"
	"xrate/internal/service"
)

// withDate attaches chi URL params for the given date to req.
func withDate(req *http.Request, year, month, day string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("year", year)
	rctx.URLParams.Add("month", month)
	rctx.URLParams.Add("day", day)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestHandleGetRate(t *testing.T) {
	t.Run("known currency returns 200", func(t *testing.T) {
		svc := &mockRateService{
			getRateFunc: func(ctx context.Context, code, year, month, day string) (*service.RateResult, error) {
				if year != "2010" || month != "06" || day != "25" {
					t.Errorf("unexpected date %s/%s/%s", year, month, day)
				}
				return &service.RateResult{
					Base:  provider.BaseCurrency,
					Quote: code,
					Date:  service.Date{Year: 2010, Month: 6, Day: 25},
					Rate:  1.2271,
				}, nil
			},
		}

		req := withDate(httptest.NewRequest(http.MethodGet, "/rates/2010/06/25?currency=USD", nil), "2010", "06", "25")
		w := httptest.NewRecorder()

		HandleGetRate(svc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var resp RateResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Base != "EUR" || resp.Currency != "USD" || resp.Date != "2010-06-25" || resp.Rate != 1.2271 {
			t.Errorf("Unexpected response %+v", resp)
		}
	})

	t.Run("missing currency returns 400", func(t *testing.T) {
		svc := &mockRateService{}

		req := withDate(httptest.NewRequest(http.MethodGet, "/rates/2010/06/25", nil), "2010", "06", "25")
		w := httptest.NewRecorder()

		HandleGetRate(svc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	errorCases := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid date returns 400", fmt.Errorf("%w: month \"13\"", service.ErrInvalidDate), http.StatusBadRequest},
		{"unknown currency returns 404", fmt.Errorf("%w: \"XYZ\"", provider.ErrCurrencyNotFound), http.StatusNotFound},
		{"fetch failure returns 502", fmt.Errorf("%w: status 404", provider.ErrFetchFailed), http.StatusBadGateway},
		{"malformed document returns 502", provider.ErrMalformedDocument, http.StatusBadGateway},
		{"malformed rate returns 502", provider.ErrMalformedRate, http.StatusBadGateway},
		{"deadline returns 504", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"fetch deadline returns 504", fmt.Errorf("%w: %w", provider.ErrFetchFailed, context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"fetch canceled returns 504", fmt.Errorf("%w: %w", provider.ErrFetchFailed, context.Canceled), http.StatusGatewayTimeout},
		{"unexpected error returns 500", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockRateService{
				getRateFunc: func(context.Context, string, string, string, string) (*service.RateResult, error) {
					return nil, tc.err
				},
			}

			req := withDate(httptest.NewRequest(http.MethodGet, "/rates/2010/13/25?currency=XYZ", nil), "2010", "13", "25")
			w := httptest.NewRecorder()

			HandleGetRate(svc).ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Errorf("Expected status %d, got %d", tc.status, w.Code)
			}

			var resp ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.Error == "" {
				t.Error("Expected error message")
			}
		})
	}
}

func TestHandleGetCrossRate(t *testing.T) {
	t.Run("valid pair returns 200", func(t *testing.T) {
		svc := &mockRateService{
			getCrossRateFunc: func(ctx context.Context, from, to, year, month, day string) (*service.RateResult, error) {
				return &service.RateResult{
					Base:  from,
					Quote: to,
					Date:  service.Date{Year: 2010, Month: 6, Day: 25},
					Rate:  1.5,
				}, nil
			},
		}

		req := withDate(httptest.NewRequest(http.MethodGet, "/rates/2010/6/25/cross?from=USD&to=GBP", nil), "2010", "6", "25")
		w := httptest.NewRecorder()

		HandleGetCrossRate(svc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var resp CrossRateResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.From != "USD" || resp.To != "GBP" || resp.Rate != 1.5 || resp.Date != "2010-06-25" {
			t.Errorf("Unexpected response %+v", resp)
		}
	})

	t.Run("missing to returns 400", func(t *testing.T) {
		svc := &mockRateService{}

		req := withDate(httptest.NewRequest(http.MethodGet, "/rates/2010/06/25/cross?from=USD", nil), "2010", "06", "25")
		w := httptest.NewRecorder()

		HandleGetCrossRate(svc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("zero divisor returns 502", func(t *testing.T) {
		svc := &mockRateService{
			getCrossRateFunc: func(context.Context, string, string, string, string, string) (*service.RateResult, error) {
				return nil, fmt.Errorf("%w: XXX rate is zero", provider.ErrInvalidRate)
			},
		}

		req := withDate(httptest.NewRequest(http.MethodGet, "/rates/2010/06/25/cross?from=USD&to=XXX", nil), "2010", "06", "25")
		w := httptest.NewRecorder()

		HandleGetCrossRate(svc).ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("Expected status 502, got %d", w.Code)
		}

		var resp ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Error != "invalid rate: XXX rate is zero" {
			t.Errorf("Unexpected error message %q", resp.Error)
		}
	})
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestHandleReadyz(t *testing.T) {
	cases := map[string]int{
		"http://api.finance.xaviermedia.com/api/": http.StatusOK,
		"https://feed.example/rates/":             http.StatusOK,
		"":                                        http.StatusServiceUnavailable,
		"relative/path/":                          http.StatusServiceUnavailable,
		"http://":                                 http.StatusServiceUnavailable,
	}
	for base, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(base).ServeHTTP(w, req)

		if w.Code != want {
			t.Errorf("HandleReadyz(%q): expected status %d, got %d", base, want, w.Code)
		}
	}
}
