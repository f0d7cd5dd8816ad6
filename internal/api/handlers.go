package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"xrate/internal/service"
)

// RateResponse represents the response for a single currency rate
type RateResponse struct {
	Base     string  `json:"base"`
	Currency string  `json:"currency"`
	Date     string  `json:"date"`
	Rate     float64 `json:"rate"`
}

// CrossRateResponse represents the response for a rate between two currencies
type CrossRateResponse struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

// ReadyResponse represents the readiness response
type ReadyResponse struct {
	Status string `json:"status"`
}

// HandleGetRate returns the rate of one currency against the feed's base
// currency on the day given by the {year}/{month}/{day} path.
//
//	GET /rates/{year}/{month}/{day}?currency=USD
func HandleGetRate(svc service.RateServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("currency")
		if code == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "currency query param is required"})
			return
		}

		res, err := svc.GetRate(r.Context(), code,
			chi.URLParam(r, "year"), chi.URLParam(r, "month"), chi.URLParam(r, "day"))
		if err != nil {
			writeLookupError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, RateResponse{
			Base:     res.Base,
			Currency: res.Quote,
			Date:     res.Date.String(),
			Rate:     res.Rate,
		})
	}
}

// HandleGetCrossRate returns how many units of "from" buy one unit of "to"
// on the given day. Both rates come from a single feed document.
//
//	GET /rates/{year}/{month}/{day}/cross?from=USD&to=GBP
func HandleGetCrossRate(svc service.RateServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		if from == "" || to == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "from and to query params are required"})
			return
		}

		res, err := svc.GetCrossRate(r.Context(), from, to,
			chi.URLParam(r, "year"), chi.URLParam(r, "month"), chi.URLParam(r, "day"))
		if err != nil {
			writeLookupError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, CrossRateResponse{
			From: res.Base,
			To:   res.Quote,
			Date: res.Date.String(),
			Rate: res.Rate,
		})
	}
}

// HandleHealthz always returns 200 OK while the process is serving.
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("OK"))
	}
}

// HandleReadyz reports ready when the feed base URL is an absolute URL.
// The feed itself is not contacted.
func HandleReadyz(feedBaseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := url.Parse(feedBaseURL)
		if err != nil || !u.IsAbs() || u.Host == "" {
			writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "Feed base URL not usable"})
			return
		}

		writeJSON(w, http.StatusOK, ReadyResponse{Status: "ready"})
	}
}
