// This file contains a Massive-backed Provider implementation that retrieves
// daily aggregate bars via Massive HTTP APIs.
//
// Design notes:
//   - Uses raw HTTP calls instead of the official Massive SDK
//   - Supports rate-limiting retries and fallback providers
//   - Logging is intentionally verbose at Debug level for diagnostics
package data

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/contactkeval/option-lattice/internal/logger"
)

// massiveDataProvider implements the Provider interface using Massive APIs.
type massiveDataProvider struct {
	// APIKey used for authenticating requests with Massive.
	APIKey string

	// Client is the HTTP client used to make API requests.
	Client *http.Client

	// BaseURL is the root endpoint for Massive APIs
	// (e.g., https://api.massive.com).
	BaseURL string

	// secondary is an optional fallback provider.
	secondary Provider
}

// massiveAgg represents a single daily aggregate bar from Massive.
type massiveAgg struct {
	Close     float64 `json:"c"`
	High      float64 `json:"h"`
	Low       float64 `json:"l"`
	Open      float64 `json:"o"`
	Timestamp int64   `json:"t"`
	Volume    float64 `json:"v"`
}

// massiveAggsResp models the response of Massive's aggregates API.
type massiveAggsResp struct {
	Results   []massiveAgg `json:"results"`
	Status    string       `json:"status"`
	RequestID string       `json:"request_id"`
	Ticker    string       `json:"ticker"`
}

// NewMassiveDataProvider constructs a Massive-backed data provider with a
// synthetic fallback. The apiKey authenticates every request.
func NewMassiveDataProvider(apiKey string) Provider {
	return &massiveDataProvider{
		APIKey:    apiKey,
		Client:    &http.Client{Timeout: 30 * time.Second},
		BaseURL:   "https://api.massive.com",
		secondary: NewSyntheticProvider(time.Now().UnixNano()),
	}
}

func (m *massiveDataProvider) Secondary() Provider { return m.secondary }

func (m *massiveDataProvider) GetDailyBars(ticker string, lookbackDays int) ([]Bar, error) {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -lookbackDays)

	u := fmt.Sprintf("%s/v2/aggs/ticker/%s/range/1/day/%s/%s?adjusted=true&sort=asc&limit=50000&apiKey=%s",
		m.BaseURL, url.PathEscape(ticker),
		from.Format("2006-01-02"), to.Format("2006-01-02"),
		url.QueryEscape(m.APIKey))

	logger.Debugf("massive: fetching daily bars for %s (%d days)", ticker, lookbackDays)

	resp, err := m.Client.Get(u)
	if err != nil {
		return m.fallback(ticker, lookbackDays, fmt.Errorf("massive aggs request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		// One polite retry after the usual free-tier cooldown.
		logger.Debugf("massive: rate limited, retrying once")
		time.Sleep(15 * time.Second)
		resp2, err := m.Client.Get(u)
		if err != nil {
			return m.fallback(ticker, lookbackDays, fmt.Errorf("massive aggs retry: %w", err))
		}
		defer resp2.Body.Close()
		resp = resp2
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return m.fallback(ticker, lookbackDays,
			fmt.Errorf("massive aggs status %d: %s", resp.StatusCode, string(body)))
	}

	var parsed massiveAggsResp
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return m.fallback(ticker, lookbackDays, fmt.Errorf("massive aggs decode: %w", err))
	}

	bars := make([]Bar, 0, len(parsed.Results))
	for _, a := range parsed.Results {
		bars = append(bars, Bar{
			Date:  time.UnixMilli(a.Timestamp).UTC(),
			Open:  a.Open,
			High:  a.High,
			Low:   a.Low,
			Close: a.Close,
			Vol:   a.Volume,
		})
	}
	logger.Debugf("massive: %d bars for %s (request %s)", len(bars), ticker, parsed.RequestID)
	return bars, nil
}

// fallback delegates to the secondary provider, if any, otherwise reports err.
func (m *massiveDataProvider) fallback(ticker string, lookbackDays int, err error) ([]Bar, error) {
	if m.secondary == nil {
		return nil, err
	}
	logger.Warnf("massive: %v - falling back to %T", err, m.secondary)
	return m.secondary.GetDailyBars(ticker, lookbackDays)
}
