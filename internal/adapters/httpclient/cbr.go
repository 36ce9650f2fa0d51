package httpclient

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"currencymon/internal/domain"
)

// CBRClient reads the Central Bank of Russia daily rates feed
// (XML_daily.asp) and normalizes it into a RateSnapshot. Every failure wraps
// domain.ErrSourceUnavailable so callers can treat all transport and parse
// problems uniformly.
type CBRClient struct {
	http    *http.Client
	feedURL string
}

func NewCBRClient(httpClient *http.Client, feedURL string) *CBRClient {
	return &CBRClient{http: httpClient, feedURL: feedURL}
}

type valCurs struct {
	Valutes []valute `xml:"Valute"`
}

type valute struct {
	NumCode  string `xml:"NumCode"`
	CharCode string `xml:"CharCode"`
	Nominal  int    `xml:"Nominal"`
	Name     string `xml:"Name"`
	Value    string `xml:"Value"`
}

func (c *CBRClient) Fetch(ctx context.Context) (domain.RateSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create feed request: %v", domain.ErrSourceUnavailable, err)
	}
	req.Header.Set("User-Agent", "currencymon/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: feed request failed: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected feed status: %s", domain.ErrSourceUnavailable, resp.Status)
	}

	// the feed declares windows-1251
	decoder := xml.NewDecoder(resp.Body)
	decoder.CharsetReader = charsetReader

	var payload valCurs
	if err = decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode feed payload: %v", domain.ErrSourceUnavailable, err)
	}
	if len(payload.Valutes) == 0 {
		return nil, fmt.Errorf("%w: feed payload contains no currencies", domain.ErrSourceUnavailable)
	}

	snap := make(domain.RateSnapshot, len(payload.Valutes))
	for _, v := range payload.Valutes {
		code := domain.NormalizeCode(v.CharCode)
		nominal := v.Nominal
		if nominal <= 0 {
			nominal = 1
		}

		// feed quotes a comma-decimal value per nominal units
		raw, parseErr := strconv.ParseFloat(strings.ReplaceAll(v.Value, ",", "."), 64)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: bad value %q for %s: %v", domain.ErrSourceUnavailable, v.Value, code, parseErr)
		}

		snap[code] = domain.SnapshotEntry{
			NumCode: v.NumCode,
			Name:    strings.TrimSpace(v.Name),
			Value:   raw / float64(nominal),
			Nominal: nominal,
		}
	}
	return snap, nil
}
