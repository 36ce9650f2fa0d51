package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"currencymon/internal/domain"

	"github.com/stretchr/testify/require"
)

const feedPayload = `<?xml version="1.0" encoding="UTF-8"?>
<ValCurs Date="02.09.2026" name="Foreign Currency Market">
	<Valute ID="R01235">
		<NumCode>840</NumCode>
		<CharCode>usd</CharCode>
		<Nominal>1</Nominal>
		<Name>US Dollar</Name>
		<Value>90,5000</Value>
	</Valute>
	<Valute ID="R01820">
		<NumCode>392</NumCode>
		<CharCode>JPY</CharCode>
		<Nominal>100</Nominal>
		<Name>Japanese Yen</Name>
		<Value>61,0000</Value>
	</Valute>
</ValCurs>`

func newTestClient(t *testing.T, handler http.HandlerFunc) *CBRClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewCBRClient(&http.Client{Timeout: 5 * time.Second}, srv.URL)
}

func TestCBRClient_Fetch_NormalizesSnapshot(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(feedPayload))
	})

	snap, err := client.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, snap, 2)

	usd, ok := snap["USD"]
	require.True(t, ok, "char code must be normalized to uppercase")
	require.Equal(t, "840", usd.NumCode)
	require.Equal(t, "US Dollar", usd.Name)
	require.Equal(t, 90.5, usd.Value)
	require.Equal(t, 1, usd.Nominal)

	jpy := snap["JPY"]
	require.InDelta(t, 0.61, jpy.Value, 1e-9, "value must be per single unit")
	require.Equal(t, 100, jpy.Nominal)
}

func TestCBRClient_Fetch_BadStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Fetch(context.Background())
	require.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestCBRClient_Fetch_MalformedPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<ValCurs><Valute><Value>oops"))
	})

	_, err := client.Fetch(context.Background())
	require.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestCBRClient_Fetch_EmptyFeed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<?xml version="1.0"?><ValCurs></ValCurs>`))
	})

	_, err := client.Fetch(context.Background())
	require.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestCBRClient_Fetch_ContextTimeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Fetch(ctx)
	require.ErrorIs(t, err, domain.ErrSourceUnavailable)
}
