package fxapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"dealradar/internal/infrastructure/fxapi"
)

func TestLatest(t *testing.T) {
	rq := require.New(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("/latest/USD", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"result": "success",
			"base_code": "USD",
			"time_last_update_unix": 1755648002,
			"rates": {"USD": 1, "EUR": 0.91, "JPY": 146.2}
		}`))
	}))
	t.Cleanup(ts.Close)

	client := fxapi.NewClient(ts.URL, ts.Client())

	rates, err := client.Latest(context.Background())
	rq.NoError(err)
	rq.Equal("USD", rates.Base)
	rq.InDelta(0.91, rates.Rates["EUR"], 1e-9)
	rq.False(rates.Date.IsZero())
}

func TestLatestUpstreamFailure(t *testing.T) {
	rq := require.New(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result": "error"}`))
	}))
	t.Cleanup(ts.Close)

	client := fxapi.NewClient(ts.URL, ts.Client())

	_, err := client.Latest(context.Background())
	rq.ErrorContains(err, `"error"`)
}
