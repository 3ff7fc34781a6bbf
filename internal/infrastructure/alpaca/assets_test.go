package alpaca

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTrading_ListActiveAssets(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/assets" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("status") != "active" {
			t.Errorf("expected status=active, got %s", r.URL.Query().Get("status"))
		}
		if r.URL.Query().Get("asset_class") != "us_equity" {
			t.Errorf("expected asset_class=us_equity, got %s", r.URL.Query().Get("asset_class"))
		}
		if r.Header.Get("APCA-API-KEY-ID") != "test-key" {
			t.Errorf("missing key header")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[
			{"symbol": "AAPL", "name": "Apple Inc. Common Stock", "exchange": "NASDAQ", "class": "us_equity", "status": "active", "tradable": true, "marginable": true, "fractionable": true},
			{"symbol": "OTCX", "name": "Some OTC Thing", "exchange": "OTC", "class": "us_equity", "status": "active", "tradable": false, "marginable": false, "fractionable": false}
		]`))
	}))
	defer server.Close()

	trading := NewTrading(testConfig(server.URL), server.Client())

	assets, err := trading.ListActiveAssets(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(assets))
	}
	if assets[0].Symbol != "AAPL" {
		t.Errorf("expected AAPL, got %s", assets[0].Symbol)
	}
	if !assets[0].Active {
		t.Error("expected AAPL active")
	}
	if !assets[0].Marginable {
		t.Error("expected AAPL marginable")
	}
	if assets[1].Tradable {
		t.Error("expected OTCX not tradable")
	}
}

func TestTrading_ListActiveAssets_HTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	trading := NewTrading(testConfig(server.URL), server.Client())

	_, err := trading.ListActiveAssets(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
