package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casecollector/Case-Collector-Backend/internal/api/handlers"
	"github.com/casecollector/Case-Collector-Backend/internal/api/request"
	"github.com/casecollector/Case-Collector-Backend/internal/testutil"
)

// TestCredentialHandler_Set tests API key configuration over HTTP.
func TestCredentialHandler_Set(t *testing.T) {
	t.Run("accepts a key the upstream validates", func(t *testing.T) {
		stores := testutil.NewTestStores(t)
		prices := testutil.NewTestPriceService(t, stores, testutil.NewMockListingsClient(), nil)
		handler := handlers.NewCredentialHandler(prices)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/credential/",
			request.SetCredentialRequest{APIKey: "good-key"}, nil)
		w := httptest.NewRecorder()

		handler.Set(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		if !prices.KeyIsValid() {
			t.Error("expected credential to be valid after set")
		}
	})

	t.Run("rejects a key the upstream refuses", func(t *testing.T) {
		stores := testutil.NewTestStores(t)
		mock := testutil.NewMockListingsClient().WithProbeError(errors.New("401"))
		prices := testutil.NewTestPriceService(t, stores, mock, nil)
		handler := handlers.NewCredentialHandler(prices)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/credential/",
			request.SetCredentialRequest{APIKey: "bad-key"}, nil)
		w := httptest.NewRecorder()

		handler.Set(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
		if prices.KeyIsValid() {
			t.Error("rejected key marked the credential valid")
		}
	})
}

// TestCredentialHandler_Status tests the validity probe endpoint.
func TestCredentialHandler_Status(t *testing.T) {
	stores := testutil.NewTestStores(t)
	testutil.SeedCredential(t, stores, "stored-key")
	prices := testutil.NewTestPriceService(t, stores, testutil.NewMockListingsClient(), nil)
	handler := handlers.NewCredentialHandler(prices)

	req := httptest.NewRequest(http.MethodGet, "/api/credential/", nil)
	w := httptest.NewRecorder()

	handler.Status(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "{\"is_valid\":true}\n" {
		t.Errorf("unexpected body: %s", body)
	}
}
