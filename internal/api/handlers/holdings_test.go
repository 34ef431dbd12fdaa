package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casecollector/Case-Collector-Backend/internal/api/handlers"
	"github.com/casecollector/Case-Collector-Backend/internal/api/request"
	"github.com/casecollector/Case-Collector-Backend/internal/testutil"
)

func newHoldingHandler(t *testing.T) (*handlers.HoldingHandler, *testutil.Stores) {
	t.Helper()

	stores := testutil.NewTestStores(t)
	ledger := testutil.NewTestLedgerService(t, stores, nil)
	prices := testutil.NewTestPriceService(t, stores, testutil.NewMockListingsClient(), nil)
	return handlers.NewHoldingHandler(ledger, prices), stores
}

func decodeHoldings(t *testing.T, w *httptest.ResponseRecorder) handlers.HoldingsResponse {
	t.Helper()

	var response handlers.HoldingsResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return response
}

// TestHoldingHandler_Add tests the holding creation endpoint.
func TestHoldingHandler_Add(t *testing.T) {
	t.Run("creates a holding and returns the list", func(t *testing.T) {
		handler, _ := newHoldingHandler(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/holding/",
			request.AddHoldingRequest{Case: "Fracture Case", Quantity: 10, Price: 2.00}, nil)
		w := httptest.NewRecorder()

		handler.Add(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		response := decodeHoldings(t, w)
		if response.Status != "success" || len(response.Investments) != 1 {
			t.Errorf("unexpected response: %+v", response)
		}
		if response.Investments[0].ItemName != "Fracture Case" {
			t.Errorf("unexpected holding: %+v", response.Investments[0])
		}
	})

	t.Run("rejects invalid payloads", func(t *testing.T) {
		handler, _ := newHoldingHandler(t)

		cases := []request.AddHoldingRequest{
			{Case: "", Quantity: 1, Price: 1},
			{Case: "Fracture Case", Quantity: 0, Price: 1},
			{Case: "Fracture Case", Quantity: 1, Price: -1},
		}
		for _, payload := range cases {
			req := testutil.NewJSONRequest(t, http.MethodPost, "/api/holding/", payload, nil)
			w := httptest.NewRecorder()

			handler.Add(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("payload %+v: expected status 400, got %d", payload, w.Code)
			}
		}
	})
}

// TestHoldingHandler_Remove tests removal, including the silent no-op for
// out-of-range indexes.
func TestHoldingHandler_Remove(t *testing.T) {
	handler, _ := newHoldingHandler(t)

	addReq := testutil.NewJSONRequest(t, http.MethodPost, "/api/holding/",
		request.AddHoldingRequest{Case: "Fracture Case", Quantity: 1, Price: 1.00}, nil)
	handler.Add(httptest.NewRecorder(), addReq)

	t.Run("removes by index", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/holding/0", map[string]string{"index": "0"})
		w := httptest.NewRecorder()

		handler.Remove(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		if response := decodeHoldings(t, w); len(response.Investments) != 0 {
			t.Errorf("expected empty list, got %+v", response.Investments)
		}
	})

	t.Run("out-of-range index still reports success", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/holding/9", map[string]string{"index": "9"})
		w := httptest.NewRecorder()

		handler.Remove(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
	})
}

// TestHoldingHandler_Transact tests the transaction endpoint end to end
// through JSON.
func TestHoldingHandler_Transact(t *testing.T) {
	handler, _ := newHoldingHandler(t)

	addReq := testutil.NewJSONRequest(t, http.MethodPost, "/api/holding/",
		request.AddHoldingRequest{Case: "Fracture Case", Quantity: 10, Price: 2.00}, nil)
	handler.Add(httptest.NewRecorder(), addReq)

	t.Run("records a sell and returns updated state", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/holding/0/transaction",
			request.AddTransactionRequest{Type: "sell", Quantity: 3, Price: 2.50},
			map[string]string{"index": "0"})
		w := httptest.NewRecorder()

		handler.Transact(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		h := decodeHoldings(t, w).Investments[0]
		if h.Quantity != 7 || h.TotalSoldValue != 7.50 || h.PurchasePrice != 2.00 {
			t.Errorf("unexpected holding after sell: %+v", h)
		}
	})

	t.Run("rejects unknown transaction types", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/holding/0/transaction",
			request.AddTransactionRequest{Type: "hold", Quantity: 1, Price: 1.00},
			map[string]string{"index": "0"})
		w := httptest.NewRecorder()

		handler.Transact(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

// TestHoldingHandler_Update tests that rejected field edits still respond
// with success and unchanged state.
func TestHoldingHandler_Update(t *testing.T) {
	handler, _ := newHoldingHandler(t)

	addReq := testutil.NewJSONRequest(t, http.MethodPost, "/api/holding/",
		request.AddHoldingRequest{Case: "Fracture Case", Quantity: 10, Price: 2.00}, nil)
	handler.Add(httptest.NewRecorder(), addReq)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/api/holding/0",
		request.UpdateHoldingRequest{Field: "quantity", Value: "not-a-number"},
		map[string]string{"index": "0"})
	w := httptest.NewRecorder()

	handler.Update(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	h := decodeHoldings(t, w).Investments[0]
	if h.Quantity != 10 {
		t.Errorf("rejected update changed quantity to %d", h.Quantity)
	}
}
