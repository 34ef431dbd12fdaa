package store_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/casecollector/Case-Collector-Backend/internal/apperrors"
	"github.com/casecollector/Case-Collector-Backend/internal/model"
	"github.com/casecollector/Case-Collector-Backend/internal/store"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// TestHoldingsStore_Load tests holdings persistence edge cases.
//
// WHY: Holdings are the one store whose corruption must NOT be silently
// recovered; an emptied ledger looks like a wiped portfolio. Legacy files
// missing newer fields must still load with sane defaults.
func TestHoldingsStore_Load(t *testing.T) {
	t.Run("missing file yields an empty list", func(t *testing.T) {
		st := store.NewHoldingsStore(filepath.Join(t.TempDir(), store.HoldingsFile))

		holdings, err := st.Load()
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
		if len(holdings) != 0 {
			t.Errorf("expected empty list, got %d holdings", len(holdings))
		}
	})

	t.Run("corrupt file propagates an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), store.HoldingsFile)
		writeFile(t, path, "{not json")

		_, err := store.NewHoldingsStore(path).Load()
		if !errors.Is(err, apperrors.ErrCorruptHoldings) {
			t.Fatalf("expected ErrCorruptHoldings, got %v", err)
		}
	})

	t.Run("legacy records gain default transactions and sold value", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), store.HoldingsFile)
		writeFile(t, path, `[{"item_name": "Fracture Case", "quantity": 3, "purchase_price": 1.5, "purchase_date": "2024-01-01"}]`)

		holdings, err := store.NewHoldingsStore(path).Load()
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
		if len(holdings) != 1 {
			t.Fatalf("expected 1 holding, got %d", len(holdings))
		}
		h := holdings[0]
		if h.Transactions == nil || len(h.Transactions) != 0 {
			t.Errorf("expected empty transactions slice, got %+v", h.Transactions)
		}
		if h.TotalSoldValue != 0 {
			t.Errorf("expected zero total sold value, got %v", h.TotalSoldValue)
		}
		if h.LowestPrice != nil {
			t.Errorf("expected nil lowest price, got %v", *h.LowestPrice)
		}
	})

	t.Run("round-trips what Save wrote", func(t *testing.T) {
		st := store.NewHoldingsStore(filepath.Join(t.TempDir(), store.HoldingsFile))
		price := 2.50
		in := []model.Holding{{
			ID:            "h1",
			ItemName:      "Fracture Case",
			Quantity:      7,
			PurchasePrice: 2.00,
			PurchaseDate:  "2026-03-14",
			LowestPrice:   &price,
			LastUpdated:   "2026-03-14 12:00:00",
			Transactions: []model.Transaction{
				{ID: "t1", Type: model.TransactionBuy, Quantity: 10, PricePerCase: 2.00, Total: 20.00, Date: "2026-03-14 10:00:00"},
			},
			TotalSoldValue: 7.50,
		}}

		if err := st.Save(in); err != nil {
			t.Fatalf("Save() returned unexpected error: %v", err)
		}
		out, err := st.Load()
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].ItemName != "Fracture Case" || *out[0].LowestPrice != 2.50 || out[0].TotalSoldValue != 7.50 {
			t.Errorf("round trip lost state: %+v", out)
		}
		if len(out[0].Transactions) != 1 || out[0].Transactions[0].Total != 20.00 {
			t.Errorf("round trip lost transactions: %+v", out[0].Transactions)
		}
	})
}

// TestPriceCacheStore_Load tests the fail-soft cache load.
//
// WHY: The cache is reconstructable from upstream, so a corrupt or missing
// file must never block startup; it just means an empty cache.
func TestPriceCacheStore_Load(t *testing.T) {
	t.Run("missing and corrupt files yield empty caches", func(t *testing.T) {
		dir := t.TempDir()

		empty := store.NewPriceCacheStore(filepath.Join(dir, "absent.json")).Load()
		if len(empty) != 0 {
			t.Errorf("expected empty cache for missing file, got %d entries", len(empty))
		}

		corruptPath := filepath.Join(dir, store.PriceCacheFile)
		writeFile(t, corruptPath, "][")
		corrupt := store.NewPriceCacheStore(corruptPath).Load()
		if len(corrupt) != 0 {
			t.Errorf("expected empty cache for corrupt file, got %d entries", len(corrupt))
		}
	})

	t.Run("round-trips timestamps through ISO-8601", func(t *testing.T) {
		st := store.NewPriceCacheStore(filepath.Join(t.TempDir(), store.PriceCacheFile))
		stamp := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
		in := map[string]model.PriceCacheEntry{
			"Fracture Case": {Price: 1.37, Timestamp: stamp},
		}

		if err := st.Save(in); err != nil {
			t.Fatalf("Save() returned unexpected error: %v", err)
		}
		out := st.Load()
		entry, ok := out["Fracture Case"]
		if !ok {
			t.Fatal("entry missing after round trip")
		}
		if entry.Price != 1.37 || !entry.Timestamp.Equal(stamp) {
			t.Errorf("round trip changed entry: %+v", entry)
		}
	})
}

// TestCredentialStore tests credential persistence, with and without
// encryption.
//
// WHY: The API key must survive restarts, must be unreadable on disk when
// a fernet secret is configured, and a key that fails decryption must fall
// back to the zero credential rather than poisoning startup.
func TestCredentialStore(t *testing.T) {
	t.Run("plaintext round trip", func(t *testing.T) {
		st := store.NewCredentialStore(filepath.Join(t.TempDir(), store.CredentialFile), nil)
		key := "my-api-key"

		if err := st.Save(model.Credential{APIKey: &key, IsValid: true}); err != nil {
			t.Fatalf("Save() returned unexpected error: %v", err)
		}
		cred := st.Load()
		if cred.APIKey == nil || *cred.APIKey != "my-api-key" || !cred.IsValid {
			t.Errorf("unexpected credential after round trip: %+v", cred)
		}
	})

	t.Run("encrypted key is not stored in the clear", func(t *testing.T) {
		var secret fernet.Key
		if err := secret.Generate(); err != nil {
			t.Fatalf("failed to generate fernet key: %v", err)
		}
		path := filepath.Join(t.TempDir(), store.CredentialFile)
		st := store.NewCredentialStore(path, &secret)
		key := "my-api-key"

		if err := st.Save(model.Credential{APIKey: &key, IsValid: true}); err != nil {
			t.Fatalf("Save() returned unexpected error: %v", err)
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read credential file: %v", err)
		}
		var onDisk map[string]interface{}
		if err := json.Unmarshal(raw, &onDisk); err != nil {
			t.Fatalf("credential file is not JSON: %v", err)
		}
		if stored, _ := onDisk["api_key"].(string); stored == "my-api-key" {
			t.Error("API key stored in the clear despite fernet secret")
		}

		cred := st.Load()
		if cred.APIKey == nil || *cred.APIKey != "my-api-key" {
			t.Errorf("decryption round trip failed: %+v", cred)
		}
	})

	t.Run("undecryptable key falls back to the zero credential", func(t *testing.T) {
		var oldSecret, newSecret fernet.Key
		if err := oldSecret.Generate(); err != nil {
			t.Fatalf("failed to generate fernet key: %v", err)
		}
		if err := newSecret.Generate(); err != nil {
			t.Fatalf("failed to generate fernet key: %v", err)
		}
		path := filepath.Join(t.TempDir(), store.CredentialFile)
		key := "my-api-key"
		if err := store.NewCredentialStore(path, &oldSecret).Save(model.Credential{APIKey: &key, IsValid: true}); err != nil {
			t.Fatalf("Save() returned unexpected error: %v", err)
		}

		cred := store.NewCredentialStore(path, &newSecret).Load()
		if cred.APIKey != nil || cred.IsValid {
			t.Errorf("expected zero credential after failed decryption, got %+v", cred)
		}
	})

	t.Run("corrupt file yields the zero credential", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), store.CredentialFile)
		writeFile(t, path, "not json at all")

		cred := store.NewCredentialStore(path, nil).Load()
		if cred.APIKey != nil || cred.IsValid {
			t.Errorf("expected zero credential, got %+v", cred)
		}
	})
}

// TestHistoryStore tests the fail-soft history load and round trip.
func TestHistoryStore(t *testing.T) {
	t.Run("corrupt file yields an empty map", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), store.HistoryFile)
		writeFile(t, path, "{{")

		history := store.NewHistoryStore(path).Load()
		if len(history) != 0 {
			t.Errorf("expected empty history, got %d series", len(history))
		}
	})

	t.Run("round-trips series", func(t *testing.T) {
		st := store.NewHistoryStore(filepath.Join(t.TempDir(), store.HistoryFile))
		in := map[string][]model.PricePoint{
			"Fracture Case": {{Date: "2026-03-14", Price: 1.50}, {Date: "2026-03-15", Price: 1.60}},
		}

		if err := st.Save(in); err != nil {
			t.Fatalf("Save() returned unexpected error: %v", err)
		}
		out := st.Load()
		if len(out["Fracture Case"]) != 2 || out["Fracture Case"][1].Price != 1.60 {
			t.Errorf("round trip lost series: %+v", out)
		}
	})
}
