package testutil

import (
	"testing"

	"github.com/casecollector/Case-Collector-Backend/internal/model"
	"github.com/casecollector/Case-Collector-Backend/internal/service"
)

// SeedCredential writes a validated API key into the credential store.
// Call before constructing the price service so it loads the credential.
func SeedCredential(t *testing.T, stores *Stores, apiKey string) {
	t.Helper()

	key := apiKey
	if err := stores.Credential.Save(model.Credential{APIKey: &key, IsValid: true}); err != nil {
		t.Fatalf("failed to seed credential: %v", err)
	}
}

// AddHolding creates a holding through the ledger, failing the test on
// error, and returns its index in the list.
func AddHolding(t *testing.T, ledger *service.LedgerService, itemName string, quantity int, price float64) int {
	t.Helper()

	holdings, err := ledger.AddHolding(itemName, quantity, price, nil)
	if err != nil {
		t.Fatalf("AddHolding(%q) returned unexpected error: %v", itemName, err)
	}
	for i, h := range holdings {
		if h.ItemName == itemName {
			return i
		}
	}
	t.Fatalf("holding %q not found after AddHolding", itemName)
	return -1
}
