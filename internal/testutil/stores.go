// Package testutil provides shared helpers for tests: temp-dir backed
// stores, service constructors, a mock CSFloat client and data factories.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/casecollector/Case-Collector-Backend/internal/service"
	"github.com/casecollector/Case-Collector-Backend/internal/store"
)

// Stores bundles the four JSON stores rooted in a per-test temp directory.
type Stores struct {
	Dir        string
	Holdings   *store.HoldingsStore
	PriceCache *store.PriceCacheStore
	History    *store.HistoryStore
	Credential *store.CredentialStore
}

// NewTestStores creates all stores under t.TempDir(). The credential store
// is unencrypted; fernet round-trips are covered by the store tests.
func NewTestStores(t *testing.T) *Stores {
	t.Helper()

	dir := t.TempDir()
	return &Stores{
		Dir:        dir,
		Holdings:   store.NewHoldingsStore(filepath.Join(dir, store.HoldingsFile)),
		PriceCache: store.NewPriceCacheStore(filepath.Join(dir, store.PriceCacheFile)),
		History:    store.NewHistoryStore(filepath.Join(dir, store.HistoryFile)),
		Credential: store.NewCredentialStore(filepath.Join(dir, store.CredentialFile), nil),
	}
}

// NewTestLedgerService loads a ledger over the given stores, failing the
// test on a load error.
func NewTestLedgerService(t *testing.T, stores *Stores, now func() time.Time) *service.LedgerService {
	t.Helper()

	svc, err := service.NewLedgerService(stores.Holdings, now)
	if err != nil {
		t.Fatalf("NewLedgerService() returned unexpected error: %v", err)
	}
	return svc
}

// NewTestPriceService builds a price service over the given stores and
// mock client.
func NewTestPriceService(t *testing.T, stores *Stores, client service.ListingsClient, now func() time.Time) *service.PriceService {
	t.Helper()

	return service.NewPriceService(client, stores.PriceCache, stores.Credential, now)
}

// FixedClock returns a clock function pinned to the given instant.
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
