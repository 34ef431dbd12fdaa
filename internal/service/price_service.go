package service

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/casecollector/Case-Collector-Backend/internal/apperrors"
	"github.com/casecollector/Case-Collector-Backend/internal/catalog"
	"github.com/casecollector/Case-Collector-Backend/internal/csfloat"
	"github.com/casecollector/Case-Collector-Backend/internal/model"
	"github.com/casecollector/Case-Collector-Backend/internal/store"
)

// CacheExpiry is how long a cached price stays fresh. Entries at or past
// this age are reported as absent.
const CacheExpiry = time.Hour

// ListingsClient is the subset of the CSFloat client the price service
// depends on.
type ListingsClient interface {
	ListingsPage(apiKey string, defIndex, page int) ([]csfloat.Listing, error)
	Probe(apiKey string) error
}

// PriceService owns the price cache and the upstream fetch logic. Cached
// prices expire after CacheExpiry; a fetch replaces the whole cache
// atomically, so a failed fetch leaves the previous prices in effect.
type PriceService struct {
	mu         sync.Mutex
	client     ListingsClient
	cacheStore *store.PriceCacheStore
	credStore  *store.CredentialStore
	cache      map[string]model.PriceCacheEntry
	cred       model.Credential
	now        func() time.Time
}

// NewPriceService loads the persisted cache and credential. now may be nil
// to use the wall clock.
func NewPriceService(client ListingsClient, cacheStore *store.PriceCacheStore, credStore *store.CredentialStore, now func() time.Time) *PriceService {
	if now == nil {
		now = time.Now
	}
	return &PriceService{
		client:     client,
		cacheStore: cacheStore,
		credStore:  credStore,
		cache:      cacheStore.Load(),
		cred:       credStore.Load(),
		now:        now,
	}
}

// GetPrice returns the cached price for an item if the entry is younger
// than CacheExpiry. Stale entries are reported as absent but left in place;
// they fall out on the next full cache replacement.
func (s *PriceService) GetPrice(itemName string) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.cache[itemName]
	if !ok {
		return 0, false
	}
	if s.now().Sub(entry.Timestamp) >= CacheExpiry {
		return 0, false
	}
	return entry.Price, true
}

// FetchPrices queries the current lowest buy-now ask for every named item
// and replaces the price cache with the results. Items without a catalog
// def_index, or with no listings at all, are skipped with a warning. Any
// transport or HTTP failure aborts the whole batch before the cache is
// touched. Fetching without a configured API key fails immediately with no
// network call.
func (s *PriceService) FetchPrices(itemNames []string) error {
	apiKey, ok := s.apiKey()
	if !ok {
		log.Printf("no API key available, cannot fetch prices")
		return apperrors.ErrCredentialMissing
	}

	fetched := map[string]float64{}
	for _, itemName := range itemNames {
		defIndex, ok := catalog.DefIndex(itemName)
		if !ok {
			log.Printf("no def_index found for %s, skipping", itemName)
			continue
		}

		for page := 0; ; page++ {
			listings, err := s.client.ListingsPage(apiKey, defIndex, page)
			if err != nil {
				log.Printf("failed to fetch prices: %v", err)
				return fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
			}
			if len(listings) == 0 {
				log.Printf("no more listings found for %s on page %d, stopping pagination", itemName, page)
				break
			}

			listing := listings[0]
			price := roundCents(listing.Price)
			fetched[itemName] = price
			log.Printf("fetched price for %s (market_hash_name: %s): $%.2f", itemName, listing.Item.MarketHashName, price)
			break
		}
	}

	for _, itemName := range itemNames {
		if _, ok := fetched[itemName]; !ok {
			log.Printf("no listing found for %s after pagination", itemName)
		}
	}

	return s.replaceAll(fetched)
}

// replaceAll swaps the whole cache for the fetched prices, each stamped
// with the current time, and persists.
func (s *PriceService) replaceAll(prices map[string]float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.cache = make(map[string]model.PriceCacheEntry, len(prices))
	for name, price := range prices {
		s.cache[name] = model.PriceCacheEntry{Price: price, Timestamp: now}
	}

	if err := s.cacheStore.Save(s.cache); err != nil {
		return err
	}
	log.Printf("price cache saved to file")
	return nil
}

// ValidateAPIKey checks a key against the upstream service with a minimal
// probe query. It has no side effects beyond the network call.
func (s *PriceService) ValidateAPIKey(apiKey string) bool {
	if apiKey == "" {
		return false
	}
	return s.client.Probe(apiKey) == nil
}

// SetAPIKey validates the key against the upstream service and, on
// success, persists it as the active credential. A rejected key leaves the
// stored credential untouched.
func (s *PriceService) SetAPIKey(apiKey string) error {
	if !s.ValidateAPIKey(apiKey) {
		return apperrors.ErrCredentialInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := apiKey
	s.cred = model.Credential{APIKey: &key, IsValid: true}
	if err := s.credStore.Save(s.cred); err != nil {
		return err
	}
	log.Printf("API key validated and saved")
	return nil
}

// KeyIsValid reports whether a validated credential is on file.
func (s *PriceService) KeyIsValid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cred.IsValid
}

func (s *PriceService) apiKey() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred.APIKey == nil || *s.cred.APIKey == "" {
		return "", false
	}
	return *s.cred.APIKey, true
}

// roundCents converts integer cents to two-decimal dollars.
func roundCents(cents int) float64 {
	return float64(cents) / 100
}
