package store

import (
	"log"

	"github.com/casecollector/Case-Collector-Backend/internal/model"
)

// PriceCacheStore persists the item name to cached price mapping.
type PriceCacheStore struct {
	path string
}

// NewPriceCacheStore creates a PriceCacheStore backed by the given file.
func NewPriceCacheStore(path string) *PriceCacheStore {
	return &PriceCacheStore{path: path}
}

// Load reads the cache from disk. A missing or malformed file yields an
// empty cache; the price cache is reconstructable, so corruption is never
// fatal.
func (s *PriceCacheStore) Load() map[string]model.PriceCacheEntry {
	cache := map[string]model.PriceCacheEntry{}
	found, err := readJSONFile(s.path, &cache)
	if err != nil {
		log.Printf("price cache unreadable, starting empty: %v", err)
		return map[string]model.PriceCacheEntry{}
	}
	if !found {
		log.Printf("no price cache file found, starting with empty cache")
		return cache
	}
	log.Printf("loaded price cache from file (%d entries)", len(cache))
	return cache
}

// Save writes the full cache to disk.
func (s *PriceCacheStore) Save(cache map[string]model.PriceCacheEntry) error {
	return writeJSONFile(s.path, cache)
}
