package store

import (
	"log"

	"github.com/casecollector/Case-Collector-Backend/internal/model"
)

// HistoryStore persists the per-item daily price series.
type HistoryStore struct {
	path string
}

// NewHistoryStore creates a HistoryStore backed by the given file.
func NewHistoryStore(path string) *HistoryStore {
	return &HistoryStore{path: path}
}

// Load reads the history map from disk. A missing or malformed file yields
// an empty map with a logged warning.
func (s *HistoryStore) Load() map[string][]model.PricePoint {
	history := map[string][]model.PricePoint{}
	if _, err := readJSONFile(s.path, &history); err != nil {
		log.Printf("could not load existing price history: %v", err)
		return map[string][]model.PricePoint{}
	}
	return history
}

// Save writes the full history map to disk.
func (s *HistoryStore) Save(history map[string][]model.PricePoint) error {
	return writeJSONFile(s.path, history)
}
