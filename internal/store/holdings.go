package store

import (
	"fmt"

	"github.com/casecollector/Case-Collector-Backend/internal/apperrors"
	"github.com/casecollector/Case-Collector-Backend/internal/model"
)

// HoldingsStore persists the ordered holdings list.
type HoldingsStore struct {
	path string
}

// NewHoldingsStore creates a HoldingsStore backed by the given file.
func NewHoldingsStore(path string) *HoldingsStore {
	return &HoldingsStore{path: path}
}

// Load reads the holdings list from disk. A missing file yields an empty
// list; a malformed file is an error (holdings corruption propagates rather
// than being dropped on the floor). Records written by older versions may
// lack the transactions and total_sold_value fields; Load fills those in.
func (s *HoldingsStore) Load() ([]model.Holding, error) {
	var holdings []model.Holding
	found, err := s.load(&holdings)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCorruptHoldings, err)
	}
	if !found {
		return []model.Holding{}, nil
	}
	for i := range holdings {
		if holdings[i].Transactions == nil {
			holdings[i].Transactions = []model.Transaction{}
		}
	}
	return holdings, nil
}

func (s *HoldingsStore) load(v *[]model.Holding) (bool, error) {
	return readJSONFile(s.path, v)
}

// Save writes the full holdings list to disk.
func (s *HoldingsStore) Save(holdings []model.Holding) error {
	return writeJSONFile(s.path, holdings)
}
