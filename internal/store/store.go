// Package store implements the persisted JSON stores: holdings, price
// cache, price history and the API credential. Each store owns a single
// file and serializes its whole collection on every save (write-through).
package store

import (
	"encoding/json"
	"fmt"
	"os"
)

// Default store file names, relative to the data directory.
const (
	HoldingsFile   = "cs2_investments.json"
	PriceCacheFile = "price_cache.json"
	HistoryFile    = "price_history.json"
	CredentialFile = "config.json"
)

// readJSONFile unmarshals path into v. Returns false with a nil error when
// the file does not exist.
func readJSONFile(path string, v interface{}) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return true, nil
}

// writeJSONFile serializes v to path in one shot.
func writeJSONFile(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
