package service

import (
	"log"
	"time"

	"github.com/casecollector/Case-Collector-Backend/internal/model"
	"github.com/casecollector/Case-Collector-Backend/internal/store"
)

// HistoryService accumulates daily price snapshots per item. The on-disk
// series is loaded, extended and written back on every append; repeated
// refreshes on the same day produce multiple points for that day.
type HistoryService struct {
	store *store.HistoryStore
	now   func() time.Time
}

// NewHistoryService creates a HistoryService over the given store. now may
// be nil to use the wall clock.
func NewHistoryService(st *store.HistoryStore, now func() time.Time) *HistoryService {
	if now == nil {
		now = time.Now
	}
	return &HistoryService{store: st, now: now}
}

// Append records today's price for every named item the lookup can price.
// Items without a current price are skipped, leaving their series untouched
// for the day.
func (s *HistoryService) Append(itemNames []string, lookup func(string) (float64, bool)) error {
	history := s.store.Load()
	today := s.now().Format(model.DateFormat)

	for _, itemName := range itemNames {
		price, ok := lookup(itemName)
		if !ok {
			continue
		}
		history[itemName] = append(history[itemName], model.PricePoint{Date: today, Price: price})
	}

	if err := s.store.Save(history); err != nil {
		return err
	}
	log.Printf("appended to price history")
	return nil
}

// Snapshot returns the full persisted history map.
func (s *HistoryService) Snapshot() map[string][]model.PricePoint {
	return s.store.Load()
}
