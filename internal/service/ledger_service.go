package service

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/casecollector/Case-Collector-Backend/internal/apperrors"
	"github.com/casecollector/Case-Collector-Backend/internal/model"
	"github.com/casecollector/Case-Collector-Backend/internal/store"
)

// FieldUpdate reports the outcome of an UpdateField call. A rejected update
// leaves the holding unchanged and is not an error; Reason is a diagnostic
// for logging only.
type FieldUpdate struct {
	Applied bool
	Reason  string
}

// LedgerService owns the holdings list and applies transactions to it. All
// mutations are written through to the holdings store before returning.
// Holdings are addressed by list index; out-of-range indexes are silent
// no-ops rather than errors.
type LedgerService struct {
	mu       sync.Mutex
	store    *store.HoldingsStore
	holdings []model.Holding
	now      func() time.Time
}

// NewLedgerService loads the holdings list from the given store. A corrupt
// holdings file is returned as an error; the ledger never starts from a
// silently emptied list. now may be nil to use the wall clock.
func NewLedgerService(st *store.HoldingsStore, now func() time.Time) (*LedgerService, error) {
	if now == nil {
		now = time.Now
	}
	holdings, err := st.Load()
	if err != nil {
		return nil, err
	}
	return &LedgerService{
		store:    st,
		holdings: holdings,
		now:      now,
	}, nil
}

// Holdings returns a copy of the current holdings list.
func (s *LedgerService) Holdings() []model.Holding {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyHoldings(s.holdings)
}

// AddHolding creates a new holding with a seed buy transaction mirroring
// the purchase, and persists the list. Adding a name that already exists is
// a no-op. cachedPrice is the current cached market price for the item, or
// nil when no fresh quote exists.
func (s *LedgerService) AddHolding(itemName string, quantity int, pricePerCase float64, cachedPrice *float64) ([]model.Holding, error) {
	if itemName == "" {
		return nil, apperrors.ErrEmptyItemName
	}
	if quantity <= 0 {
		return nil, apperrors.ErrNonPositiveQuantity
	}
	if pricePerCase < 0 {
		return nil, apperrors.ErrNegativePrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, h := range s.holdings {
		if h.ItemName == itemName {
			return copyHoldings(s.holdings), nil
		}
	}

	now := s.now()
	holding := model.Holding{
		ID:            uuid.New().String(),
		ItemName:      itemName,
		Quantity:      quantity,
		PurchasePrice: pricePerCase,
		PurchaseDate:  now.Format(model.DateFormat),
		LowestPrice:   cachedPrice,
		LastUpdated:   "",
		Transactions: []model.Transaction{
			{
				ID:           uuid.New().String(),
				Type:         model.TransactionBuy,
				Quantity:     quantity,
				PricePerCase: pricePerCase,
				Total:        float64(quantity) * pricePerCase,
				Date:         now.Format(model.TimestampFormat),
			},
		},
		TotalSoldValue: 0,
	}
	s.holdings = append(s.holdings, holding)

	if err := s.store.Save(s.holdings); err != nil {
		return nil, err
	}
	return copyHoldings(s.holdings), nil
}

// RemoveHolding deletes the holding at index and persists. An out-of-range
// index leaves the list untouched.
func (s *LedgerService) RemoveHolding(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.holdings) {
		return nil
	}
	s.holdings = append(s.holdings[:index], s.holdings[index+1:]...)
	return s.store.Save(s.holdings)
}

// UpdateField applies a single field edit to the holding at index. Exactly
// two fields are mutable: quantity (positive integer) and purchase_price
// (non-negative float). Values that do not parse, or fall outside those
// ranges, are discarded and the existing value is retained. The list is
// persisted after every in-range call, whether or not a field changed.
func (s *LedgerService) UpdateField(index int, field, value string) (FieldUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.holdings) {
		return FieldUpdate{Applied: false, Reason: "index out of range"}, nil
	}

	result := FieldUpdate{Applied: false}
	holding := &s.holdings[index]

	switch field {
	case "quantity":
		newValue, err := strconv.Atoi(value)
		switch {
		case err != nil:
			result.Reason = "quantity is not an integer"
		case newValue <= 0:
			result.Reason = "quantity must be positive"
		default:
			holding.Quantity = newValue
			result.Applied = true
		}
	case "purchase_price":
		newValue, err := strconv.ParseFloat(value, 64)
		switch {
		case err != nil:
			result.Reason = "purchase price is not a number"
		case newValue < 0:
			result.Reason = "purchase price cannot be negative"
		default:
			holding.PurchasePrice = newValue
			result.Applied = true
		}
	default:
		result.Reason = "unknown field " + field
	}

	if err := s.store.Save(s.holdings); err != nil {
		return result, err
	}
	return result, nil
}

// RecordTransaction appends a buy or sell transaction to the holding at
// index and recomputes its quantity and weighted-average purchase price.
// An out-of-range index is a no-op.
//
// A buy folds the new units into the running average over the current
// holding state. A sell caps the quantity at zero, adds the gross proceeds
// to TotalSoldValue, and then recomputes the purchase price from scratch
// over every buy transaction ever recorded for the holding. The two paths
// are not symmetric; keep them that way, the stored prices are part of the
// file contract.
func (s *LedgerService) RecordTransaction(index int, txType string, quantity int, pricePerCase float64) error {
	if txType != model.TransactionBuy && txType != model.TransactionSell {
		return apperrors.ErrInvalidTransactionType
	}
	if quantity <= 0 {
		return apperrors.ErrNonPositiveQuantity
	}
	if pricePerCase < 0 {
		return apperrors.ErrNegativePrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.holdings) {
		return nil
	}

	holding := &s.holdings[index]
	holding.Transactions = append(holding.Transactions, model.Transaction{
		ID:           uuid.New().String(),
		Type:         txType,
		Quantity:     quantity,
		PricePerCase: pricePerCase,
		Total:        float64(quantity) * pricePerCase,
		Date:         s.now().Format(model.TimestampFormat),
	})

	switch txType {
	case model.TransactionBuy:
		currentTotal := float64(holding.Quantity) * holding.PurchasePrice
		newTotal := float64(quantity) * pricePerCase
		holding.Quantity += quantity
		if holding.Quantity > 0 {
			holding.PurchasePrice = (currentTotal + newTotal) / float64(holding.Quantity)
		} else {
			holding.PurchasePrice = 0
		}
	case model.TransactionSell:
		holding.Quantity -= quantity
		if holding.Quantity < 0 {
			holding.Quantity = 0
		}
		holding.TotalSoldValue += float64(quantity) * pricePerCase

		var totalBuyQty int
		var totalBuyValue float64
		for _, tx := range holding.Transactions {
			if tx.Type == model.TransactionBuy {
				totalBuyQty += tx.Quantity
				totalBuyValue += float64(tx.Quantity) * tx.PricePerCase
			}
		}
		if holding.Quantity > 0 && totalBuyQty > 0 {
			holding.PurchasePrice = totalBuyValue / float64(totalBuyQty)
		} else {
			holding.PurchasePrice = 0
		}
	}

	return s.store.Save(s.holdings)
}

// Reorder replaces the holdings list with a caller-supplied permutation.
// The new list must contain exactly as many holdings as the current one.
func (s *LedgerService) Reorder(newHoldings []model.Holding) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(newHoldings) != len(s.holdings) {
		return apperrors.ErrReorderMismatch
	}
	s.holdings = copyHoldings(newHoldings)
	return s.store.Save(s.holdings)
}

// ApplyPrices refreshes every holding's last-known market price from the
// given lookup, stamps LastUpdated with at, and persists. Holdings without
// a current price have their LowestPrice cleared.
func (s *LedgerService) ApplyPrices(lookup func(string) (float64, bool), at time.Time) ([]model.Holding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp := at.Format(model.TimestampFormat)
	for i := range s.holdings {
		if price, ok := lookup(s.holdings[i].ItemName); ok {
			p := price
			s.holdings[i].LowestPrice = &p
		} else {
			s.holdings[i].LowestPrice = nil
		}
		s.holdings[i].LastUpdated = stamp
	}

	if err := s.store.Save(s.holdings); err != nil {
		return nil, err
	}
	return copyHoldings(s.holdings), nil
}

// copyHoldings deep-copies the holdings list so callers cannot alias the
// ledger's internal state.
func copyHoldings(holdings []model.Holding) []model.Holding {
	out := make([]model.Holding, len(holdings))
	for i, h := range holdings {
		out[i] = h
		out[i].Transactions = append([]model.Transaction(nil), h.Transactions...)
		if h.LowestPrice != nil {
			price := *h.LowestPrice
			out[i].LowestPrice = &price
		}
	}
	return out
}
