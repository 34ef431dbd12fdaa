package service

import (
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/casecollector/Case-Collector-Backend/internal/model"
)

// RefreshResult is the outcome of a successful price refresh: the holdings
// list with updated market prices, and the current price (or nil) for every
// case in the catalog.
type RefreshResult struct {
	Holdings  []model.Holding
	AllPrices map[string]*float64
}

// RefreshService orchestrates a full price refresh: fetch current prices
// for the whole catalog, push them onto the holdings, and append today's
// snapshot to the price history. Concurrent refresh requests are collapsed
// into a single upstream fetch whose result is shared.
type RefreshService struct {
	ledger    *LedgerService
	prices    *PriceService
	history   *HistoryService
	caseNames []string
	group     singleflight.Group
	now       func() time.Time
}

// NewRefreshService wires the refresh orchestration over the given
// services and catalog case names. now may be nil to use the wall clock.
func NewRefreshService(ledger *LedgerService, prices *PriceService, history *HistoryService, caseNames []string, now func() time.Time) *RefreshService {
	if now == nil {
		now = time.Now
	}
	return &RefreshService{
		ledger:    ledger,
		prices:    prices,
		history:   history,
		caseNames: caseNames,
		now:       now,
	}
}

// RefreshPrices runs one refresh cycle. On any upstream failure the
// previous cache, holdings and history are all left untouched. A failed
// history write is logged but does not fail the refresh; the prices are
// already live on the holdings at that point.
func (s *RefreshService) RefreshPrices() (*RefreshResult, error) {
	v, err, _ := s.group.Do("refresh", func() (interface{}, error) {
		if err := s.prices.FetchPrices(s.caseNames); err != nil {
			return nil, err
		}

		holdings, err := s.ledger.ApplyPrices(s.prices.GetPrice, s.now())
		if err != nil {
			return nil, err
		}

		if err := s.history.Append(s.caseNames, s.prices.GetPrice); err != nil {
			log.Printf("failed to write price history: %v", err)
		}

		allPrices := make(map[string]*float64, len(s.caseNames))
		for _, name := range s.caseNames {
			if price, ok := s.prices.GetPrice(name); ok {
				p := price
				allPrices[name] = &p
			} else {
				allPrices[name] = nil
			}
		}

		return &RefreshResult{Holdings: holdings, AllPrices: allPrices}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*RefreshResult), nil
}
