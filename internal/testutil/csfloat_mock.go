package testutil

import (
	"github.com/casecollector/Case-Collector-Backend/internal/csfloat"
)

// MockListingsClient is a mock implementation of the CSFloat listings
// client for testing. It serves predefined listings per def_index instead
// of making network calls.
type MockListingsClient struct {
	// Listings maps def_index to the page-0 listings to return. Pages
	// beyond 0 are always empty.
	Listings map[int][]csfloat.Listing
	// Err is returned from ListingsPage when set.
	Err error
	// ProbeErr is returned from Probe when set.
	ProbeErr error
	// QueryCount tracks how many listings queries were issued.
	QueryCount int
	// LastAPIKey records the key used on the most recent call.
	LastAPIKey string
}

// NewMockListingsClient creates an empty mock; configure it with the
// builder methods.
func NewMockListingsClient() *MockListingsClient {
	return &MockListingsClient{
		Listings: map[int][]csfloat.Listing{},
	}
}

// ListingsPage returns the configured listings for the def_index on page 0
// and an empty page otherwise.
func (m *MockListingsClient) ListingsPage(apiKey string, defIndex, page int) ([]csfloat.Listing, error) {
	m.QueryCount++
	m.LastAPIKey = apiKey
	if m.Err != nil {
		return nil, m.Err
	}
	if page > 0 {
		return nil, nil
	}
	return m.Listings[defIndex], nil
}

// Probe returns the configured probe error.
func (m *MockListingsClient) Probe(apiKey string) error {
	m.LastAPIKey = apiKey
	return m.ProbeErr
}

// WithListing adds one listing for a def_index, priced in cents.
func (m *MockListingsClient) WithListing(defIndex, priceCents int, marketHashName string) *MockListingsClient {
	m.Listings[defIndex] = append(m.Listings[defIndex], csfloat.Listing{
		Price: priceCents,
		Item:  csfloat.ListingItem{MarketHashName: marketHashName},
	})
	return m
}

// WithError configures the mock to fail every listings query.
func (m *MockListingsClient) WithError(err error) *MockListingsClient {
	m.Err = err
	return m
}

// WithProbeError configures the mock to reject API key probes.
func (m *MockListingsClient) WithProbeError(err error) *MockListingsClient {
	m.ProbeErr = err
	return m
}
