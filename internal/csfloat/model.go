package csfloat

// Response represents the raw JSON response from the CSFloat listings API.
// Depending on the endpoint version the listings array is returned under
// either the "data" or the "listings" key; Items resolves whichever is
// populated.
type Response struct {
	Data     []Listing `json:"data"`
	Listings []Listing `json:"listings"`
}

// Items returns the listings array regardless of which response key
// carried it.
func (r Response) Items() []Listing {
	if len(r.Data) > 0 {
		return r.Data
	}
	return r.Listings
}

// Listing is one buy-now listing. Price is in integer minor currency units
// (cents).
type Listing struct {
	Price int         `json:"price"`
	Item  ListingItem `json:"item"`
}

// ListingItem carries the item metadata attached to a listing.
type ListingItem struct {
	MarketHashName string `json:"market_hash_name"`
}
