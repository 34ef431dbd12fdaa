package request

import "github.com/casecollector/Case-Collector-Backend/internal/model"

// AddHoldingRequest is the payload for creating a holding.
type AddHoldingRequest struct {
	Case     string  `json:"case"`
	Quantity int     `json:"qty"`
	Price    float64 `json:"price"`
}

// UpdateHoldingRequest is the payload for editing a single holding field.
// Value arrives as a string and is parsed by the ledger; values that do not
// parse are discarded without error.
type UpdateHoldingRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// AddTransactionRequest is the payload for recording a buy or sell.
type AddTransactionRequest struct {
	Type     string  `json:"type"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ReorderRequest carries a caller-supplied permutation of the holdings list.
type ReorderRequest struct {
	Investments []model.Holding `json:"investments"`
}
