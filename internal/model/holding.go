package model

// Timestamp layouts used in the persisted JSON stores. Dates are calendar
// days, timestamps carry wall-clock time.
const (
	DateFormat      = "2006-01-02"
	TimestampFormat = "2006-01-02 15:04:05"
)

// Transaction types.
const (
	TransactionBuy  = "buy"
	TransactionSell = "sell"
)

// Transaction represents a single buy or sell event against a holding.
// Transactions are immutable once appended; the ledger never edits or
// removes one.
type Transaction struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Quantity     int     `json:"quantity"`
	PricePerCase float64 `json:"price_per_case"`
	Total        float64 `json:"total"`
	Date         string  `json:"date"`
}

// Holding represents one owned position in a case, with its running
// quantity and weighted-average purchase price.
//
// PurchasePrice is the weighted-average cost per unit of the currently held
// quantity. LowestPrice is the last observed market price and is nil when no
// fresh quote exists. TotalSoldValue accumulates gross proceeds across all
// sell transactions.
type Holding struct {
	ID             string        `json:"id"`
	ItemName       string        `json:"item_name"`
	Quantity       int           `json:"quantity"`
	PurchasePrice  float64       `json:"purchase_price"`
	PurchaseDate   string        `json:"purchase_date"`
	LowestPrice    *float64      `json:"lowest_price"`
	LastUpdated    string        `json:"last_updated"`
	Transactions   []Transaction `json:"transactions"`
	TotalSoldValue float64       `json:"total_sold_value"`
}
