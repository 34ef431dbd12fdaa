// Package validation holds request-level validation helpers shared by the
// HTTP handlers.
package validation

import (
	"fmt"

	"github.com/casecollector/Case-Collector-Backend/internal/apperrors"
	"github.com/casecollector/Case-Collector-Backend/internal/model"
)

// ValidateItemName checks that an item name is present.
func ValidateItemName(name string) error {
	if name == "" {
		return apperrors.ErrEmptyItemName
	}
	return nil
}

// ValidateQuantity checks that a unit count is positive.
func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", apperrors.ErrNonPositiveQuantity, quantity)
	}
	return nil
}

// ValidatePrice checks that a price is not negative.
func ValidatePrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("%w: got %v", apperrors.ErrNegativePrice, price)
	}
	return nil
}

// ValidateTransactionType checks that a transaction type is buy or sell.
func ValidateTransactionType(txType string) error {
	if txType != model.TransactionBuy && txType != model.TransactionSell {
		return fmt.Errorf("%w: got %q", apperrors.ErrInvalidTransactionType, txType)
	}
	return nil
}
