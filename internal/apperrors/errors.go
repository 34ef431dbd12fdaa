// Package apperrors defines the sentinel error values used across the
// application. Errors are grouped by category; callers match them with
// errors.Is after unwrapping.
package apperrors

import "errors"

// Credential errors represent problems with the CSFloat API key. Both are
// surfaced to the caller as explicit failure results; no partial action is
// taken when they occur.
var (
	// ErrCredentialMissing indicates that no API key has been configured,
	// so no upstream call can be attempted.
	ErrCredentialMissing = errors.New("no API key configured")

	// ErrCredentialInvalid indicates that the supplied API key was rejected
	// by the upstream service.
	ErrCredentialInvalid = errors.New("API key rejected by upstream")
)

// Upstream errors represent failures talking to the external price provider.
var (
	// ErrUpstreamUnavailable indicates a transport or HTTP failure during a
	// price fetch. The whole fetch batch is aborted and the previous price
	// cache is left in effect.
	ErrUpstreamUnavailable = errors.New("price provider unavailable")
)

// Input errors represent validation failures on caller-supplied values.
var (
	// ErrInvalidTransactionType indicates a transaction type other than
	// "buy" or "sell".
	ErrInvalidTransactionType = errors.New("transaction type must be buy or sell")

	// ErrNonPositiveQuantity indicates a quantity that is zero or negative
	// where a positive count is required.
	ErrNonPositiveQuantity = errors.New("quantity must be positive")

	// ErrNegativePrice indicates a price below zero.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrEmptyItemName indicates a missing or empty item name.
	ErrEmptyItemName = errors.New("item name cannot be empty")

	// ErrReorderMismatch indicates that a reorder request did not contain
	// exactly the current number of holdings.
	ErrReorderMismatch = errors.New("reordered holdings do not match current list")
)

// Data integrity errors represent corrupt persisted state.
var (
	// ErrCorruptHoldings indicates that the holdings file could not be
	// parsed. Unlike the price cache and credential stores, holdings
	// corruption is not recovered silently; it propagates to startup.
	ErrCorruptHoldings = errors.New("holdings file is corrupt")
)
