package returns

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/commerce/returns/internal/domain/shared"
	"github.com/commerce/returns/internal/domain/shared/valueobject"
)

// Location identifies a stock location returned goods are booked into
type Location struct {
	Name string
}

// ReturnItem is the returnable unit. It links back to the originating order
// item (when there is one), carries the settlement balances, the acceptance
// flag and restock information.
//
// Invariants:
//   - RemainingBalance never exceeds Balance except transiently while a refund
//     resynchronises the baseline inside one transaction.
//   - A remaining balance of zero completes the return.
//   - Accepted stays nil until an explicit accept/reject decision.
type ReturnItem struct {
	ID               uuid.UUID
	ReturnID         uuid.UUID
	OrderItemID      *uuid.UUID // Originating order item, if any
	OrderID          *uuid.UUID // Originating order, if any
	Status           Status
	Accepted         *bool
	Balance          decimal.Decimal
	RemainingBalance decimal.Decimal
	Reason           string

	ReturnedStock         bool
	ReturnedStockLocation *Location

	Authorship shared.Authorship
}

// MarkReceived sets the item status to RECEIVED. Receipt is idempotent in
// effect: the status is set regardless of the prior status.
func (i *ReturnItem) MarkReceived() {
	i.Status = StatusReceived
}

// Accept records that the returned goods were accepted
func (i *ReturnItem) Accept() {
	accepted := true
	i.Accepted = &accepted
}

// Reject records that the returned goods were rejected
func (i *ReturnItem) Reject() {
	accepted := false
	i.Accepted = &accepted
}

// SetBalance establishes a fresh settlement baseline: both the balance and the
// remaining balance are set to the given amount.
func (i *ReturnItem) SetBalance(amount decimal.Decimal) {
	i.Balance = amount
	i.RemainingBalance = amount
}

// ApplyRemainingBalance sets the remaining balance, leaving the balance
// untouched, and reports whether the return is now settled. A Settled outcome
// must be followed by completion within the same transaction.
func (i *ReturnItem) ApplyRemainingBalance(amount decimal.Decimal) SettlementOutcome {
	i.RemainingBalance = amount
	if i.RemainingBalance.IsZero() {
		return Settled
	}
	return StillOwing
}

// ReturnToStock marks the goods as restocked at the given location
func (i *ReturnItem) ReturnToStock(location Location) {
	i.ReturnedStock = true
	i.ReturnedStockLocation = &location
}

// Complete sets the item status to COMPLETED
func (i *ReturnItem) Complete() {
	i.Status = StatusCompleted
}

// IsAccepted returns true once the item has been explicitly accepted
func (i *ReturnItem) IsAccepted() bool {
	return i.Accepted != nil && *i.Accepted
}

// IsRejected returns true once the item has been explicitly rejected
func (i *ReturnItem) IsRejected() bool {
	return i.Accepted != nil && !*i.Accepted
}

// HasOrderItem returns true if the item links back to an order item
func (i *ReturnItem) HasOrderItem() bool {
	return i.OrderItemID != nil
}

// HasOrder returns true if the item links back to an order
func (i *ReturnItem) HasOrder() bool {
	return i.OrderID != nil
}

// Return is the aggregate root addressed by external callers. One return wraps
// exactly one item and owns it exclusively.
type Return struct {
	ID         uuid.UUID
	CurrencyID valueobject.Currency
	Item       ReturnItem
	Authorship shared.Authorship
}

// NewReturn creates a return in AWAITING_RECEIPT with zero balances. The order
// item and order references are optional; cascades are skipped when absent.
func NewReturn(
	currencyID valueobject.Currency,
	reason string,
	orderItemID, orderID *uuid.UUID,
	createdBy uuid.UUID,
) (*Return, error) {
	if !currencyID.IsValid() {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "Currency is not supported")
	}
	if reason == "" {
		return nil, shared.NewDomainError("INVALID_REASON", "Return reason cannot be empty")
	}

	now := time.Now()
	returnID := uuid.New()

	return &Return{
		ID:         returnID,
		CurrencyID: currencyID,
		Item: ReturnItem{
			ID:               uuid.New(),
			ReturnID:         returnID,
			OrderItemID:      orderItemID,
			OrderID:          orderID,
			Status:           StatusAwaitingReceipt,
			Balance:          decimal.Zero,
			RemainingBalance: decimal.Zero,
			Reason:           reason,
			Authorship:       shared.NewAuthorship(now, createdBy),
		},
		Authorship: shared.NewAuthorship(now, createdBy),
	}, nil
}

// IsCompleted returns true if the wrapped item reached COMPLETED
func (r *Return) IsCompleted() bool {
	return r.Item.Status == StatusCompleted
}
