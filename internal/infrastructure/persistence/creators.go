package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/commerce/returns/internal/domain/returns"
	"github.com/commerce/returns/internal/domain/shared"
)

// Creator collaborators for payment and refund records. Each one writes
// through the transaction handed to it so every record from one logical
// operation lands in the same atomic unit.

const (
	sqlInsertPayment = `INSERT INTO payments (id, method, amount, reference, currency_id, created_at) VALUES (?, ?, ?, ?, ?, ?)`

	sqlInsertRefund = `INSERT INTO refunds (id, method, amount, reason, reference, payment_id, currency_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	sqlInsertOrderPayment = `INSERT INTO order_payments (id, order_id, payment_id, created_at) VALUES (?, ?, ?, ?)`

	sqlInsertOrderRefund = `INSERT INTO order_refunds (id, order_id, refund_id, created_at) VALUES (?, ?, ?, ?)`
)

// PaymentCreate creates payment records, assigning their identity
type PaymentCreate struct {
	trans returns.Transaction
}

// NewPaymentCreate creates a PaymentCreate
func NewPaymentCreate(trans returns.Transaction) *PaymentCreate {
	return &PaymentCreate{trans: trans}
}

// SetTransaction switches the transaction all subsequent writes land in
func (c *PaymentCreate) SetTransaction(trans returns.Transaction) {
	c.trans = trans
}

// Create validates and persists the payment, assigning its ID
func (c *PaymentCreate) Create(ctx context.Context, payment *returns.Payment) error {
	if payment.Method == "" {
		return shared.NewValidationError("INVALID_METHOD", "Payment method cannot be empty")
	}
	if payment.Amount.IsZero() {
		return shared.NewValidationError("INVALID_AMOUNT", "Payment amount cannot be zero")
	}
	if !payment.CurrencyID.IsValid() {
		return shared.NewValidationError("INVALID_CURRENCY", "Payment currency is not supported")
	}

	payment.ID = uuid.New()
	return c.trans.Run(ctx, sqlInsertPayment,
		payment.ID, payment.Method, payment.Amount, payment.Reference, payment.CurrencyID, time.Now())
}

// RefundCreate creates refund records, assigning their identity
type RefundCreate struct {
	trans returns.Transaction
}

// NewRefundCreate creates a RefundCreate
func NewRefundCreate(trans returns.Transaction) *RefundCreate {
	return &RefundCreate{trans: trans}
}

// SetTransaction switches the transaction all subsequent writes land in
func (c *RefundCreate) SetTransaction(trans returns.Transaction) {
	c.trans = trans
}

// Create validates and persists the refund, assigning its ID
func (c *RefundCreate) Create(ctx context.Context, refund *returns.Refund) error {
	if refund.Method == "" {
		return shared.NewValidationError("INVALID_METHOD", "Refund method cannot be empty")
	}
	if refund.Amount.IsZero() {
		return shared.NewValidationError("INVALID_AMOUNT", "Refund amount cannot be zero")
	}
	if !refund.CurrencyID.IsValid() {
		return shared.NewValidationError("INVALID_CURRENCY", "Refund currency is not supported")
	}

	refund.ID = uuid.New()
	return c.trans.Run(ctx, sqlInsertRefund,
		refund.ID, refund.Method, refund.Amount, refund.Reason, refund.Reference, refund.PaymentID, refund.CurrencyID, time.Now())
}

// OrderPaymentCreate creates order-scoped payment mirrors
type OrderPaymentCreate struct {
	trans returns.Transaction
}

// NewOrderPaymentCreate creates an OrderPaymentCreate
func NewOrderPaymentCreate(trans returns.Transaction) *OrderPaymentCreate {
	return &OrderPaymentCreate{trans: trans}
}

// SetTransaction switches the transaction all subsequent writes land in
func (c *OrderPaymentCreate) SetTransaction(trans returns.Transaction) {
	c.trans = trans
}

// Create persists the order-level payment mirror, assigning its ID
func (c *OrderPaymentCreate) Create(ctx context.Context, payment *returns.OrderPayment) error {
	if payment.OrderID == uuid.Nil {
		return shared.NewValidationError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if payment.Payment.ID == uuid.Nil {
		return shared.NewValidationError("INVALID_PAYMENT", "Order payment must reference a saved payment")
	}

	payment.ID = uuid.New()
	return c.trans.Run(ctx, sqlInsertOrderPayment,
		payment.ID, payment.OrderID, payment.Payment.ID, time.Now())
}

// OrderRefundCreate creates order-scoped refund mirrors
type OrderRefundCreate struct {
	trans returns.Transaction
}

// NewOrderRefundCreate creates an OrderRefundCreate
func NewOrderRefundCreate(trans returns.Transaction) *OrderRefundCreate {
	return &OrderRefundCreate{trans: trans}
}

// SetTransaction switches the transaction all subsequent writes land in
func (c *OrderRefundCreate) SetTransaction(trans returns.Transaction) {
	c.trans = trans
}

// Create persists the order-level refund mirror, assigning its ID
func (c *OrderRefundCreate) Create(ctx context.Context, refund *returns.OrderRefund) error {
	if refund.OrderID == uuid.Nil {
		return shared.NewValidationError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if refund.Refund.ID == uuid.Nil {
		return shared.NewValidationError("INVALID_REFUND", "Order refund must reference a saved refund")
	}

	refund.ID = uuid.New()
	return c.trans.Run(ctx, sqlInsertOrderRefund,
		refund.ID, refund.OrderID, refund.Refund.ID, time.Now())
}
