package returns

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/commerce/returns/internal/domain/shared/valueobject"
)

// Payment is a payment record settled against a return. It is an external
// entity: a creator collaborator assigns its identity and owns its storage.
type Payment struct {
	ID         uuid.UUID
	Method     string
	Amount     decimal.Decimal
	Reference  string
	CurrencyID valueobject.Currency
}

// NewPayment creates an unsaved payment record
func NewPayment(method string, amount decimal.Decimal, reference string, currencyID valueobject.Currency) *Payment {
	return &Payment{
		Method:     method,
		Amount:     amount,
		Reference:  reference,
		CurrencyID: currencyID,
	}
}

// AmountMoney returns the payment amount as a Money value object
func (p *Payment) AmountMoney() valueobject.Money {
	m, _ := valueobject.NewMoney(p.Amount, p.CurrencyID)
	return m
}

// Refund is a refund record issued against a return, optionally tied to the
// order payment it reverses.
type Refund struct {
	ID         uuid.UUID
	Method     string
	Amount     decimal.Decimal
	Reason     string
	Reference  string
	PaymentID  *uuid.UUID
	CurrencyID valueobject.Currency
}

// NewRefund creates an unsaved refund record
func NewRefund(method string, amount decimal.Decimal, reason, reference string, paymentID *uuid.UUID, currencyID valueobject.Currency) *Refund {
	return &Refund{
		Method:     method,
		Amount:     amount,
		Reason:     reason,
		Reference:  reference,
		PaymentID:  paymentID,
		CurrencyID: currencyID,
	}
}

// AmountMoney returns the refund amount as a Money value object
func (r *Refund) AmountMoney() valueobject.Money {
	m, _ := valueobject.NewMoney(r.Amount, r.CurrencyID)
	return m
}

// OrderPayment mirrors a return payment onto the originating order
type OrderPayment struct {
	ID      uuid.UUID
	OrderID uuid.UUID
	Payment Payment
}

// NewOrderPayment creates an unsaved order-level mirror of a payment
func NewOrderPayment(orderID uuid.UUID, payment *Payment) *OrderPayment {
	return &OrderPayment{
		OrderID: orderID,
		Payment: *payment,
	}
}

// OrderRefund mirrors a return refund onto the originating order
type OrderRefund struct {
	ID      uuid.UUID
	OrderID uuid.UUID
	Refund  Refund
}

// NewOrderRefund creates an unsaved order-level mirror of a refund
func NewOrderRefund(orderID uuid.UUID, refund *Refund) *OrderRefund {
	return &OrderRefund{
		OrderID: orderID,
		Refund:  *refund,
	}
}

// ReturnPayment is the append-only link row between a return and a payment
type ReturnPayment struct {
	ReturnID  uuid.UUID
	PaymentID uuid.UUID
}

// ReturnRefund is the append-only link row between a return and a refund
type ReturnRefund struct {
	ReturnID uuid.UUID
	RefundID uuid.UUID
}
