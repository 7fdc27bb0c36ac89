package returns

import (
	"context"

	"github.com/google/uuid"
)

// Transaction is the shared transactional resource every write of one logical
// operation lands in. Run fails with a *shared.PersistenceError on write
// failure; rollback is the implementation's responsibility.
type Transaction interface {
	Run(ctx context.Context, statement string, args ...any) error
	Commit(ctx context.Context) error
}

// CurrentUser supplies the identity recorded on every authorship stamp
type CurrentUser interface {
	UserID() uuid.UUID
}

// OrderItemStatusUpdater propagates return-driven status changes onto the
// originating order item. It must write through the supplied transaction.
type OrderItemStatusUpdater interface {
	SetTransaction(trans Transaction)
	UpdateStatus(ctx context.Context, orderItemID uuid.UUID, status Status) error
}

// PaymentCreator creates payment records, assigning their identity. Fails with
// a *shared.ValidationError on invalid input.
type PaymentCreator interface {
	SetTransaction(trans Transaction)
	Create(ctx context.Context, payment *Payment) error
}

// RefundCreator creates refund records, assigning their identity
type RefundCreator interface {
	SetTransaction(trans Transaction)
	Create(ctx context.Context, refund *Refund) error
}

// OrderPaymentCreator creates order-scoped payment mirrors
type OrderPaymentCreator interface {
	SetTransaction(trans Transaction)
	Create(ctx context.Context, payment *OrderPayment) error
}

// OrderRefundCreator creates order-scoped refund mirrors
type OrderRefundCreator interface {
	SetTransaction(trans Transaction)
	Create(ctx context.Context, refund *OrderRefund) error
}

// Validator is the extension hook invoked before any balance- or
// stock-affecting write. Hosts supply implementations enforcing their rules,
// e.g. a non-negative remaining balance or acceptance before settlement.
type Validator interface {
	Validate(ret *Return) error
}

// PermissiveValidator is the default validator; it accepts everything
type PermissiveValidator struct{}

// Validate accepts any return state
func (PermissiveValidator) Validate(*Return) error {
	return nil
}

// ValidatorFunc adapts a function to the Validator interface
type ValidatorFunc func(ret *Return) error

// Validate calls the wrapped function
func (f ValidatorFunc) Validate(ret *Return) error {
	return f(ret)
}
