package returns

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	sqlSetItemStatus = `UPDATE return_items SET status = ?, updated_at = ?, updated_by = ? WHERE return_id = ?`

	sqlSetItemAccepted = `UPDATE return_items SET accepted = ?, updated_at = ?, updated_by = ? WHERE return_id = ?`

	sqlSetItemBalances = `UPDATE return_items SET balance = ?, remaining_balance = ?, updated_at = ?, updated_by = ? WHERE return_id = ?`

	sqlSetItemStock = `UPDATE return_items SET returned_stock = ?, returned_stock_location = ?, updated_at = ?, updated_by = ? WHERE return_id = ?`

	sqlLinkPayment = `INSERT INTO return_payments (return_id, payment_id) VALUES (?, ?)`

	sqlLinkRefund = `INSERT INTO return_refunds (return_id, refund_id) VALUES (?, ?)`

	sqlTouchReturn = `UPDATE returns SET updated_at = ?, updated_by = ? WHERE id = ?`

	sqlTouchItem = `UPDATE return_items SET updated_at = ?, updated_by = ? WHERE return_id = ?`

	sqlCompleteReturn = `UPDATE returns SET updated_at = ?, updated_by = ?, completed_at = ?, completed_by = ? WHERE id = ?`

	sqlCompleteItem = `UPDATE return_items SET status = ?, updated_at = ?, updated_by = ?, completed_at = ?, completed_by = ? WHERE return_id = ?`
)

// Editor drives every state transition and balance operation on a return.
// Each public operation mutates the aggregate in memory, stamps authorship,
// persists through the shared transaction, cascades to order-level
// collaborators where a link exists, and commits once at the end - unless the
// transaction was supplied by the caller, in which case the editor never
// commits and the caller controls atomicity.
//
// Persistence failures abort the operation before commit. In-memory mutations
// applied before the failing write are not rolled back; callers must discard
// the aggregate on error.
type Editor struct {
	trans           Transaction
	transOverridden bool

	currentUser CurrentUser
	itemEdit    OrderItemStatusUpdater

	paymentCreate      PaymentCreator
	orderPaymentCreate OrderPaymentCreator
	refundCreate       RefundCreator
	orderRefundCreate  OrderRefundCreator

	validator Validator
}

// NewEditor creates an editor owning its transaction
func NewEditor(
	trans Transaction,
	currentUser CurrentUser,
	itemEdit OrderItemStatusUpdater,
	paymentCreate PaymentCreator,
	orderPaymentCreate OrderPaymentCreator,
	refundCreate RefundCreator,
	orderRefundCreate OrderRefundCreator,
) *Editor {
	return &Editor{
		trans:              trans,
		currentUser:        currentUser,
		itemEdit:           itemEdit,
		paymentCreate:      paymentCreate,
		orderPaymentCreate: orderPaymentCreate,
		refundCreate:       refundCreate,
		orderRefundCreate:  orderRefundCreate,
		validator:          PermissiveValidator{},
	}
}

// SetTransaction hands the editor a caller-owned transaction. From this point
// on, for the editor's whole lifetime, it never commits: the outer caller
// controls atomicity.
func (e *Editor) SetTransaction(trans Transaction) {
	e.trans = trans
	e.transOverridden = true
}

// SetValidator installs a host-supplied validation hook, replacing the
// permissive default
func (e *Editor) SetValidator(v Validator) {
	e.validator = v
}

// MarkReceived sets the item status to RECEIVED and cascades the same status
// onto the originating order item when one is linked. Receipt is idempotent in
// effect but always re-stamps authorship.
func (e *Editor) MarkReceived(ctx context.Context, ret *Return) error {
	e.itemEdit.SetTransaction(e.trans)

	ret.Item.MarkReceived()
	ret.Authorship.Update(time.Now(), e.currentUser.UserID())

	if err := e.trans.Run(ctx, sqlSetItemStatus,
		StatusReceived,
		ret.Authorship.UpdatedAt,
		ret.Authorship.UpdatedBy,
		ret.ID,
	); err != nil {
		return err
	}

	if ret.Item.HasOrderItem() {
		if err := e.itemEdit.UpdateStatus(ctx, *ret.Item.OrderItemID, StatusReceived); err != nil {
			return err
		}
	}

	return e.commit(ctx)
}

// Accept records acceptance of the returned goods. Only the flag and the
// authorship stamp are persisted; there is no cascade.
func (e *Editor) Accept(ctx context.Context, ret *Return) error {
	ret.Item.Accept()
	return e.persistAccepted(ctx, ret)
}

// Reject records rejection of the returned goods
func (e *Editor) Reject(ctx context.Context, ret *Return) error {
	ret.Item.Reject()
	return e.persistAccepted(ctx, ret)
}

func (e *Editor) persistAccepted(ctx context.Context, ret *Return) error {
	ret.Authorship.Update(time.Now(), e.currentUser.UserID())

	if err := e.trans.Run(ctx, sqlSetItemAccepted,
		ret.Item.Accepted,
		ret.Authorship.UpdatedAt,
		ret.Authorship.UpdatedBy,
		ret.ID,
	); err != nil {
		return err
	}

	return e.commit(ctx)
}

// SetBalance establishes a fresh settlement baseline: balance and remaining
// balance are both set to the given amount.
func (e *Editor) SetBalance(ctx context.Context, ret *Return, amount decimal.Decimal) error {
	ret.Item.SetBalance(amount)
	ret.Authorship.Update(time.Now(), e.currentUser.UserID())

	if err := e.validator.Validate(ret); err != nil {
		return err
	}

	if err := e.trans.Run(ctx, sqlSetItemBalances,
		ret.Item.Balance,
		ret.Item.RemainingBalance,
		ret.Authorship.UpdatedAt,
		ret.Authorship.UpdatedBy,
		ret.ID,
	); err != nil {
		return err
	}

	return e.commit(ctx)
}

// SetRemainingBalance sets the remaining balance, leaving the balance
// untouched. When the applied amount settles to zero the return is completed
// within the same transaction. The commit flag lets composite operations defer
// the single outer commit.
func (e *Editor) SetRemainingBalance(ctx context.Context, ret *Return, amount decimal.Decimal, commit bool) error {
	outcome := ret.Item.ApplyRemainingBalance(amount)
	ret.Authorship.Update(time.Now(), e.currentUser.UserID())

	if err := e.validator.Validate(ret); err != nil {
		return err
	}

	if err := e.trans.Run(ctx, sqlSetItemBalances,
		ret.Item.Balance,
		ret.Item.RemainingBalance,
		ret.Authorship.UpdatedAt,
		ret.Authorship.UpdatedBy,
		ret.ID,
	); err != nil {
		return err
	}

	if outcome == Settled {
		if err := e.Complete(ctx, ret, false); err != nil {
			return err
		}
	}

	if commit {
		return e.commit(ctx)
	}
	return nil
}

// ClearRemainingBalance zeroes the remaining balance, which always completes
// the return
func (e *Editor) ClearRemainingBalance(ctx context.Context, ret *Return, commit bool) error {
	return e.SetRemainingBalance(ctx, ret, decimal.Zero, commit)
}

// AddPayment creates a payment record, links it to the return, mirrors it onto
// the originating order when one is linked, and consumes the amount against
// the outstanding balance. A payment that settles the remaining balance
// completes the return. One outer commit covers every write.
func (e *Editor) AddPayment(ctx context.Context, ret *Return, method string, amount decimal.Decimal, reference string) error {
	e.paymentCreate.SetTransaction(e.trans)
	e.orderPaymentCreate.SetTransaction(e.trans)

	payment := NewPayment(method, amount, reference, ret.CurrencyID)
	if err := e.paymentCreate.Create(ctx, payment); err != nil {
		return err
	}

	if err := e.trans.Run(ctx, sqlLinkPayment, ret.ID, payment.ID); err != nil {
		return err
	}

	if ret.Item.HasOrder() {
		orderPayment := NewOrderPayment(*ret.Item.OrderID, payment)
		if err := e.orderPaymentCreate.Create(ctx, orderPayment); err != nil {
			return err
		}
	}

	if err := e.touchReturn(ctx, ret); err != nil {
		return err
	}
	if err := e.touchItem(ctx, ret); err != nil {
		return err
	}

	if err := e.SetRemainingBalance(ctx, ret, ret.Item.RemainingBalance.Sub(amount), false); err != nil {
		return err
	}

	return e.commit(ctx)
}

// Refund creates a refund record, links it to the return, mirrors it onto the
// originating order when one is linked, and grows the balance baseline by the
// refunded amount: money given back increases what is outstanding. The
// remaining balance is then resynchronised to the new baseline. Note the
// asymmetry with AddPayment, which shrinks the remaining balance instead.
func (e *Editor) Refund(ctx context.Context, ret *Return, method string, amount decimal.Decimal, payment *OrderPayment, reference string) error {
	e.refundCreate.SetTransaction(e.trans)
	e.orderRefundCreate.SetTransaction(e.trans)

	var paymentID *uuid.UUID
	if payment != nil {
		paymentID = &payment.Payment.ID
	}

	refund := NewRefund(method, amount, "Returned Item: "+ret.Item.Reason, reference, paymentID, ret.CurrencyID)
	if err := e.refundCreate.Create(ctx, refund); err != nil {
		return err
	}

	if err := e.trans.Run(ctx, sqlLinkRefund, ret.ID, refund.ID); err != nil {
		return err
	}

	if ret.Item.HasOrder() {
		orderRefund := NewOrderRefund(*ret.Item.OrderID, refund)
		if err := e.orderRefundCreate.Create(ctx, orderRefund); err != nil {
			return err
		}
	}

	if err := e.touchReturn(ctx, ret); err != nil {
		return err
	}
	if err := e.touchItem(ctx, ret); err != nil {
		return err
	}

	ret.Item.Balance = ret.Item.Balance.Add(amount)
	if err := e.SetRemainingBalance(ctx, ret, ret.Item.Balance, false); err != nil {
		return err
	}

	return e.commit(ctx)
}

// ReturnItemToStock marks the goods as restocked at the given location. No
// cascade, no auto-completion.
func (e *Editor) ReturnItemToStock(ctx context.Context, ret *Return, location Location) error {
	ret.Item.ReturnToStock(location)
	ret.Authorship.Update(time.Now(), e.currentUser.UserID())

	if err := e.validator.Validate(ret); err != nil {
		return err
	}

	if err := e.trans.Run(ctx, sqlSetItemStock,
		ret.Item.ReturnedStock,
		ret.Item.ReturnedStockLocation.Name,
		ret.Authorship.UpdatedAt,
		ret.Authorship.UpdatedBy,
		ret.ID,
	); err != nil {
		return err
	}

	return e.commit(ctx)
}

// Complete is the terminal transition: completion is stamped on both the
// return and its item, the status moves to COMPLETED, and the change cascades
// onto the originating order item when one is linked. Re-running re-stamps
// authorship; the storage effect is otherwise a no-op.
func (e *Editor) Complete(ctx context.Context, ret *Return, commit bool) error {
	e.itemEdit.SetTransaction(e.trans)

	now := time.Now()
	userID := e.currentUser.UserID()
	ret.Authorship.Complete(now, userID)
	ret.Item.Authorship.Complete(now, userID)
	ret.Item.Complete()

	if err := e.trans.Run(ctx, sqlCompleteReturn,
		ret.Item.Authorship.UpdatedAt,
		ret.Item.Authorship.UpdatedBy,
		ret.Item.Authorship.CompletedAt,
		ret.Item.Authorship.CompletedBy,
		ret.ID,
	); err != nil {
		return err
	}

	if err := e.trans.Run(ctx, sqlCompleteItem,
		StatusCompleted,
		ret.Item.Authorship.UpdatedAt,
		ret.Item.Authorship.UpdatedBy,
		ret.Item.Authorship.CompletedAt,
		ret.Item.Authorship.CompletedBy,
		ret.ID,
	); err != nil {
		return err
	}

	if ret.Item.HasOrderItem() {
		if err := e.itemEdit.UpdateStatus(ctx, *ret.Item.OrderItemID, StatusCompleted); err != nil {
			return err
		}
	}

	if commit {
		return e.commit(ctx)
	}
	return nil
}

// touchReturn re-stamps the return row after a composite mutation
func (e *Editor) touchReturn(ctx context.Context, ret *Return) error {
	ret.Authorship.Update(time.Now(), e.currentUser.UserID())

	return e.trans.Run(ctx, sqlTouchReturn,
		ret.Authorship.UpdatedAt,
		ret.Authorship.UpdatedBy,
		ret.ID,
	)
}

// touchItem copies the return's update stamp onto the item row
func (e *Editor) touchItem(ctx context.Context, ret *Return) error {
	ret.Item.Authorship.Update(*ret.Authorship.UpdatedAt, *ret.Authorship.UpdatedBy)

	return e.trans.Run(ctx, sqlTouchItem,
		ret.Item.Authorship.UpdatedAt,
		ret.Item.Authorship.UpdatedBy,
		ret.ID,
	)
}

func (e *Editor) commit(ctx context.Context) error {
	if e.transOverridden {
		return nil
	}
	return e.trans.Commit(ctx)
}
