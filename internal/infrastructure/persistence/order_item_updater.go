package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/commerce/returns/internal/domain/returns"
)

const sqlSetOrderItemReturnStatus = `UPDATE order_items SET return_status = ?, updated_at = ? WHERE id = ?`

// OrderItemStatusUpdate propagates return-driven status changes onto the
// originating order item, writing through the shared transaction.
type OrderItemStatusUpdate struct {
	trans returns.Transaction
}

// NewOrderItemStatusUpdate creates an OrderItemStatusUpdate
func NewOrderItemStatusUpdate(trans returns.Transaction) *OrderItemStatusUpdate {
	return &OrderItemStatusUpdate{trans: trans}
}

// SetTransaction switches the transaction all subsequent writes land in
func (u *OrderItemStatusUpdate) SetTransaction(trans returns.Transaction) {
	u.trans = trans
}

// UpdateStatus mirrors the return status onto the order item row
func (u *OrderItemStatusUpdate) UpdateStatus(ctx context.Context, orderItemID uuid.UUID, status returns.Status) error {
	return u.trans.Run(ctx, sqlSetOrderItemReturnStatus, status, time.Now(), orderItemID)
}
