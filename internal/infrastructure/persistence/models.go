package persistence

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Storage models for the returns schema. Authorship columns are fully
// application-controlled: gorm's automatic timestamping is disabled so the
// editor's raw writes stay the single source of truth.

// ReturnModel is the storage shape of the return aggregate root
type ReturnModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CurrencyID  string     `gorm:"size:3;not null"`
	CreatedAt   time.Time  `gorm:"autoCreateTime:false"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"`
	UpdatedBy   *uuid.UUID `gorm:"type:uuid"`
	CompletedAt *time.Time
	CompletedBy *uuid.UUID `gorm:"type:uuid"`

	Item ReturnItemModel `gorm:"foreignKey:ReturnID"`
}

// TableName overrides the table name
func (ReturnModel) TableName() string {
	return "returns"
}

// ReturnItemModel is the storage shape of the returnable unit
type ReturnItemModel struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ReturnID              uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	OrderItemID           *uuid.UUID      `gorm:"type:uuid;index"`
	OrderID               *uuid.UUID      `gorm:"type:uuid;index"`
	Status                string          `gorm:"size:32;not null"`
	Accepted              *bool           `gorm:""`
	Balance               decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	RemainingBalance      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Reason                string          `gorm:"size:255;not null"`
	ReturnedStock         bool            `gorm:"not null;default:false"`
	ReturnedStockLocation *string         `gorm:"size:64"`
	CreatedAt             time.Time       `gorm:"autoCreateTime:false"`
	CreatedBy             *uuid.UUID      `gorm:"type:uuid"`
	UpdatedAt             *time.Time      `gorm:"autoUpdateTime:false"`
	UpdatedBy             *uuid.UUID      `gorm:"type:uuid"`
	CompletedAt           *time.Time
	CompletedBy           *uuid.UUID `gorm:"type:uuid"`
}

// TableName overrides the table name
func (ReturnItemModel) TableName() string {
	return "return_items"
}

// PaymentModel stores payment records created against returns
type PaymentModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Method     string          `gorm:"size:32;not null"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Reference  string          `gorm:"size:128"`
	CurrencyID string          `gorm:"size:3;not null"`
	CreatedAt  time.Time       `gorm:"autoCreateTime:false"`
}

// TableName overrides the table name
func (PaymentModel) TableName() string {
	return "payments"
}

// RefundModel stores refund records created against returns
type RefundModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Method     string          `gorm:"size:32;not null"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Reason     string          `gorm:"size:255"`
	Reference  string          `gorm:"size:128"`
	PaymentID  *uuid.UUID      `gorm:"type:uuid"`
	CurrencyID string          `gorm:"size:3;not null"`
	CreatedAt  time.Time       `gorm:"autoCreateTime:false"`
}

// TableName overrides the table name
func (RefundModel) TableName() string {
	return "refunds"
}

// ReturnPaymentModel is the append-only link between returns and payments
type ReturnPaymentModel struct {
	ReturnID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	PaymentID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName overrides the table name
func (ReturnPaymentModel) TableName() string {
	return "return_payments"
}

// ReturnRefundModel is the append-only link between returns and refunds
type ReturnRefundModel struct {
	ReturnID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RefundID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName overrides the table name
func (ReturnRefundModel) TableName() string {
	return "return_refunds"
}

// OrderPaymentModel mirrors a return payment onto its originating order
type OrderPaymentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	PaymentID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

// TableName overrides the table name
func (OrderPaymentModel) TableName() string {
	return "order_payments"
}

// OrderRefundModel mirrors a return refund onto its originating order
type OrderRefundModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	RefundID  uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

// TableName overrides the table name
func (OrderRefundModel) TableName() string {
	return "order_refunds"
}

// OrderItemModel carries the slice of the order item this module writes to:
// the return-driven status mirror. The order item itself is owned elsewhere.
type OrderItemModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReturnStatus *string    `gorm:"size:32"`
	UpdatedAt    *time.Time `gorm:"autoUpdateTime:false"`
}

// TableName overrides the table name
func (OrderItemModel) TableName() string {
	return "order_items"
}

// AllModels returns every model managed by this module's schema
func AllModels() []any {
	return []any{
		&ReturnModel{},
		&ReturnItemModel{},
		&PaymentModel{},
		&RefundModel{},
		&ReturnPaymentModel{},
		&ReturnRefundModel{},
		&OrderPaymentModel{},
		&OrderRefundModel{},
		&OrderItemModel{},
	}
}

// AutoMigrate creates or updates the schema for every managed model
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
