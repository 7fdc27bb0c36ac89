package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/commerce/returns/internal/domain/returns"
	"github.com/commerce/returns/internal/domain/shared/valueobject"
)

type stubCurrentUser struct {
	id uuid.UUID
}

func (s stubCurrentUser) UserID() uuid.UUID {
	return s.id
}

// openScenarioDB opens an isolated in-memory database with the full schema
func openScenarioDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every session on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, AutoMigrate(db))
	return db
}

// newScenarioEditor wires an editor against real storage collaborators
func newScenarioEditor(db *gorm.DB, userID uuid.UUID) *returns.Editor {
	trans := NewGormTransaction(db)
	return returns.NewEditor(
		trans,
		stubCurrentUser{id: userID},
		NewOrderItemStatusUpdate(trans),
		NewPaymentCreate(trans),
		NewOrderPaymentCreate(trans),
		NewRefundCreate(trans),
		NewOrderRefundCreate(trans),
	)
}

func seedReturn(t *testing.T, repo *GormReturnRepository, orderItemID, orderID *uuid.UUID, createdBy uuid.UUID) *returns.Return {
	t.Helper()

	ret, err := returns.NewReturn(valueobject.GBP, "Faulty seam", orderItemID, orderID, createdBy)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), ret))
	return ret
}

func TestGormReturnRepository_Roundtrip(t *testing.T) {
	db := openScenarioDB(t)
	repo := NewGormReturnRepository(db)
	userID := uuid.New()
	orderItemID := uuid.New()
	orderID := uuid.New()

	ret := seedReturn(t, repo, &orderItemID, &orderID, userID)

	loaded, err := repo.FindByID(context.Background(), ret.ID)
	require.NoError(t, err)

	assert.Equal(t, ret.ID, loaded.ID)
	assert.Equal(t, valueobject.GBP, loaded.CurrencyID)
	assert.Equal(t, ret.Item.ID, loaded.Item.ID)
	assert.Equal(t, returns.StatusAwaitingReceipt, loaded.Item.Status)
	assert.Equal(t, "Faulty seam", loaded.Item.Reason)
	require.NotNil(t, loaded.Item.OrderItemID)
	assert.Equal(t, orderItemID, *loaded.Item.OrderItemID)
	require.NotNil(t, loaded.Item.OrderID)
	assert.Equal(t, orderID, *loaded.Item.OrderID)
	assert.True(t, loaded.Item.Balance.IsZero())
	require.NotNil(t, loaded.Authorship.CreatedBy)
	assert.Equal(t, userID, *loaded.Authorship.CreatedBy)
}

func TestEditor_SettlementScenario(t *testing.T) {
	db := openScenarioDB(t)
	repo := NewGormReturnRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	orderItemID := uuid.New()
	orderID := uuid.New()

	// The order item the return cascades onto
	require.NoError(t, db.Create(&OrderItemModel{ID: orderItemID, OrderID: orderID}).Error)

	ret := seedReturn(t, repo, &orderItemID, &orderID, userID)
	editor := newScenarioEditor(db, userID)

	require.NoError(t, editor.MarkReceived(ctx, ret))
	require.NoError(t, editor.Accept(ctx, ret))
	require.NoError(t, editor.SetBalance(ctx, ret, decimal.NewFromInt(100)))
	require.NoError(t, editor.AddPayment(ctx, ret, "card", decimal.NewFromInt(100), "PAY-001"))

	// A payment covering the full balance settles and completes the return
	loaded, err := repo.FindByID(ctx, ret.ID)
	require.NoError(t, err)
	assert.Equal(t, returns.StatusCompleted, loaded.Item.Status)
	assert.True(t, loaded.Item.RemainingBalance.IsZero())
	assert.True(t, loaded.Item.Balance.Equal(decimal.NewFromInt(100)))
	assert.True(t, loaded.Item.IsAccepted())
	assert.True(t, loaded.Item.Authorship.IsCompleted())
	assert.True(t, loaded.Authorship.IsCompleted())

	// Payment record, return link and order mirror all landed
	var payments []PaymentModel
	require.NoError(t, db.Find(&payments).Error)
	require.Len(t, payments, 1)
	assert.Equal(t, "card", payments[0].Method)
	assert.Equal(t, "PAY-001", payments[0].Reference)
	assert.True(t, payments[0].Amount.Equal(decimal.NewFromInt(100)))

	var links []ReturnPaymentModel
	require.NoError(t, db.Find(&links).Error)
	require.Len(t, links, 1)
	assert.Equal(t, ret.ID, links[0].ReturnID)
	assert.Equal(t, payments[0].ID, links[0].PaymentID)

	var mirrors []OrderPaymentModel
	require.NoError(t, db.Find(&mirrors).Error)
	require.Len(t, mirrors, 1)
	assert.Equal(t, orderID, mirrors[0].OrderID)
	assert.Equal(t, payments[0].ID, mirrors[0].PaymentID)

	// Completion cascaded onto the order item
	var orderItem OrderItemModel
	require.NoError(t, db.First(&orderItem, "id = ?", orderItemID).Error)
	require.NotNil(t, orderItem.ReturnStatus)
	assert.Equal(t, returns.StatusCompleted.String(), *orderItem.ReturnStatus)
}

func TestEditor_RefundScenario(t *testing.T) {
	db := openScenarioDB(t)
	repo := NewGormReturnRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	orderID := uuid.New()

	ret := seedReturn(t, repo, nil, &orderID, userID)
	editor := newScenarioEditor(db, userID)

	require.NoError(t, editor.SetBalance(ctx, ret, decimal.NewFromInt(40)))
	require.NoError(t, editor.Refund(ctx, ret, "card", decimal.NewFromInt(10), nil, "REF-001"))

	// The refund grows the baseline and resynchronises the remaining balance
	loaded, err := repo.FindByID(ctx, ret.ID)
	require.NoError(t, err)
	assert.True(t, loaded.Item.Balance.Equal(decimal.NewFromInt(50)))
	assert.True(t, loaded.Item.RemainingBalance.Equal(decimal.NewFromInt(50)))
	assert.NotEqual(t, returns.StatusCompleted, loaded.Item.Status)

	var refunds []RefundModel
	require.NoError(t, db.Find(&refunds).Error)
	require.Len(t, refunds, 1)
	assert.Equal(t, "Returned Item: Faulty seam", refunds[0].Reason)
	assert.Nil(t, refunds[0].PaymentID)

	var mirrors []OrderRefundModel
	require.NoError(t, db.Find(&mirrors).Error)
	require.Len(t, mirrors, 1)
	assert.Equal(t, orderID, mirrors[0].OrderID)
	assert.Equal(t, refunds[0].ID, mirrors[0].RefundID)
}

func TestEditor_ReturnToStockScenario(t *testing.T) {
	db := openScenarioDB(t)
	repo := NewGormReturnRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	ret := seedReturn(t, repo, nil, nil, userID)
	editor := newScenarioEditor(db, userID)

	require.NoError(t, editor.ReturnItemToStock(ctx, ret, returns.Location{Name: "warehouse-2"}))

	loaded, err := repo.FindByID(ctx, ret.ID)
	require.NoError(t, err)
	assert.True(t, loaded.Item.ReturnedStock)
	require.NotNil(t, loaded.Item.ReturnedStockLocation)
	assert.Equal(t, "warehouse-2", loaded.Item.ReturnedStockLocation.Name)
}
