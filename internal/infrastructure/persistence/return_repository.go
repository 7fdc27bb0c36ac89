package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/commerce/returns/internal/domain/returns"
	"github.com/commerce/returns/internal/domain/shared"
	"github.com/commerce/returns/internal/domain/shared/valueobject"
)

// GormReturnRepository implements returns.ReturnRepository
type GormReturnRepository struct {
	db *gorm.DB
}

// NewGormReturnRepository creates a new GORM-backed return repository
func NewGormReturnRepository(db *gorm.DB) *GormReturnRepository {
	return &GormReturnRepository{db: db}
}

// FindByID loads a return aggregate with its item
func (r *GormReturnRepository) FindByID(ctx context.Context, id uuid.UUID) (*returns.Return, error) {
	var model ReturnModel
	err := r.db.WithContext(ctx).
		Preload("Item").
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.NewPersistenceError("find", err)
	}

	return toDomainReturn(&model), nil
}

// Save upserts the aggregate and its item in one transaction
func (r *GormReturnRepository) Save(ctx context.Context, ret *returns.Return) error {
	returnModel, itemModel := toReturnModels(ret)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(returnModel).Error; err != nil {
			return err
		}
		return tx.Save(itemModel).Error
	})
	if err != nil {
		return shared.NewPersistenceError("save", err)
	}
	return nil
}

func toDomainReturn(m *ReturnModel) *returns.Return {
	item := returns.ReturnItem{
		ID:               m.Item.ID,
		ReturnID:         m.Item.ReturnID,
		OrderItemID:      m.Item.OrderItemID,
		OrderID:          m.Item.OrderID,
		Status:           returns.Status(m.Item.Status),
		Accepted:         m.Item.Accepted,
		Balance:          m.Item.Balance,
		RemainingBalance: m.Item.RemainingBalance,
		Reason:           m.Item.Reason,
		ReturnedStock:    m.Item.ReturnedStock,
		Authorship: shared.Authorship{
			CreatedAt:   m.Item.CreatedAt,
			CreatedBy:   m.Item.CreatedBy,
			UpdatedAt:   m.Item.UpdatedAt,
			UpdatedBy:   m.Item.UpdatedBy,
			CompletedAt: m.Item.CompletedAt,
			CompletedBy: m.Item.CompletedBy,
		},
	}
	if m.Item.ReturnedStockLocation != nil {
		item.ReturnedStockLocation = &returns.Location{Name: *m.Item.ReturnedStockLocation}
	}

	return &returns.Return{
		ID:         m.ID,
		CurrencyID: valueobject.Currency(m.CurrencyID),
		Item:       item,
		Authorship: shared.Authorship{
			CreatedAt:   m.CreatedAt,
			CreatedBy:   m.CreatedBy,
			UpdatedAt:   m.UpdatedAt,
			UpdatedBy:   m.UpdatedBy,
			CompletedAt: m.CompletedAt,
			CompletedBy: m.CompletedBy,
		},
	}
}

func toReturnModels(ret *returns.Return) (*ReturnModel, *ReturnItemModel) {
	returnModel := &ReturnModel{
		ID:          ret.ID,
		CurrencyID:  ret.CurrencyID.String(),
		CreatedAt:   ret.Authorship.CreatedAt,
		CreatedBy:   ret.Authorship.CreatedBy,
		UpdatedAt:   ret.Authorship.UpdatedAt,
		UpdatedBy:   ret.Authorship.UpdatedBy,
		CompletedAt: ret.Authorship.CompletedAt,
		CompletedBy: ret.Authorship.CompletedBy,
	}

	itemModel := &ReturnItemModel{
		ID:               ret.Item.ID,
		ReturnID:         ret.Item.ReturnID,
		OrderItemID:      ret.Item.OrderItemID,
		OrderID:          ret.Item.OrderID,
		Status:           ret.Item.Status.String(),
		Accepted:         ret.Item.Accepted,
		Balance:          ret.Item.Balance,
		RemainingBalance: ret.Item.RemainingBalance,
		Reason:           ret.Item.Reason,
		ReturnedStock:    ret.Item.ReturnedStock,
		CreatedAt:        ret.Item.Authorship.CreatedAt,
		CreatedBy:        ret.Item.Authorship.CreatedBy,
		UpdatedAt:        ret.Item.Authorship.UpdatedAt,
		UpdatedBy:        ret.Item.Authorship.UpdatedBy,
		CompletedAt:      ret.Item.Authorship.CompletedAt,
		CompletedBy:      ret.Item.Authorship.CompletedBy,
	}
	if ret.Item.ReturnedStockLocation != nil {
		name := ret.Item.ReturnedStockLocation.Name
		itemModel.ReturnedStockLocation = &name
	}

	return returnModel, itemModel
}
