package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/commerce/returns/internal/domain/shared"
)

// GormTransaction implements the returns.Transaction port over a lazily begun
// GORM transaction. The first Run begins the transaction; Commit ends it and
// resets the adapter so the next Run opens a fresh one. Failed writes roll the
// transaction back and surface as *shared.PersistenceError.
type GormTransaction struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewGormTransaction creates a transaction adapter over the given connection
func NewGormTransaction(db *gorm.DB) *GormTransaction {
	return &GormTransaction{db: db}
}

// Run executes one statement inside the shared transaction
func (t *GormTransaction) Run(ctx context.Context, statement string, args ...any) error {
	if t.tx == nil {
		tx := t.db.WithContext(ctx).Begin()
		if tx.Error != nil {
			return shared.NewPersistenceError("begin", tx.Error)
		}
		t.tx = tx
	}

	if err := t.tx.Exec(statement, args...).Error; err != nil {
		t.tx.Rollback()
		t.tx = nil
		return shared.NewPersistenceError("exec", err)
	}
	return nil
}

// Commit commits the open transaction. Committing with no statements run is a
// no-op.
func (t *GormTransaction) Commit(ctx context.Context) error {
	if t.tx == nil {
		return nil
	}

	err := t.tx.Commit().Error
	t.tx = nil
	if err != nil {
		return shared.NewPersistenceError("commit", err)
	}
	return nil
}

// Rollback discards the open transaction, if any
func (t *GormTransaction) Rollback(ctx context.Context) error {
	if t.tx == nil {
		return nil
	}

	err := t.tx.Rollback().Error
	t.tx = nil
	if err != nil {
		return shared.NewPersistenceError("rollback", err)
	}
	return nil
}
