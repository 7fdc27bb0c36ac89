package returns

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commerce/returns/internal/domain/shared/valueobject"
)

func TestNewReturn(t *testing.T) {
	t.Run("creates return awaiting receipt with zero balances", func(t *testing.T) {
		orderItemID, orderID := uuid.New(), uuid.New()
		createdBy := uuid.New()

		ret, err := NewReturn(valueobject.GBP, "Faulty zip", &orderItemID, &orderID, createdBy)
		require.NoError(t, err)

		assert.Equal(t, StatusAwaitingReceipt, ret.Item.Status)
		assert.True(t, ret.Item.Balance.IsZero())
		assert.True(t, ret.Item.RemainingBalance.IsZero())
		assert.Nil(t, ret.Item.Accepted)
		assert.False(t, ret.Item.ReturnedStock)
		assert.Equal(t, ret.ID, ret.Item.ReturnID)
		assert.Equal(t, valueobject.GBP, ret.CurrencyID)
		require.NotNil(t, ret.Authorship.CreatedBy)
		assert.Equal(t, createdBy, *ret.Authorship.CreatedBy)
		assert.Nil(t, ret.Authorship.UpdatedAt)
	})

	t.Run("order references are optional", func(t *testing.T) {
		ret, err := NewReturn(valueobject.USD, "Changed mind", nil, nil, uuid.New())
		require.NoError(t, err)

		assert.False(t, ret.Item.HasOrderItem())
		assert.False(t, ret.Item.HasOrder())
	})

	t.Run("fails with unsupported currency", func(t *testing.T) {
		ret, err := NewReturn("XXX", "reason", nil, nil, uuid.New())
		assert.Nil(t, ret)
		assert.Error(t, err)
	})

	t.Run("fails with empty reason", func(t *testing.T) {
		ret, err := NewReturn(valueobject.GBP, "", nil, nil, uuid.New())
		assert.Nil(t, ret)
		assert.Error(t, err)
	})
}

func TestReturnItem_ApplyRemainingBalance(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		outcome SettlementOutcome
	}{
		{"positive amount still owes", decimal.NewFromInt(10), StillOwing},
		{"negative amount still owes", decimal.NewFromInt(-5), StillOwing},
		{"zero settles", decimal.Zero, Settled},
		{"fractional zero settles", decimal.RequireFromString("0.00"), Settled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &ReturnItem{Balance: decimal.NewFromInt(10)}

			outcome := item.ApplyRemainingBalance(tt.amount)
			assert.Equal(t, tt.outcome, outcome)
			assert.True(t, item.RemainingBalance.Equal(tt.amount))
			assert.True(t, item.Balance.Equal(decimal.NewFromInt(10)), "balance must stay untouched")
		})
	}
}

func TestReturnItem_AcceptanceFlag(t *testing.T) {
	item := &ReturnItem{}
	assert.False(t, item.IsAccepted())
	assert.False(t, item.IsRejected())

	item.Accept()
	assert.True(t, item.IsAccepted())

	item.Reject()
	assert.True(t, item.IsRejected())
	assert.False(t, item.IsAccepted())
}

func TestReturnItem_ReturnToStock(t *testing.T) {
	item := &ReturnItem{}
	item.ReturnToStock(Location{Name: "Outlet"})

	assert.True(t, item.ReturnedStock)
	require.NotNil(t, item.ReturnedStockLocation)
	assert.Equal(t, "Outlet", item.ReturnedStockLocation.Name)
}
