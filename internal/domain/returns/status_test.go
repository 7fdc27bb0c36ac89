package returns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusAwaitingReceipt.IsValid())
	assert.True(t, StatusReceived.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.False(t, Status("SHIPPED").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusAwaitingReceipt, StatusReceived, true},
		{StatusAwaitingReceipt, StatusCompleted, false},
		{StatusReceived, StatusCompleted, true},
		{StatusReceived, StatusAwaitingReceipt, false},
		{StatusCompleted, StatusReceived, false},
		{StatusCompleted, StatusAwaitingReceipt, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusAwaitingReceipt.IsTerminal())
	assert.False(t, StatusReceived.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
}

func TestSettlementOutcome_String(t *testing.T) {
	assert.Equal(t, "SETTLED", Settled.String())
	assert.Equal(t, "STILL_OWING", StillOwing.String())
}
