package shared

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorship_Update(t *testing.T) {
	t.Run("records updater and timestamp", func(t *testing.T) {
		userID := uuid.New()
		a := NewAuthorship(time.Now(), userID)

		at := time.Now().Add(time.Minute)
		a.Update(at, userID)

		require.NotNil(t, a.UpdatedAt)
		assert.Equal(t, at, *a.UpdatedAt)
		assert.Equal(t, userID, *a.UpdatedBy)
	})

	t.Run("updated time never rewinds", func(t *testing.T) {
		userID := uuid.New()
		a := NewAuthorship(time.Now(), userID)

		later := time.Now().Add(time.Hour)
		a.Update(later, userID)

		earlier := later.Add(-time.Minute)
		other := uuid.New()
		a.Update(earlier, other)

		assert.Equal(t, later, *a.UpdatedAt)
		assert.Equal(t, other, *a.UpdatedBy)
	})
}

func TestAuthorship_Complete(t *testing.T) {
	userID := uuid.New()
	a := NewAuthorship(time.Now(), userID)

	at := time.Now().Add(time.Second)
	completer := uuid.New()
	a.Complete(at, completer)

	assert.True(t, a.IsCompleted())
	require.NotNil(t, a.CompletedAt)
	assert.Equal(t, at, *a.CompletedAt)
	assert.Equal(t, completer, *a.CompletedBy)
	assert.Equal(t, at, *a.UpdatedAt, "completion also counts as an update")
}
