package shared

import (
	"time"

	"github.com/google/uuid"
)

// Authorship is the audit stamp attached to every mutable entity. It records
// who created, last updated, and completed the entity. It is never written
// field-by-field; all mutation goes through Create, Update and Complete.
type Authorship struct {
	CreatedAt   time.Time
	CreatedBy   *uuid.UUID
	UpdatedAt   *time.Time
	UpdatedBy   *uuid.UUID
	CompletedAt *time.Time
	CompletedBy *uuid.UUID
}

// NewAuthorship creates an authorship stamp for a freshly created entity
func NewAuthorship(at time.Time, by uuid.UUID) Authorship {
	return Authorship{
		CreatedAt: at,
		CreatedBy: &by,
	}
}

// Update records a modification. UpdatedAt is monotonically non-decreasing
// once set: an earlier timestamp keeps the existing stamp time.
func (a *Authorship) Update(at time.Time, by uuid.UUID) {
	if a.UpdatedAt != nil && at.Before(*a.UpdatedAt) {
		at = *a.UpdatedAt
	}
	a.UpdatedAt = &at
	a.UpdatedBy = &by
}

// Complete records completion. It also counts as an update.
func (a *Authorship) Complete(at time.Time, by uuid.UUID) {
	a.Update(at, by)
	completedAt := *a.UpdatedAt
	a.CompletedAt = &completedAt
	a.CompletedBy = &by
}

// IsCompleted returns true once a completion stamp has been recorded
func (a *Authorship) IsCompleted() bool {
	return a.CompletedAt != nil
}
