package returns

// Status represents the status of a return item. The set is closed and stable:
// these are also the codes handed to the order-item status updater when a
// return-driven change cascades onto the originating order item.
type Status string

const (
	StatusAwaitingReceipt Status = "AWAITING_RECEIPT" // Created, goods not yet back
	StatusReceived        Status = "RECEIVED"         // Goods received at the warehouse
	StatusCompleted       Status = "COMPLETED"        // Balance reconciled, return closed
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusAwaitingReceipt, StatusReceived, StatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// The editor itself does not gate on this - receipt is re-markable and
// completion re-stamps - but host validators may enforce it.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusAwaitingReceipt:
		return target == StatusReceived
	case StatusReceived:
		return target == StatusCompleted
	case StatusCompleted:
		return false // Terminal state
	}
	return false
}

// IsTerminal returns true if the status is terminal
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// SettlementOutcome reports the effect of applying a remaining-balance change.
// It makes the auto-completion side effect explicit: a Settled outcome obliges
// the caller to complete the return within the same transaction.
type SettlementOutcome int

const (
	// StillOwing means a non-zero balance remains outstanding
	StillOwing SettlementOutcome = iota
	// Settled means the remaining balance reached zero
	Settled
)

// String returns the string representation of SettlementOutcome
func (o SettlementOutcome) String() string {
	if o == Settled {
		return "SETTLED"
	}
	return "STILL_OWING"
}
