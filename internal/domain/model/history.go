package model

import "time"

// StatusChange is an append-only audit record of one status transition.
// OldStatus is nil when the record predates a known prior status and the
// actor fields are nil when the transition had no authenticated caller.
type StatusChange struct {
	ID            int64
	OrderID       int64
	OldStatus     *OrderStatus
	NewStatus     OrderStatus
	ChangedAt     time.Time
	ChangedByID   *int64
	ChangedByName *string
}
