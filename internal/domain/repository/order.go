package repository

import (
	"context"
	"time"

	"github.com/logistservice/logist/internal/domain/model"
)

// OrderRepository describes persistence operations with orders and their
// owned audit trail. Compound mutations execute inside one transaction.
type OrderRepository interface {
	// Create persists the order and, when assignment is not nil, the
	// derived assignment in the same transaction.
	Create(ctx context.Context, order *model.Order, assignment *model.Assignment) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetByNumber(ctx context.Context, number string) (*model.Order, error)
	// ListAll returns every order with the client/manager relation resolved.
	ListAll(ctx context.Context) ([]model.Order, error)
	// Update overwrites mutable order fields and, when assignment is not
	// nil, updates the order's first assignment or inserts a new one.
	Update(ctx context.Context, order *model.Order, assignment *model.Assignment) error
	Delete(ctx context.Context, id int64) error
	// TransitionStatus appends the audit row and applies the new status;
	// deliveredAt, when set, stamps the actual delivery timestamp.
	TransitionStatus(ctx context.Context, change *model.StatusChange, deliveredAt *time.Time) error
	// History returns the order's audit trail in append order.
	History(ctx context.Context, orderID int64) ([]model.StatusChange, error)
}
