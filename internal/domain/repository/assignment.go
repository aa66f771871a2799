package repository

import (
	"context"

	"github.com/logistservice/logist/internal/domain/model"
)

// AssignmentRepository describes persistence operations with vehicle+driver
// assignments.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *model.Assignment) (*model.Assignment, error)
	GetByID(ctx context.Context, id int64) (*model.Assignment, error)
	ListByOrder(ctx context.Context, orderID int64) ([]model.Assignment, error)
	// ListAll returns every assignment with the vehicle relation resolved.
	ListAll(ctx context.Context) ([]model.Assignment, error)
	Update(ctx context.Context, assignment *model.Assignment) error
	Delete(ctx context.Context, id int64) error
}
