package usecase

import (
	"context"
	"time"

	domainErrors "github.com/logistservice/logist/internal/domain/errors"
	"github.com/logistservice/logist/internal/domain/model"
	"github.com/logistservice/logist/internal/domain/repository"
)

// AssignmentRequest carries caller-supplied assignment fields.
type AssignmentRequest struct {
	VehicleID    int64
	DriverID     int64
	PlannedStart *time.Time
	PlannedEnd   *time.Time
	ActualStart  *time.Time
	ActualEnd    *time.Time
}

// AssignmentUseCase attaches, modifies and detaches vehicle+driver pairings
// on orders.
type AssignmentUseCase struct {
	assignments repository.AssignmentRepository
	orders      repository.OrderRepository
	vehicles    repository.VehicleRepository
	drivers     repository.DriverRepository
}

// NewAssignmentUseCase constructs AssignmentUseCase.
func NewAssignmentUseCase(
	assignments repository.AssignmentRepository,
	orders repository.OrderRepository,
	vehicles repository.VehicleRepository,
	drivers repository.DriverRepository,
) *AssignmentUseCase {
	return &AssignmentUseCase{
		assignments: assignments,
		orders:      orders,
		vehicles:    vehicles,
		drivers:     drivers,
	}
}

// Add creates an assignment on the order. When both planned bounds are
// present the end must be strictly after the start.
func (u *AssignmentUseCase) Add(ctx context.Context, orderID int64, req AssignmentRequest) (*model.Assignment, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	vehicle, err := u.vehicles.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}

	driver, err := u.drivers.GetByID(ctx, req.DriverID)
	if err != nil {
		return nil, err
	}

	if err := validateWindow(req.PlannedStart, req.PlannedEnd); err != nil {
		return nil, err
	}

	assignment := &model.Assignment{
		OrderID:             order.ID,
		VehicleID:           vehicle.ID,
		VehicleRegistration: vehicle.RegistrationNumber,
		DriverID:            driver.ID,
		DriverName:          driver.FullName,
		PlannedStart:        req.PlannedStart,
		PlannedEnd:          req.PlannedEnd,
	}
	return u.assignments.Create(ctx, assignment)
}

// Update modifies an assignment in place. Vehicle and driver are re-resolved
// only when the ids differ from the stored ones; actual bounds are
// overwritten unconditionally.
func (u *AssignmentUseCase) Update(ctx context.Context, assignmentID int64, req AssignmentRequest) (*model.Assignment, error) {
	assignment, err := u.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	if req.VehicleID != assignment.VehicleID {
		vehicle, err := u.vehicles.GetByID(ctx, req.VehicleID)
		if err != nil {
			return nil, err
		}
		assignment.VehicleID = vehicle.ID
		assignment.VehicleRegistration = vehicle.RegistrationNumber
	}

	if req.DriverID != assignment.DriverID {
		driver, err := u.drivers.GetByID(ctx, req.DriverID)
		if err != nil {
			return nil, err
		}
		assignment.DriverID = driver.ID
		assignment.DriverName = driver.FullName
	}

	if err := validateWindow(req.PlannedStart, req.PlannedEnd); err != nil {
		return nil, err
	}

	assignment.PlannedStart = req.PlannedStart
	assignment.PlannedEnd = req.PlannedEnd
	assignment.ActualStart = req.ActualStart
	assignment.ActualEnd = req.ActualEnd

	if err := u.assignments.Update(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// Delete removes the assignment. The owning order's status is unaffected.
func (u *AssignmentUseCase) Delete(ctx context.Context, assignmentID int64) error {
	return u.assignments.Delete(ctx, assignmentID)
}

// validateWindow rejects a planned window whose end is not strictly after
// its start. Missing bounds are not validated.
func validateWindow(start, end *time.Time) error {
	if start == nil || end == nil {
		return nil
	}
	if !end.After(*start) {
		return domainErrors.ErrInvalidTimeWindow
	}
	return nil
}
