package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/logistservice/logist/internal/domain/model"
	"github.com/logistservice/logist/internal/domain/repository"
)

// OrderRequest carries caller-supplied order fields for create/update.
type OrderRequest struct {
	ClientID            int64
	ManagerID           *int64
	PlannedPickupDate   *time.Time
	PlannedDeliveryDate *time.Time
	OriginCity          string
	OriginAddress       string
	DestinationCity     string
	DestinationAddress  string
	CargoDescription    string
	Description         string
	CargoWeight         *float64
	CargoVolume         *float64
	Price               decimal.Decimal
	DriverID            *int64
	VehicleID           *int64
}

// OrderFilter narrows and orders the in-memory order listing.
type OrderFilter struct {
	Search    string
	Status    *model.OrderStatus
	ClientID  *int64
	FromDate  *time.Time
	ToDate    *time.Time
	SortField OrderSortField
	SortDir   SortDirection
}

// OrderUseCase owns order creation, field updates and status transitions
// with audit logging.
type OrderUseCase struct {
	orders      repository.OrderRepository
	assignments repository.AssignmentRepository
	clients     repository.ClientRepository
	drivers     repository.DriverRepository
	vehicles    repository.VehicleRepository
	users       repository.UserRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	assignments repository.AssignmentRepository,
	clients repository.ClientRepository,
	drivers repository.DriverRepository,
	vehicles repository.VehicleRepository,
	users repository.UserRepository,
) *OrderUseCase {
	return &OrderUseCase{
		orders:      orders,
		assignments: assignments,
		clients:     clients,
		drivers:     drivers,
		vehicles:    vehicles,
		users:       users,
	}
}

// Create registers a new order. The manager defaults to the acting user;
// when neither resolves the order is created without one. When the request
// carries both driver and vehicle, one assignment is created in the same
// transaction with a window derived from the planned dates.
func (u *OrderUseCase) Create(ctx context.Context, actorID int64, req OrderRequest) (*model.Order, error) {
	client, err := u.clients.GetByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		Number:              generateOrderNumber(),
		ClientID:            client.ID,
		ClientName:          client.Name,
		Status:              model.OrderStatusNew,
		CreatedAt:           time.Now(),
		PlannedPickupDate:   req.PlannedPickupDate,
		PlannedDeliveryDate: req.PlannedDeliveryDate,
		OriginCity:          req.OriginCity,
		OriginAddress:       req.OriginAddress,
		DestinationCity:     req.DestinationCity,
		DestinationAddress:  req.DestinationAddress,
		CargoDescription:    req.CargoDescription,
		CargoWeight:         req.CargoWeight,
		CargoVolume:         req.CargoVolume,
		Price:               req.Price,
	}

	if req.ManagerID != nil {
		manager, err := u.users.GetByID(ctx, *req.ManagerID)
		if err != nil {
			return nil, err
		}
		order.ManagerID = &manager.ID
		order.ManagerName = &manager.FullName
	} else if manager := u.resolveActor(ctx, actorID); manager != nil {
		order.ManagerID = &manager.ID
		order.ManagerName = &manager.FullName
	}

	assignment, err := u.deriveAssignment(ctx, req)
	if err != nil {
		return nil, err
	}

	return u.orders.Create(ctx, order, assignment)
}

// Update overwrites mutable order fields. The client is re-resolved only
// when changed, the manager only when supplied. When driver and vehicle are
// both present the order's first assignment is updated, or a new one is
// created with the derived window.
func (u *OrderUseCase) Update(ctx context.Context, id int64, req OrderRequest) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ClientID != order.ClientID {
		client, err := u.clients.GetByID(ctx, req.ClientID)
		if err != nil {
			return nil, err
		}
		order.ClientID = client.ID
		order.ClientName = client.Name
	}

	if req.ManagerID != nil {
		manager, err := u.users.GetByID(ctx, *req.ManagerID)
		if err != nil {
			return nil, err
		}
		order.ManagerID = &manager.ID
		order.ManagerName = &manager.FullName
	}

	order.PlannedPickupDate = req.PlannedPickupDate
	order.PlannedDeliveryDate = req.PlannedDeliveryDate
	order.OriginCity = req.OriginCity
	order.OriginAddress = req.OriginAddress
	order.DestinationCity = req.DestinationCity
	order.DestinationAddress = req.DestinationAddress
	description := req.CargoDescription
	if description == "" {
		description = req.Description
	}
	order.CargoDescription = description
	order.CargoWeight = req.CargoWeight
	order.CargoVolume = req.CargoVolume
	order.Price = req.Price

	assignment, err := u.deriveAssignment(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := u.orders.Update(ctx, order, assignment); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete removes the order together with its assignments and history.
func (u *OrderUseCase) Delete(ctx context.Context, id int64) error {
	return u.orders.Delete(ctx, id)
}

// TransitionStatus records a status change with attribution. Transitioning
// to the current status is a no-op that writes no history row; any other
// target is accepted, there is no transition graph. Entering DELIVERED
// stamps the actual delivery timestamp.
func (u *OrderUseCase) TransitionStatus(ctx context.Context, id int64, newStatus model.OrderStatus, actorID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status == newStatus {
		return order, nil
	}

	now := time.Now()
	oldStatus := order.Status
	change := &model.StatusChange{
		OrderID:   order.ID,
		OldStatus: &oldStatus,
		NewStatus: newStatus,
		ChangedAt: now,
	}
	if actor := u.resolveActor(ctx, actorID); actor != nil {
		change.ChangedByID = &actor.ID
		change.ChangedByName = &actor.Username
	}

	var deliveredAt *time.Time
	if newStatus == model.OrderStatusDelivered {
		deliveredAt = &now
	}

	if err := u.orders.TransitionStatus(ctx, change, deliveredAt); err != nil {
		return nil, err
	}

	order.Status = newStatus
	if deliveredAt != nil {
		order.ActualDeliveryDate = deliveredAt
	}
	return order, nil
}

// List returns orders matching the filter, sorted per the requested field.
// Filtering happens in memory over a full scan.
func (u *OrderUseCase) List(ctx context.Context, filter OrderFilter) ([]model.Order, error) {
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if matchesFilter(&o, filter) {
			result = append(result, o)
		}
	}

	sortOrders(result, filter.SortField, filter.SortDir)
	return result, nil
}

// Details returns the order with assignments sorted by planned start and
// history sorted by most recent change first.
func (u *OrderUseCase) Details(ctx context.Context, id int64) (*model.OrderDetails, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	assignments, err := u.assignments.ListByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	sortAssignmentsByPlannedStart(assignments)

	history, err := u.orders.History(ctx, id)
	if err != nil {
		return nil, err
	}
	sortHistoryByChangedAtDesc(history)

	return &model.OrderDetails{Order: *order, Assignments: assignments, History: history}, nil
}

// resolveActor looks up the acting user; an unresolvable actor degrades to
// nil instead of failing the call.
func (u *OrderUseCase) resolveActor(ctx context.Context, actorID int64) *model.User {
	if actorID == 0 {
		return nil
	}
	actor, err := u.users.GetByID(ctx, actorID)
	if err != nil {
		return nil
	}
	return actor
}

// deriveAssignment resolves the optional driver+vehicle pair and builds an
// assignment whose planned window spans the order's planned dates. The
// derived window is intentionally not validated; only the direct assignment
// entry points check window ordering.
func (u *OrderUseCase) deriveAssignment(ctx context.Context, req OrderRequest) (*model.Assignment, error) {
	if req.DriverID == nil || req.VehicleID == nil {
		return nil, nil
	}

	driver, err := u.drivers.GetByID(ctx, *req.DriverID)
	if err != nil {
		return nil, err
	}
	vehicle, err := u.vehicles.GetByID(ctx, *req.VehicleID)
	if err != nil {
		return nil, err
	}

	var plannedStart, plannedEnd *time.Time
	if req.PlannedPickupDate != nil {
		start := startOfDay(*req.PlannedPickupDate)
		plannedStart = &start
	}
	if req.PlannedDeliveryDate != nil {
		end := endOfDay(*req.PlannedDeliveryDate)
		plannedEnd = &end
	}

	return &model.Assignment{
		VehicleID:           vehicle.ID,
		VehicleRegistration: vehicle.RegistrationNumber,
		DriverID:            driver.ID,
		DriverName:          driver.FullName,
		PlannedStart:        plannedStart,
		PlannedEnd:          plannedEnd,
	}, nil
}

func matchesFilter(o *model.Order, f OrderFilter) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(o.Number), needle) &&
			!strings.Contains(strings.ToLower(o.ClientName), needle) &&
			!strings.Contains(strings.ToLower(o.OriginCity), needle) &&
			!strings.Contains(strings.ToLower(o.DestinationCity), needle) {
			return false
		}
	}
	if f.Status != nil && o.Status != *f.Status {
		return false
	}
	if f.ClientID != nil && o.ClientID != *f.ClientID {
		return false
	}
	if f.FromDate != nil || f.ToDate != nil {
		if o.CreatedAt.IsZero() {
			return false
		}
		created := startOfDay(o.CreatedAt)
		if f.FromDate != nil && created.Before(startOfDay(*f.FromDate)) {
			return false
		}
		if f.ToDate != nil && created.After(startOfDay(*f.ToDate)) {
			return false
		}
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// generateOrderNumber produces a date-prefixed number with a random 5-digit
// suffix. Generation is not checked for uniqueness; collisions surface from
// the storage unique index.
func generateOrderNumber() string {
	datePart := time.Now().Format("20060102")
	randomPart := 10000 + rand.Intn(90000)
	return fmt.Sprintf("ORD-%s-%d", datePart, randomPart)
}
