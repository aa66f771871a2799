package app

import (
	"context"
	"time"

	"github.com/logistservice/logist/internal/domain/model"
	"github.com/logistservice/logist/internal/domain/repository"
	"github.com/logistservice/logist/internal/usecase"
)

// LogisticsFacade aggregates the application's use cases behind one surface
// consumed by the HTTP layer.
type LogisticsFacade struct {
	auth        *usecase.AuthUseCase
	orders      *usecase.OrderUseCase
	assignments *usecase.AssignmentUseCase
	stats       *usecase.StatsUseCase
	clients     repository.ClientRepository
	drivers     repository.DriverRepository
	vehicles    repository.VehicleRepository
	users       repository.UserRepository
}

// NewLogisticsFacade constructs LogisticsFacade.
func NewLogisticsFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	assignments *usecase.AssignmentUseCase,
	stats *usecase.StatsUseCase,
	clients repository.ClientRepository,
	drivers repository.DriverRepository,
	vehicles repository.VehicleRepository,
	users repository.UserRepository,
) *LogisticsFacade {
	return &LogisticsFacade{
		auth:        auth,
		orders:      orders,
		assignments: assignments,
		stats:       stats,
		clients:     clients,
		drivers:     drivers,
		vehicles:    vehicles,
		users:       users,
	}
}

func (f *LogisticsFacade) Authenticate(ctx context.Context, username, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, username, password)
	return token, err
}

func (f *LogisticsFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *LogisticsFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *LogisticsFacade) CreateOrder(ctx context.Context, actorID int64, req usecase.OrderRequest) (*model.Order, error) {
	return f.orders.Create(ctx, actorID, req)
}

func (f *LogisticsFacade) UpdateOrder(ctx context.Context, id int64, req usecase.OrderRequest) (*model.Order, error) {
	return f.orders.Update(ctx, id, req)
}

func (f *LogisticsFacade) DeleteOrder(ctx context.Context, id int64) error {
	return f.orders.Delete(ctx, id)
}

func (f *LogisticsFacade) TransitionOrderStatus(ctx context.Context, id int64, status model.OrderStatus, actorID int64) (*model.Order, error) {
	return f.orders.TransitionStatus(ctx, id, status, actorID)
}

func (f *LogisticsFacade) Orders(ctx context.Context, filter usecase.OrderFilter) ([]model.Order, error) {
	return f.orders.List(ctx, filter)
}

func (f *LogisticsFacade) OrderDetails(ctx context.Context, id int64) (*model.OrderDetails, error) {
	return f.orders.Details(ctx, id)
}

func (f *LogisticsFacade) AddAssignment(ctx context.Context, orderID int64, req usecase.AssignmentRequest) (*model.Assignment, error) {
	return f.assignments.Add(ctx, orderID, req)
}

func (f *LogisticsFacade) UpdateAssignment(ctx context.Context, assignmentID int64, req usecase.AssignmentRequest) (*model.Assignment, error) {
	return f.assignments.Update(ctx, assignmentID, req)
}

func (f *LogisticsFacade) DeleteAssignment(ctx context.Context, assignmentID int64) error {
	return f.assignments.Delete(ctx, assignmentID)
}

func (f *LogisticsFacade) OrderStatusCounts(ctx context.Context, fromDate, toDate *time.Time) ([]model.StatusCount, error) {
	return f.stats.StatusCounts(ctx, fromDate, toDate)
}

func (f *LogisticsFacade) TopClients(ctx context.Context, fromDate, toDate *time.Time, limit int) ([]model.ClientRevenue, error) {
	return f.stats.TopClients(ctx, fromDate, toDate, limit)
}

func (f *LogisticsFacade) VehicleLoad(ctx context.Context, fromDate, toDate *time.Time) ([]model.VehicleLoad, error) {
	return f.stats.VehicleLoad(ctx, fromDate, toDate)
}

func (f *LogisticsFacade) CreateClient(ctx context.Context, client *model.Client) (*model.Client, error) {
	return f.clients.Create(ctx, client)
}

func (f *LogisticsFacade) Client(ctx context.Context, id int64) (*model.Client, error) {
	return f.clients.GetByID(ctx, id)
}

func (f *LogisticsFacade) Clients(ctx context.Context) ([]model.Client, error) {
	return f.clients.List(ctx)
}

func (f *LogisticsFacade) UpdateClient(ctx context.Context, client *model.Client) error {
	return f.clients.Update(ctx, client)
}

func (f *LogisticsFacade) DeleteClient(ctx context.Context, id int64) error {
	return f.clients.Delete(ctx, id)
}

func (f *LogisticsFacade) CreateDriver(ctx context.Context, driver *model.Driver) (*model.Driver, error) {
	return f.drivers.Create(ctx, driver)
}

func (f *LogisticsFacade) Driver(ctx context.Context, id int64) (*model.Driver, error) {
	return f.drivers.GetByID(ctx, id)
}

func (f *LogisticsFacade) Drivers(ctx context.Context) ([]model.Driver, error) {
	return f.drivers.List(ctx)
}

func (f *LogisticsFacade) UpdateDriver(ctx context.Context, driver *model.Driver) error {
	return f.drivers.Update(ctx, driver)
}

func (f *LogisticsFacade) DeleteDriver(ctx context.Context, id int64) error {
	return f.drivers.Delete(ctx, id)
}

func (f *LogisticsFacade) CreateVehicle(ctx context.Context, vehicle *model.Vehicle) (*model.Vehicle, error) {
	return f.vehicles.Create(ctx, vehicle)
}

func (f *LogisticsFacade) Vehicle(ctx context.Context, id int64) (*model.Vehicle, error) {
	return f.vehicles.GetByID(ctx, id)
}

func (f *LogisticsFacade) Vehicles(ctx context.Context) ([]model.Vehicle, error) {
	return f.vehicles.List(ctx)
}

func (f *LogisticsFacade) UpdateVehicle(ctx context.Context, vehicle *model.Vehicle) error {
	return f.vehicles.Update(ctx, vehicle)
}

func (f *LogisticsFacade) DeleteVehicle(ctx context.Context, id int64) error {
	return f.vehicles.Delete(ctx, id)
}

func (f *LogisticsFacade) CreateUser(ctx context.Context, user *model.User, password string) (*model.User, error) {
	return f.auth.CreateUser(ctx, user, password)
}

func (f *LogisticsFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.users.List(ctx)
}

func (f *LogisticsFacade) UpdateUser(ctx context.Context, user *model.User, password string) error {
	return f.auth.UpdateUser(ctx, user, password)
}

func (f *LogisticsFacade) DeleteUser(ctx context.Context, id int64) error {
	return f.users.Delete(ctx, id)
}
