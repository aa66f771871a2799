package test

import (
	"context"
	"time"

	"github.com/logistservice/logist/internal/domain/model"
	"github.com/logistservice/logist/internal/usecase"
)

// LogisticsFacadeStub provides controllable behaviour for every HTTP
// endpoint. Unset overrides fall back to benign defaults.
type LogisticsFacadeStub struct {
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (int64, error)
	UserByIDFn     func(context.Context, int64) (*model.User, error)

	CreateOrderFn  func(context.Context, int64, usecase.OrderRequest) (*model.Order, error)
	UpdateOrderFn  func(context.Context, int64, usecase.OrderRequest) (*model.Order, error)
	DeleteOrderFn  func(context.Context, int64) error
	TransitionFn   func(context.Context, int64, model.OrderStatus, int64) (*model.Order, error)
	OrdersFn       func(context.Context, usecase.OrderFilter) ([]model.Order, error)
	OrderDetailsFn func(context.Context, int64) (*model.OrderDetails, error)

	AddAssignmentFn    func(context.Context, int64, usecase.AssignmentRequest) (*model.Assignment, error)
	UpdateAssignmentFn func(context.Context, int64, usecase.AssignmentRequest) (*model.Assignment, error)
	DeleteAssignmentFn func(context.Context, int64) error

	StatusCountsFn func(context.Context, *time.Time, *time.Time) ([]model.StatusCount, error)
	TopClientsFn   func(context.Context, *time.Time, *time.Time, int) ([]model.ClientRevenue, error)
	VehicleLoadFn  func(context.Context, *time.Time, *time.Time) ([]model.VehicleLoad, error)

	CreateClientFn func(context.Context, *model.Client) (*model.Client, error)
	ClientFn       func(context.Context, int64) (*model.Client, error)
	ClientsFn      func(context.Context) ([]model.Client, error)
	UpdateClientFn func(context.Context, *model.Client) error
	DeleteClientFn func(context.Context, int64) error

	CreateDriverFn func(context.Context, *model.Driver) (*model.Driver, error)
	DriverFn       func(context.Context, int64) (*model.Driver, error)
	DriversFn      func(context.Context) ([]model.Driver, error)
	UpdateDriverFn func(context.Context, *model.Driver) error
	DeleteDriverFn func(context.Context, int64) error

	CreateVehicleFn func(context.Context, *model.Vehicle) (*model.Vehicle, error)
	VehicleFn       func(context.Context, int64) (*model.Vehicle, error)
	VehiclesFn      func(context.Context) ([]model.Vehicle, error)
	UpdateVehicleFn func(context.Context, *model.Vehicle) error
	DeleteVehicleFn func(context.Context, int64) error

	CreateUserFn func(context.Context, *model.User, string) (*model.User, error)
	UsersFn      func(context.Context) ([]model.User, error)
	UpdateUserFn func(context.Context, *model.User, string) error
	DeleteUserFn func(context.Context, int64) error
}

func (s *LogisticsFacadeStub) Authenticate(ctx context.Context, username, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, username, password)
	}
	return "token", nil
}

func (s *LogisticsFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

func (s *LogisticsFacadeStub) UserByID(ctx context.Context, id int64) (*model.User, error) {
	if s.UserByIDFn != nil {
		return s.UserByIDFn(ctx, id)
	}
	return &model.User{ID: id, Username: "user", Active: true, Roles: []string{model.RoleAdmin}}, nil
}

func (s *LogisticsFacadeStub) CreateOrder(ctx context.Context, actorID int64, req usecase.OrderRequest) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, actorID, req)
	}
	return &model.Order{ID: 1, ClientID: req.ClientID, Status: model.OrderStatusNew}, nil
}

func (s *LogisticsFacadeStub) UpdateOrder(ctx context.Context, id int64, req usecase.OrderRequest) (*model.Order, error) {
	if s.UpdateOrderFn != nil {
		return s.UpdateOrderFn(ctx, id, req)
	}
	return &model.Order{ID: id, ClientID: req.ClientID, Status: model.OrderStatusNew}, nil
}

func (s *LogisticsFacadeStub) DeleteOrder(ctx context.Context, id int64) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, id)
	}
	return nil
}

func (s *LogisticsFacadeStub) TransitionOrderStatus(ctx context.Context, id int64, status model.OrderStatus, actorID int64) (*model.Order, error) {
	if s.TransitionFn != nil {
		return s.TransitionFn(ctx, id, status, actorID)
	}
	return &model.Order{ID: id, Status: status}, nil
}

func (s *LogisticsFacadeStub) Orders(ctx context.Context, filter usecase.OrderFilter) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, filter)
	}
	return []model.Order{{ID: 1, Number: "ORD-20240101-10000"}}, nil
}

func (s *LogisticsFacadeStub) OrderDetails(ctx context.Context, id int64) (*model.OrderDetails, error) {
	if s.OrderDetailsFn != nil {
		return s.OrderDetailsFn(ctx, id)
	}
	return &model.OrderDetails{Order: model.Order{ID: id}}, nil
}

func (s *LogisticsFacadeStub) AddAssignment(ctx context.Context, orderID int64, req usecase.AssignmentRequest) (*model.Assignment, error) {
	if s.AddAssignmentFn != nil {
		return s.AddAssignmentFn(ctx, orderID, req)
	}
	return &model.Assignment{ID: 1, OrderID: orderID, VehicleID: req.VehicleID, DriverID: req.DriverID}, nil
}

func (s *LogisticsFacadeStub) UpdateAssignment(ctx context.Context, assignmentID int64, req usecase.AssignmentRequest) (*model.Assignment, error) {
	if s.UpdateAssignmentFn != nil {
		return s.UpdateAssignmentFn(ctx, assignmentID, req)
	}
	return &model.Assignment{ID: assignmentID, VehicleID: req.VehicleID, DriverID: req.DriverID}, nil
}

func (s *LogisticsFacadeStub) DeleteAssignment(ctx context.Context, assignmentID int64) error {
	if s.DeleteAssignmentFn != nil {
		return s.DeleteAssignmentFn(ctx, assignmentID)
	}
	return nil
}

func (s *LogisticsFacadeStub) OrderStatusCounts(ctx context.Context, fromDate, toDate *time.Time) ([]model.StatusCount, error) {
	if s.StatusCountsFn != nil {
		return s.StatusCountsFn(ctx, fromDate, toDate)
	}
	return []model.StatusCount{{Status: model.OrderStatusNew, Count: 1}}, nil
}

func (s *LogisticsFacadeStub) TopClients(ctx context.Context, fromDate, toDate *time.Time, limit int) ([]model.ClientRevenue, error) {
	if s.TopClientsFn != nil {
		return s.TopClientsFn(ctx, fromDate, toDate, limit)
	}
	return nil, nil
}

func (s *LogisticsFacadeStub) VehicleLoad(ctx context.Context, fromDate, toDate *time.Time) ([]model.VehicleLoad, error) {
	if s.VehicleLoadFn != nil {
		return s.VehicleLoadFn(ctx, fromDate, toDate)
	}
	return nil, nil
}

func (s *LogisticsFacadeStub) CreateClient(ctx context.Context, client *model.Client) (*model.Client, error) {
	if s.CreateClientFn != nil {
		return s.CreateClientFn(ctx, client)
	}
	created := *client
	created.ID = 1
	return &created, nil
}

func (s *LogisticsFacadeStub) Client(ctx context.Context, id int64) (*model.Client, error) {
	if s.ClientFn != nil {
		return s.ClientFn(ctx, id)
	}
	return &model.Client{ID: id, Name: "client"}, nil
}

func (s *LogisticsFacadeStub) Clients(ctx context.Context) ([]model.Client, error) {
	if s.ClientsFn != nil {
		return s.ClientsFn(ctx)
	}
	return nil, nil
}

func (s *LogisticsFacadeStub) UpdateClient(ctx context.Context, client *model.Client) error {
	if s.UpdateClientFn != nil {
		return s.UpdateClientFn(ctx, client)
	}
	return nil
}

func (s *LogisticsFacadeStub) DeleteClient(ctx context.Context, id int64) error {
	if s.DeleteClientFn != nil {
		return s.DeleteClientFn(ctx, id)
	}
	return nil
}

func (s *LogisticsFacadeStub) CreateDriver(ctx context.Context, driver *model.Driver) (*model.Driver, error) {
	if s.CreateDriverFn != nil {
		return s.CreateDriverFn(ctx, driver)
	}
	created := *driver
	created.ID = 1
	return &created, nil
}

func (s *LogisticsFacadeStub) Driver(ctx context.Context, id int64) (*model.Driver, error) {
	if s.DriverFn != nil {
		return s.DriverFn(ctx, id)
	}
	return &model.Driver{ID: id, FullName: "driver"}, nil
}

func (s *LogisticsFacadeStub) Drivers(ctx context.Context) ([]model.Driver, error) {
	if s.DriversFn != nil {
		return s.DriversFn(ctx)
	}
	return nil, nil
}

func (s *LogisticsFacadeStub) UpdateDriver(ctx context.Context, driver *model.Driver) error {
	if s.UpdateDriverFn != nil {
		return s.UpdateDriverFn(ctx, driver)
	}
	return nil
}

func (s *LogisticsFacadeStub) DeleteDriver(ctx context.Context, id int64) error {
	if s.DeleteDriverFn != nil {
		return s.DeleteDriverFn(ctx, id)
	}
	return nil
}

func (s *LogisticsFacadeStub) CreateVehicle(ctx context.Context, vehicle *model.Vehicle) (*model.Vehicle, error) {
	if s.CreateVehicleFn != nil {
		return s.CreateVehicleFn(ctx, vehicle)
	}
	created := *vehicle
	created.ID = 1
	return &created, nil
}

func (s *LogisticsFacadeStub) Vehicle(ctx context.Context, id int64) (*model.Vehicle, error) {
	if s.VehicleFn != nil {
		return s.VehicleFn(ctx, id)
	}
	return &model.Vehicle{ID: id, RegistrationNumber: "AB123", Status: model.VehicleStatusActive}, nil
}

func (s *LogisticsFacadeStub) Vehicles(ctx context.Context) ([]model.Vehicle, error) {
	if s.VehiclesFn != nil {
		return s.VehiclesFn(ctx)
	}
	return nil, nil
}

func (s *LogisticsFacadeStub) UpdateVehicle(ctx context.Context, vehicle *model.Vehicle) error {
	if s.UpdateVehicleFn != nil {
		return s.UpdateVehicleFn(ctx, vehicle)
	}
	return nil
}

func (s *LogisticsFacadeStub) DeleteVehicle(ctx context.Context, id int64) error {
	if s.DeleteVehicleFn != nil {
		return s.DeleteVehicleFn(ctx, id)
	}
	return nil
}

func (s *LogisticsFacadeStub) CreateUser(ctx context.Context, user *model.User, password string) (*model.User, error) {
	if s.CreateUserFn != nil {
		return s.CreateUserFn(ctx, user, password)
	}
	created := *user
	created.ID = 1
	return &created, nil
}

func (s *LogisticsFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return nil, nil
}

func (s *LogisticsFacadeStub) UpdateUser(ctx context.Context, user *model.User, password string) error {
	if s.UpdateUserFn != nil {
		return s.UpdateUserFn(ctx, user, password)
	}
	return nil
}

func (s *LogisticsFacadeStub) DeleteUser(ctx context.Context, id int64) error {
	if s.DeleteUserFn != nil {
		return s.DeleteUserFn(ctx, id)
	}
	return nil
}
