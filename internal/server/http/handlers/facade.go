package handlers

import (
	"context"
	"time"

	"github.com/logistservice/logist/internal/domain/model"
	"github.com/logistservice/logist/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers
// and middleware.
type AuthFacade interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
	ParseToken(token string) (int64, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// OrderFacade encapsulates order lifecycle operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, actorID int64, req usecase.OrderRequest) (*model.Order, error)
	UpdateOrder(ctx context.Context, id int64, req usecase.OrderRequest) (*model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	TransitionOrderStatus(ctx context.Context, id int64, status model.OrderStatus, actorID int64) (*model.Order, error)
	Orders(ctx context.Context, filter usecase.OrderFilter) ([]model.Order, error)
	OrderDetails(ctx context.Context, id int64) (*model.OrderDetails, error)
}

// AssignmentFacade covers direct assignment management.
type AssignmentFacade interface {
	AddAssignment(ctx context.Context, orderID int64, req usecase.AssignmentRequest) (*model.Assignment, error)
	UpdateAssignment(ctx context.Context, assignmentID int64, req usecase.AssignmentRequest) (*model.Assignment, error)
	DeleteAssignment(ctx context.Context, assignmentID int64) error
}

// StatsFacade provides reporting operations.
type StatsFacade interface {
	OrderStatusCounts(ctx context.Context, fromDate, toDate *time.Time) ([]model.StatusCount, error)
	TopClients(ctx context.Context, fromDate, toDate *time.Time, limit int) ([]model.ClientRevenue, error)
	VehicleLoad(ctx context.Context, fromDate, toDate *time.Time) ([]model.VehicleLoad, error)
}

// ClientFacade covers client directory management.
type ClientFacade interface {
	CreateClient(ctx context.Context, client *model.Client) (*model.Client, error)
	Client(ctx context.Context, id int64) (*model.Client, error)
	Clients(ctx context.Context) ([]model.Client, error)
	UpdateClient(ctx context.Context, client *model.Client) error
	DeleteClient(ctx context.Context, id int64) error
}

// DriverFacade covers driver directory management.
type DriverFacade interface {
	CreateDriver(ctx context.Context, driver *model.Driver) (*model.Driver, error)
	Driver(ctx context.Context, id int64) (*model.Driver, error)
	Drivers(ctx context.Context) ([]model.Driver, error)
	UpdateDriver(ctx context.Context, driver *model.Driver) error
	DeleteDriver(ctx context.Context, id int64) error
}

// VehicleFacade covers fleet management.
type VehicleFacade interface {
	CreateVehicle(ctx context.Context, vehicle *model.Vehicle) (*model.Vehicle, error)
	Vehicle(ctx context.Context, id int64) (*model.Vehicle, error)
	Vehicles(ctx context.Context) ([]model.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *model.Vehicle) error
	DeleteVehicle(ctx context.Context, id int64) error
}

// UserFacade covers account administration.
type UserFacade interface {
	CreateUser(ctx context.Context, user *model.User, password string) (*model.User, error)
	Users(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, user *model.User, password string) error
	DeleteUser(ctx context.Context, id int64) error
}

// LogisticsFacade aggregates the full set of operations used across handlers.
type LogisticsFacade interface {
	AuthFacade
	OrderFacade
	AssignmentFacade
	StatsFacade
	ClientFacade
	DriverFacade
	VehicleFacade
	UserFacade
}
