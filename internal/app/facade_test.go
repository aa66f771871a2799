package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/logistservice/logist/internal/domain/errors"
	"github.com/logistservice/logist/internal/domain/model"
	testhelpers "github.com/logistservice/logist/internal/test"
	"github.com/logistservice/logist/internal/usecase"
)

type facadeFixture struct {
	facade      *LogisticsFacade
	users       *testhelpers.UserRepositoryStub
	orders      *testhelpers.OrderRepositoryStub
	assignments *testhelpers.AssignmentRepositoryStub
	clients     *testhelpers.ClientRepositoryStub
	drivers     *testhelpers.DriverRepositoryStub
	vehicles    *testhelpers.VehicleRepositoryStub
}

func newFacade() *facadeFixture {
	users := testhelpers.NewUserRepositoryStub()
	orders := &testhelpers.OrderRepositoryStub{}
	assignments := &testhelpers.AssignmentRepositoryStub{}
	clients := testhelpers.NewClientRepositoryStub()
	drivers := testhelpers.NewDriverRepositoryStub()
	vehicles := testhelpers.NewVehicleRepositoryStub()

	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, error) { return 99, nil }}
	authUC := usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, strategy)
	orderUC := usecase.NewOrderUseCase(orders, assignments, clients, drivers, vehicles, users)
	assignmentUC := usecase.NewAssignmentUseCase(assignments, orders, vehicles, drivers)
	statsUC := usecase.NewStatsUseCase(orders, assignments)

	facade := NewLogisticsFacade(authUC, orderUC, assignmentUC, statsUC, clients, drivers, vehicles, users)
	return &facadeFixture{
		facade:      facade,
		users:       users,
		orders:      orders,
		assignments: assignments,
		clients:     clients,
		drivers:     drivers,
		vehicles:    vehicles,
	}
}

func TestLogisticsFacadeAuth(t *testing.T) {
	f := newFacade()
	f.users.Add(model.User{Username: "dispatcher", PasswordHash: "hash:secret", Active: true, Roles: []string{model.RoleManager}})

	token, err := f.facade.Authenticate(context.Background(), "dispatcher", "secret")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	id, err := f.facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 99 {
		t.Fatalf("expected id 99, got %d", id)
	}

	stored := f.users.Add(model.User{Username: "other", Active: true})
	user, err := f.facade.UserByID(context.Background(), stored.ID)
	if err != nil || user.Username != "other" {
		t.Fatalf("unexpected user %+v err=%v", user, err)
	}
}

func TestLogisticsFacadeOrders(t *testing.T) {
	f := newFacade()
	client := f.clients.Add(model.Client{Name: "Acme Logistics", Active: true})
	actor := f.users.Add(model.User{Username: "dispatcher", Active: true, Roles: []string{model.RoleManager}})

	order, err := f.facade.CreateOrder(context.Background(), actor.ID, usecase.OrderRequest{ClientID: client.ID})
	if err != nil {
		t.Fatalf("create order returned error: %v", err)
	}
	if order.ClientName != "Acme Logistics" {
		t.Fatalf("expected denormalized client name, got %+v", order)
	}

	updated, err := f.facade.UpdateOrder(context.Background(), order.ID, usecase.OrderRequest{ClientID: client.ID, OriginCity: "Rotterdam"})
	if err != nil || updated.OriginCity != "Rotterdam" {
		t.Fatalf("unexpected update result: %+v err=%v", updated, err)
	}

	transitioned, err := f.facade.TransitionOrderStatus(context.Background(), order.ID, model.OrderStatusInProgress, actor.ID)
	if err != nil || transitioned.Status != model.OrderStatusInProgress {
		t.Fatalf("unexpected transition result: %+v err=%v", transitioned, err)
	}

	listed, err := f.facade.Orders(context.Background(), usecase.OrderFilter{})
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one order, got %v err=%v", listed, err)
	}

	details, err := f.facade.OrderDetails(context.Background(), order.ID)
	if err != nil || details.Order.ID != order.ID {
		t.Fatalf("unexpected details: %+v err=%v", details, err)
	}
	if len(details.History) != 1 {
		t.Fatalf("expected one history entry, got %d", len(details.History))
	}

	if err := f.facade.DeleteOrder(context.Background(), order.ID); err != nil {
		t.Fatalf("delete order returned error: %v", err)
	}
	if err := f.facade.DeleteOrder(context.Background(), order.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestLogisticsFacadeAssignments(t *testing.T) {
	f := newFacade()
	client := f.clients.Add(model.Client{Name: "Acme Logistics", Active: true})
	driver := f.drivers.Add(model.Driver{FullName: "Jan Kowalski", Active: true})
	vehicle := f.vehicles.Add(model.Vehicle{RegistrationNumber: "AB123CD", Status: model.VehicleStatusActive})
	actor := f.users.Add(model.User{Username: "dispatcher", Active: true})

	order, err := f.facade.CreateOrder(context.Background(), actor.ID, usecase.OrderRequest{ClientID: client.ID})
	if err != nil {
		t.Fatalf("create order returned error: %v", err)
	}

	assignment, err := f.facade.AddAssignment(context.Background(), order.ID, usecase.AssignmentRequest{
		VehicleID: vehicle.ID,
		DriverID:  driver.ID,
	})
	if err != nil {
		t.Fatalf("add assignment returned error: %v", err)
	}
	if assignment.VehicleRegistration != "AB123CD" || assignment.DriverName != "Jan Kowalski" {
		t.Fatalf("expected denormalized fields, got %+v", assignment)
	}

	updated, err := f.facade.UpdateAssignment(context.Background(), assignment.ID, usecase.AssignmentRequest{
		VehicleID: vehicle.ID,
		DriverID:  driver.ID,
	})
	if err != nil || updated.ID != assignment.ID {
		t.Fatalf("unexpected update result: %+v err=%v", updated, err)
	}

	if err := f.facade.DeleteAssignment(context.Background(), assignment.ID); err != nil {
		t.Fatalf("delete assignment returned error: %v", err)
	}
}

func TestLogisticsFacadeStats(t *testing.T) {
	f := newFacade()
	client := f.clients.Add(model.Client{Name: "Acme Logistics", Active: true})
	actor := f.users.Add(model.User{Username: "dispatcher", Active: true})

	if _, err := f.facade.CreateOrder(context.Background(), actor.ID, usecase.OrderRequest{ClientID: client.ID}); err != nil {
		t.Fatalf("create order returned error: %v", err)
	}

	counts, err := f.facade.OrderStatusCounts(context.Background(), nil, nil)
	if err != nil || len(counts) != 1 || counts[0].Status != model.OrderStatusNew {
		t.Fatalf("unexpected counts: %v err=%v", counts, err)
	}

	clientsTop, err := f.facade.TopClients(context.Background(), nil, nil, 5)
	if err != nil || len(clientsTop) != 1 || clientsTop[0].ClientID != client.ID {
		t.Fatalf("unexpected top clients: %v err=%v", clientsTop, err)
	}

	load, err := f.facade.VehicleLoad(context.Background(), nil, nil)
	if err != nil || len(load) != 0 {
		t.Fatalf("expected empty vehicle load, got %v err=%v", load, err)
	}
}

func TestLogisticsFacadeEntities(t *testing.T) {
	f := newFacade()
	ctx := context.Background()

	client, err := f.facade.CreateClient(ctx, &model.Client{Name: "Acme Logistics", Active: true})
	if err != nil {
		t.Fatalf("create client returned error: %v", err)
	}
	if _, err := f.facade.Client(ctx, client.ID); err != nil {
		t.Fatalf("client lookup returned error: %v", err)
	}
	clients, err := f.facade.Clients(ctx)
	if err != nil || len(clients) != 1 {
		t.Fatalf("unexpected clients: %v err=%v", clients, err)
	}
	client.City = "Rotterdam"
	if err := f.facade.UpdateClient(ctx, client); err != nil {
		t.Fatalf("update client returned error: %v", err)
	}
	if err := f.facade.DeleteClient(ctx, client.ID); err != nil {
		t.Fatalf("delete client returned error: %v", err)
	}

	driver, err := f.facade.CreateDriver(ctx, &model.Driver{FullName: "Jan Kowalski", Active: true})
	if err != nil {
		t.Fatalf("create driver returned error: %v", err)
	}
	if err := f.facade.UpdateDriver(ctx, driver); err != nil {
		t.Fatalf("update driver returned error: %v", err)
	}
	if err := f.facade.DeleteDriver(ctx, driver.ID); err != nil {
		t.Fatalf("delete driver returned error: %v", err)
	}

	vehicle, err := f.facade.CreateVehicle(ctx, &model.Vehicle{RegistrationNumber: "AB123CD", Status: model.VehicleStatusActive})
	if err != nil {
		t.Fatalf("create vehicle returned error: %v", err)
	}
	if _, err := f.facade.CreateVehicle(ctx, &model.Vehicle{RegistrationNumber: "AB123CD"}); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected duplicate registration error, got %v", err)
	}
	if err := f.facade.DeleteVehicle(ctx, vehicle.ID); err != nil {
		t.Fatalf("delete vehicle returned error: %v", err)
	}
}

func TestLogisticsFacadeUsers(t *testing.T) {
	f := newFacade()
	ctx := context.Background()

	user, err := f.facade.CreateUser(ctx, &model.User{Username: "operator", Active: true, Roles: []string{model.RoleOperator}}, "secret")
	if err != nil {
		t.Fatalf("create user returned error: %v", err)
	}
	if user.PasswordHash != "hash:secret" {
		t.Fatalf("expected hashed password, got %q", user.PasswordHash)
	}

	users, err := f.facade.Users(ctx)
	if err != nil || len(users) != 1 {
		t.Fatalf("unexpected users: %v err=%v", users, err)
	}

	user.FullName = "Operator One"
	if err := f.facade.UpdateUser(ctx, user, ""); err != nil {
		t.Fatalf("update user returned error: %v", err)
	}
	stored, err := f.users.GetByID(ctx, user.ID)
	if err != nil || stored.PasswordHash != "hash:secret" {
		t.Fatalf("expected hash kept on empty password, got %+v err=%v", stored, err)
	}

	if err := f.facade.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("delete user returned error: %v", err)
	}
}
