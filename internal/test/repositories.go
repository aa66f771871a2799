package test

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/logistservice/logist/internal/domain/errors"
	"github.com/logistservice/logist/internal/domain/model"
)

// UserRepositoryStub stores accounts in-memory for tests.
type UserRepositoryStub struct {
	ByID  map[int64]*model.User
	Next  int64
	Err   error
	Users []model.User
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{ByID: make(map[int64]*model.User), Next: 1}
}

// Add seeds one account and returns it.
func (s *UserRepositoryStub) Add(user model.User) *model.User {
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if user.ID == 0 {
		if s.Next == 0 {
			s.Next = 1
		}
		user.ID = s.Next
		s.Next++
	}
	stored := user
	s.ByID[stored.ID] = &stored
	return &stored
}

// Create registers account unless username is taken.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.ByID {
		if strings.EqualFold(existing.Username, user.Username) {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	return s.Add(*user), nil
}

// GetByID fetches account by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByUsername fetches account by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, user := range s.ByID {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored account.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users != nil {
		return s.Users, nil
	}
	users := make([]model.User, 0, len(s.ByID))
	for _, user := range s.ByID {
		users = append(users, *user)
	}
	return users, nil
}

// Update overwrites a stored account or returns not found.
func (s *UserRepositoryStub) Update(ctx context.Context, user *model.User) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByID[user.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := *user
	s.ByID[user.ID] = &stored
	return nil
}

// Delete removes a stored account or returns not found.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByID[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	return nil
}

// ClientRepositoryStub stores customers in-memory for tests.
type ClientRepositoryStub struct {
	ByID map[int64]*model.Client
	Next int64
	Err  error
}

// NewClientRepositoryStub constructs stub repository with initialized maps.
func NewClientRepositoryStub() *ClientRepositoryStub {
	return &ClientRepositoryStub{ByID: make(map[int64]*model.Client), Next: 1}
}

// Add seeds one client and returns it.
func (s *ClientRepositoryStub) Add(client model.Client) *model.Client {
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.Client)
	}
	if client.ID == 0 {
		if s.Next == 0 {
			s.Next = 1
		}
		client.ID = s.Next
		s.Next++
	}
	stored := client
	s.ByID[stored.ID] = &stored
	return &stored
}

func (s *ClientRepositoryStub) Create(ctx context.Context, client *model.Client) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Add(*client), nil
}

func (s *ClientRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if client, ok := s.ByID[id]; ok {
		return client, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ClientRepositoryStub) List(ctx context.Context) ([]model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	clients := make([]model.Client, 0, len(s.ByID))
	for _, client := range s.ByID {
		clients = append(clients, *client)
	}
	return clients, nil
}

func (s *ClientRepositoryStub) Update(ctx context.Context, client *model.Client) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByID[client.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := *client
	s.ByID[client.ID] = &stored
	return nil
}

func (s *ClientRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByID[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	return nil
}

// DriverRepositoryStub stores drivers in-memory for tests.
type DriverRepositoryStub struct {
	ByID map[int64]*model.Driver
	Next int64
	Err  error
}

// NewDriverRepositoryStub constructs stub repository with initialized maps.
func NewDriverRepositoryStub() *DriverRepositoryStub {
	return &DriverRepositoryStub{ByID: make(map[int64]*model.Driver), Next: 1}
}

// Add seeds one driver and returns it.
func (s *DriverRepositoryStub) Add(driver model.Driver) *model.Driver {
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.Driver)
	}
	if driver.ID == 0 {
		if s.Next == 0 {
			s.Next = 1
		}
		driver.ID = s.Next
		s.Next++
	}
	stored := driver
	s.ByID[stored.ID] = &stored
	return &stored
}

func (s *DriverRepositoryStub) Create(ctx context.Context, driver *model.Driver) (*model.Driver, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Add(*driver), nil
}

func (s *DriverRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Driver, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if driver, ok := s.ByID[id]; ok {
		return driver, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *DriverRepositoryStub) List(ctx context.Context) ([]model.Driver, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	drivers := make([]model.Driver, 0, len(s.ByID))
	for _, driver := range s.ByID {
		drivers = append(drivers, *driver)
	}
	return drivers, nil
}

func (s *DriverRepositoryStub) Update(ctx context.Context, driver *model.Driver) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByID[driver.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := *driver
	s.ByID[driver.ID] = &stored
	return nil
}

func (s *DriverRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByID[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	return nil
}

// VehicleRepositoryStub stores fleet records in-memory for tests.
type VehicleRepositoryStub struct {
	ByID map[int64]*model.Vehicle
	Next int64
	Err  error
}

// NewVehicleRepositoryStub constructs stub repository with initialized maps.
func NewVehicleRepositoryStub() *VehicleRepositoryStub {
	return &VehicleRepositoryStub{ByID: make(map[int64]*model.Vehicle), Next: 1}
}

// Add seeds one vehicle and returns it.
func (s *VehicleRepositoryStub) Add(vehicle model.Vehicle) *model.Vehicle {
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.Vehicle)
	}
	if vehicle.ID == 0 {
		if s.Next == 0 {
			s.Next = 1
		}
		vehicle.ID = s.Next
		s.Next++
	}
	stored := vehicle
	s.ByID[stored.ID] = &stored
	return &stored
}

func (s *VehicleRepositoryStub) Create(ctx context.Context, vehicle *model.Vehicle) (*model.Vehicle, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.ByID {
		if strings.EqualFold(existing.RegistrationNumber, vehicle.RegistrationNumber) {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	return s.Add(*vehicle), nil
}

func (s *VehicleRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Vehicle, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if vehicle, ok := s.ByID[id]; ok {
		return vehicle, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *VehicleRepositoryStub) List(ctx context.Context) ([]model.Vehicle, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	vehicles := make([]model.Vehicle, 0, len(s.ByID))
	for _, vehicle := range s.ByID {
		vehicles = append(vehicles, *vehicle)
	}
	return vehicles, nil
}

func (s *VehicleRepositoryStub) Update(ctx context.Context, vehicle *model.Vehicle) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByID[vehicle.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := *vehicle
	s.ByID[vehicle.ID] = &stored
	return nil
}

func (s *VehicleRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByID[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	return nil
}

// TransitionCall stores information about TransitionStatus invocations.
type TransitionCall struct {
	Change      model.StatusChange
	DeliveredAt *time.Time
}

// OrderRepositoryStub allows tests to customize order persistence behaviour.
type OrderRepositoryStub struct {
	CreateFn     func(context.Context, *model.Order, *model.Assignment) (*model.Order, error)
	GetByIDFn    func(context.Context, int64) (*model.Order, error)
	ListAllFn    func(context.Context) ([]model.Order, error)
	UpdateFn     func(context.Context, *model.Order, *model.Assignment) error
	TransitionFn func(context.Context, *model.StatusChange, *time.Time) error
	HistoryFn    func(context.Context, int64) ([]model.StatusChange, error)

	Orders      []model.Order
	HistoryRows []model.StatusChange
	Created     []model.Order
	CreatedWith []*model.Assignment
	Updated     []model.Order
	UpdatedWith []*model.Assignment
	Deleted     []int64
	Transitions []TransitionCall
	Next        int64
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order, assignment *model.Assignment) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order, assignment)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *order
	stored.ID = s.Next
	s.Next++
	s.Created = append(s.Created, stored)
	s.CreatedWith = append(s.CreatedWith, assignment)
	s.Orders = append(s.Orders, stored)
	return &stored, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	for _, o := range s.Orders {
		if o.Number == number {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return s.Orders, nil
}

func (s *OrderRepositoryStub) Update(ctx context.Context, order *model.Order, assignment *model.Assignment) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, order, assignment)
	}
	s.Updated = append(s.Updated, *order)
	s.UpdatedWith = append(s.UpdatedWith, assignment)
	for i, o := range s.Orders {
		if o.ID == order.ID {
			s.Orders[i] = *order
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) error {
	for i, o := range s.Orders {
		if o.ID == id {
			s.Orders = append(s.Orders[:i], s.Orders[i+1:]...)
			s.Deleted = append(s.Deleted, id)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) TransitionStatus(ctx context.Context, change *model.StatusChange, deliveredAt *time.Time) error {
	if s.TransitionFn != nil {
		return s.TransitionFn(ctx, change, deliveredAt)
	}
	s.Transitions = append(s.Transitions, TransitionCall{Change: *change, DeliveredAt: deliveredAt})
	s.HistoryRows = append(s.HistoryRows, *change)
	for i, o := range s.Orders {
		if o.ID == change.OrderID {
			s.Orders[i].Status = change.NewStatus
			if deliveredAt != nil {
				t := *deliveredAt
				s.Orders[i].ActualDeliveryDate = &t
			}
			return nil
		}
	}
	return nil
}

func (s *OrderRepositoryStub) History(ctx context.Context, orderID int64) ([]model.StatusChange, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, orderID)
	}
	out := make([]model.StatusChange, 0)
	for _, h := range s.HistoryRows {
		if h.OrderID == orderID {
			out = append(out, h)
		}
	}
	return out, nil
}

// AssignmentRepositoryStub stores assignments in-memory for tests.
type AssignmentRepositoryStub struct {
	Items   []model.Assignment
	Next    int64
	Err     error
	Updated []model.Assignment
	Deleted []int64
}

func (s *AssignmentRepositoryStub) Create(ctx context.Context, assignment *model.Assignment) (*model.Assignment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *assignment
	stored.ID = s.Next
	s.Next++
	s.Items = append(s.Items, stored)
	return &stored, nil
}

func (s *AssignmentRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Assignment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, a := range s.Items {
		if a.ID == id {
			assignment := a
			return &assignment, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *AssignmentRepositoryStub) ListByOrder(ctx context.Context, orderID int64) ([]model.Assignment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Assignment, 0)
	for _, a := range s.Items {
		if a.OrderID == orderID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *AssignmentRepositoryStub) ListAll(ctx context.Context) ([]model.Assignment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items, nil
}

func (s *AssignmentRepositoryStub) Update(ctx context.Context, assignment *model.Assignment) error {
	if s.Err != nil {
		return s.Err
	}
	for i, a := range s.Items {
		if a.ID == assignment.ID {
			s.Items[i] = *assignment
			s.Updated = append(s.Updated, *assignment)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *AssignmentRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i, a := range s.Items {
		if a.ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			s.Deleted = append(s.Deleted, id)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}
