package usecase

import (
	"context"
	"time"

	domainErrors "github.com/logistservice/logist/internal/domain/errors"
	"github.com/logistservice/logist/internal/domain/model"
)

type transitionCall struct {
	change      model.StatusChange
	deliveredAt *time.Time
}

type stubOrderRepository struct {
	orders      []model.Order
	historyRows []model.StatusChange
	created     []model.Order
	createdWith []*model.Assignment
	updated     []model.Order
	updatedWith []*model.Assignment
	deleted     []int64
	transitions []transitionCall
	next        int64

	createFn     func(context.Context, *model.Order, *model.Assignment) (*model.Order, error)
	transitionFn func(context.Context, *model.StatusChange, *time.Time) error
}

func (s *stubOrderRepository) Create(ctx context.Context, order *model.Order, assignment *model.Assignment) (*model.Order, error) {
	if s.createFn != nil {
		return s.createFn(ctx, order, assignment)
	}
	if s.next == 0 {
		s.next = 1
	}
	stored := *order
	stored.ID = s.next
	s.next++
	s.created = append(s.created, stored)
	s.createdWith = append(s.createdWith, assignment)
	s.orders = append(s.orders, stored)
	return &stored, nil
}

func (s *stubOrderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	for _, o := range s.orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubOrderRepository) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	for _, o := range s.orders {
		if o.Number == number {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubOrderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	return s.orders, nil
}

func (s *stubOrderRepository) Update(ctx context.Context, order *model.Order, assignment *model.Assignment) error {
	s.updated = append(s.updated, *order)
	s.updatedWith = append(s.updatedWith, assignment)
	for i, o := range s.orders {
		if o.ID == order.ID {
			s.orders[i] = *order
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *stubOrderRepository) Delete(ctx context.Context, id int64) error {
	for i, o := range s.orders {
		if o.ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			s.deleted = append(s.deleted, id)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *stubOrderRepository) TransitionStatus(ctx context.Context, change *model.StatusChange, deliveredAt *time.Time) error {
	if s.transitionFn != nil {
		return s.transitionFn(ctx, change, deliveredAt)
	}
	s.transitions = append(s.transitions, transitionCall{change: *change, deliveredAt: deliveredAt})
	s.historyRows = append(s.historyRows, *change)
	for i, o := range s.orders {
		if o.ID == change.OrderID {
			s.orders[i].Status = change.NewStatus
			if deliveredAt != nil {
				t := *deliveredAt
				s.orders[i].ActualDeliveryDate = &t
			}
		}
	}
	return nil
}

func (s *stubOrderRepository) History(ctx context.Context, orderID int64) ([]model.StatusChange, error) {
	out := make([]model.StatusChange, 0)
	for _, h := range s.historyRows {
		if h.OrderID == orderID {
			out = append(out, h)
		}
	}
	return out, nil
}

type stubAssignmentRepository struct {
	items   []model.Assignment
	next    int64
	updated []model.Assignment
	deleted []int64
}

func (s *stubAssignmentRepository) Create(ctx context.Context, assignment *model.Assignment) (*model.Assignment, error) {
	if s.next == 0 {
		s.next = 1
	}
	stored := *assignment
	stored.ID = s.next
	s.next++
	s.items = append(s.items, stored)
	return &stored, nil
}

func (s *stubAssignmentRepository) GetByID(ctx context.Context, id int64) (*model.Assignment, error) {
	for _, a := range s.items {
		if a.ID == id {
			assignment := a
			return &assignment, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubAssignmentRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.Assignment, error) {
	out := make([]model.Assignment, 0)
	for _, a := range s.items {
		if a.OrderID == orderID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubAssignmentRepository) ListAll(ctx context.Context) ([]model.Assignment, error) {
	return s.items, nil
}

func (s *stubAssignmentRepository) Update(ctx context.Context, assignment *model.Assignment) error {
	for i, a := range s.items {
		if a.ID == assignment.ID {
			s.items[i] = *assignment
			s.updated = append(s.updated, *assignment)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *stubAssignmentRepository) Delete(ctx context.Context, id int64) error {
	for i, a := range s.items {
		if a.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.deleted = append(s.deleted, id)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

type stubClientRepository struct {
	byID map[int64]*model.Client
}

func (s *stubClientRepository) add(client model.Client) *model.Client {
	if s.byID == nil {
		s.byID = make(map[int64]*model.Client)
	}
	stored := client
	s.byID[stored.ID] = &stored
	return &stored
}

func (s *stubClientRepository) Create(ctx context.Context, client *model.Client) (*model.Client, error) {
	return s.add(*client), nil
}

func (s *stubClientRepository) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	if client, ok := s.byID[id]; ok {
		return client, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubClientRepository) List(ctx context.Context) ([]model.Client, error) {
	out := make([]model.Client, 0, len(s.byID))
	for _, c := range s.byID {
		out = append(out, *c)
	}
	return out, nil
}

func (s *stubClientRepository) Update(ctx context.Context, client *model.Client) error {
	if _, ok := s.byID[client.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	s.add(*client)
	return nil
}

func (s *stubClientRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := s.byID[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

type stubDriverRepository struct {
	byID map[int64]*model.Driver
}

func (s *stubDriverRepository) add(driver model.Driver) *model.Driver {
	if s.byID == nil {
		s.byID = make(map[int64]*model.Driver)
	}
	stored := driver
	s.byID[stored.ID] = &stored
	return &stored
}

func (s *stubDriverRepository) Create(ctx context.Context, driver *model.Driver) (*model.Driver, error) {
	return s.add(*driver), nil
}

func (s *stubDriverRepository) GetByID(ctx context.Context, id int64) (*model.Driver, error) {
	if driver, ok := s.byID[id]; ok {
		return driver, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubDriverRepository) List(ctx context.Context) ([]model.Driver, error) {
	out := make([]model.Driver, 0, len(s.byID))
	for _, d := range s.byID {
		out = append(out, *d)
	}
	return out, nil
}

func (s *stubDriverRepository) Update(ctx context.Context, driver *model.Driver) error {
	if _, ok := s.byID[driver.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	s.add(*driver)
	return nil
}

func (s *stubDriverRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := s.byID[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

type stubVehicleRepository struct {
	byID map[int64]*model.Vehicle
}

func (s *stubVehicleRepository) add(vehicle model.Vehicle) *model.Vehicle {
	if s.byID == nil {
		s.byID = make(map[int64]*model.Vehicle)
	}
	stored := vehicle
	s.byID[stored.ID] = &stored
	return &stored
}

func (s *stubVehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) (*model.Vehicle, error) {
	return s.add(*vehicle), nil
}

func (s *stubVehicleRepository) GetByID(ctx context.Context, id int64) (*model.Vehicle, error) {
	if vehicle, ok := s.byID[id]; ok {
		return vehicle, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubVehicleRepository) List(ctx context.Context) ([]model.Vehicle, error) {
	out := make([]model.Vehicle, 0, len(s.byID))
	for _, v := range s.byID {
		out = append(out, *v)
	}
	return out, nil
}

func (s *stubVehicleRepository) Update(ctx context.Context, vehicle *model.Vehicle) error {
	if _, ok := s.byID[vehicle.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	s.add(*vehicle)
	return nil
}

func (s *stubVehicleRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := s.byID[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

type stubUserRepository struct {
	byID    map[int64]*model.User
	next    int64
	updated []model.User
}

func (s *stubUserRepository) add(user model.User) *model.User {
	if s.byID == nil {
		s.byID = make(map[int64]*model.User)
	}
	if user.ID == 0 {
		if s.next == 0 {
			s.next = 1
		}
		user.ID = s.next
		s.next++
	}
	stored := user
	s.byID[stored.ID] = &stored
	return &stored
}

func (s *stubUserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	for _, existing := range s.byID {
		if existing.Username == user.Username {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	return s.add(*user), nil
}

func (s *stubUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if user, ok := s.byID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, user := range s.byID {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubUserRepository) List(ctx context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(s.byID))
	for _, u := range s.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (s *stubUserRepository) Update(ctx context.Context, user *model.User) error {
	if _, ok := s.byID[user.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := *user
	s.byID[user.ID] = &stored
	s.updated = append(s.updated, stored)
	return nil
}

func (s *stubUserRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := s.byID[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}
