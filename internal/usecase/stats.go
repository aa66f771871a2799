package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/logistservice/logist/internal/domain/model"
	"github.com/logistservice/logist/internal/domain/repository"
)

const defaultTopClientsLimit = 5

// StatsUseCase derives read-only operational reports from orders and
// assignments, optionally bounded by a date window. Every call performs a
// full scan; the data volumes of a back office do not warrant more.
type StatsUseCase struct {
	orders      repository.OrderRepository
	assignments repository.AssignmentRepository
}

// NewStatsUseCase constructs StatsUseCase.
func NewStatsUseCase(orders repository.OrderRepository, assignments repository.AssignmentRepository) *StatsUseCase {
	return &StatsUseCase{orders: orders, assignments: assignments}
}

// dateWindow is the half-open range [from@00:00, to+1d@00:00).
type dateWindow struct {
	from *time.Time
	to   *time.Time
}

func newDateWindow(fromDate, toDate *time.Time) dateWindow {
	var w dateWindow
	if fromDate != nil {
		from := startOfDay(*fromDate)
		w.from = &from
	}
	if toDate != nil {
		to := startOfDay(*toDate).AddDate(0, 0, 1)
		w.to = &to
	}
	return w
}

func (w dateWindow) unbounded() bool {
	return w.from == nil && w.to == nil
}

// contains reports whether the timestamp falls inside the window. A zero
// timestamp is only admitted by an unbounded window.
func (w dateWindow) contains(ts time.Time) bool {
	if w.unbounded() {
		return true
	}
	if ts.IsZero() {
		return false
	}
	if w.from != nil && ts.Before(*w.from) {
		return false
	}
	if w.to != nil && !ts.Before(*w.to) {
		return false
	}
	return true
}

// StatusCounts groups in-window orders by status, sorted by status name.
func (u *StatsUseCase) StatusCounts(ctx context.Context, fromDate, toDate *time.Time) ([]model.StatusCount, error) {
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	window := newDateWindow(fromDate, toDate)
	counts := make(map[model.OrderStatus]int64)
	for _, o := range orders {
		if !window.contains(o.CreatedAt) {
			continue
		}
		counts[o.Status]++
	}

	result := make([]model.StatusCount, 0, len(counts))
	for status, count := range counts {
		result = append(result, model.StatusCount{Status: status, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Status < result[j].Status
	})
	return result, nil
}

// TopClients ranks in-window clients by total order price, ties broken by
// order count. A non-positive limit falls back to the default of 5.
func (u *StatsUseCase) TopClients(ctx context.Context, fromDate, toDate *time.Time, limit int) ([]model.ClientRevenue, error) {
	if limit <= 0 {
		limit = defaultTopClientsLimit
	}

	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	window := newDateWindow(fromDate, toDate)
	byClient := make(map[int64]*model.ClientRevenue)
	for _, o := range orders {
		if o.ClientID == 0 || !window.contains(o.CreatedAt) {
			continue
		}
		entry, ok := byClient[o.ClientID]
		if !ok {
			entry = &model.ClientRevenue{ClientID: o.ClientID, ClientName: o.ClientName}
			byClient[o.ClientID] = entry
		}
		entry.OrdersCount++
		entry.TotalPrice = entry.TotalPrice.Add(o.Price)
	}

	result := make([]model.ClientRevenue, 0, len(byClient))
	for _, entry := range byClient {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		if c := result[i].TotalPrice.Cmp(result[j].TotalPrice); c != 0 {
			return c > 0
		}
		return result[i].OrdersCount > result[j].OrdersCount
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// VehicleLoad counts distinct in-window orders per vehicle, windowed by the
// assignment's planned start. A vehicle appearing on several assignments of
// the same order is counted once.
func (u *StatsUseCase) VehicleLoad(ctx context.Context, fromDate, toDate *time.Time) ([]model.VehicleLoad, error) {
	assignments, err := u.assignments.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	window := newDateWindow(fromDate, toDate)
	type vehicleOrders struct {
		registration string
		orders       map[int64]struct{}
	}
	byVehicle := make(map[int64]*vehicleOrders)
	for _, a := range assignments {
		if a.VehicleID == 0 {
			continue
		}
		plannedStart := time.Time{}
		if a.PlannedStart != nil {
			plannedStart = *a.PlannedStart
		}
		if !window.contains(plannedStart) {
			continue
		}
		entry, ok := byVehicle[a.VehicleID]
		if !ok {
			entry = &vehicleOrders{registration: a.VehicleRegistration, orders: make(map[int64]struct{})}
			byVehicle[a.VehicleID] = entry
		}
		if a.OrderID != 0 {
			entry.orders[a.OrderID] = struct{}{}
		}
	}

	result := make([]model.VehicleLoad, 0, len(byVehicle))
	for vehicleID, entry := range byVehicle {
		result = append(result, model.VehicleLoad{
			VehicleID:          vehicleID,
			RegistrationNumber: entry.registration,
			OrdersCount:        int64(len(entry.orders)),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].OrdersCount != result[j].OrdersCount {
			return result[i].OrdersCount > result[j].OrdersCount
		}
		return result[i].RegistrationNumber < result[j].RegistrationNumber
	})
	return result, nil
}
