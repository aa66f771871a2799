package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/logistservice/logist/internal/domain/model"
)

func newStatsFixture() (*StatsUseCase, *stubOrderRepository, *stubAssignmentRepository) {
	orders := &stubOrderRepository{}
	assignments := &stubAssignmentRepository{}
	return NewStatsUseCase(orders, assignments), orders, assignments
}

func TestStatsStatusCountsSortedByStatus(t *testing.T) {
	uc, orders, _ := newStatsFixture()
	orders.orders = []model.Order{
		{ID: 1, Status: model.OrderStatusNew, CreatedAt: time.Now()},
		{ID: 2, Status: model.OrderStatusNew, CreatedAt: time.Now()},
		{ID: 3, Status: model.OrderStatusDelivered, CreatedAt: time.Now()},
		{ID: 4, Status: model.OrderStatusCanceled, CreatedAt: time.Now()},
	}

	counts, err := uc.StatusCounts(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 3 {
		t.Fatalf("expected three buckets, got %d", len(counts))
	}
	if counts[0].Status != model.OrderStatusCanceled || counts[1].Status != model.OrderStatusDelivered || counts[2].Status != model.OrderStatusNew {
		t.Fatalf("buckets not sorted by status name: %+v", counts)
	}
	if counts[2].Count != 2 {
		t.Fatalf("unexpected NEW count %d", counts[2].Count)
	}
}

func TestStatsStatusCountsWindowIsHalfOpen(t *testing.T) {
	uc, orders, _ := newStatsFixture()
	orders.orders = []model.Order{
		{ID: 1, Status: model.OrderStatusNew, CreatedAt: time.Date(2024, 1, 10, 23, 59, 59, 0, time.UTC)},
		{ID: 2, Status: model.OrderStatusNew, CreatedAt: time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Status: model.OrderStatusNew}, // zero timestamp
	}
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	counts, err := uc.StatusCounts(context.Background(), &from, &to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 1 || counts[0].Count != 1 {
		t.Fatalf("expected only the in-window order, got %+v", counts)
	}
}

func TestStatsStatusCountsUnboundedAdmitsZeroTimestamps(t *testing.T) {
	uc, orders, _ := newStatsFixture()
	orders.orders = []model.Order{{ID: 1, Status: model.OrderStatusNew}}

	counts, err := uc.StatusCounts(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 1 || counts[0].Count != 1 {
		t.Fatalf("unbounded window must admit zero timestamps, got %+v", counts)
	}
}

func TestStatsTopClientsRankingAndLimit(t *testing.T) {
	uc, orders, _ := newStatsFixture()
	now := time.Now()
	orders.orders = []model.Order{
		{ID: 1, ClientID: 1, ClientName: "Acme", Price: decimal.NewFromInt(300), CreatedAt: now},
		{ID: 2, ClientID: 2, ClientName: "Globex", Price: decimal.NewFromInt(200), CreatedAt: now},
		{ID: 3, ClientID: 2, ClientName: "Globex", Price: decimal.NewFromInt(100), CreatedAt: now},
		{ID: 4, ClientID: 3, ClientName: "Initech", Price: decimal.NewFromInt(50), CreatedAt: now},
		{ID: 5, ClientName: "orphan", Price: decimal.NewFromInt(999), CreatedAt: now},
	}

	top, err := uc.TopClients(context.Background(), nil, nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected three clients, got %d", len(top))
	}
	// 300 for Acme in one order vs 300 for Globex in two: equal totals,
	// higher order count wins.
	if top[0].ClientID != 2 {
		t.Fatalf("tie must be broken by order count, got %+v", top)
	}
	if top[2].ClientID != 3 {
		t.Fatalf("unexpected tail %+v", top[2])
	}

	limited, err := uc.TopClients(context.Background(), nil, nil, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected limit 2, got %d", len(limited))
	}
}

func TestStatsTopClientsDefaultLimit(t *testing.T) {
	uc, orders, _ := newStatsFixture()
	now := time.Now()
	for i := int64(1); i <= 7; i++ {
		orders.orders = append(orders.orders, model.Order{
			ID:        i,
			ClientID:  i,
			Price:     decimal.NewFromInt(i * 10),
			CreatedAt: now,
		})
	}

	top, err := uc.TopClients(context.Background(), nil, nil, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(top) != 5 {
		t.Fatalf("non-positive limit must fall back to 5, got %d", len(top))
	}
	if top[0].ClientID != 7 {
		t.Fatalf("expected highest revenue first, got %+v", top[0])
	}
}

func TestStatsVehicleLoadCountsDistinctOrders(t *testing.T) {
	uc, _, assignments := newStatsFixture()
	start := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	assignments.items = []model.Assignment{
		{ID: 1, OrderID: 4, VehicleID: 7, VehicleRegistration: "AB123CD", PlannedStart: &start},
		{ID: 2, OrderID: 4, VehicleID: 7, VehicleRegistration: "AB123CD", PlannedStart: &start},
		{ID: 3, OrderID: 5, VehicleID: 7, VehicleRegistration: "AB123CD", PlannedStart: &start},
		{ID: 4, OrderID: 6, VehicleID: 8, VehicleRegistration: "ZZ999XX", PlannedStart: &start},
	}

	load, err := uc.VehicleLoad(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(load) != 2 {
		t.Fatalf("expected two vehicles, got %d", len(load))
	}
	if load[0].VehicleID != 7 || load[0].OrdersCount != 2 {
		t.Fatalf("expected vehicle 7 with two distinct orders, got %+v", load[0])
	}
	if load[1].VehicleID != 8 || load[1].OrdersCount != 1 {
		t.Fatalf("unexpected second row %+v", load[1])
	}
}

func TestStatsVehicleLoadTieBrokenByRegistration(t *testing.T) {
	uc, _, assignments := newStatsFixture()
	start := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	assignments.items = []model.Assignment{
		{ID: 1, OrderID: 4, VehicleID: 8, VehicleRegistration: "ZZ999XX", PlannedStart: &start},
		{ID: 2, OrderID: 5, VehicleID: 7, VehicleRegistration: "AB123CD", PlannedStart: &start},
	}

	load, err := uc.VehicleLoad(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if load[0].RegistrationNumber != "AB123CD" {
		t.Fatalf("tie must be broken by registration ascending, got %+v", load)
	}
}

func TestStatsVehicleLoadWindowsByPlannedStart(t *testing.T) {
	uc, _, assignments := newStatsFixture()
	inWindow := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	outOfWindow := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	assignments.items = []model.Assignment{
		{ID: 1, OrderID: 4, VehicleID: 7, VehicleRegistration: "AB123CD", PlannedStart: &inWindow},
		{ID: 2, OrderID: 5, VehicleID: 7, VehicleRegistration: "AB123CD", PlannedStart: &outOfWindow},
		{ID: 3, OrderID: 6, VehicleID: 8, VehicleRegistration: "ZZ999XX"},
	}
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	load, err := uc.VehicleLoad(context.Background(), &from, &to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(load) != 1 {
		t.Fatalf("expected one vehicle in window, got %+v", load)
	}
	if load[0].VehicleID != 7 || load[0].OrdersCount != 1 {
		t.Fatalf("unexpected row %+v", load[0])
	}
}
