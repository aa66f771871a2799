package usecase

import (
	"sort"
	"strings"
	"time"

	"github.com/logistservice/logist/internal/domain/model"
)

// SortDirection orders a listing ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// ParseSortDirection maps a wire value onto a direction. An empty value
// defaults to ASC; anything else unknown is rejected.
func ParseSortDirection(raw string) (SortDirection, bool) {
	switch {
	case raw == "" || strings.EqualFold(raw, string(SortAsc)):
		return SortAsc, true
	case strings.EqualFold(raw, string(SortDesc)):
		return SortDesc, true
	}
	return "", false
}

// OrderSortField selects the order listing comparator.
type OrderSortField string

const (
	OrderSortNumber              OrderSortField = "ORDER_NUMBER"
	OrderSortClientName          OrderSortField = "CLIENT_NAME"
	OrderSortStatus              OrderSortField = "STATUS"
	OrderSortCreatedAt           OrderSortField = "CREATED_AT"
	OrderSortPlannedPickupDate   OrderSortField = "PLANNED_PICKUP_DATE"
	OrderSortPlannedDeliveryDate OrderSortField = "PLANNED_DELIVERY_DATE"
)

// ParseOrderSortField maps a wire value onto a known sort field.
func ParseOrderSortField(raw string) (OrderSortField, bool) {
	switch OrderSortField(raw) {
	case OrderSortNumber, OrderSortClientName, OrderSortStatus,
		OrderSortCreatedAt, OrderSortPlannedPickupDate, OrderSortPlannedDeliveryDate:
		return OrderSortField(raw), true
	}
	return "", false
}

// sortOrders applies the comparator chain for the field; an empty field
// leaves the listing in repository order.
func sortOrders(orders []model.Order, field OrderSortField, dir SortDirection) {
	if field == "" {
		return
	}

	cmp := orderComparator(field)
	sort.SliceStable(orders, func(i, j int) bool {
		c := cmp(&orders[i], &orders[j])
		if dir == SortDesc {
			return c > 0
		}
		return c < 0
	})
}

func orderComparator(field OrderSortField) func(a, b *model.Order) int {
	switch field {
	case OrderSortNumber:
		return func(a, b *model.Order) int {
			return strings.Compare(strings.ToLower(a.Number), strings.ToLower(b.Number))
		}
	case OrderSortClientName:
		return func(a, b *model.Order) int {
			return strings.Compare(strings.ToLower(a.ClientName), strings.ToLower(b.ClientName))
		}
	case OrderSortStatus:
		return func(a, b *model.Order) int {
			return strings.Compare(string(a.Status), string(b.Status))
		}
	case OrderSortCreatedAt:
		return func(a, b *model.Order) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	case OrderSortPlannedPickupDate:
		return func(a, b *model.Order) int {
			return compareTimePtr(a.PlannedPickupDate, b.PlannedPickupDate)
		}
	case OrderSortPlannedDeliveryDate:
		return func(a, b *model.Order) int {
			return compareTimePtr(a.PlannedDeliveryDate, b.PlannedDeliveryDate)
		}
	}
	return func(a, b *model.Order) int { return 0 }
}

// compareTimePtr orders timestamps ascending with nils last.
func compareTimePtr(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return a.Compare(*b)
}

// sortAssignmentsByPlannedStart orders assignments ascending by planned
// start with nils last.
func sortAssignmentsByPlannedStart(assignments []model.Assignment) {
	sort.SliceStable(assignments, func(i, j int) bool {
		return compareTimePtr(assignments[i].PlannedStart, assignments[j].PlannedStart) < 0
	})
}

// sortHistoryByChangedAtDesc orders audit rows by most recent change first.
func sortHistoryByChangedAtDesc(history []model.StatusChange) {
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].ChangedAt.After(history[j].ChangedAt)
	})
}
