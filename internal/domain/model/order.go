package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes the shipment lifecycle tag.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "NEW"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCanceled   OrderStatus = "CANCELED"
)

// ParseOrderStatus maps a wire value onto a known status.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	switch OrderStatus(raw) {
	case OrderStatusNew, OrderStatusInProgress, OrderStatusDelivered, OrderStatusCanceled:
		return OrderStatus(raw), true
	}
	return "", false
}

// Order describes one shipment contract. Client and manager names are
// denormalized by the repository for display.
type Order struct {
	ID                  int64
	Number              string
	ClientID            int64
	ClientName          string
	Status              OrderStatus
	CreatedAt           time.Time
	PlannedPickupDate   *time.Time
	PlannedDeliveryDate *time.Time
	ActualDeliveryDate  *time.Time
	OriginCity          string
	OriginAddress       string
	DestinationCity     string
	DestinationAddress  string
	CargoDescription    string
	CargoWeight         *float64
	CargoVolume         *float64
	Price               decimal.Decimal
	ManagerID           *int64
	ManagerName         *string
}

// OrderDetails bundles an order with its owned collections.
type OrderDetails struct {
	Order       Order
	Assignments []Assignment
	History     []StatusChange
}
