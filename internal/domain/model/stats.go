package model

import "github.com/shopspring/decimal"

// StatusCount is one row of the order status distribution report.
type StatusCount struct {
	Status OrderStatus
	Count  int64
}

// ClientRevenue aggregates a client's in-window orders and revenue.
type ClientRevenue struct {
	ClientID    int64
	ClientName  string
	OrdersCount int64
	TotalPrice  decimal.Decimal
}

// VehicleLoad counts distinct in-window orders served by one vehicle.
type VehicleLoad struct {
	VehicleID          int64
	RegistrationNumber string
	OrdersCount        int64
}
