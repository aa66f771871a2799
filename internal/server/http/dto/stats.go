package dto

import "github.com/shopspring/decimal"

// StatusCountResponse is one bucket of the order-status report.
type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// TopClientResponse is one row of the revenue leaderboard.
type TopClientResponse struct {
	ClientID    int64           `json:"clientId"`
	ClientName  string          `json:"clientName"`
	OrdersCount int64           `json:"ordersCount"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// VehicleLoadResponse is one row of the vehicle utilisation report.
type VehicleLoadResponse struct {
	VehicleID          int64  `json:"vehicleId"`
	RegistrationNumber string `json:"registrationNumber"`
	OrdersCount        int64  `json:"ordersCount"`
}
