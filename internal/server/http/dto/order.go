package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderCreateUpdateRequest describes order create/update payload. Planned
// dates travel as calendar dates (2006-01-02).
type OrderCreateUpdateRequest struct {
	ClientID            int64           `json:"clientId" binding:"required"`
	ManagerID           *int64          `json:"managerId"`
	PlannedPickupDate   *string         `json:"plannedPickupDate"`
	PlannedDeliveryDate *string         `json:"plannedDeliveryDate"`
	OriginCity          string          `json:"originCity"`
	OriginAddress       string          `json:"originAddress"`
	DestinationCity     string          `json:"destinationCity"`
	DestinationAddress  string          `json:"destinationAddress"`
	CargoDescription    string          `json:"cargoDescription"`
	Description         string          `json:"description"`
	CargoWeight         *float64        `json:"cargoWeight"`
	CargoVolume         *float64        `json:"cargoVolume"`
	Price               decimal.Decimal `json:"price"`
	DriverID            *int64          `json:"driverId"`
	VehicleID           *int64          `json:"vehicleId"`
}

// OrderStatusUpdateRequest carries the transition target.
type OrderStatusUpdateRequest struct {
	NewStatus string `json:"newStatus" binding:"required"`
}

// OrderResponse mirrors one order for display.
type OrderResponse struct {
	ID                  int64           `json:"id"`
	OrderNumber         string          `json:"orderNumber"`
	ClientID            int64           `json:"clientId"`
	ClientName          string          `json:"clientName"`
	Status              string          `json:"status"`
	CreatedAt           time.Time       `json:"createdAt"`
	PlannedPickupDate   *string         `json:"plannedPickupDate,omitempty"`
	PlannedDeliveryDate *string         `json:"plannedDeliveryDate,omitempty"`
	ActualDeliveryDate  *time.Time      `json:"actualDeliveryDate,omitempty"`
	OriginCity          string          `json:"originCity"`
	OriginAddress       string          `json:"originAddress"`
	DestinationCity     string          `json:"destinationCity"`
	DestinationAddress  string          `json:"destinationAddress"`
	CargoDescription    string          `json:"cargoDescription"`
	CargoWeight         *float64        `json:"cargoWeight,omitempty"`
	CargoVolume         *float64        `json:"cargoVolume,omitempty"`
	Price               decimal.Decimal `json:"price"`
	ManagerID           *int64          `json:"managerId,omitempty"`
	ManagerName         *string         `json:"managerName,omitempty"`
}

// OrderDetailsResponse bundles an order with its owned collections.
type OrderDetailsResponse struct {
	Order         OrderResponse           `json:"order"`
	Assignments   []AssignmentResponse    `json:"assignments"`
	StatusHistory []StatusHistoryResponse `json:"statusHistory"`
}

// StatusHistoryResponse mirrors one audit trail entry.
type StatusHistoryResponse struct {
	ID                int64     `json:"id"`
	OldStatus         *string   `json:"oldStatus,omitempty"`
	NewStatus         string    `json:"newStatus"`
	ChangedAt         time.Time `json:"changedAt"`
	ChangedByUserID   *int64    `json:"changedByUserId,omitempty"`
	ChangedByUsername *string   `json:"changedByUsername,omitempty"`
}
