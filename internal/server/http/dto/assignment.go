package dto

import "time"

// AssignmentRequest describes a direct assignment create/update payload.
type AssignmentRequest struct {
	VehicleID    int64      `json:"vehicleId" binding:"required"`
	DriverID     int64      `json:"driverId" binding:"required"`
	PlannedStart *time.Time `json:"plannedStart"`
	PlannedEnd   *time.Time `json:"plannedEnd"`
	ActualStart  *time.Time `json:"actualStart"`
	ActualEnd    *time.Time `json:"actualEnd"`
}

// AssignmentResponse mirrors one vehicle/driver assignment.
type AssignmentResponse struct {
	ID                        int64      `json:"id"`
	OrderID                   int64      `json:"orderId"`
	VehicleID                 int64      `json:"vehicleId"`
	VehicleRegistrationNumber string     `json:"vehicleRegistrationNumber"`
	DriverID                  int64      `json:"driverId"`
	DriverName                string     `json:"driverName"`
	PlannedStart              *time.Time `json:"plannedStart,omitempty"`
	PlannedEnd                *time.Time `json:"plannedEnd,omitempty"`
	ActualStart               *time.Time `json:"actualStart,omitempty"`
	ActualEnd                 *time.Time `json:"actualEnd,omitempty"`
}
