package model

import "time"

// Assignment pairs a vehicle and a driver with an order for a time window.
// Registration number and driver name are denormalized for display.
type Assignment struct {
	ID                  int64
	OrderID             int64
	VehicleID           int64
	VehicleRegistration string
	DriverID            int64
	DriverName          string
	PlannedStart        *time.Time
	PlannedEnd          *time.Time
	ActualStart         *time.Time
	ActualEnd           *time.Time
}
