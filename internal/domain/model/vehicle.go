package model

import "time"

// VehicleStatus describes fleet availability.
type VehicleStatus string

const (
	VehicleStatusActive       VehicleStatus = "ACTIVE"
	VehicleStatusInService    VehicleStatus = "IN_SERVICE"
	VehicleStatusOutOfService VehicleStatus = "OUT_OF_SERVICE"
)

// ParseVehicleStatus maps a wire value onto a known vehicle status.
func ParseVehicleStatus(raw string) (VehicleStatus, bool) {
	switch VehicleStatus(raw) {
	case VehicleStatusActive, VehicleStatusInService, VehicleStatusOutOfService:
		return VehicleStatus(raw), true
	}
	return "", false
}

// Vehicle represents one truck in the fleet. RegistrationNumber is the
// business key and is unique at the storage boundary.
type Vehicle struct {
	ID                 int64
	RegistrationNumber string
	Type               string
	CapacityWeight     *float64
	CapacityVolume     *float64
	Status             VehicleStatus
	CreatedAt          time.Time
}
