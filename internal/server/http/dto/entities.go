package dto

import "time"

// ClientRequest describes client create/update payload.
type ClientRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	TaxNumber     string `json:"taxNumber"`
	City          string `json:"city"`
	Address       string `json:"address"`
	Active        *bool  `json:"active"`
}

// ClientResponse mirrors one client.
type ClientResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contactPerson"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	TaxNumber     string    `json:"taxNumber"`
	City          string    `json:"city"`
	Address       string    `json:"address"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
}

// DriverRequest describes driver create/update payload.
type DriverRequest struct {
	FullName        string `json:"fullName" binding:"required"`
	Phone           string `json:"phone"`
	DrivingLicense  string `json:"drivingLicense"`
	ExperienceYears *int   `json:"experienceYears"`
	Active          *bool  `json:"active"`
}

// DriverResponse mirrors one driver.
type DriverResponse struct {
	ID              int64  `json:"id"`
	FullName        string `json:"fullName"`
	Phone           string `json:"phone"`
	DrivingLicense  string `json:"drivingLicense"`
	ExperienceYears *int   `json:"experienceYears,omitempty"`
	Active          bool   `json:"active"`
}

// VehicleRequest describes vehicle create/update payload.
type VehicleRequest struct {
	RegistrationNumber string   `json:"registrationNumber" binding:"required"`
	Type               string   `json:"type"`
	CapacityWeight     *float64 `json:"capacityWeight"`
	CapacityVolume     *float64 `json:"capacityVolume"`
	Status             string   `json:"status"`
}

// VehicleResponse mirrors one vehicle.
type VehicleResponse struct {
	ID                 int64     `json:"id"`
	RegistrationNumber string    `json:"registrationNumber"`
	Type               string    `json:"type"`
	CapacityWeight     *float64  `json:"capacityWeight,omitempty"`
	CapacityVolume     *float64  `json:"capacityVolume,omitempty"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
}

// UserRequest describes user create/update payload. Password is optional
// on update; an empty value keeps the stored hash.
type UserRequest struct {
	Username string   `json:"username" binding:"required"`
	Password string   `json:"password"`
	FullName string   `json:"fullName"`
	Email    string   `json:"email"`
	Active   *bool    `json:"active"`
	Roles    []string `json:"roles"`
}

// UserResponse mirrors one account. The password hash never leaves the server.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
