package model

// Driver represents a person who can be assigned to orders.
type Driver struct {
	ID              int64
	FullName        string
	Phone           string
	DrivingLicense  string
	ExperienceYears *int
	Active          bool
}
