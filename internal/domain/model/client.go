package model

import "time"

// Client represents a customer company orders are shipped for.
type Client struct {
	ID            int64
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	TaxNumber     string
	City          string
	Address       string
	Active        bool
	CreatedAt     time.Time
}
