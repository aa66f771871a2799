package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidTimeWindow  = errors.New("planned end must be after planned start")
	ErrInvalidStatus      = errors.New("unknown order status")
)
