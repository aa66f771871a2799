package repository

import (
	"context"

	"github.com/logistservice/logist/internal/domain/model"
)

// ClientRepository stores customer records.
type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) (*model.Client, error)
	GetByID(ctx context.Context, id int64) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	Update(ctx context.Context, client *model.Client) error
	Delete(ctx context.Context, id int64) error
}

// DriverRepository stores driver records.
type DriverRepository interface {
	Create(ctx context.Context, driver *model.Driver) (*model.Driver, error)
	GetByID(ctx context.Context, id int64) (*model.Driver, error)
	List(ctx context.Context) ([]model.Driver, error)
	Update(ctx context.Context, driver *model.Driver) error
	Delete(ctx context.Context, id int64) error
}

// VehicleRepository stores fleet records. Registration number is unique;
// violations surface as ErrAlreadyExists.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *model.Vehicle) (*model.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*model.Vehicle, error)
	List(ctx context.Context) ([]model.Vehicle, error)
	Update(ctx context.Context, vehicle *model.Vehicle) error
	Delete(ctx context.Context, id int64) error
}

// UserRepository stores back-office accounts. Username and email are
// unique; violations surface as ErrAlreadyExists.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
}
