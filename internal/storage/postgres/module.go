package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/logistservice/logist/internal/config"
	"github.com/logistservice/logist/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.AssignmentRepository { return s.Assignments() },
		func(s *Storage) repository.ClientRepository { return s.Clients() },
		func(s *Storage) repository.DriverRepository { return s.Drivers() },
		func(s *Storage) repository.VehicleRepository { return s.Vehicles() },
		func(s *Storage) repository.UserRepository { return s.Users() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
