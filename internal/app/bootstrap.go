package app

import (
	"context"
	"errors"
	"log/slog"

	"go.uber.org/fx"

	"github.com/logistservice/logist/internal/config"
	domainErrors "github.com/logistservice/logist/internal/domain/errors"
	"github.com/logistservice/logist/internal/domain/model"
)

type bootstrapParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Facade    *LogisticsFacade
	Config    *config.Config
	Logger    *slog.Logger
}

// bootstrapAdmin seeds the administrator account on startup when none
// exists yet.
func bootstrapAdmin(p bootstrapParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			admin := &model.User{
				Username: p.Config.AdminUsername,
				FullName: "Administrator",
				Email:    p.Config.AdminUsername + "@localhost",
				Active:   true,
				Roles:    []string{model.RoleAdmin},
			}
			_, err := p.Facade.CreateUser(ctx, admin, p.Config.AdminPassword)
			switch {
			case err == nil:
				p.Logger.Info("administrator account created", slog.String("username", admin.Username))
			case errors.Is(err, domainErrors.ErrAlreadyExists):
				// already seeded
			default:
				return err
			}
			return nil
		},
	})
}
