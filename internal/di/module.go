package di

import (
	"go.uber.org/fx"

	"github.com/logistservice/logist/internal/app"
	"github.com/logistservice/logist/internal/config"
	"github.com/logistservice/logist/internal/logger"
	"github.com/logistservice/logist/internal/pkg/auth"
	"github.com/logistservice/logist/internal/server/http/handlers"
	"github.com/logistservice/logist/internal/server/http/router"
	"github.com/logistservice/logist/internal/storage/postgres"
	"github.com/logistservice/logist/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.LogisticsFacade) handlers.LogisticsFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
