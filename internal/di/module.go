package di

import (
	"github.com/dormdine/dormdine/internal/adapter/payment"
	"github.com/dormdine/dormdine/internal/app"
	"github.com/dormdine/dormdine/internal/config"
	"github.com/dormdine/dormdine/internal/logger"
	"github.com/dormdine/dormdine/internal/pkg/auth"
	"github.com/dormdine/dormdine/internal/server/http/handlers"
	"github.com/dormdine/dormdine/internal/server/http/router"
	"github.com/dormdine/dormdine/internal/storage/postgres"
	"github.com/dormdine/dormdine/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		payment.Module,
		usecase.Module,
		fx.Provide(func(facade *app.DormFacade) handlers.DormFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
