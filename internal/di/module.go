package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/coworking/internal/app"
	"github.com/polkiloo/coworking/internal/config"
	"github.com/polkiloo/coworking/internal/logger"
	"github.com/polkiloo/coworking/internal/pkg/auth"
	"github.com/polkiloo/coworking/internal/server/http/router"
	"github.com/polkiloo/coworking/internal/storage/postgres"
	"github.com/polkiloo/coworking/internal/storage/revocation"
	"github.com/polkiloo/coworking/internal/usecase"
)

// Module composes the whole application graph. opts are appended last so tests can fx.Replace any node.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		revocation.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
