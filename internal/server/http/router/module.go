package router

import (
	"go.uber.org/fx"

	"github.com/polkiloo/coworking/internal/app"
	"github.com/polkiloo/coworking/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(
	Setup,
	func(f *app.CoworkingFacade) handlers.CoworkingFacade { return f },
)
