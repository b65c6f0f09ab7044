package components

import (
	"petshop-checkout/internal/handler"
	"petshop-checkout/internal/handler/api"
	"petshop-checkout/internal/handler/middleware"
	"petshop-checkout/internal/pkg/config"
	"petshop-checkout/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		func(svc *jwt.Service, cfg config.Config) *middleware.AuthMiddleware {
			return middleware.NewAuthMiddleware(svc, cfg.JWT)
		},
	),
	fx.Invoke(handler.NewRouter),
)
