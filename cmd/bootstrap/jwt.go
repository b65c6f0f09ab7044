package bootstrap

import (
	"petshop-checkout/internal/pkg/config"
	"petshop-checkout/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	if cfg.JWT.Secret == "" {
		panic("JWT_SECRET must not be empty")
	}
	return jwt.NewService(cfg.JWT.Secret)
}
