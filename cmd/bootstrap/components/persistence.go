package components

import (
	"petshop-checkout/internal/infra/repository"
	"petshop-checkout/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewCheckoutSessionRepository,
			fx.As(new(shared.SessionRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repository.DBTX {
	return pool
}
