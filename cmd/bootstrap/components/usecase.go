package components

import (
	"time"

	"petshop-checkout/internal/domain/order"
	"petshop-checkout/internal/pkg/clock"
	"petshop-checkout/internal/pkg/config"
	"petshop-checkout/internal/usecase/commands"
	"petshop-checkout/internal/usecase/queries"
	"petshop-checkout/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) clock.Clock {
		return clock.NewRealClockIn(time.FixedZone(cfg.Log.TimeZone, cfg.Log.TimeZoneOffset))
	},
	func(cfg config.Config) *order.Builder {
		return order.NewBuilder(order.StoreAddress{
			Province: cfg.Checkout.StoreProvince,
			District: cfg.Checkout.StoreDistrict,
			Ward:     cfg.Checkout.StoreWard,
			Street:   cfg.Checkout.StoreStreet,
		})
	},
	NewSessionRunner,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckoutCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCheckoutQueries,
	),
)

// NewSessionRunner fails startup on a malformed shipping fee; LoadConfig has
// already validated it, so this only trips on hand-built configs.
func NewSessionRunner(
	cfg config.Config,
	carts shared.CartSource,
	catalog shared.PromotionCatalog,
	sessions shared.SessionRepository,
	clk clock.Clock,
) (*shared.SessionRunner, error) {
	fee, err := cfg.Checkout.ShippingFeeAmount()
	if err != nil {
		return nil, err
	}
	return shared.NewSessionRunner(carts, catalog, sessions, clk, fee), nil
}
