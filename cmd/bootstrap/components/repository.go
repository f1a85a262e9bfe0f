package components

import (
	repo_impl "franguinho-pos/internal/infra/repository"
	"franguinho-pos/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewCouponRepository,
			fx.As(new(usecase.CouponRepository)),
		),
		fx.Annotate(
			repo_impl.NewProductRepository,
			fx.As(new(usecase.ProductRepository)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(usecase.OrderRepository)),
		),
		fx.Annotate(
			repo_impl.NewSettingsRepository,
			fx.As(new(usecase.SettingsRepository)),
		),
		fx.Annotate(
			repo_impl.NewMessageRepository,
			fx.As(new(usecase.MessageRepository)),
		),
		fx.Annotate(
			repo_impl.NewCampaignRepository,
			fx.As(new(usecase.CampaignRepository)),
		),
		fx.Annotate(
			repo_impl.NewDashboardRepository,
			fx.As(new(usecase.DashboardRepository)),
		),
	),
)
