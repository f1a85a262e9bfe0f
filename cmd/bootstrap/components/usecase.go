package components

import (
	"time"

	"franguinho-pos/internal/pkg/clock"
	"franguinho-pos/internal/pkg/config"
	"franguinho-pos/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewSettingsUseCase,
		usecase.NewProductUseCase,
		NewCouponUseCase,
		usecase.NewMessagingUseCase,
		// Order status notifications ride the messaging channel.
		func(m usecase.MessagingUseCase) usecase.OrderNotifier {
			return m
		},
		NewOrderUseCase,
		NewCampaignUseCase,
		NewDashboardUseCase,
	),
)

func NewCouponUseCase(
	couponRepo usecase.CouponRepository,
	productRepo usecase.ProductRepository,
	clk clock.Clock,
	cfg config.Config,
) usecase.CouponUseCase {
	return usecase.NewCouponUseCase(couponRepo, productRepo, clk, cfg.Coupon.AllowAnonymous)
}

func NewOrderUseCase(
	orderRepo usecase.OrderRepository,
	couponRepo usecase.CouponRepository,
	productRepo usecase.ProductRepository,
	settings usecase.SettingsUseCase,
	receipts usecase.ReceiptRenderer,
	bus usecase.EventBus,
	notifier usecase.OrderNotifier,
	txm usecase.TxManager,
	clk clock.Clock,
	cfg config.Config,
) usecase.OrderUseCase {
	return usecase.NewOrderUseCase(
		orderRepo,
		couponRepo,
		productRepo,
		settings,
		receipts,
		bus,
		notifier,
		txm,
		clk,
		cfg.Coupon.AllowAnonymous,
	)
}

func NewCampaignUseCase(
	campaignRepo usecase.CampaignRepository,
	messaging usecase.MessagingUseCase,
	bus usecase.EventBus,
	txm usecase.TxManager,
	cfg config.Config,
) usecase.CampaignUseCase {
	return usecase.NewCampaignUseCase(campaignRepo, messaging, bus, txm, cfg.Campaign.Workers)
}

func NewDashboardUseCase(
	dashboardRepo usecase.DashboardRepository,
	clk clock.Clock,
	location *time.Location,
) usecase.DashboardUseCase {
	return usecase.NewDashboardUseCase(dashboardRepo, clk, location)
}
