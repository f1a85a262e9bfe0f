package components

import (
	"franguinho-pos/internal/handler"
	"franguinho-pos/internal/handler/api"
	"franguinho-pos/internal/handler/middleware"
	"franguinho-pos/internal/pkg/config"
	"franguinho-pos/internal/pkg/jwt"
	"franguinho-pos/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewCouponHandler,
		api.NewOrderHandler,
		api.NewProductHandler,
		api.NewMessageHandler,
		api.NewCampaignHandler,
		api.NewDashboardHandler,
		api.NewSettingsHandler,
		api.NewEventsHandler,
		api.NewWebhookHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config, jwtService *jwt.Service) *api.AuthHandler {
	return api.NewAuthHandler(authUseCase, cfg.Cookie, jwtService.TokenDuration())
}

func NewHandlers(
	auth *api.AuthHandler,
	coupon *api.CouponHandler,
	order *api.OrderHandler,
	product *api.ProductHandler,
	message *api.MessageHandler,
	campaign *api.CampaignHandler,
	dashboard *api.DashboardHandler,
	settings *api.SettingsHandler,
	events *api.EventsHandler,
	webhook *api.WebhookHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Coupon:    coupon,
		Order:     order,
		Product:   product,
		Message:   message,
		Campaign:  campaign,
		Dashboard: dashboard,
		Settings:  settings,
		Events:    events,
		Webhook:   webhook,
	}
}
