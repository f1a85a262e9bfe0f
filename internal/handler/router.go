package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"franguinho-pos/internal/domain/user"
	"franguinho-pos/internal/handler/api"
	"franguinho-pos/internal/handler/middleware"
	"franguinho-pos/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Coupon    *api.CouponHandler
	Order     *api.OrderHandler
	Product   *api.ProductHandler
	Message   *api.MessageHandler
	Campaign  *api.CampaignHandler
	Dashboard *api.DashboardHandler
	Settings  *api.SettingsHandler
	Events    *api.EventsHandler
	Webhook   *api.WebhookHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Inbound webhook is authenticated by store token in the payload, not by staff session.
	webhooks := engine.Group("/webhooks")
	{
		addRoutes(webhooks, []route{
			{Method: http.MethodPost, Path: "/whatsapp", Handler: h.Webhook.InboundMessage},
		})
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		coupons := apiGroup.Group("/coupons")
		coupons.Use(authMiddleware.RequireAuth())
		{
			managerOnly := authMiddleware.RequireRoleAtLeast(user.RoleManager)
			addRoutes(coupons, []route{
				{Method: http.MethodPost, Path: "/validate", Handler: h.Coupon.Validate},
				{Method: http.MethodGet, Path: "", Handler: h.Coupon.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Coupon.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Coupon.Create, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Coupon.Deactivate, Mw: []gin.HandlerFunc{managerOnly}},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Order.Checkout},
				{Method: http.MethodGet, Path: "", Handler: h.Order.List},
				{Method: http.MethodGet, Path: "/flow", Handler: h.Order.Flow},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
				{Method: http.MethodPost, Path: "/:id/advance", Handler: h.Order.Advance},
				{Method: http.MethodPost, Path: "/:id/deliver", Handler: h.Order.Deliver},
				{Method: http.MethodGet, Path: "/:id/receipt", Handler: h.Order.Receipt},
			})
		}

		products := apiGroup.Group("/products")
		products.Use(authMiddleware.RequireAuth())
		{
			managerOnly := authMiddleware.RequireRoleAtLeast(user.RoleManager)
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Product.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Product.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Product.Create, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Product.Update, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Product.Delete, Mw: []gin.HandlerFunc{managerOnly}},
			})
		}

		messages := apiGroup.Group("/messages")
		messages.Use(authMiddleware.RequireAuth())
		{
			addRoutes(messages, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Message.Send},
				{Method: http.MethodGet, Path: "/conversations", Handler: h.Message.Conversations},
				{Method: http.MethodGet, Path: "/conversations/:phone", Handler: h.Message.History},
			})
		}

		campaigns := apiGroup.Group("/campaigns")
		campaigns.Use(authMiddleware.RequireAuth())
		campaigns.Use(authMiddleware.RequireRoleAtLeast(user.RoleManager))
		{
			addRoutes(campaigns, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Campaign.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Campaign.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Campaign.Get},
				{Method: http.MethodPost, Path: "/:id/start", Handler: h.Campaign.Start},
				{Method: http.MethodGet, Path: "/:id/recipients", Handler: h.Campaign.Recipients},
			})
		}

		dashboard := apiGroup.Group("/dashboard")
		dashboard.Use(authMiddleware.RequireAuth())
		{
			addRoutes(dashboard, []route{
				{Method: http.MethodGet, Path: "/summary", Handler: h.Dashboard.Summary},
			})
		}

		settings := apiGroup.Group("/settings")
		settings.Use(authMiddleware.RequireAuth())
		settings.Use(authMiddleware.RequireRoleAtLeast(user.RoleManager))
		{
			addRoutes(settings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Settings.Get},
				{Method: http.MethodPut, Path: "", Handler: h.Settings.Update},
			})
		}

		events := apiGroup.Group("/events")
		events.Use(authMiddleware.RequireAuth())
		{
			addRoutes(events, []route{
				{Method: http.MethodGet, Path: "/orders", Handler: h.Events.Orders},
				{Method: http.MethodGet, Path: "/messages", Handler: h.Events.Messages},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
