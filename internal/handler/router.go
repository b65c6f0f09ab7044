package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"petshop-checkout/internal/handler/api"
	"petshop-checkout/internal/handler/middleware"
	"petshop-checkout/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, checkoutHandler *api.CheckoutHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, checkoutHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, checkoutHandler *api.CheckoutHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		checkout := apiGroup.Group("/checkout")
		checkout.Use(authMiddleware.RequireAuth())
		{
			addRoutes(checkout, []route{
				{Method: http.MethodGet, Path: "/summary", Handler: checkoutHandler.GetSummary},
				{Method: http.MethodGet, Path: "/promotions", Handler: checkoutHandler.ListPromotions},
				{Method: http.MethodPut, Path: "/promotion", Handler: checkoutHandler.SelectPromotion},
				{Method: http.MethodDelete, Path: "/promotion", Handler: checkoutHandler.ClearPromotion},
				{Method: http.MethodPost, Path: "/voucher", Handler: checkoutHandler.ApplyVoucher},
				{Method: http.MethodDelete, Path: "/voucher", Handler: checkoutHandler.RemoveVoucher},
				{Method: http.MethodGet, Path: "/form-defaults", Handler: checkoutHandler.GetFormDefaults},
				{Method: http.MethodPost, Path: "/orders", Handler: checkoutHandler.PlaceOrder},
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
