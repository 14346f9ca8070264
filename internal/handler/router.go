package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"wayfarer/internal/handler/api"
	"wayfarer/internal/handler/middleware"
	"wayfarer/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, bookingHandler *api.BookingHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, bookingHandler *api.BookingHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		offers := apiGroup.Group("/offers")
		{
			addRoutes(offers, []route{
				{Method: http.MethodGet, Path: "/:offerId/verify", Handler: bookingHandler.VerifyOffer},
				{Method: http.MethodGet, Path: "/:offerId/seat-map", Handler: bookingHandler.GetSeatMap},
			})
		}

		drafts := apiGroup.Group("/drafts")
		{
			addRoutes(drafts, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateDraft},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetDraft},
				{Method: http.MethodPut, Path: "/:id/bags", Handler: bookingHandler.UpdateBagSelections},
				{Method: http.MethodPut, Path: "/:id/seats", Handler: bookingHandler.UpdateSeatSelections},
				{Method: http.MethodPut, Path: "/:id/policy", Handler: bookingHandler.AcknowledgePolicy},
				{Method: http.MethodGet, Path: "/:id/bag-catalog", Handler: bookingHandler.GetBagCatalog},
				{Method: http.MethodGet, Path: "/:id/review", Handler: bookingHandler.GetReview},
				{Method: http.MethodPost, Path: "/:id/finalize", Handler: bookingHandler.FinalizeDraft},
				{Method: http.MethodPost, Path: "/:id/finalize/reconcile", Handler: bookingHandler.ReconcileFinalize},
			})
		}

		trips := apiGroup.Group("/trips")
		{
			addRoutes(trips, []route{
				{Method: http.MethodGet, Path: "/:tripId/orders", Handler: bookingHandler.GetTripOrders},
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
