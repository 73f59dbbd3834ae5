package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"venuebook/internal/handler/api"
	"venuebook/internal/handler/middleware"
	"venuebook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, bookingHandler *api.BookingHandler, paymentHandler *api.PaymentHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, paymentHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, bookingHandler *api.BookingHandler, paymentHandler *api.PaymentHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// The checkout client expects the settlement boundary at the engine root.
	payments := engine.Group("/payments")
	payments.Use(authMiddleware.RequireAuth())
	{
		addRoutes(payments, []route{
			{Method: http.MethodPost, Path: "/create-order", Handler: paymentHandler.CreateOrder},
			{Method: http.MethodPost, Path: "/verify", Handler: paymentHandler.VerifyPayment},
		})
	}

	apiGroup := engine.Group("/api")
	{
		requests := apiGroup.Group("/requests")
		requests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.SubmitRequest},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListOwnRequests},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: bookingHandler.ApproveRequest},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: bookingHandler.RejectRequest},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListOwnReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetReservation},
				{Method: http.MethodGet, Path: "/:id/payments", Handler: paymentHandler.ListReservationAttempts},
			})
		}

		spaces := apiGroup.Group("/spaces")
		{
			addRoutes(spaces, []route{
				{Method: http.MethodGet, Path: "/:id/requests", Handler: bookingHandler.ListSpaceRequests,
					Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
				{Method: http.MethodGet, Path: "/:id/reservations", Handler: bookingHandler.ListSpaceReservations},
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
