package api

import (
	"log"
	stdhttp "net/http"

	intconfig "backoffice/internal/config"
	h "backoffice/internal/http/handlers"
	"backoffice/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Roles allowed to change seats and archive manifests.
var staffRoles = []string{"owner", "admin", "operator"}

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger("/metrics", "/api/health"),
		gin.Recovery(),
		middleware.CORS(env.CORSOrigins),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	secret := []byte(env.JWTSecret)
	staff := []gin.HandlerFunc{middleware.RequireAuth(secret), middleware.RequireRoles(staffRoles...)}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		api.POST("/auth/login", h.Login(secret))

		trips := api.Group("/trips")
		trips.GET("", h.ListTrips)
		trips.GET("/:id", h.GetTrip)
		trips.GET("/:id/layout", h.GetTripLayout)
		trips.GET("/:id/seat-map", h.GetSeatMap)
		trips.GET("/:id/manifest", h.GetManifest)
		trips.GET("/:id/manifest.pdf", h.GetManifestPDF)

		protected := trips.Group("", staff...)
		protected.PUT("/:id/passengers/:pid/seat", h.AssignSeat)
		protected.DELETE("/:id/passengers/:pid/seat", h.ReleaseSeat)
		protected.POST("/:id/manifest/documents", h.StoreManifest)

		api.GET("/documents/:id", h.GetDocument)
	}

	h.SetRouter(r)
	return r
}
