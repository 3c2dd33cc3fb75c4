package api

import (
	"log"
	stdhttp "net/http"

	intconfig "travelvista-backend/internal/config"
	h "travelvista-backend/internal/http/handlers"
	"travelvista-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	middleware.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

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

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Public storefront surface
		api.GET("/getallpackages", h.GetAllPackages)
		api.POST("/createbooking", h.CreateBooking)
		api.GET("/bookings/:id/invoice", h.GetBookingInvoicePDF)

		// Admin surface
		admin := api.Group("", middleware.RequireAdmin())
		// legacy storefront posted new packages to the API root
		admin.POST("", h.CreatePackage)
		admin.POST("/createpackage", h.CreatePackage)
		admin.PUT("/updatepackage", h.UpdatePackage)
		admin.DELETE("/deletepackage", h.DeletePackage)
		admin.GET("/viewbookings", h.ViewBookings)
	}

	h.SetRouter(r)
	return r
}
