package api

import (
	"log"
	stdhttp "net/http"

	intconfig "travelbook/internal/config"
	h "travelbook/internal/http/handlers"
	"travelbook/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, handler h.Handler) *gin.Engine {
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
		api.GET("/health", handler.Health)

		// Search & catalog
		api.POST("/search", handler.QuickSearch)
		api.GET("/travel/search", handler.SearchTravel)
		api.GET("/hotels/search", handler.SearchHotels)
		api.GET("/destinations", handler.Destinations)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", handler.Login)
		auth.POST("/signup", handler.Signup)

		// Everything below needs a valid token
		protected := api.Group("")
		protected.Use(middleware.RequireAuth(handler.JWTSecret))

		protected.POST("/auth/logout", handler.Logout)
		protected.GET("/auth/me", handler.Me)

		protected.POST("/bookings", handler.CreateBooking)
		protected.GET("/bookings", handler.ListBookings)
		protected.GET("/bookings/:id/e-ticket", handler.GetETicketPDF)

		protected.POST("/hotel-bookings", handler.CreateHotelBooking)
		protected.GET("/hotel-bookings/:id/voucher", handler.GetVoucherPDF)
	}

	return r
}
