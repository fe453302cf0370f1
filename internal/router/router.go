package router

import (
	"net/http"

	"github.com/russkiih/bookapp/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	BookingOptions(c *ginext.Context)
	SubmitBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	GetSettings(c *ginext.Context)
	AddService(c *ginext.Context)
	DeleteService(c *ginext.Context)
	SetAvailability(c *ginext.Context)
	Login(c *ginext.Context)
	SignOut(c *ginext.Context)
}

// Guards groups the middleware that differs per route group.
type Guards struct {
	AdminPages ginext.HandlerFunc
	AdminAPI   ginext.HandlerFunc
	RateLimit  ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, guards Guards, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.GET("/booking-options", h.BookingOptions)
		api.POST("/bookings", guards.RateLimit, h.SubmitBooking)
	}

	adminAPI := router.Group("/api/admin", guards.AdminAPI)
	{
		// Dashboard
		adminAPI.GET("/bookings", h.ListBookings)
		adminAPI.POST("/bookings/:id/confirm", h.ConfirmBooking)
		adminAPI.POST("/bookings/:id/cancel", h.CancelBooking)

		// Settings
		adminAPI.GET("/settings", h.GetSettings)
		adminAPI.POST("/services", h.AddService)
		adminAPI.DELETE("/services/:id", h.DeleteService)
		adminAPI.PATCH("/working-hours/:id", h.SetAvailability)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.LoadHTMLGlob("web/templates/*")
	router.Static("/static", "web/static")

	router.GET("/", func(c *ginext.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})

	admin := router.Group(middleware.AdminRootPath, guards.AdminPages)
	{
		admin.GET("", func(c *ginext.Context) {
			session, _ := middleware.SessionFrom(c)
			c.HTML(http.StatusOK, "admin.html", ginext.H{"session": session})
		})
		admin.GET("/login", func(c *ginext.Context) {
			c.HTML(http.StatusOK, "login.html", nil)
		})
		admin.POST("/login", guards.RateLimit, h.Login)
		admin.POST("/logout", h.SignOut)
	}

	return router
}
