package router

import (
	"net/http"

	"github.com/domgiordano/sports-events/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	SignUp(c *ginext.Context)
	SignIn(c *ginext.Context)
	SignOut(c *ginext.Context)
	Me(c *ginext.Context)
}

// InitRouter registers the API. metrics may be nil to leave /metrics out.
func InitRouter(mode string, h Handler, metrics http.Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/sign-up", h.SignUp)
		api.POST("/auth/sign-in", h.SignIn)
		api.POST("/auth/sign-out", h.SignOut)
		api.GET("/auth/me", h.Me)

		// Events
		api.GET("/events", h.ListEvents)
		api.POST("/events", h.CreateEvent)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, dto.OK(ginext.H{"status": "ok"}))
	})

	if metrics != nil {
		router.GET("/metrics", func(c *ginext.Context) {
			metrics.ServeHTTP(c.Writer, c.Request)
		})
	}

	return router
}
