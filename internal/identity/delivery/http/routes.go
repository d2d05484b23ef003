package http

import (
	"github.com/gin-gonic/gin"

	"maxbot-api/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Identity routes are rate limited because every miss costs an upstream call.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	bot := rg.Group("/bot", mw.RateLimit())
	{
		bot.GET("/me", h.Me)
		bot.GET("/commands", h.Commands)
	}
}
