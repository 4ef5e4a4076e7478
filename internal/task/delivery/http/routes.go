package http

import (
	"github.com/gin-gonic/gin"

	"task-quick-add/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every task route is rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.RateLimit())
	{
		tasks.POST("/parse", h.Parse)
		tasks.POST("/quick-add", h.QuickAdd)
	}
}
