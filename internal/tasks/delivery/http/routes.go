package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route requires a resolved scope.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Scope(), h.Create)
		tasks.GET("", mw.Scope(), h.List)
		tasks.GET("/views", mw.Scope(), h.Views)
		tasks.PUT("/:id", mw.Scope(), h.Update)
		tasks.DELETE("/:id", mw.Scope(), h.Delete)
		tasks.POST("/:id/toggle", mw.Scope(), h.Toggle)
	}
}
