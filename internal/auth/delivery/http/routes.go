package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Login is the
// only unauthenticated route; the rest answer 401 through the use case when
// no session exists.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
		auth.PUT("/profile", h.UpdateProfile)
	}
}
