package routes

import (
	"github.com/gin-gonic/gin"

	"med_transport/internal/controllers"
	"med_transport/internal/middleware"
)

func AuthRoutes(r *gin.Engine, auth *controllers.AuthController) {
	group := r.Group("/api/auth")
	{
		group.POST("/register", auth.Register)
		group.POST("/login", auth.Login)
		group.GET("/me", middleware.RequireAuth(), auth.Profile)
	}
}
