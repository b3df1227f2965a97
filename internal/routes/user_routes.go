package routes

import (
	"github.com/gin-gonic/gin"

	"med_transport/internal/authz"
	"med_transport/internal/controllers"
	"med_transport/internal/middleware"
)

func UserRoutes(r *gin.Engine, user *controllers.UserController) {
	group := r.Group("/api/users")
	{
		group.GET("/", middleware.RequirePermission(authz.UserRead), user.List)
		group.GET("/staff", middleware.RequirePermission(authz.UserRead), user.ListStaff)
		group.GET("/:id", middleware.RequirePermission(authz.UserRead), user.Get)
		group.POST("/", middleware.RequirePermission(authz.UserManage), user.Create)
		group.PUT("/:id", middleware.RequirePermission(authz.UserManage), user.Update)
		group.DELETE("/:id", middleware.RequirePermission(authz.UserManage), user.Delete)
	}
}
