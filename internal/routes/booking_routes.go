package routes

import (
	"github.com/gin-gonic/gin"

	"med_transport/internal/authz"
	"med_transport/internal/controllers"
	"med_transport/internal/middleware"
)

func BookingRoutes(r *gin.Engine, booking *controllers.BookingController) {
	group := r.Group("/api/booking")
	{
		group.POST("/", middleware.RequirePermission(authz.BookingCreate), booking.Create)
		group.GET("/", middleware.RequirePermission(authz.BookingList), booking.List)
		group.POST("/assign", middleware.RequirePermission(authz.BookingAssign), booking.Assign)
		group.GET("/driver/assignments", middleware.RequirePermission(authz.BookingAssignments), booking.Assignments)
		group.GET("/:id", middleware.RequirePermission(authz.BookingRead), booking.Get)
		group.PUT("/:id", middleware.RequirePermission(authz.BookingUpdate), booking.UpdateStatus)
		group.DELETE("/:id", middleware.RequirePermission(authz.BookingCancel), booking.Cancel)
		group.POST("/:id/complete", middleware.RequirePermission(authz.BookingComplete), booking.Complete)
	}
}
