package routes

import (
	"github.com/gin-gonic/gin"

	"med_transport/internal/authz"
	"med_transport/internal/controllers"
	"med_transport/internal/middleware"
)

func PatientRoutes(r *gin.Engine, patient *controllers.PatientController) {
	group := r.Group("/api/patients")
	group.Use(middleware.RequirePermission(authz.PatientManage))
	{
		group.POST("/", patient.Create)
		group.GET("/", patient.List)
		group.GET("/:bookingId", patient.ListByBooking)
		group.PUT("/:id", patient.Update)
		group.DELETE("/:id", patient.Delete)
	}
}
