package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"med_transport/internal/config"
	"med_transport/internal/controllers"
	"med_transport/internal/maps"
)

// SetupRouter wires every route group onto a fresh engine. The DB
// handle and directions gateway are passed down into the controllers.
func SetupRouter(db *gorm.DB, directions maps.Directions, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	origin := maps.LatLng{Lat: cfg.FacilityLat, Lng: cfg.FacilityLng}

	auth := controllers.NewAuthController(db)
	booking := controllers.NewBookingController(db, directions, origin)
	patient := controllers.NewPatientController(db)
	user := controllers.NewUserController(db)

	AuthRoutes(r, auth)
	BookingRoutes(r, booking)
	PatientRoutes(r, patient)
	UserRoutes(r, user)

	return r
}
