package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"med_transport/internal/maps"
	"med_transport/internal/middleware"
	"med_transport/internal/models"
)

type BookingController struct {
	DB         *gorm.DB
	Directions maps.Directions
	Origin     maps.LatLng // the dispatching facility
}

func NewBookingController(db *gorm.DB, directions maps.Directions, origin maps.LatLng) *BookingController {
	return &BookingController{DB: db, Directions: directions, Origin: origin}
}

type createBookingInput struct {
	PickupTime string   `json:"pickupTime"`
	PickupLat  *float64 `json:"pickupLat"`
	PickupLng  *float64 `json:"pickupLng"`
}

func parsePickupTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}

// Create registers a new transport request. The road distance from the
// facility to the pickup point comes from the directions gateway; if no
// route exists the booking is not created.
func (b *BookingController) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var input createBookingInput
	if err := c.ShouldBindJSON(&input); err != nil || input.PickupTime == "" || input.PickupLat == nil || input.PickupLng == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing pickupTime or location data"})
		return
	}

	pickupTime, err := parsePickupTime(input.PickupTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid pickupTime format"})
		return
	}

	dest := maps.LatLng{Lat: *input.PickupLat, Lng: *input.PickupLng}
	leg, err := b.Directions.Route(c.Request.Context(), b.Origin, dest)
	if err != nil {
		if errors.Is(err, maps.ErrNoRoute) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Could not calculate distance for pickup location"})
			return
		}
		logrus.WithError(err).Error("directions gateway call failed")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not calculate distance for pickup location", "error": err.Error()})
		return
	}

	pickupDate := time.Date(pickupTime.Year(), pickupTime.Month(), pickupTime.Day(), 0, 0, 0, 0, pickupTime.Location())
	booking := models.Booking{
		BookingCode: uuid.NewString(),
		UserID:      userID,
		PickupTime:  pickupTime,
		PickupDate:  pickupDate,
		PickupLat:   dest.Lat,
		PickupLng:   dest.Lng,
		Distance:    maps.Kilometers(leg.DistanceMeters),
		Duration:    leg.DurationSeconds,
		Status:      models.StatusPending,
	}
	if err := b.DB.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating booking", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Booking created successfully", "booking": booking})
}

// List returns every booking, newest first, with the owner and the
// assigned driver for the dispatch queue view.
func (b *BookingController) List(c *gin.Context) {
	var bookings []models.Booking
	if err := b.DB.Order("created_at desc").
		Preload("User").
		Preload("Driver").
		Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching bookings", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// Get returns a single booking with the same joins as List.
func (b *BookingController) Get(c *gin.Context) {
	var booking models.Booking
	if err := b.DB.Preload("User").Preload("Driver").
		First(&booking, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving booking", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateStatus moves a booking along its lifecycle. The target status
// must be a legal transition from the current one.
func (b *BookingController) UpdateStatus(c *gin.Context) {
	var body struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing status", "error": err.Error()})
		return
	}
	if !body.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown status value"})
		return
	}

	var booking models.Booking
	if err := b.DB.First(&booking, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating booking", "error": err.Error()})
		}
		return
	}

	if !booking.Status.CanTransition(body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot change status from " + string(booking.Status) + " to " + string(body.Status)})
		return
	}

	booking.Status = body.Status
	if !body.Status.HasDriver() {
		booking.ClearDriver()
	}
	if body.Status == models.StatusCompleted && booking.CompletedAt == nil {
		now := time.Now()
		booking.CompletedAt = &now
	}

	if err := b.DB.Save(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating booking", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated", "booking": booking})
}

// Cancel marks a booking CANCELLED. The row is kept so history survives;
// the DELETE route is a deprecated alias of this transition.
func (b *BookingController) Cancel(c *gin.Context) {
	var booking models.Booking
	if err := b.DB.First(&booking, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error cancelling booking", "error": err.Error()})
		}
		return
	}

	if !booking.Status.CanTransition(models.StatusCancelled) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot cancel a " + string(booking.Status) + " booking"})
		return
	}

	booking.Status = models.StatusCancelled
	booking.ClearDriver()
	if err := b.DB.Save(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error cancelling booking", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled", "booking": booking})
}

type assignInput struct {
	BookingID uint `json:"bookingId" binding:"required"`
	DriverID  uint `json:"driverId" binding:"required"`
}

// Assign hands a booking to a driver. The target user must exist and
// hold the DRIVER role; on any failure the booking is left untouched.
func (b *BookingController) Assign(c *gin.Context) {
	staffID := middleware.UserID(c)

	var input assignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing bookingId or driverId", "error": err.Error()})
		return
	}

	var booking models.Booking
	if err := b.DB.First(&booking, input.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error assigning driver", "error": err.Error()})
		}
		return
	}

	var driver models.User
	if err := b.DB.Where("id = ? AND role = ?", input.DriverID, models.RoleDriver).
		First(&driver).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Driver not found or invalid role"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error assigning driver", "error": err.Error()})
		}
		return
	}

	if !booking.Status.CanTransition(models.StatusAssigned) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot assign a " + string(booking.Status) + " booking"})
		return
	}

	booking.DriverID = &driver.ID
	booking.AssignedBy = &staffID
	booking.Status = models.StatusAssigned
	if err := b.DB.Save(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error assigning driver", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Driver assigned successfully", "booking": booking})
}

// Assignments lists the authenticated driver's open assignments.
func (b *BookingController) Assignments(c *gin.Context) {
	driverID := middleware.UserID(c)

	var bookings []models.Booking
	if err := b.DB.Where("driver_id = ? AND status = ?", driverID, models.StatusAssigned).
		Preload("User").
		Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching assignments", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// Complete closes a booking. Only the assigned driver may do so.
func (b *BookingController) Complete(c *gin.Context) {
	driverID := middleware.UserID(c)

	var booking models.Booking
	if err := b.DB.First(&booking, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error completing booking", "error": err.Error()})
		}
		return
	}

	if booking.DriverID == nil || *booking.DriverID != driverID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized: You are not assigned to this booking"})
		return
	}

	if !booking.Status.CanTransition(models.StatusCompleted) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot complete a " + string(booking.Status) + " booking"})
		return
	}

	now := time.Now()
	booking.Status = models.StatusCompleted
	booking.CompletedAt = &now
	if err := b.DB.Save(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error completing booking", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking completed successfully", "booking": booking})
}
