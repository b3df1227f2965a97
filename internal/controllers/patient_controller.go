package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"med_transport/internal/middleware"
	"med_transport/internal/models"
)

type PatientController struct {
	DB *gorm.DB
}

func NewPatientController(db *gorm.DB) *PatientController {
	return &PatientController{DB: db}
}

type patientInput struct {
	Name        string `json:"name"`
	IDCard      string `json:"idCard"`
	HouseNumber string `json:"houseNumber"`
	Village     string `json:"village"`
	Address     string `json:"address"`
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
	BookingID   *uint  `json:"bookingId"`
}

// parseCoordinate turns the form's string coordinate into a float, or
// nil when the field was left empty.
func parseCoordinate(value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create adds a patient to the caller's registry, optionally attached
// to a booking's manifest.
func (p *PatientController) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var input patientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid patient data", "error": err.Error()})
		return
	}
	if input.Name == "" || input.IDCard == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name and idCard are required"})
		return
	}

	lat, err := parseCoordinate(input.Latitude)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid latitude"})
		return
	}
	lng, err := parseCoordinate(input.Longitude)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid longitude"})
		return
	}

	patient := models.Patient{
		UserID:      userID,
		Name:        input.Name,
		IDCard:      input.IDCard,
		HouseNumber: input.HouseNumber,
		Village:     input.Village,
		Address:     input.Address,
		Latitude:    lat,
		Longitude:   lng,
		BookingID:   input.BookingID,
	}
	if err := p.DB.Create(&patient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating patient", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, patient)
}

// List returns all patient records.
func (p *PatientController) List(c *gin.Context) {
	var patients []models.Patient
	if err := p.DB.Find(&patients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching patients", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, patients)
}

// ListByBooking returns the transport manifest of one booking.
func (p *PatientController) ListByBooking(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking ID format"})
		return
	}

	var patients []models.Patient
	if err := p.DB.Where("booking_id = ?", uint(bookingID)).Find(&patients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching patients", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, patients)
}

// Update modifies the fields a client sent; omitted fields keep their
// stored value.
func (p *PatientController) Update(c *gin.Context) {
	var patient models.Patient
	if err := p.DB.First(&patient, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Patient not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating patient", "error": err.Error()})
		}
		return
	}

	var input struct {
		Name        *string `json:"name"`
		IDCard      *string `json:"idCard"`
		HouseNumber *string `json:"houseNumber"`
		Village     *string `json:"village"`
		Address     *string `json:"address"`
		Latitude    *string `json:"latitude"`
		Longitude   *string `json:"longitude"`
		BookingID   *uint   `json:"bookingId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid patient data", "error": err.Error()})
		return
	}

	if input.Name != nil {
		patient.Name = *input.Name
	}
	if input.IDCard != nil {
		patient.IDCard = *input.IDCard
	}
	if input.HouseNumber != nil {
		patient.HouseNumber = *input.HouseNumber
	}
	if input.Village != nil {
		patient.Village = *input.Village
	}
	if input.Address != nil {
		patient.Address = *input.Address
	}
	if input.Latitude != nil {
		lat, err := parseCoordinate(*input.Latitude)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid latitude"})
			return
		}
		patient.Latitude = lat
	}
	if input.Longitude != nil {
		lng, err := parseCoordinate(*input.Longitude)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid longitude"})
			return
		}
		patient.Longitude = lng
	}
	if input.BookingID != nil {
		patient.BookingID = input.BookingID
	}

	if err := p.DB.Save(&patient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating patient", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, patient)
}

// Delete removes a patient record. No cascade beyond the row itself.
func (p *PatientController) Delete(c *gin.Context) {
	var patient models.Patient
	if err := p.DB.First(&patient, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Patient not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting patient", "error": err.Error()})
		}
		return
	}

	if err := p.DB.Unscoped().Delete(&patient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting patient", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted successfully"})
}
