package models

import (
	"time"

	"gorm.io/gorm"
)

// BookingStatus is the lifecycle state of a transport request.
type BookingStatus string

const (
	StatusPending    BookingStatus = "PENDING"
	StatusAssigned   BookingStatus = "ASSIGNED"
	StatusInProgress BookingStatus = "IN_PROGRESS"
	StatusCompleted  BookingStatus = "COMPLETED"
	StatusCancelled  BookingStatus = "CANCELLED"
)

// transitions is the allowed status graph. COMPLETED is terminal.
// ASSIGNED may fall back to PENDING (staff un-assigns a driver) and
// CANCELLED may be reinstated to PENDING; no other backward moves.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusAssigned, StatusCancelled},
	StatusAssigned:   {StatusInProgress, StatusCompleted, StatusCancelled, StatusPending},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {StatusPending},
}

// Valid reports whether s is a known status value.
func (s BookingStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether moving from s to next is allowed.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// HasDriver reports whether a booking in status s may carry a driver.
func (s BookingStatus) HasDriver() bool {
	switch s {
	case StatusAssigned, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Booking is a single patient-transport request. The owner (UserID)
// never changes after creation; Distance is computed from the directions
// gateway at creation and never client-supplied.
type Booking struct {
	gorm.Model
	BookingCode string        `json:"bookingCode" gorm:"unique"`
	UserID      uint          `json:"userId" gorm:"index"`
	User        *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	DriverID    *uint         `json:"driverId" gorm:"index"`
	Driver      *User         `gorm:"foreignKey:DriverID" json:"driver,omitempty"`
	AssignedBy  *uint         `json:"assignedBy"`
	Assigner    *User         `gorm:"foreignKey:AssignedBy" json:"assigner,omitempty"`
	PickupTime  time.Time     `json:"pickupTime"`
	PickupDate  time.Time     `json:"pickupDate"`
	PickupLat   float64       `json:"pickupLat"`
	PickupLng   float64       `json:"pickupLng"`
	Distance    float64       `json:"distance"` // road distance in km, 2 decimals
	Duration    int           `json:"duration"` // travel time in seconds
	Status      BookingStatus `json:"status" gorm:"default:PENDING"`
	CompletedAt *time.Time    `json:"completedAt"`

	// Manifest of who is being transported.
	Patients []Patient `gorm:"foreignKey:BookingID" json:"patients,omitempty"`
}

// ClearDriver drops the driver relation. Called when a booking leaves
// the assigned part of the lifecycle so DriverID stays null outside
// ASSIGNED/IN_PROGRESS/COMPLETED.
func (b *Booking) ClearDriver() {
	b.DriverID = nil
	b.AssignedBy = nil
	b.Driver = nil
	b.Assigner = nil
}
