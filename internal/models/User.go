package models

import "gorm.io/gorm"

// Roles recognised by the system. STAFF operates the dispatch queue,
// DRIVER receives assignments, ADMIN manages accounts; the remaining
// roles exist for village-level registration and carry no extra privileges.
const (
	RoleUser                = "USER"
	RoleStaff               = "STAFF"
	RoleAdmin               = "ADMIN"
	RoleDriver              = "DRIVER"
	RolePublicHealthOfficer = "PUBLIC_HEALTH_OFFICER"
	RoleExecutive           = "EXECUTIVE"
	RoleVillageHeadman      = "VILLAGE_HEADMAN"
	RoleAbbot               = "ABBOT"
	RolePatient             = "PATIENT"
)

var validRoles = map[string]bool{
	RoleUser:                true,
	RoleStaff:               true,
	RoleAdmin:               true,
	RoleDriver:              true,
	RolePublicHealthOfficer: true,
	RoleExecutive:           true,
	RoleVillageHeadman:      true,
	RoleAbbot:               true,
	RolePatient:             true,
}

// ValidRole reports whether role is one of the recognised role tags.
func ValidRole(role string) bool {
	return validRoles[role]
}

type User struct {
	gorm.Model
	FullName  string `json:"fullName"`
	Email     string `json:"email" gorm:"unique"`
	Password  string `json:"-"`
	Role      string `json:"role"`
	CitizenID string `json:"citizen_id" gorm:"column:citizen_id;unique"` // 13-digit national ID
	Phone     string `json:"phone"`

	// Booking relations: a user owns requests, may drive them, and as
	// staff may have assigned them.
	BookingsAsOwner  []Booking `gorm:"foreignKey:UserID" json:"bookingsAsUser,omitempty"`
	BookingsAsDriver []Booking `gorm:"foreignKey:DriverID" json:"bookingsAsDriver,omitempty"`
	BookingsAssigned []Booking `gorm:"foreignKey:AssignedBy" json:"bookingsAssigned,omitempty"`
	Patients         []Patient `gorm:"foreignKey:UserID" json:"patients,omitempty"`
}
