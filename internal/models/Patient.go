package models

import "gorm.io/gorm"

// Patient is a person to be transported. A record lives in a user's
// registry independent of any booking and may be attached to one as
// part of its transport manifest.
type Patient struct {
	gorm.Model
	UserID      uint     `json:"user_id" gorm:"index"` // registry owner
	Name        string   `json:"name"`
	IDCard      string   `json:"idCard" gorm:"column:id_card"`
	HouseNumber string   `json:"houseNumber"`
	Village     string   `json:"village"`
	Address     string   `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	BookingID   *uint    `json:"bookingId" gorm:"index"`
}
