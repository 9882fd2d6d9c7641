package model

import "time"

// Appointment is a confirmed visit. The zip code doubles as the technician's
// location at the end of the visit for subsequent travel calculations.
type Appointment struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Technician      string    `gorm:"index;not null" json:"technician"`
	Customer        string    `json:"customer"`
	ZipCode         string    `gorm:"not null" json:"zipCode"`
	StartAt         time.Time `gorm:"index;not null" json:"startAt"`
	DurationMinutes int       `gorm:"not null" json:"duration"`
	CreatedAt       time.Time `json:"createdAt"`
}
