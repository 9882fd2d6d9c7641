package model

import "time"

// UnavailabilityBlock is a declared no-work window for a technician on one
// calendar day. Start and End are "HH:MM" clock values; a block carries no
// location, so travel to or from it is never computed.
type UnavailabilityBlock struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Technician string    `gorm:"index;not null" json:"technician"`
	Date       time.Time `gorm:"index;not null" json:"date"`
	Start      string    `gorm:"not null" json:"start"`
	End        string    `gorm:"not null" json:"end"`
	CreatedAt  time.Time `json:"createdAt"`
}
