package model

import "time"

// Technician is a mobile groomer on the roster.
//
// Cities holds the raw serviced-area cell as entered on the dashboard:
// a comma- or semicolon-separated list of locality names and/or zip codes.
// It is parsed at the store boundary, never here.
type Technician struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"uniqueIndex;not null" json:"name"`
	ZipCode      string    `gorm:"not null" json:"zipCode"`
	Restrictions string    `json:"restrictions"`
	Cities       string    `json:"cities"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
