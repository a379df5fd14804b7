package models

import "time"

// OperatingHours holds one weekday of a salon's schedule.
// Weekday follows time.Weekday numbering (Sunday = 0).
type OperatingHours struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"uniqueIndex:idx_salon_weekday" json:"salon_id"`

	Weekday int `gorm:"uniqueIndex:idx_salon_weekday" json:"weekday"`

	Open   string `gorm:"size:5" json:"open"`
	Close  string `gorm:"size:5" json:"close"`
	Closed bool   `json:"closed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
