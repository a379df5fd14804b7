package models

import "time"

type Salon struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	OwnerID string `gorm:"size:64;index" json:"owner_id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	// Slot grid granularity for this salon's calendar.
	SlotIntervalMin int `gorm:"default:30" json:"slot_interval_min"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
