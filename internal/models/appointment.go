package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	SalonID uint  `gorm:"index:idx_active_slot,unique,where:status = 'pending' OR status = 'confirmed'" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// External auth provider uid of the booking client.
	ClientID    string `gorm:"size:64;index" json:"client_id"`
	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`

	// Ordered catalog service ids composing the booking.
	ServiceIDs []uint `gorm:"serializer:json;type:jsonb" json:"service_ids"`

	AppointmentDate string `gorm:"size:10;index:idx_active_slot,unique,where:status = 'pending' OR status = 'confirmed'" json:"appointment_date"`
	TimeSlot        string `gorm:"size:5;index:idx_active_slot,unique,where:status = 'pending' OR status = 'confirmed'" json:"time_slot"`

	TotalPrice    float64 `json:"total_price"`
	TotalDuration int     `json:"total_duration"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes              string `gorm:"size:255" json:"notes"`
	SalonNotes         string `gorm:"size:255" json:"salon_notes"`
	RejectionReason    string `gorm:"size:255" json:"rejection_reason"`
	CancellationReason string `gorm:"size:255" json:"cancellation_reason"`

	PaymentMethod string `gorm:"size:30" json:"payment_method"`
	PaymentStatus string `gorm:"size:30" json:"payment_status"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	RejectedAt  *time.Time `json:"rejected_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
