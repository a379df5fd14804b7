package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/SalonLinkApp/salon-scheduler/internal/models"
)

// Sink persists one audit event.
type Sink interface {
	Write(ev Event) error
}

// Logger is the GORM-backed sink.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Write(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		SalonID:  ev.SalonID,
		ActorID:  ev.ActorID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&entry).Error
}

var _ Sink = (*Logger)(nil)
