package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/vilis-app/carsrent-api/internal/models"
)

type Event struct {
	AgencyID uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Record(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		AgencyID: ev.AgencyID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&row).Error
}
