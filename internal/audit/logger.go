package audit

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/prestine-booking/internal/models"
)

// Recorder persists one event. Logger is the gorm implementation.
type Recorder interface {
	Record(ctx context.Context, ev Event) error
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Record(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.BookingEvent{
		BookingID: ev.BookingID,
		ActorID:   ev.ActorID,
		Action:    ev.Action,
		Metadata:  metaJSON,
	}
	if !ev.At.IsZero() {
		row.CreatedAt = ev.At
	}

	return l.db.WithContext(ctx).Create(&row).Error
}

var _ Recorder = (*Logger)(nil)
