package models

import "time"

type BookingEvent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID string  `gorm:"size:36;not null;index" json:"booking_id"`
	ActorID   *string `gorm:"size:36" json:"actor_id"`
	Action    string  `gorm:"size:50;not null" json:"action"`
	Metadata  string  `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
