package models

import "time"

// NotificationLog records one delivery attempt of a status notification.
type NotificationLog struct {
	ID uint `gorm:"primaryKey" json:"id,omitempty"`

	AppointmentID string `gorm:"size:36;index;not null" json:"appointment_id"`
	Status        string `gorm:"size:20;not null" json:"status"`
	Channel       string `gorm:"size:20;not null" json:"channel"`
	Recipient     string `gorm:"size:100" json:"recipient"`
	Outcome       string `gorm:"size:10;not null" json:"outcome"`
	Error         string `gorm:"type:text" json:"error"`

	CreatedAt time.Time `json:"created_at"`
}
