package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	OwnerID      string `gorm:"size:36;not null;index" json:"owner_id"`
	ContactEmail string `gorm:"size:100" json:"contact_email"`

	// Date is a calendar date (YYYY-MM-DD), Time an HH:MM label on the slot grid.
	Date string `gorm:"size:10;not null;index:idx_appointments_date_time" json:"date"`
	Time string `gorm:"size:5;not null;index:idx_appointments_date_time" json:"time"`

	Status string `gorm:"size:20;not null" json:"status"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
