package models

import "time"

/************************************************
/**** MARK: APPOINTMENT STATUS ****/
/************************************************/
const APPOINTMENT_STATUS_PENDING = "pending"
const APPOINTMENT_STATUS_CONFIRMED = "confirmed"
const APPOINTMENT_STATUS_COMPLETED = "completed"
const APPOINTMENT_STATUS_CANCELLED = "cancelled"

// Appointment is a user's claim request against a catalog item. Reaching
// "completed" flips the referenced item to claimed.
type Appointment struct {
	ID              int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID          int64      `gorm:"not null;index" json:"user_id" form:"user_id"`
	ItemID          int64      `gorm:"not null;index" json:"item_id" form:"item_id"`
	AppointmentDate string     `gorm:"column:appointment_date;not null" json:"appointment_date" form:"appointment_date"`
	AppointmentTime string     `gorm:"column:appointment_time;not null" json:"appointment_time" form:"appointment_time"`
	ItemType        string     `gorm:"column:item_type" json:"item_type" form:"item_type"`
	Location        string     `json:"location" form:"location"`
	TimeLost        string     `gorm:"column:time_lost" json:"time_lost" form:"time_lost"`
	ProofFile       string     `gorm:"column:proof_file" json:"proof_file" form:"proof_file"`
	Status          string     `gorm:"default:'pending'" json:"status" form:"status"`
	CreatedAt       *time.Time `json:"created_at" form:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at" form:"updated_at"`
}

func (appointment Appointment) MissingFields() string {
	if appointment.ItemID == 0 {
		return "item_id"
	} else if appointment.AppointmentDate == "" {
		return "appointment_date"
	} else if appointment.AppointmentTime == "" {
		return "appointment_time"
	}
	return ""
}

// IsValidAppointmentStatus reports whether s is one of the known statuses.
func IsValidAppointmentStatus(s string) bool {
	switch s {
	case APPOINTMENT_STATUS_PENDING, APPOINTMENT_STATUS_CONFIRMED,
		APPOINTMENT_STATUS_COMPLETED, APPOINTMENT_STATUS_CANCELLED:
		return true
	}
	return false
}
