package catalog

import (
	"unilost/faults"
	"unilost/models"

	"github.com/jinzhu/gorm"
)

// AppointmentInput carries the booking fields. ProofFile is an opaque ref
// filled by the upload layer, optional.
type AppointmentInput struct {
	ItemID          int64  `json:"item_id" form:"item_id"`
	AppointmentDate string `json:"appointment_date" form:"appointment_date"`
	AppointmentTime string `json:"appointment_time" form:"appointment_time"`
	ItemType        string `json:"item_type" form:"item_type"`
	Location        string `json:"location" form:"location"`
	TimeLost        string `json:"time_lost" form:"time_lost"`
	ProofFile       string `json:"proof_file" form:"proof_file"`
}

// BookAppointment creates a pending claim appointment against an item that
// is available at check time. No reservation lock is held past that check:
// the item stays available until some appointment completes.
func BookAppointment(db *gorm.DB, userID int64, input AppointmentInput) (int64, error) {
	appointment := models.Appointment{
		UserID:          userID,
		ItemID:          input.ItemID,
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		ItemType:        input.ItemType,
		Location:        input.Location,
		TimeLost:        input.TimeLost,
		ProofFile:       input.ProofFile,
		Status:          models.APPOINTMENT_STATUS_PENDING,
	}
	if missing := appointment.MissingFields(); missing != "" {
		return 0, faults.Newf(faults.ValidationFailed, "Missing required field: %s", missing)
	}

	var item models.Item
	err := db.Where("id = ? AND status = ?", input.ItemID, models.ITEM_STATUS_AVAILABLE).
		First(&item).Error
	if gorm.IsRecordNotFoundError(err) {
		return 0, faults.New(faults.ItemNotFound, "Item not found or not available")
	}
	if err != nil {
		return 0, faults.Store(err)
	}

	if err := db.Create(&appointment).Error; err != nil {
		return 0, faults.Store(err)
	}
	return appointment.ID, nil
}

// UpdateAppointmentStatus advances an appointment. Reaching completed flips
// the referenced item to claimed, in the same transaction.
func UpdateAppointmentStatus(db *gorm.DB, appointmentID int64, status string) error {
	if !models.IsValidAppointmentStatus(status) {
		return faults.Newf(faults.ValidationFailed, "Invalid status value: %s", status)
	}

	var appointment models.Appointment
	err := db.Where("id = ?", appointmentID).First(&appointment).Error
	if gorm.IsRecordNotFoundError(err) {
		return faults.New(faults.AppointmentNotFound, "Appointment not found")
	}
	if err != nil {
		return faults.Store(err)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return faults.Store(tx.Error)
	}

	if err := tx.Model(&models.Appointment{}).Where("id = ?", appointmentID).
		Update("status", status).Error; err != nil {
		tx.Rollback()
		return faults.Store(err)
	}

	if status == models.APPOINTMENT_STATUS_COMPLETED {
		if err := tx.Model(&models.Item{}).Where("id = ?", appointment.ItemID).
			Update("status", models.ITEM_STATUS_CLAIMED).Error; err != nil {
			tx.Rollback()
			return faults.Store(err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return faults.Store(err)
	}
	return nil
}

// CancelAppointment lets the owner cancel their own booking.
func CancelAppointment(db *gorm.DB, appointmentID, userID int64) error {
	var appointment models.Appointment
	err := db.Where("id = ? AND user_id = ?", appointmentID, userID).
		First(&appointment).Error
	if gorm.IsRecordNotFoundError(err) {
		return faults.New(faults.AppointmentNotFound, "Appointment not found or unauthorized")
	}
	if err != nil {
		return faults.Store(err)
	}

	if err := db.Model(&appointment).
		Update("status", models.APPOINTMENT_STATUS_CANCELLED).Error; err != nil {
		return faults.Store(err)
	}
	return nil
}

// DeleteItem removes an item and cascades its appointments first.
func DeleteItem(db *gorm.DB, itemID int64) error {
	var item models.Item
	err := db.Where("id = ?", itemID).First(&item).Error
	if gorm.IsRecordNotFoundError(err) {
		return faults.New(faults.ItemNotFound, "Item not found")
	}
	if err != nil {
		return faults.Store(err)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return faults.Store(tx.Error)
	}
	if err := tx.Where("item_id = ?", itemID).Delete(&models.Appointment{}).Error; err != nil {
		tx.Rollback()
		return faults.Store(err)
	}
	if err := tx.Where("id = ?", itemID).Delete(&models.Item{}).Error; err != nil {
		tx.Rollback()
		return faults.Store(err)
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return faults.Store(err)
	}
	return nil
}
