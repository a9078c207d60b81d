package controllers

import (
	"net/http"
	"time"

	"unilost/catalog"
	dbpkg "unilost/db"

	"github.com/gin-gonic/gin"
)

// appointmentView joins an appointment with item and user fields.
type appointmentView struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"user_id"`
	ItemID          int64      `json:"item_id"`
	AppointmentDate string     `json:"appointment_date"`
	AppointmentTime string     `json:"appointment_time"`
	ItemType        string     `json:"item_type"`
	Location        string     `json:"location"`
	TimeLost        string     `json:"time_lost"`
	ProofFile       string     `json:"proof_file"`
	Status          string     `json:"status"`
	CreatedAt       *time.Time `json:"created_at"`
	ItemName        string     `json:"item_name"`
	ItemImage       string     `json:"item_image"`
	Speciality      string     `json:"speciality"`
	AddressLine1    string     `json:"address_line1"`
	AddressLine2    string     `json:"address_line2"`
	UserName        string     `json:"user_name,omitempty"`
	UserEmail       string     `json:"user_email,omitempty"`
	UserPhone       string     `json:"user_phone,omitempty"`
}

// POST /api/appointments
func BookAppointment(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var input catalog.AppointmentInput
	if err := c.Bind(&input); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	appointmentID, err := catalog.BookAppointment(db, user.ID, input)
	if err != nil {
		RespondFault(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":       true,
		"message":       "Appointment booked successfully",
		"appointmentId": appointmentID,
	})
}

// GET /api/appointments/my-appointments
func GetMyAppointments(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var appointments []appointmentView
	err := db.Table("appointments").
		Select("appointments.*, items.name as item_name, items.image as item_image, " +
			"items.speciality, items.address_line1, items.address_line2").
		Joins("join items on items.id = appointments.item_id").
		Where("appointments.user_id = ?", user.ID).
		Order("appointments.created_at desc").
		Scan(&appointments).Error
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{
		"success":      true,
		"count":        len(appointments),
		"appointments": appointments,
	})
}

// GET /api/appointments/:id
func GetAppointmentByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var appointment appointmentView
	err := db.Table("appointments").
		Select("appointments.*, items.name as item_name, items.image as item_image, "+
			"items.speciality, items.address_line1, items.address_line2, "+
			"users.name as user_name, users.email as user_email, users.phone as user_phone").
		Joins("join items on items.id = appointments.item_id").
		Joins("join users on users.id = appointments.user_id").
		Where("appointments.id = ?", id).
		Scan(&appointment).Error
	if err != nil {
		RespondError(c, "Appointment not found", http.StatusNotFound)
		return
	}

	RespondSuccess(c, gin.H{"success": true, "appointment": appointment})
}

// PUT /api/appointments/:id/status
// Body: { "status": "pending|confirmed|completed|cancelled" }
func UpdateAppointmentStatus(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	type Request struct {
		Status string `json:"status" form:"status"`
	}
	var req Request
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	if err := catalog.UpdateAppointmentStatus(db, id, req.Status); err != nil {
		RespondFault(c, err)
		return
	}

	RespondSuccess(c, gin.H{
		"success": true,
		"message": "Appointment status updated successfully",
	})
}

// DELETE /api/appointments/:id
// Owner-only cancellation.
func CancelAppointment(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	if err := catalog.CancelAppointment(db, id, user.ID); err != nil {
		RespondFault(c, err)
		return
	}

	RespondSuccess(c, gin.H{
		"success": true,
		"message": "Appointment cancelled successfully",
	})
}

// GET /api/admin/appointments
func GetAllAppointments(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var appointments []appointmentView
	err := db.Table("appointments").
		Select("appointments.*, items.name as item_name, items.image as item_image, " +
			"items.speciality, users.name as user_name, users.email as user_email, " +
			"users.phone as user_phone").
		Joins("join items on items.id = appointments.item_id").
		Joins("join users on users.id = appointments.user_id").
		Order("appointments.created_at desc").
		Scan(&appointments).Error
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{
		"success":      true,
		"count":        len(appointments),
		"appointments": appointments,
	})
}
