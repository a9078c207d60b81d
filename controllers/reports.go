package controllers

import (
	"net/http"

	"unilost/catalog"
	dbpkg "unilost/db"
	"unilost/models"

	"github.com/gin-gonic/gin"
)

// POST /api/users/report
// Submits a found-item report. The report stays pending until an admin
// approves or rejects it; only approval makes it visible in the catalog.
func SubmitReport(c *gin.Context) {
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

	var input catalog.ReportInput
	if err := c.Bind(&input); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	reportID, err := catalog.SubmitReport(db, user.ID, input)
	if err != nil {
		RespondFault(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Report submitted, pending admin approval",
		"reportId": reportID,
	})
}

// GET /api/users/reports
func GetMyReports(c *gin.Context) {
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

	var reports []models.Report
	if err := db.Where("user_id = ?", user.ID).
		Order("created_at desc").Find(&reports).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{
		"success": true,
		"count":   len(reports),
		"reports": reports,
	})
}

// GET /api/admin/reports/pending
func GetPendingReports(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	reports, err := catalog.ListPendingReports(db)
	if err != nil {
		RespondFault(c, err)
		return
	}

	RespondSuccess(c, gin.H{
		"success": true,
		"count":   len(reports),
		"reports": reports,
	})
}

// GET /api/admin/reports/all
func GetAllReports(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	reports, err := catalog.ListAllReports(db)
	if err != nil {
		RespondFault(c, err)
		return
	}

	RespondSuccess(c, gin.H{
		"success": true,
		"count":   len(reports),
		"reports": reports,
	})
}

// POST /api/admin/reports/:id/approve
func ApproveReport(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	if err := catalog.ApproveReport(db, id); err != nil {
		RespondFault(c, err)
		return
	}

	RespondSuccess(c, gin.H{
		"success": true,
		"message": "Report approved and item added to catalog",
	})
}

// POST /api/admin/reports/:id/reject
func RejectReport(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	if err := catalog.RejectReport(db, id); err != nil {
		RespondFault(c, err)
		return
	}

	RespondSuccess(c, gin.H{
		"success": true,
		"message": "Report rejected",
	})
}

// DELETE /api/admin/reports/:id
func DeleteReport(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	if err := catalog.DeleteReport(db, id); err != nil {
		RespondFault(c, err)
		return
	}

	RespondSuccess(c, gin.H{
		"success": true,
		"message": "Report deleted successfully",
	})
}
