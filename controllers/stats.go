package controllers

import (
	"net/http"

	dbpkg "unilost/db"
	"unilost/models"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/stats
func GetStats(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var totalItems, totalReports, pendingReports, approvedReports int
	var totalAppointments, totalUsers int

	if err := db.Model(&models.Item{}).Count(&totalItems).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := db.Model(&models.Report{}).Count(&totalReports).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := db.Model(&models.Report{}).
		Where("status = ?", models.REPORT_STATUS_PENDING).
		Count(&pendingReports).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := db.Model(&models.Report{}).
		Where("status = ?", models.REPORT_STATUS_APPROVED).
		Count(&approvedReports).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := db.Model(&models.Appointment{}).Count(&totalAppointments).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{
		"success": true,
		"stats": gin.H{
			"totalItems":        totalItems,
			"totalReports":      totalReports,
			"pendingReports":    pendingReports,
			"approvedReports":   approvedReports,
			"totalAppointments": totalAppointments,
			"totalUsers":        totalUsers,
		},
	})
}
