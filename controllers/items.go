package controllers

import (
	"net/http"
	"time"

	"unilost/catalog"
	dbpkg "unilost/db"
	"unilost/models"

	"github.com/gin-gonic/gin"
)

// GET /api/items (public)
// Browses available items, optionally filtered by category.
func GetItems(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	q := db.Where("status = ?", models.ITEM_STATUS_AVAILABLE)
	if speciality := c.Query("speciality"); speciality != "" {
		q = q.Where("speciality = ?", speciality)
	}

	var items []models.Item
	if err := q.Order("created_at desc").Find(&items).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{
		"success": true,
		"count":   len(items),
		"items":   items,
	})
}

// GET /api/items/:id (public)
func GetItemByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var item models.Item
	if err := db.Where("id = ?", id).First(&item).Error; err != nil {
		RespondError(c, "Item not found", http.StatusNotFound)
		return
	}

	RespondSuccess(c, gin.H{"success": true, "item": item})
}

// GET /api/items/speciality/:speciality (public)
func GetItemsBySpeciality(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var items []models.Item
	if err := db.Where("speciality = ? AND status = ?",
		c.Param("speciality"), models.ITEM_STATUS_AVAILABLE).
		Order("created_at desc").Find(&items).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{
		"success": true,
		"count":   len(items),
		"items":   items,
	})
}

// itemView joins an item with its reporter's identity for the admin listing.
type itemView struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Speciality      string     `json:"speciality"`
	Image           string     `json:"image"`
	Degree          string     `json:"degree"`
	Experience      string     `json:"experience"`
	About           string     `json:"about"`
	AddressLine1    string     `json:"address_line1"`
	AddressLine2    string     `json:"address_line2"`
	Status          string     `json:"status"`
	ReportedBy      *int64     `json:"reported_by"`
	CreatedAt       *time.Time `json:"created_at"`
	ReportedByName  string     `json:"reported_by_name"`
	ReportedByEmail string     `json:"reported_by_email"`
}

// GET /api/admin/items
func GetAdminItems(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var items []itemView
	err := db.Table("items").
		Select("items.*, users.name as reported_by_name, users.email as reported_by_email").
		Joins("left join users on users.id = items.reported_by").
		Order("items.created_at desc").
		Scan(&items).Error
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{
		"success": true,
		"count":   len(items),
		"items":   items,
	})
}

// DELETE /api/admin/items/:id
// Cascades: associated appointments are removed first.
func DeleteItem(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	if err := catalog.DeleteItem(db, id); err != nil {
		RespondFault(c, err)
		return
	}

	RespondSuccess(c, gin.H{
		"success": true,
		"message": "Item deleted successfully",
	})
}
