package controllers

import (
	"net/http"

	dbpkg "unilost/db"
	"unilost/models"
	"unilost/tools"

	"github.com/gin-gonic/gin"
)

// GET /api/users/profile
func GetProfile(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}
	RespondSuccess(c, gin.H{"success": true, "user": user})
}

// PUT /api/users/profile
// Updates the editable profile fields. Email and admin flag never change here.
func UpdateProfile(c *gin.Context) {
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

	type Request struct {
		Name         string `json:"name" form:"name"`
		Phone        string `json:"phone" form:"phone"`
		AddressLine1 string `json:"address_line1" form:"address_line1"`
		AddressLine2 string `json:"address_line2" form:"address_line2"`
		Gender       string `json:"gender" form:"gender"`
		Dob          string `json:"dob" form:"dob"`
		ProfileImage string `json:"profile_image" form:"profile_image"`
	}

	var req Request
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	updates := map[string]any{
		"phone":         req.Phone,
		"address_line1": req.AddressLine1,
		"address_line2": req.AddressLine2,
		"gender":        req.Gender,
		"dob":           req.Dob,
	}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.ProfileImage != "" {
		updates["profile_image"] = req.ProfileImage
	}

	if err := db.Model(&user).Updates(updates).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	var updated models.User
	if err := db.First(&updated, user.ID).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"user":    updated,
	})
}

// PUT /api/users/change-password
// Requires the current password; stores a fresh bcrypt hash.
func ChangePassword(c *gin.Context) {
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

	type Request struct {
		CurrentPassword string `json:"current_password" form:"current_password"`
		NewPassword     string `json:"new_password" form:"new_password"`
	}

	var req Request
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		RespondError(c, "Current password and new password are required", http.StatusBadRequest)
		return
	}
	if !tools.ComparePassword(user.Password, req.CurrentPassword) {
		RespondError(c, "Current password is incorrect", http.StatusUnauthorized)
		return
	}
	if tools.CheckPassword(req.NewPassword) != "" {
		RespondError(c, "Password must be at least 6 characters", http.StatusBadRequest)
		return
	}

	hash, err := tools.HashPassword(req.NewPassword, 0)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := db.Model(&user).Update("password", hash).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{
		"success": true,
		"message": "Password changed successfully",
	})
}
