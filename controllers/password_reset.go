package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// POST /api/auth/password/forgot (public)
// Body: { "email": "..." }
func ForgotPasswordSendCode(c *gin.Context) {
	type Request struct {
		Email string `json:"email" form:"email"`
	}

	var req Request
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		RespondError(c, "Email is required", http.StatusBadRequest)
		return
	}

	manager := verificationInstance(c)
	if manager == nil {
		RespondError(c, "verification not configured in context", http.StatusInternalServerError)
		return
	}

	expiresIn, err := manager.IssuePasswordReset(req.Email)
	if err != nil {
		RespondFault(c, err)
		return
	}

	RespondSuccess(c, gin.H{
		"success":          true,
		"message":          "Password reset code sent",
		"expiresInSeconds": expiresIn,
	})
}

// POST /api/auth/password/reset (public)
// Body: { "email": "...", "code": "123456", "new_password": "..." }
// Consumes the ticket and replaces the credential. No session is created.
func ResetPassword(c *gin.Context) {
	type Request struct {
		Email       string `json:"email" form:"email"`
		Code        string `json:"code" form:"code"`
		NewPassword string `json:"new_password" form:"new_password"`
	}

	var req Request
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Code = strings.TrimSpace(req.Code)
	if req.Email == "" || req.Code == "" || req.NewPassword == "" {
		RespondError(c, "Email, code and new password are required", http.StatusBadRequest)
		return
	}

	manager := verificationInstance(c)
	if manager == nil {
		RespondError(c, "verification not configured in context", http.StatusInternalServerError)
		return
	}

	if err := manager.RedeemPasswordReset(req.Email, req.Code, req.NewPassword); err != nil {
		RespondFault(c, err)
		return
	}

	RespondSuccess(c, gin.H{
		"success": true,
		"message": "Password reset successfully",
	})
}
