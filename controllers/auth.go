package controllers

import (
	"net/http"
	"strings"
	"time"

	dbpkg "unilost/db"
	"unilost/models"
	"unilost/tools"

	"github.com/gin-gonic/gin"
)

// POST /api/auth/register/request-code (public)
// Body: { "email": "...", "name": "..." }
// Issues a registration ticket and emails the code.
func RequestRegistrationCode(c *gin.Context) {
	type Request struct {
		Email string `json:"email" form:"email"`
		Name  string `json:"name" form:"name"`
	}

	var req Request
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if req.Email == "" || req.Name == "" {
		RespondError(c, "Name and email are required", http.StatusBadRequest)
		return
	}
	if !tools.ValidateEmail(req.Email) {
		RespondError(c, "Invalid email address", http.StatusBadRequest)
		return
	}

	manager := verificationInstance(c)
	if manager == nil {
		RespondError(c, "verification not configured in context", http.StatusInternalServerError)
		return
	}

	expiresIn, err := manager.IssueRegistration(req.Email, req.Name)
	if err != nil {
		RespondFault(c, err)
		return
	}

	RespondSuccess(c, gin.H{
		"success":          true,
		"message":          "Verification code sent",
		"expiresInSeconds": expiresIn,
	})
}

// POST /api/auth/register/verify (public)
// Body: { "email": "...", "code": "123456", "password": "...", "phone": "..." }
// Redeems the registration ticket, creates the account and logs it in.
func VerifyRegistration(c *gin.Context) {
	type Request struct {
		Email    string `json:"email" form:"email"`
		Code     string `json:"code" form:"code"`
		Password string `json:"password" form:"password"`
		Phone    string `json:"phone" form:"phone"`
	}

	var req Request
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Code = strings.TrimSpace(req.Code)
	if req.Email == "" || req.Code == "" || req.Password == "" {
		RespondError(c, "Email, code and password are required", http.StatusBadRequest)
		return
	}

	manager := verificationInstance(c)
	if manager == nil {
		RespondError(c, "verification not configured in context", http.StatusInternalServerError)
		return
	}

	user, err := manager.RedeemRegistration(req.Email, req.Code, req.Password, req.Phone)
	if err != nil {
		RespondFault(c, err)
		return
	}

	signed, err := issueSessionToken(*user)
	if err != nil {
		RespondError(c, "Could not sign token", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"token":   signed,
		"user":    user,
	})
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// POST /api/auth/login (public)
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		RespondError(c, "Email and password are required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error; err != nil {
		RespondError(c, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	if !tools.ComparePassword(user.Password, req.Password) {
		RespondError(c, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	signed, err := issueSessionToken(user)
	if err != nil {
		RespondError(c, "Could not sign token", http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   signed,
		"user":    user,
	})
}

// issueSessionToken signs a 7-day session JWT for the user.
func issueSessionToken(user models.User) (string, error) {
	return signHS256JWT(getJWTSecret(), map[string]any{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(7 * 24 * time.Hour).Unix(),
	})
}
