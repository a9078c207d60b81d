package controllers

import (
	"net/http"
	"strconv"

	"unilost/verification"

	"github.com/gin-gonic/gin"
)

func ParamID(c *gin.Context, name string) (int64, bool) {
	v := c.Param(name)
	if v == "" {
		RespondError(c, name+" is required", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, name+" is invalid", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

const verificationKey = "verification"

// Use this middleware in the gin setup, same pattern as db.SetDBtoContext.
func SetVerificationManager(m *verification.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(verificationKey, m)
		c.Next()
	}
}

func verificationInstance(c *gin.Context) *verification.Manager {
	v, ok := c.Get(verificationKey)
	if !ok {
		return nil
	}
	m, _ := v.(*verification.Manager)
	return m
}
