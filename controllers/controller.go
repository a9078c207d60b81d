package controllers

import (
	"errors"
	"net/http"

	"unilost/faults"

	"github.com/gin-gonic/gin"
)

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"success": false, "message": msg})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(200, payload)
}

// RespondFault writes a typed failure as {success, kind, message}.
func RespondFault(c *gin.Context, err error) {
	var fe *faults.Error
	if errors.As(err, &fe) {
		c.JSON(faults.HTTPStatus(err), gin.H{
			"success": false,
			"kind":    fe.Kind,
			"message": fe.Message,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Something went wrong!",
	})
}
