package controllers

import "github.com/gin-gonic/gin"

func Health(c *gin.Context) {
	RespondSuccess(c, gin.H{"status": "OK", "message": "UniLost API is running"})
}
