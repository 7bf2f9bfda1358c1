package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// InitializeLogger sets the logger for the controllers package.
func InitializeLogger(l *zap.Logger) {
	logger = l
}

// respondError surfaces a domain error to the caller. All error responses
// share the {message, status} envelope.
func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"message": message,
		"status":  "error",
	})
}
