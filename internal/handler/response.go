package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// apiResponse is the caller-facing envelope: {success, data | error}. Every
// adapter response, including auth failures, goes through this shape.
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, apiResponse{
		Success: true,
		Data:    data,
	})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, apiResponse{
		Success: false,
		Error:   message,
	})
}
