package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// Helper untuk endpoint aksi dashboard yang kontraknya
// {"status":"success"|"error", ...} (dipakai oleh frontend lama).

func ActionSuccess(c *gin.Context, extra gin.H) {
	payload := gin.H{"status": "success"}
	for k, v := range extra {
		payload[k] = v
	}
	c.JSON(http.StatusOK, payload)
}

func ActionError(c *gin.Context, message string) {
	payload := gin.H{"status": "error"}
	if message != "" {
		payload["message"] = message
	}
	c.JSON(http.StatusOK, payload)
}
