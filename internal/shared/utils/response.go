package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenhq/lumen/internal/shared/errors"
)

// ErrorBody is the error payload of every JSON endpoint.
type ErrorBody struct {
	Error string `json:"error"`
}

// SuccessBody is returned by mutations that have nothing else to report.
type SuccessBody struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse writes data as the JSON body.
func SuccessResponse(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// OKResponse writes {"success":true}.
func OKResponse(c *gin.Context, message ...string) {
	body := SuccessBody{Success: true}
	if len(message) > 0 {
		body.Message = message[0]
	}
	c.JSON(http.StatusOK, body)
}

// ErrorResponse writes {"error": message}.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// ErrorResponseWithError maps an AppError to its status and message. Other
// errors become a generic 500 so internals never leak to clients.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, ErrorBody{Error: appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Internal server error"})
}

// AbortUnauthorized writes the 401 body and stops the handler chain.
func AbortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorBody{Error: "Unauthorized"})
}
