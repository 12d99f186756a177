package middleware

import (
	"net/http"

	"github.com/Sushmitaag19/Student-Tutor-Connect-System/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler turns unhandled errors into the structured failure envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err)
	}

	_ = c.JSON(code, map[string]interface{}{
		"success": false,
		"message": message,
	})
}
