package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogger/api/trace"
	"blogger/dto"
	"blogger/logger"
	"blogger/services"
)

// respond writes a success envelope. The body statusCode is always 200,
// even when the HTTP status is 201; existing clients read it that way.
func respond(c *gin.Context, httpStatus int, data any, message string) {
	c.JSON(httpStatus, dto.NewResponse(http.StatusOK, data, message))
}

// respondError is the single place service errors become HTTP responses.
// Typed errors keep their message; anything else is a generic 500.
func respondError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge,
			dto.NewErrorResponse(http.StatusRequestEntityTooLarge, "Request body too large", nil))
		return
	}

	var se *services.Error
	if !errors.As(err, &se) {
		logError(c, err)
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(http.StatusInternalServerError, "Internal Server Error", nil))
		return
	}

	code := se.StatusCode()
	if code >= http.StatusInternalServerError {
		logError(c, err)
	}
	_ = c.Error(err)
	c.JSON(code, dto.NewErrorResponse(code, se.Message, se.Errors))
}

func logError(c *gin.Context, err error) {
	logger.ErrorWithFields("request failed", logger.Fields{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"request_id": trace.RequestIDFromContext(c.Request.Context()),
		"error":      err.Error(),
	})
}
