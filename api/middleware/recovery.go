package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogger/api/trace"
	"blogger/dto"
	"blogger/logger"
)

// Recovery turns a panic into the 500 failure envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.ErrorWithFields("panic recovered", logger.Fields{
			"path":       c.Request.URL.Path,
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
			"panic":      fmt.Sprint(recovered),
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.NewErrorResponse(http.StatusInternalServerError, "Internal Server Error", nil))
	})
}
