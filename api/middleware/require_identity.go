package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"blogger/api/auth"
	"blogger/dto"
	"blogger/logger"
	"blogger/services"
)

// RequireIdentity resolves the caller from the accessToken cookie or the
// Bearer header and aborts with a 401 envelope when that fails. Handlers
// behind it read the caller with auth.IdentityFrom.
func RequireIdentity(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractAccessToken(c)
		if err != nil {
			token = ""
		}

		id, err := gate.Resolve(c.Request.Context(), token)
		if err != nil {
			abortWithError(c, err)
			return
		}

		auth.SetIdentity(c, id)
		c.Next()
	}
}

func abortWithError(c *gin.Context, err error) {
	var se *services.Error
	if !errors.As(err, &se) {
		se = services.NewInternalError("Internal Server Error", err)
	}
	code := se.StatusCode()
	if code >= 500 {
		logger.ErrorWithFields("identity resolution failed", logger.Fields{"error": err.Error()})
	} else {
		logger.Log.Debugf("unauthorized request to %s: %v", c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(code, dto.NewErrorResponse(code, se.Message, se.Errors))
}
