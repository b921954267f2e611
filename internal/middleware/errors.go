package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tradeseed/internal/domain/dto"
	"github.com/guttosm/tradeseed/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into a JSON 500 when the
// handler did not write a response itself.
//
// Usage:
//
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	last := c.Errors.Last()
	logger.L().Error().
		Str("request_id", toString(c.Value(RequestIDKey))).
		Str("path", c.Request.URL.Path).
		Err(last.Err).
		Msg("unhandled request error")

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", last.Err))
}

// AbortWithError stops the handler chain and writes a dto.ErrorResponse.
// err is optional and becomes the response's error details.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
