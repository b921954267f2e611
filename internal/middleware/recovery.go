package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tradeseed/internal/domain/dto"
	"github.com/guttosm/tradeseed/internal/logger"
)

// RecoveryMiddleware converts a handler panic into a logged stack trace and a
// 500 dto.ErrorResponse. The client never sees the panic value.
//
//	router.Use(middleware.RecoveryMiddleware())
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if r == http.ErrAbortHandler {
				panic(r)
			}

			logger.L().Error().
				Str("request_id", toString(c.Value(RequestIDKey))).
				Str("route", c.FullPath()).
				Str("collection", c.Param("collection")).
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")

			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse("Internal server error", fmt.Errorf("request %s failed", toString(c.Value(RequestIDKey)))))
		}()

		c.Next()
	}
}
