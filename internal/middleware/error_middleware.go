package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/Dianapq/Back-Asistente/internal/transport/httpdto"
	"github.com/Dianapq/Back-Asistente/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the final error boundary. Panics and errors attached via
// c.Error become a JSON envelope with the declared status or 500; the stack
// is exposed only when includeStack is set (non-release configuration).
func ErrorHandler(l *logger.Logger, includeStack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				if l != nil {
					l.Errorf("panic recovered: %v path=%s method=%s\n%s", r, c.Request.URL.Path, c.Request.Method, stack)
				}
				res := httpdto.NewErrorResponse("Error interno del servidor")
				res.Path = c.Request.URL.Path
				res.Timestamp = time.Now().Format(time.RFC3339)
				if includeStack {
					res.Stack = stack
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, res)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		if l != nil {
			l.Errorf("request error: %s path=%s method=%s", err.Error(), c.Request.URL.Path, c.Request.Method)
		}
		if c.Writer.Written() {
			return
		}

		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		res := httpdto.NewErrorResponse(err.Error())
		res.Path = c.Request.URL.Path
		res.Timestamp = time.Now().Format(time.RFC3339)
		c.JSON(status, res)
	}
}
