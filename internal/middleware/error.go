package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cookbookd/backend/internal/service"
)

// ErrorResponse is the structured shape every error is converted to.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ErrorHandler is the single boundary converting service errors into
// structured JSON responses. Handlers record failures with c.Error and
// return; nothing else writes error bodies.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, kind, message := classify(err)
		if status == http.StatusInternalServerError {
			// Internal detail stays in the log, never in the response.
			logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
			message = "internal server error"
		}

		c.JSON(status, ErrorResponse{Error: kind, Message: message})
	}
}

func classify(err error) (int, string, string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, "validation_error", ve.Message
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", err.Error()
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, "authentication_error", err.Error()
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, "authorization_error", err.Error()
	default:
		return http.StatusInternalServerError, "server_error", ""
	}
}

// Recovery converts panics into the same structured 500 shape.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.WithField("panic", recovered).Error("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "server_error",
			Message: "internal server error",
		})
	})
}
