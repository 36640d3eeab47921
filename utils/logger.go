package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetAPIHitter returns the display name of whoever is calling, set by the
// auth middleware, or "Guest" on public routes.
func GetAPIHitter(c *gin.Context) string {
	if name, exists := c.Get("userName"); exists {
		if s, ok := name.(string); ok && s != "" {
			return s
		}
	}
	return "Guest"
}

func PrintLogInfo(username *string, statusCode int, functionName string, err *error) {
	user := "Unknown"
	if username != nil {
		user = *username
	}

	event := log.Info()
	switch {
	case statusCode >= http.StatusInternalServerError:
		event = log.Error()
	case statusCode >= http.StatusBadRequest:
		event = log.Warn()
	}

	if err != nil && *err != nil {
		event = event.Err(*err)
	}

	event.
		Str("user", user).
		Int("status", statusCode).
		Str("function", functionName).
		Msg(ColorStatus(statusCode))
}
