package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

// Health reports liveness; it sits outside auth so probes need no token.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"service": "smartlend",
		"status":  "ok",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
