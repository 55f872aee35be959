package handler

import (
	"time"

	"github.com/bizdash/backend/internal/infrastructure/notification"
	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the transient notification slot
type NotificationHandler struct {
	BaseHandler
	center *notification.Center
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(center *notification.Center) *NotificationHandler {
	return &NotificationHandler{
		center: center,
	}
}

// NotificationResponse represents the live notification, if any
type NotificationResponse struct {
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RegisterRoutes registers notification routes
func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notifications := rg.Group("/notifications")
	{
		notifications.GET("/current", h.Current)
		notifications.DELETE("/current", h.Dismiss)
	}
}

// Current returns the live notification, or null once expired
func (h *NotificationHandler) Current(c *gin.Context) {
	current := h.center.Current()
	if current == nil {
		h.Success(c, nil)
		return
	}

	h.Success(c, NotificationResponse{
		Message:   current.Message,
		Severity:  string(current.Severity),
		CreatedAt: current.CreatedAt,
		ExpiresAt: current.ExpiresAt,
	})
}

// Dismiss clears the live notification
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	h.center.Dismiss()
	h.NoContent(c)
}
