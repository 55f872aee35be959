package notification

import (
	"sync"
	"time"
)

// Severity mirrors the feedback levels shown to the operator
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Notification is a transient, self-expiring feedback message
type Notification struct {
	Message   string
	Severity  Severity
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Center holds at most one live notification. Publishing replaces any
// current message, and messages expire on their own after the TTL.
type Center struct {
	mu      sync.RWMutex
	current *Notification
	ttl     time.Duration
	now     func() time.Time
}

// DefaultTTL matches the auto-dismiss delay of the original snackbar
const DefaultTTL = 3 * time.Second

// NewCenter creates a notification center. A non-positive ttl falls back
// to DefaultTTL.
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl, now: time.Now}
}

// Publish replaces the current notification with a new one
func (c *Center) Publish(message string, severity Severity) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.current = &Notification{
		Message:   message,
		Severity:  severity,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}
}

// Success publishes a success-level notification
func (c *Center) Success(message string) {
	c.Publish(message, SeveritySuccess)
}

// Error publishes an error-level notification
func (c *Center) Error(message string) {
	c.Publish(message, SeverityError)
}

// Current returns the live notification, or nil once it has expired or
// been dismissed.
func (c *Center) Current() *Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.current == nil || c.now().After(c.current.ExpiresAt) {
		return nil
	}
	n := *c.current
	return &n
}

// Dismiss clears the current notification immediately
func (c *Center) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
}
