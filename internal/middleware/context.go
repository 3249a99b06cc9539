package middleware

import "github.com/labstack/echo/v4"

// Context keys used to store authentication metadata.
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"
)

// UserEmailFromContext extracts the authenticated email if available.
func UserEmailFromContext(c echo.Context) string {
	if val, ok := c.Get(ContextKeyUserEmail).(string); ok {
		return val
	}
	return ""
}

// UserRoleFromContext extracts the authenticated role if available.
func UserRoleFromContext(c echo.Context) string {
	if val, ok := c.Get(ContextKeyUserRole).(string); ok {
		return val
	}
	return ""
}
