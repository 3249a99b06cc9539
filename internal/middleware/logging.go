package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// Logging writes one structured line per HTTP request. It runs outermost
// so the line carries whatever identity the JWT middleware stored.
func Logging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			rid, _ := c.Get(ContextKeyRequestID).(string)
			req := c.Request()
			res := c.Response()
			log.Printf("request_id=%s method=%s path=%s status=%d bytes=%d latency=%s user=%s",
				rid, req.Method, req.URL.Path, res.Status, res.Size, time.Since(start), UserEmailFromContext(c))

			return err
		}
	}
}
