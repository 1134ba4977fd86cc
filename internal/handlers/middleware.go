package handlers

import (
	"time"

	"contacts_api/internal/models"

	"github.com/gin-gonic/gin"
)

const userCtxKey = "user"

// authenticate is the gate in front of every protected route. The raw
// Authorization header value is the session token; there is no scheme prefix.
func (h *Handler) authenticate(c *gin.Context) {
	u, err := h.services.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		h.respondError(c, err, "authenticate_failed")
		c.Abort()
		return
	}

	c.Set(userCtxKey, *u)
	c.Next()
}

// currentUser returns the identity stored by authenticate.
func currentUser(c *gin.Context) models.User {
	u, _ := c.MustGet(userCtxKey).(models.User)
	return u
}

func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
	)
}
