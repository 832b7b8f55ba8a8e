package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/shared/server/respond"
)

const ownerIDKey = "ownerId"

// Identity resolves the caller's owner ID from the Authorization header.
// Verification happens upstream; the bearer value arrives here as an
// opaque, already-trusted owner ID. Requests without one are rejected.
// Preflight requests never reach this middleware; CORS answers them first.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid identity", nil)
			return
		}
		ownerID := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		if ownerID == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid identity", nil)
			return
		}

		c.Set(ownerIDKey, ownerID)
		c.Next()
	}
}

// OwnerIDFromContext fetches the owner ID set by the Identity middleware.
func OwnerIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(ownerIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
