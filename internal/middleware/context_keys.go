package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// ActorHeader names the caller recorded in audit fields. The service has no
// authentication; the header is informational only.
const ActorHeader = "X-Actor"

// DefaultActor is recorded when a request carries no actor header.
const DefaultActor = "anonymous"

// actorKey is the key used to store the caller's name in the Gin context.
const actorKey = contextKey("actor")

// ActorMiddleware resolves the caller name once per request.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(c.GetHeader(ActorHeader))
		if actor == "" {
			actor = DefaultActor
		}
		c.Set(string(actorKey), actor)
		c.Next()
	}
}

// GetActorFromContext retrieves the caller name set by ActorMiddleware.
func GetActorFromContext(c *gin.Context) string {
	if v, exists := c.Get(string(actorKey)); exists {
		if actor, ok := v.(string); ok && actor != "" {
			return actor
		}
	}
	return DefaultActor
}
