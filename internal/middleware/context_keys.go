package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"
)

// actorKey is the key used to store the authenticated actor in the request context.
const actorKey = contextKey("actor")

// GetActorFromContext retrieves the authenticated actor from the Gin context.
// It returns the actor and a boolean indicating if it was found.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	actorVal := c.Request.Context().Value(actorKey)
	if actorVal == nil {
		return domain.Actor{}, false
	}

	actor, ok := actorVal.(domain.Actor)
	if !ok {
		// Should not happen if the auth middleware sets it correctly.
		return domain.Actor{}, false
	}
	return actor, true
}
