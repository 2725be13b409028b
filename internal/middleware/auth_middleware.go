package middleware

import (
	"strconv"
	"strings"

	"taskboard/internal/apperr"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the authenticated user id (uint).
const UserIDKey = "userID"

// Authenticator resolves an access token to its subject.
type Authenticator interface {
	Authenticate(accessToken string) (uint, error)
}

func JWTAuthMiddleware(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			Abort(c, apperr.Unauthorized("Authorization header is required"))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			Abort(c, apperr.Unauthorized("Authorization header format must be Bearer {token}"))
			return
		}

		userID, err := authn.Authenticate(parts[1])
		if err != nil {
			Abort(c, err)
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// OwnershipGuard rejects requests whose :userId path segment differs from
// the authenticated subject. It must run after JWTAuthMiddleware.
func OwnershipGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		pathID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
		if err != nil || pathID == 0 {
			Abort(c, apperr.Validation("userId must be a positive integer"))
			return
		}

		if pathID != uint64(c.GetUint(UserIDKey)) {
			Abort(c, apperr.Forbidden("you cannot access other users' records"))
			return
		}
		c.Next()
	}
}
