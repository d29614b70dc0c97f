package middlewares

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/weijinqqq/smart-fitness-backend/utils"

	"github.com/gin-gonic/gin"
)

// UserIDKey is where AuthMiddleware stores the caller identity in the
// request context.
const UserIDKey = "userID"

// AuthMiddleware resolves the caller identity from the Authorization header.
// It aborts with 401 before any handler logic on a missing, malformed,
// expired or otherwise invalid token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := utils.ParseJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// RequireSameUser authorizes routes addressing a user by path id: the caller
// identity must equal the :id segment. Runs after AuthMiddleware and aborts
// with 403 before any handler side effect.
func RequireSameUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		pathID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		if CurrentUserID(c) != uint(pathID) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "you can only access your own data"})
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the identity set by AuthMiddleware, zero if absent.
func CurrentUserID(c *gin.Context) uint {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}
