package authentication

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/olawale021/Docappointapp/models"
)

// GenerateAdminToken issues a signed token for a logged-in admin.
func GenerateAdminToken(username string) (string, error) {
	return sign(&models.AdminClaims{
		Username:         username,
		RegisteredClaims: registeredClaims(),
	})
}

// AdminAuthMiddleware verifies the bearer token and stores the admin
// username on the context.
func AdminAuthMiddleware(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Authorization is missing"})
			return
		}
		if revoked(c.Request.Context(), rdb, token) {
			c.AbortWithStatusJSON(401, gin.H{"error": "Session has been logged out"})
			return
		}
		var claims models.AdminClaims
		if err := parseInto(token, &claims); err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": err.Error()})
			return
		}
		c.Set("admin_username", claims.Username)
	}
}
