package authentication

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/olawale021/Docappointapp/models"
)

// GenerateDoctorToken issues a signed token for a logged-in doctor.
func GenerateDoctorToken(username string) (string, error) {
	return sign(&models.DoctorClaims{
		Username:         username,
		RegisteredClaims: registeredClaims(),
	})
}

// DoctorAuthMiddleware verifies the bearer token and stores the doctor
// username on the context.
func DoctorAuthMiddleware(rdb *redis.Client) gin.HandlerFunc {
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
		var claims models.DoctorClaims
		if err := parseInto(token, &claims); err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": err.Error()})
			return
		}
		c.Set("doctor_username", claims.Username)
	}
}
