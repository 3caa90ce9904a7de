package authentication

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/olawale021/Docappointapp/models"
)

// GeneratePatientToken issues a signed token for a logged-in patient.
func GeneratePatientToken(username string) (string, error) {
	return sign(&models.PatientClaims{
		Username:         username,
		RegisteredClaims: registeredClaims(),
	})
}

// PatientAuthMiddleware verifies the bearer token and stores the patient
// username on the context.
func PatientAuthMiddleware(rdb *redis.Client) gin.HandlerFunc {
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
		var claims models.PatientClaims
		if err := parseInto(token, &claims); err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": err.Error()})
			return
		}
		c.Set("patient_username", claims.Username)
	}
}
