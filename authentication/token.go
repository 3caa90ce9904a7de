package authentication

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

const tokenTTL = 24 * time.Hour

func jwtKey() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("secretKey")
}

func registeredClaims() jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
}

func sign(claims jwt.Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtKey())
}

func parseInto(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return jwt.ErrTokenInvalidClaims
	}
	return nil
}

// bearerToken strips the Bearer prefix from the Authorization header.
func bearerToken(c *gin.Context) string {
	return strings.Replace(c.GetHeader("Authorization"), "Bearer ", "", 1)
}

// RevokeToken puts a token on the redis denylist until it would have
// expired anyway. A nil client makes logout a no-op.
func RevokeToken(ctx context.Context, rdb *redis.Client, token string) error {
	if rdb == nil || token == "" {
		return nil
	}
	return rdb.Set(ctx, "revoked:"+token, "1", tokenTTL).Err()
}

// revoked reports whether a token was revoked by a logout. Redis being
// unreachable is treated as not revoked so auth keeps working.
func revoked(ctx context.Context, rdb *redis.Client, token string) bool {
	if rdb == nil {
		return false
	}
	n, err := rdb.Exists(ctx, "revoked:"+token).Result()
	return err == nil && n > 0
}
