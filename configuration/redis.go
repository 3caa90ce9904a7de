package configuration

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to the redis server used for the logout denylist.
// Redis is optional: when it cannot be reached the service runs without
// token revocation and the caller gets nil.
func InitRedis(ctx context.Context) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: Env("REDIS_ADDR", "localhost:6379"),
	})

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("redis unavailable, continuing without it:", err)
		return nil
	}
	return client
}
