package cache

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewClient connects to Redis at addr. Redis is optional here (it only
// mirrors the session token across replicas), so an empty addr or a
// failed ping returns nil instead of aborting startup.
func NewClient(ctx context.Context, addr string) *redis.Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Redis unavailable at %s, continuing without it: %v", addr, err)
		_ = client.Close()
		return nil
	}
	log.Println("Connected to Redis")
	return client
}
