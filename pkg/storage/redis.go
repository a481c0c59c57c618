package storage

import (
	"fmt"

	"github.com/go-redis/redis"

	"github.com/studyhall-app/backend/pkg/config"
)

// NewRedis connects to the redis instance tracking refresh tokens.
func NewRedis(c config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", c.Host, c.Port),
	})

	if _, err := client.Ping().Result(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %v", err)
	}

	return client, nil
}
