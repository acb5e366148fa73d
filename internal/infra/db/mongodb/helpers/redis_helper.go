package helpers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisTimeout = 30 * time.Second

func RedisHelper(connectionUrl string) (*redis.Client, error) {
	opt, err := redis.ParseURL(connectionUrl)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), RedisTimeout)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	return client, nil
}
