package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"clinicflow/config"
)

// SessionCacheClient holds snapshot sessions posted by booking clients. It is
// a TTL cache of derived inputs, never a system of record for bookings.
var SessionCacheClient *redis.Client

// InitSessionCache initializes the Redis client for snapshot session caching.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the snapshot session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
