package config

import (
	"fmt"
	"log"
	"os"

	"learnsphere/storage"
	"learnsphere/utils"

	"github.com/redis/go-redis/v9"
)

// BootStorage selects the storage driver from STORAGE_DRIVER and returns the
// store plus the redis client when one was opened (the rate limiter reuses
// it). Defaults to the in-memory driver so the service runs with zero infra.
func BootStorage() (storage.Store, *redis.Client, error) {
	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" {
		driver = "memory"
	}

	var redisClient *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisClient = InitRedisDB(addr, os.Getenv("REDIS_PASSWORD"), 0)
	}

	switch driver {
	case "memory":
		log.Print("✅ Storage driver: ", utils.ColorText("memory", utils.Yellow), " (data is not persisted)")
		return storage.NewMemoryStore(), redisClient, nil

	case "redis":
		if redisClient == nil {
			return nil, nil, fmt.Errorf("storage driver redis requires REDIS_ADDR")
		}
		log.Print("✅ Storage driver: ", utils.ColorText("redis", utils.Green))
		return storage.NewRedisStore(redisClient, "learnsphere:"), redisClient, nil

	case "postgres":
		db, err := BootDB()
		if err != nil {
			return nil, nil, err
		}
		store, err := storage.NewPostgresStore(db)
		if err != nil {
			return nil, nil, err
		}
		log.Print("✅ Storage driver: ", utils.ColorText("postgres", utils.Green))
		return store, redisClient, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
