package routes

import (
	"log"

	"skill-pulse/internal/config"
	"skill-pulse/internal/database"
	v1 "skill-pulse/internal/delivery/http/routes/v1"
	"skill-pulse/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

// RegisterV1 mounts the versioned API under the group the registry
// created for it.
func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, redisCache *cache.Redis, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, redisCache, logger)
}
