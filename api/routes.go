package api

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/auth"
	"github.com/podshelf/catalog-api/api/episodes"
	"github.com/podshelf/catalog-api/api/hashtags"
	"github.com/podshelf/catalog-api/api/health"
	"github.com/podshelf/catalog-api/api/podcasts"
	"github.com/podshelf/catalog-api/api/reviews"
	"github.com/podshelf/catalog-api/api/types"
	"github.com/podshelf/catalog-api/api/users"
	"github.com/podshelf/catalog-api/api/version"
	"github.com/podshelf/catalog-api/internal/models"
	"github.com/podshelf/catalog-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	if deps == nil {
		return fmt.Errorf("dependencies are nil")
	}
	if deps.Tokens == nil {
		return fmt.Errorf("token signer is not configured")
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// API v1 routes
	v1 := engine.Group("/api/v1")

	if cfg.RateLimiting.Enabled {
		v1.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, cfg.RateLimiting.RPS, cfg.RateLimiting.Burst))
	}

	// Public account routes
	authGroup := v1.Group("/auth")
	auth.RegisterRoutes(authGroup, deps)

	// Everything below requires a valid token
	authRequired := AuthRequired(deps)
	hostOnly := RequireRole(models.RoleHost)
	listenerOnly := RequireRole(models.RoleListener)

	podcastGroup := v1.Group("/podcasts")
	podcastGroup.Use(authRequired)
	podcasts.RegisterRoutes(podcastGroup, deps, hostOnly, listenerOnly)

	episodeGroup := v1.Group("/episodes")
	episodeGroup.Use(authRequired)
	episodes.RegisterRoutes(podcastGroup, episodeGroup, deps, hostOnly, listenerOnly)

	reviewGroup := v1.Group("/reviews")
	reviewGroup.Use(authRequired)
	reviews.RegisterRoutes(podcastGroup, reviewGroup, deps)

	hashtagGroup := v1.Group("/hashtags")
	hashtagGroup.Use(authRequired)
	hashtags.RegisterRoutes(hashtagGroup, deps)

	userGroup := v1.Group("/users")
	userGroup.Use(authRequired)
	users.RegisterRoutes(userGroup, deps, listenerOnly)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"ok":    false,
			"error": "The requested endpoint was not found.",
		})
	}
}
