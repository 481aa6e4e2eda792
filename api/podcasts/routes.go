package podcasts

import (
	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// RegisterRoutes registers podcast catalog routes.
// Role gates are applied per route: hosts manage their own podcasts, listeners
// browse, search and subscribe.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, hostOnly, listenerOnly gin.HandlerFunc) {
	router.GET("", GetList(deps))
	router.GET("/search", listenerOnly, GetSearch(deps))
	router.GET("/by-hashtags", GetByHashTags(deps))

	router.GET("/mine", hostOnly, GetMine(deps))
	router.GET("/mine/:id", hostOnly, GetMinePodcast(deps))

	router.GET("/:id", listenerOnly, GetPodcast(deps))
	router.POST("", hostOnly, PostCreate(deps))
	router.PATCH("/:id", hostOnly, PatchUpdate(deps))
	router.DELETE("/:id", hostOnly, DeletePodcast(deps))

	router.PUT("/:id/subscription", listenerOnly, PutSubscription(deps))
}
