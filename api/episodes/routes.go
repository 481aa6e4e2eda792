package episodes

import (
	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// RegisterRoutes registers episode routes. CRUD lives under the parent
// podcast; marking an episode played is addressed by episode id alone.
func RegisterRoutes(podcastRouter, episodeRouter *gin.RouterGroup, deps *types.Dependencies, hostOnly, listenerOnly gin.HandlerFunc) {
	podcastRouter.GET("/:id/episodes", GetList(deps))
	podcastRouter.POST("/:id/episodes", hostOnly, PostCreate(deps))
	podcastRouter.PATCH("/:id/episodes/:episodeID", hostOnly, PatchUpdate(deps))
	podcastRouter.DELETE("/:id/episodes/:episodeID", hostOnly, DeleteEpisode(deps))

	episodeRouter.POST("/:id/played", listenerOnly, PostPlayed(deps))
}
