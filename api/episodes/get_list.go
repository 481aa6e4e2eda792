package episodes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// GetList returns every episode of a podcast.
// GET /api/v1/podcasts/:id/episodes
func GetList(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		episodes, err := deps.EpisodeService.List(c.Request.Context(), podcastID)
		if err != nil {
			types.Fail(c, err)
			return
		}

		types.OK(c, http.StatusOK, gin.H{"episodes": episodes})
	}
}
