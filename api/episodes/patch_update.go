package episodes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
	"github.com/podshelf/catalog-api/internal/models"
)

// PatchUpdate updates an episode of a podcast the authenticated host owns.
// PATCH /api/v1/podcasts/:id/episodes/:episodeID
func PatchUpdate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := types.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Authentication required."})
			return
		}
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		episodeID, ok := types.ParseUintParam(c, "episodeID")
		if !ok {
			return
		}

		var patch models.EpisodePatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request body."})
			return
		}

		if _, err := deps.PodcastService.GetForHost(c.Request.Context(), user.ID, podcastID); err != nil {
			types.Fail(c, err)
			return
		}

		if err := deps.EpisodeService.Update(c.Request.Context(), podcastID, episodeID, patch); err != nil {
			types.Fail(c, err)
			return
		}

		types.OK(c, http.StatusOK, gin.H{})
	}
}
