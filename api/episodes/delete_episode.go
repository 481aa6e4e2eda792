package episodes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// DeleteEpisode removes an episode of a podcast the authenticated host owns,
// clearing its played-episode rows on the way.
// DELETE /api/v1/podcasts/:id/episodes/:episodeID
func DeleteEpisode(deps *types.Dependencies) gin.HandlerFunc {
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

		if _, err := deps.PodcastService.GetForHost(c.Request.Context(), user.ID, podcastID); err != nil {
			types.Fail(c, err)
			return
		}

		if err := deps.EpisodeService.Delete(c.Request.Context(), podcastID, episodeID); err != nil {
			types.Fail(c, err)
			return
		}

		types.OK(c, http.StatusOK, gin.H{})
	}
}
