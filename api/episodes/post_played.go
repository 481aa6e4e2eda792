package episodes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// PostPlayed records that the authenticated listener played an episode.
// Replays leave the played set unchanged.
// POST /api/v1/episodes/:id/played
func PostPlayed(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := types.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Authentication required."})
			return
		}
		episodeID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.EpisodeService.MarkPlayed(c.Request.Context(), user.ID, episodeID); err != nil {
			types.Fail(c, err)
			return
		}

		types.OK(c, http.StatusOK, gin.H{})
	}
}
