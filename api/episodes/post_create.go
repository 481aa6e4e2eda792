package episodes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
	"github.com/podshelf/catalog-api/internal/services/episodes"
)

// PostCreate adds an episode to a podcast the authenticated host owns.
// POST /api/v1/podcasts/:id/episodes
func PostCreate(deps *types.Dependencies) gin.HandlerFunc {
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

		var input episodes.CreateEpisodeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Title is required."})
			return
		}

		if _, err := deps.PodcastService.GetForHost(c.Request.Context(), user.ID, podcastID); err != nil {
			types.Fail(c, err)
			return
		}

		episode, err := deps.EpisodeService.Create(c.Request.Context(), podcastID, input)
		if err != nil {
			types.Fail(c, err)
			return
		}

		types.OK(c, http.StatusCreated, gin.H{"episode": episode})
	}
}
