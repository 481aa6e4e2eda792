package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// DeletePodcast removes a podcast the authenticated host owns, cascading its
// episodes, reviews, subscriptions and hashtag links.
// DELETE /api/v1/podcasts/:id
func DeletePodcast(deps *types.Dependencies) gin.HandlerFunc {
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

		if _, err := deps.PodcastService.GetForHost(c.Request.Context(), user.ID, podcastID); err != nil {
			types.Fail(c, err)
			return
		}

		if err := deps.PodcastService.Delete(c.Request.Context(), podcastID); err != nil {
			types.Fail(c, err)
			return
		}

		types.OK(c, http.StatusOK, gin.H{})
	}
}
