package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// GetMinePodcast returns one of the authenticated host's podcasts with
// episodes, reviews and subscribers hydrated. Fails if the podcast belongs to
// another host.
// GET /api/v1/podcasts/mine/:id
func GetMinePodcast(deps *types.Dependencies) gin.HandlerFunc {
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

		podcast, err := deps.PodcastService.GetForHost(c.Request.Context(), user.ID, podcastID)
		if err != nil {
			types.Fail(c, err)
			return
		}

		types.OK(c, http.StatusOK, gin.H{"podcast": podcast})
	}
}
