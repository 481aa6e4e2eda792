package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// GetByHashTags returns a page of podcasts tagged with any of the given
// hashtag names.
// GET /api/v1/podcasts/by-hashtags?tags=a&tags=b&page=
func GetByHashTags(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		tags := c.QueryArray("tags")
		if len(tags) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "At least one tags parameter is required."})
			return
		}
		page := types.ParsePageQuery(c)

		list, err := deps.PodcastService.ListByHashTags(c.Request.Context(), tags, page)
		if err != nil {
			types.Fail(c, err)
			return
		}

		types.OK(c, http.StatusOK, gin.H{
			"podcasts":    list.Podcasts,
			"total_count": list.TotalCount,
			"total_pages": list.TotalPages,
		})
	}
}
