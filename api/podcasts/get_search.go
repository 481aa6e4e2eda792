package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// GetSearch returns a page of podcasts whose title matches the query,
// case-insensitively.
// GET /api/v1/podcasts/search?query=&page=
func GetSearch(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("query")
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Query parameter is required."})
			return
		}
		page := types.ParsePageQuery(c)

		list, err := deps.PodcastService.Search(c.Request.Context(), query, page)
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
