package hashtags

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// GetList returns a page of hashtags with their tagged podcasts hydrated.
// GET /api/v1/hashtags?page=
func GetList(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := types.ParsePageQuery(c)

		list, err := deps.HashTagService.ListAll(c.Request.Context(), page)
		if err != nil {
			types.Fail(c, err)
			return
		}

		types.OK(c, http.StatusOK, gin.H{
			"hash_tags":   list.HashTags,
			"total_count": list.TotalCount,
			"total_pages": list.TotalPages,
		})
	}
}
