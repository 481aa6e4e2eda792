package hashtags

import (
	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// RegisterRoutes registers hashtag routes.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", GetList(deps))
}
