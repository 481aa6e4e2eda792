package users

import (
	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// RegisterRoutes registers account self-service routes.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, listenerOnly gin.HandlerFunc) {
	router.GET("/me", GetMe(deps))
	router.PATCH("/me", PatchMe(deps))
	router.DELETE("/me", DeleteMe(deps))
	router.GET("/me/subscriptions", listenerOnly, GetSubscriptions(deps))
}
