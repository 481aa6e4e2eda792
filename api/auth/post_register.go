package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
	"github.com/podshelf/catalog-api/internal/services/users"
)

// PostRegister creates an account and returns a signed access token.
// POST /api/v1/auth/register
func PostRegister(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input users.CreateAccountInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Email, password and role are required."})
			return
		}

		token, err := deps.UserService.CreateAccount(c.Request.Context(), input)
		if err != nil {
			types.Fail(c, err)
			return
		}

		types.OK(c, http.StatusCreated, gin.H{"token": token})
	}
}
