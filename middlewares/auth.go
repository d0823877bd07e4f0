package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumberjack100/app-remote-config-site-backend/auth"
	"github.com/Lumberjack100/app-remote-config-site-backend/controllers"
	"github.com/Lumberjack100/app-remote-config-site-backend/store"
)

// AuthMiddleware resolves the Authorization header to a user. Requests with a
// missing or invalid token, or a subject that no longer exists, are rejected
// with 401 before reaching the handler.
func AuthMiddleware(tokens *auth.TokenService, users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			controllers.Fail(c, http.StatusUnauthorized, controllers.MsgUnauthorized)
			c.Abort()
			return
		}

		userID, err := tokens.Validate(auth.ExtractToken(header))
		if err != nil {
			controllers.Fail(c, http.StatusUnauthorized, controllers.MsgUnauthorized)
			c.Abort()
			return
		}

		user, err := users.ByID(userID)
		if err != nil {
			controllers.Fail(c, http.StatusInternalServerError, controllers.MsgInternalError)
			c.Abort()
			return
		}
		if user == nil {
			controllers.Fail(c, http.StatusUnauthorized, controllers.MsgUnauthorized)
			c.Abort()
			return
		}

		c.Set(controllers.CurrentUserKey, user)
		c.Next()
	}
}
