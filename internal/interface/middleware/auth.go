package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spszl/teacher-reviews/pkg/helpers"
	"github.com/spszl/teacher-reviews/pkg/response"
	"github.com/spszl/teacher-reviews/pkg/session"
)

// RequireAdmin resolves the session cookie against the session store and
// rejects any request that does not carry a live admin session. Protected
// handlers run only after this check, so a rejected request has no side
// effects on the store.
func RequireAdmin(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookie)
		if err != nil || token == "" {
			resp := response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		sess, found, err := sessions.Get(c.Request.Context(), token)
		if err != nil || !found || !sess.Admin {
			resp := response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		c.Set("sessionToken", token)
		c.Next()
	}
}
