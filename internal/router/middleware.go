package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitrine-store/gateway/pkg/global"
	"github.com/vitrine-store/gateway/pkg/models"
	"github.com/vitrine-store/gateway/pkg/token"
)

const sessionContextKey = "session"

// SessionMiddleware derives the request's session from the auth cookie. The
// decode is advisory: a malformed or expired token clears the cookie and the
// request proceeds unauthenticated, while the raw token of a valid-looking
// one rides along for the backend to judge.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := token.FromRequest(c.Request)
		if err != nil {
			c.Next()
			return
		}

		user, err := token.Decode(raw)
		if err != nil {
			if !errors.Is(err, token.ErrMissing) {
				log.Printf("Warning: dropping unusable auth cookie: %v", err)
				token.ClearCookie(c.Writer)
			}
			c.Next()
			return
		}

		c.Set(sessionContextKey, &models.Session{User: user, Token: raw})
		c.Next()
	}
}

// RequireSession gates the cart and checkout surface.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionFrom(c) == nil {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Unauthenticated", []global.ValidationError{
				{Field: "session", Message: "Login is required for this operation", Code: "unauthenticated"},
			}))
			c.Abort()
			return
		}
		c.Next()
	}
}

func sessionFrom(c *gin.Context) *models.Session {
	v, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	sess, ok := v.(*models.Session)
	if !ok {
		return nil
	}
	return sess
}
