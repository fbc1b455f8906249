package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmuiruri/duka-api/utils"
)

// SessionCookie names the cookie that carries the signed session token.
const SessionCookie = "duka_session"

const principalKey = "principal"

// Principal is the identity resolved once per request from the session
// cookie and handed to services explicitly.
type Principal struct {
	UserID uint
	Email  string
	Name   string
}

// ResolveIdentity parses the session cookie, if any, into a Principal on the
// request context. Requests with no cookie, or a stale or tampered one, stay
// anonymous rather than failing.
func ResolveIdentity(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(SessionCookie)
		if err != nil || token == "" {
			ctx.Next()
			return
		}
		claims, err := utils.ParseSessionToken(token, secret)
		if err != nil {
			ctx.Next()
			return
		}
		ctx.Set(principalKey, Principal{UserID: claims.UserID, Email: claims.Email, Name: claims.Name})
		ctx.Next()
	}
}

// CurrentUser returns the authenticated principal, or false for anonymous
// requests.
func CurrentUser(ctx *gin.Context) (Principal, bool) {
	v, exists := ctx.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	principal, ok := v.(Principal)
	return principal, ok
}

// RequireAuth gates cart routes: anonymous requests are sent to the login
// flow instead of reaching the handler.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, ok := CurrentUser(ctx); !ok {
			ctx.Redirect(http.StatusSeeOther, "/login")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
