package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"personal-task-planner/internal/auth"
	"personal-task-planner/internal/model"
	"personal-task-planner/pkg/response"
)

// scopeKey is the gin context key the resolved scope is stored under.
const scopeKey = "request_scope"

// Scope resolves the account a request acts for and rejects unauthenticated
// requests. The signed-in session is authoritative; the X-User-Email header
// may narrow the scope to an explicit account, which downstream scope checks
// then validate against the active user.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		profile, err := m.authUC.Current(ctx)
		if err != nil {
			if !errors.Is(err, auth.ErrNotLoggedIn) {
				m.l.Errorf(ctx, "middleware.Scope: %v", err)
			}
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc := model.Scope{UserID: profile.Email, Name: profile.Name}
		if email := strings.TrimSpace(c.GetHeader("X-User-Email")); email != "" {
			sc = model.Scope{UserID: strings.ToLower(email)}
		}

		c.Set(scopeKey, sc)
		c.Next()
	}
}

// ScopeFromContext returns the scope stored by the Scope middleware.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
