package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/admin"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/constants"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/utils"
)

// Authenticator resolves a bearer token to the admin it was issued for.
type Authenticator interface {
	Execute(ctx context.Context, token string) (*admin.Admin, error)
}

type AuthMiddleware struct {
	authenticator Authenticator
	logger        logger.Interface
}

func NewAuthMiddleware(authenticator Authenticator, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
		logger:        logger,
	}
}

// RequireAuth loads the admin behind the bearer token on every request, so a
// deleted admin loses access immediately.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Not authenticated")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		a, err := m.authenticator.Execute(c.Request.Context(), parts[1])
		if err != nil {
			m.logger.Warnw("failed to authenticate admin", "path", c.Request.URL.Path, "error", err)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAdminID, a.ID())
		c.Set(constants.ContextKeyAdmin, a)

		c.Next()
	}
}
