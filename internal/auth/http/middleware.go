// Package http provides the admin token middleware.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/formrelay/internal/auth/domain"
	authService "github.com/allisson/formrelay/internal/auth/service"
	"github.com/allisson/formrelay/internal/httputil"
)

// AdminTokenHeader carries the admin token when it is not passed as a query parameter.
const AdminTokenHeader = "X-Admin-Token"

// AdminTokenMiddleware guards admin endpoints.
//
// The token is read from the "token" query parameter, falling back to the
// X-Admin-Token header. A missing or wrong token, or no configured admin token,
// yields 401 {"success":false,"message":"Unauthorized"}.
func AdminTokenMiddleware(verifier authService.AdminTokenVerifier, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			token = c.GetHeader(AdminTokenHeader)
		}

		var err error
		switch {
		case !verifier.Enabled():
			err = authDomain.ErrAdminDisabled
		case token == "":
			err = authDomain.ErrAdminTokenMissing
		case !verifier.Verify(token):
			err = authDomain.ErrAdminTokenInvalid
		}

		if err != nil {
			logger.Debug("admin authentication failed",
				slog.String("client_ip", c.ClientIP()),
				slog.String("reason", err.Error()))
			httputil.HandleErrorGin(c, err, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
