package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rollinggrill/streetside/internal/config"
)

const (
	// claimsContextKey stores the verified token claims on the echo context.
	claimsContextKey = "authClaims"

	// InternalSecretHeader carries the shared secret for trusted-caller
	// endpoints.
	InternalSecretHeader = "X-Internal-Secret"
)

type Middleware struct {
	config  *config.AuthConfig
	log     *zap.Logger
	service *Service
	gate    *Gate
}

func NewMiddleware(config *config.AuthConfig, log *zap.Logger, service *Service, gate *Gate) *Middleware {
	return &Middleware{
		config:  config,
		log:     log,
		service: service,
		gate:    gate,
	}
}

// ClaimsFrom returns the verified claims stashed by RequireToken.
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*Claims)
	return claims, ok
}

// RequireToken verifies the bearer token and stashes its claims. Fails
// closed on any verification error.
func (m *Middleware) RequireToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing token"})
			}

			token := strings.TrimPrefix(header, "Bearer ")

			claims, err := m.service.ValidateToken(token)
			if err != nil {
				m.log.Warn("token verification failed", zap.Error(err))
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// RequireAllowlist gates on allowlist membership (or an empty allowlist,
// which leaves access unrestricted).
func (m *Middleware) RequireAllowlist() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing token"})
			}

			authorized, err := m.gate.Authorize(claims.Email)
			if err != nil {
				m.log.Error("allowlist check failed", zap.Error(err))
				return c.JSON(http.StatusForbidden, echo.Map{"error": "not authorized"})
			}
			if !authorized {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "not authorized"})
			}

			return next(c)
		}
	}
}

// RequireProjectMember gates on live project membership; fails closed on
// any fetch error.
func (m *Middleware) RequireProjectMember() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing token"})
			}

			if !m.gate.AuthorizeProject(c.Request().Context(), claims.Email) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "not authorized"})
			}

			return next(c)
		}
	}
}

// RequireInternalSecret guards trusted-caller endpoints with the shared
// secret. A mismatch is rejected outright and never counted as a login
// failure.
func (m *Middleware) RequireInternalSecret() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m.config.InternalSecret == "" {
				m.log.Warn("internal secret is not configured, rejecting request")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid secret"})
			}

			presented := c.Request().Header.Get(InternalSecretHeader)
			if subtle.ConstantTimeCompare([]byte(presented), []byte(m.config.InternalSecret)) != 1 {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid secret"})
			}

			return next(c)
		}
	}
}
