package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"campusfind-backend/internal/auth"
	profileDomain "campusfind-backend/internal/domain/profile"
)

const (
	claimsKey  = "auth.claims"
	profileKey = "auth.profile"
)

func unauthorized(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, map[string]any{"success": false, "message": msg})
}

func forbidden(c echo.Context, msg string) error {
	return c.JSON(http.StatusForbidden, map[string]any{"success": false, "message": msg})
}

// Authenticate parses a Bearer token when one is present, loads the caller's
// profile row and stores both on the context. The token only proves identity;
// the role always comes from the stored row, so a stale role claim on a
// still-valid token carries no privileges. Requests without a token pass
// through; route-level guards decide whether anonymous access is acceptable.
func Authenticate(secret string, profiles profileDomain.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return next(c)
			}
			if !strings.HasPrefix(header, "Bearer ") {
				return unauthorized(c, "invalid authorization header")
			}
			claims, err := auth.ValidateToken(secret, strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return unauthorized(c, "invalid token")
			}
			p, err := profiles.GetByProfileID(c.Request().Context(), claims.ProfileID)
			if err != nil {
				return unauthorized(c, "unknown profile")
			}
			c.Set(claimsKey, claims)
			c.Set(profileKey, p)
			return next(c)
		}
	}
}

// Gatekeeper rejects unauthenticated calls to protected path prefixes before
// any route handler runs.
func Gatekeeper(prefixes ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, p := range prefixes {
				if strings.HasPrefix(path, p) {
					if GetClaims(c) == nil {
						return unauthorized(c, "authentication required")
					}
					break
				}
			}
			return next(c)
		}
	}
}

// RequireAuth guards a route group that always needs a caller identity.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if GetClaims(c) == nil {
			return unauthorized(c, "authentication required")
		}
		return next(c)
	}
}

// RequireAdmin guards admin routes. The role check reads the profile row
// loaded by Authenticate, never the token claim.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p := GetProfile(c)
		if p == nil {
			return unauthorized(c, "authentication required")
		}
		if !p.IsAdmin() {
			return forbidden(c, "admin role required")
		}
		return next(c)
	}
}

// GetClaims retrieves the JWT claims stored by Authenticate, or nil.
func GetClaims(c echo.Context) *auth.Claims {
	claims, _ := c.Get(claimsKey).(*auth.Claims)
	return claims
}

// GetProfile retrieves the profile loaded by Authenticate, or nil.
func GetProfile(c echo.Context) *profileDomain.Profile {
	p, _ := c.Get(profileKey).(*profileDomain.Profile)
	return p
}

// IsAdmin reports whether the caller's profile row carries the admin role.
// Handlers that only adjust visibility (not privileges) may use it;
// privileged routes go through RequireAdmin.
func IsAdmin(c echo.Context) bool {
	p := GetProfile(c)
	return p != nil && p.IsAdmin()
}
