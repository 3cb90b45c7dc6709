package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys written by HostAuth.
const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

// RoleHost is the only role allowed to change the waitlist.
const RoleHost = "HOST"

// HostAuth validates a Bearer HS256 token and requires its role claim to be
// one of roles.  An empty secret disables the check entirely so deployments
// behind a trusted network keep the open API.
func HostAuth(secret string, roles ...string) echo.MiddlewareFunc {
	if secret == "" {
		return passthrough
	}
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearer(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"ok": false, "results": "missing bearer token"})
			}
			claims, err := parseHostToken(raw, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"ok": false, "results": "invalid token"})
			}

			sub, _ := claims.GetSubject()
			role, _ := claims["role"].(string)
			c.Set(ctxUserID, sub)
			c.Set(ctxRole, role)

			if len(allowed) > 0 && !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"ok": false, "results": "forbidden"})
			}
			return next(c)
		}
	}
}

func bearer(c echo.Context) (string, bool) {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(auth, "Bearer "), true
}

func parseHostToken(raw, secret string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}

// bearerSubject returns the subject of a valid host token on the request, or
// "anon".  Unverifiable tokens never earn their own bucket.
func bearerSubject(c echo.Context, secret string) string {
	if secret == "" {
		return "anon"
	}
	raw, ok := bearer(c)
	if !ok {
		return "anon"
	}
	claims, err := parseHostToken(raw, secret)
	if err != nil {
		return "anon"
	}
	if sub, _ := claims.GetSubject(); sub != "" {
		return sub
	}
	return "anon"
}
