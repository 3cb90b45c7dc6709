package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Preflight answers every OPTIONS request before routing with 200 and the
// headers browsers need to send JSON bodies with the write verbs.  Register
// it with e.Pre so it also covers paths that have no OPTIONS route.
func Preflight(origin string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodOptions {
				return next(c)
			}
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type")
			h.Set(echo.HeaderAccessControlAllowMethods, "GET,POST,PATCH,DELETE")
			if origin != "" {
				h.Set(echo.HeaderAccessControlAllowOrigin, origin)
			}
			return c.NoContent(http.StatusOK)
		}
	}
}

// AllowOrigin stamps Access-Control-Allow-Origin on every response so the
// host's browser front end can call the API cross-origin.
func AllowOrigin(origin string) echo.MiddlewareFunc {
	if origin == "" {
		return passthrough
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, origin)
			return next(c)
		}
	}
}
