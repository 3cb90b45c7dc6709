package handler

import (
	"github.com/labstack/echo/v4"
)

// Envelope is the body of every waitlist API response.  Results holds the
// new id, a list of entries or an error message depending on the call;
// updates and deletes omit it.
type Envelope struct {
	OK      bool `json:"ok"`
	Results any  `json:"results,omitempty"`
}

func ok(c echo.Context, results any) error {
	return c.JSON(200, Envelope{OK: true, Results: results})
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, Envelope{OK: false, Results: msg})
}
