package handler

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
)

// Report serves the static waitlist report page stored at path.
func Report(path string) echo.HandlerFunc {
	return func(c echo.Context) error {
		if st, err := os.Stat(path); err != nil || st.IsDir() {
			return fail(c, http.StatusNotFound, "report not found")
		}
		return c.File(path)
	}
}
