package handler

import (
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the HTML pages of the admin front-end.
type PageHandler struct {
	publicDir string
}

// NewPageHandler creates a page handler rooted at publicDir.
func NewPageHandler(publicDir string) *PageHandler {
	return &PageHandler{publicDir: publicDir}
}

// Index serves the login page.
func (h *PageHandler) Index(c echo.Context) error {
	return c.File(filepath.Join(h.publicDir, "index.html"))
}

// Page returns a handler serving <name>.html.
func (h *PageHandler) Page(name string) echo.HandlerFunc {
	file := filepath.Join(h.publicDir, name+".html")
	return func(c echo.Context) error {
		return c.File(file)
	}
}
