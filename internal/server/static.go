package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/osa911/agencysite/internal/api/dto/common"
)

const notFoundPage = "404.html"

// newStaticHandler serves the brochure site from dir for unmatched GET and
// HEAD requests. Unknown paths get 404.html when the site ships one.
// API paths and other methods always get a JSON 404.
func newStaticHandler(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqPath := c.Request.URL.Path
		isRead := c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead

		if dir == "" || !isRead || strings.HasPrefix(reqPath, "/api/") {
			c.JSON(http.StatusNotFound, common.NewErrorResponse(common.ErrCodeNotFound, "Resource not found", nil))
			return
		}

		// path.Clean on a rooted path removes every ".." segment
		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+reqPath)))
		if info, err := os.Stat(name); err == nil {
			if info.IsDir() {
				name = filepath.Join(name, "index.html")
			}
			if info, err := os.Stat(name); err == nil && !info.IsDir() {
				c.File(name)
				return
			}
		}

		page, err := os.ReadFile(filepath.Join(dir, notFoundPage))
		if err != nil {
			c.String(http.StatusNotFound, "404 page not found")
			return
		}
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", page)
	}
}
