package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	apphttp "tradequote_backend/internal/http"
	"tradequote_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// New builds the gin engine: shared middleware, health, metrics, module routes and,
// when STATIC_DIR is set, the single-page client.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(httpkit.CORS(app.Config))

	api := engine.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	if app.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(app.Metrics))
	}

	ctx := &apphttp.RouterContext{
		Engine: engine,
		API:    api,
		Config: app.Config,
	}
	for _, module := range app.Modules {
		module.RegisterRoutes(ctx)
		app.Logger.Debug("registered module routes", "module", module.Name())
	}

	if dir := app.Config.GetStaticDir(); dir != "" {
		engine.NoRoute(spaHandler(dir))
	}

	return engine
}

// spaHandler serves files from dir and falls back to index.html for client routes.
// Unknown /api paths stay JSON 404s.
func spaHandler(dir string) gin.HandlerFunc {
	root := filepath.Clean(dir)
	index := filepath.Join(root, "index.html")
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || path == "/api" {
			httpkit.Error(c, http.StatusNotFound, "Not found", nil)
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			httpkit.Error(c, http.StatusNotFound, "Not found", nil)
			return
		}

		candidate := filepath.Join(root, filepath.FromSlash(filepath.Clean("/"+path)))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			c.File(candidate)
			return
		}
		c.File(index)
	}
}
