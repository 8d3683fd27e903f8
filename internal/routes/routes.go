package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"melodybase/internal/handlers"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	GoogleAuth   *handlers.GoogleAuthHandler
	Performers   *handlers.PerformerHandler
	Songs        *handlers.SongHandler
	Albums       *handlers.AlbumHandler
	Performances *handlers.PerformanceHandler
	Recordings   *handlers.RecordingHandler
	Schema       *handlers.SchemaHandler
	Workbench    *handlers.WorkbenchHandler
}

// RegisterRoutes wires every resource under /api/v1. Reads are public;
// writes require a session, and running workbench points is admin-only.
func RegisterRoutes(router *gin.Engine, h Handlers, authenticate, requireAdmin gin.HandlerFunc) {
	api := router.Group("/api/v1")

	NewAuthRoutes(h.Auth, h.GoogleAuth).RegisterRoutes(api, authenticate)
	NewPerformerRoutes(h.Performers).RegisterRoutes(api, authenticate)
	NewSongRoutes(h.Songs).RegisterRoutes(api, authenticate)
	NewAlbumRoutes(h.Albums).RegisterRoutes(api, authenticate)
	NewPerformanceRoutes(h.Performances).RegisterRoutes(api, authenticate)
	NewRecordingRoutes(h.Recordings).RegisterRoutes(api, authenticate)
	NewSchemaRoutes(h.Schema).RegisterRoutes(api)
	NewWorkbenchRoutes(h.Workbench).RegisterRoutes(api, authenticate, requireAdmin)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
