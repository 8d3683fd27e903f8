package routes

import (
	"github.com/gin-gonic/gin"

	"melodybase/internal/handlers"
)

type WorkbenchRoutes struct {
	handler *handlers.WorkbenchHandler
}

func NewWorkbenchRoutes(handler *handlers.WorkbenchHandler) *WorkbenchRoutes {
	return &WorkbenchRoutes{handler: handler}
}

func (r *WorkbenchRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate, requireAdmin gin.HandlerFunc) {
	workbench := router.Group("/workbench")
	{
		workbench.GET("/points", r.handler.Points)
		workbench.GET("/points/:number", r.handler.Point)
		workbench.GET("/runs", r.handler.Runs)
		workbench.GET("/runs/:id", r.handler.RunDetail)

		// Running a point executes DDL against the database server.
		protected := workbench.Group("")
		protected.Use(authenticate, requireAdmin)
		protected.POST("/points/:number/run", r.handler.Run)
	}
}
