package routes

import (
	"github.com/gin-gonic/gin"

	"melodybase/internal/handlers"
)

type SchemaRoutes struct {
	handler *handlers.SchemaHandler
}

func NewSchemaRoutes(handler *handlers.SchemaHandler) *SchemaRoutes {
	return &SchemaRoutes{handler: handler}
}

func (r *SchemaRoutes) RegisterRoutes(router *gin.RouterGroup) {
	schema := router.Group("/schema")
	{
		schema.GET("/tables", r.handler.Tables)
		schema.GET("/diagram", r.handler.Diagram)
		schema.GET("/verify", r.handler.Verify)
	}
}
