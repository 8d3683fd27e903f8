package routes

import (
	"github.com/gin-gonic/gin"

	"melodybase/internal/handlers"
)

type PerformanceRoutes struct {
	handler *handlers.PerformanceHandler
}

func NewPerformanceRoutes(handler *handlers.PerformanceHandler) *PerformanceRoutes {
	return &PerformanceRoutes{handler: handler}
}

func (r *PerformanceRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate gin.HandlerFunc) {
	performances := router.Group("/performances")
	{
		performances.GET("", r.handler.List)

		protected := performances.Group("")
		protected.Use(authenticate)
		protected.POST("", r.handler.Create)
	}
}
