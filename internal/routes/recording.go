package routes

import (
	"github.com/gin-gonic/gin"

	"melodybase/internal/handlers"
)

type RecordingRoutes struct {
	handler *handlers.RecordingHandler
}

func NewRecordingRoutes(handler *handlers.RecordingHandler) *RecordingRoutes {
	return &RecordingRoutes{handler: handler}
}

func (r *RecordingRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate gin.HandlerFunc) {
	recordings := router.Group("/recordings")
	{
		recordings.GET("", r.handler.List)
		recordings.GET("/engineers", r.handler.Engineers)

		protected := recordings.Group("")
		protected.Use(authenticate)
		protected.POST("", r.handler.Create)
	}
}
