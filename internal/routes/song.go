package routes

import (
	"github.com/gin-gonic/gin"

	"melodybase/internal/handlers"
)

type SongRoutes struct {
	handler *handlers.SongHandler
}

func NewSongRoutes(handler *handlers.SongHandler) *SongRoutes {
	return &SongRoutes{handler: handler}
}

func (r *SongRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate gin.HandlerFunc) {
	songs := router.Group("/songs")
	{
		songs.GET("", r.handler.List)
		songs.GET("/:id", r.handler.Get)

		protected := songs.Group("")
		protected.Use(authenticate)
		protected.POST("", r.handler.Create)
	}

	router.GET("/languages", r.handler.Languages)
}
