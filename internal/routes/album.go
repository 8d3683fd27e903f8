package routes

import (
	"github.com/gin-gonic/gin"

	"melodybase/internal/handlers"
)

type AlbumRoutes struct {
	handler *handlers.AlbumHandler
}

func NewAlbumRoutes(handler *handlers.AlbumHandler) *AlbumRoutes {
	return &AlbumRoutes{handler: handler}
}

func (r *AlbumRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate gin.HandlerFunc) {
	albums := router.Group("/albums")
	{
		albums.GET("", r.handler.List)

		protected := albums.Group("")
		protected.Use(authenticate)
		protected.POST("", r.handler.Create)
	}

	router.GET("/formats", r.handler.Formats)
}
