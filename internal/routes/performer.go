package routes

import (
	"github.com/gin-gonic/gin"

	"melodybase/internal/handlers"
)

type PerformerRoutes struct {
	handler *handlers.PerformerHandler
}

func NewPerformerRoutes(handler *handlers.PerformerHandler) *PerformerRoutes {
	return &PerformerRoutes{handler: handler}
}

func (r *PerformerRoutes) RegisterRoutes(router *gin.RouterGroup, authenticate gin.HandlerFunc) {
	performers := router.Group("/performers")
	{
		performers.GET("", r.handler.List)
		performers.GET("/:id", r.handler.Discography)
		performers.GET("/:id/promotions", r.handler.Promotions)

		protected := performers.Group("")
		protected.Use(authenticate)
		protected.POST("", r.handler.Create)
		protected.POST("/:id/songs", r.handler.AddSong)
		protected.POST("/:id/promotions/platforms", r.handler.AddPlatformPromotion)
		protected.POST("/:id/promotions/countries", r.handler.AddCountryPromotion)
	}
}
