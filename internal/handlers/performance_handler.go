package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"melodybase/internal/responses"
	"melodybase/internal/services"
)

type PerformanceHandler struct {
	performanceService *services.PerformanceService
}

func NewPerformanceHandler(performanceService *services.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{performanceService: performanceService}
}

func (h *PerformanceHandler) List(c *gin.Context) {
	performances, err := h.performanceService.List()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to list performances")
		return
	}

	responses.Success(c, http.StatusOK, performances, "Performances retrieved successfully")
}

func (h *PerformanceHandler) Create(c *gin.Context) {
	var req struct {
		PerformerID uuid.UUID `json:"performer_id" binding:"required"`
		SongID      uuid.UUID `json:"song_id"      binding:"required"`
		PerformedOn string    `json:"performed_on" binding:"required"` // YYYY-MM-DD
		Venue       string    `json:"venue"        binding:"required"`
		City        string    `json:"city"         binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide performer, song, date, venue and city")
		return
	}

	performedOn, err := time.Parse("2006-01-02", req.PerformedOn)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid performed_on date, expected YYYY-MM-DD")
		return
	}

	performance, err := h.performanceService.Create(req.PerformerID, req.SongID, performedOn, req.Venue, req.City)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not create performance")
		return
	}

	responses.Success(c, http.StatusCreated, performance, "Performance created successfully")
}
