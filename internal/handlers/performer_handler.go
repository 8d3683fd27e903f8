package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"melodybase/internal/responses"
	"melodybase/internal/services"
)

type PerformerHandler struct {
	performerService *services.PerformerService
}

func NewPerformerHandler(performerService *services.PerformerService) *PerformerHandler {
	return &PerformerHandler{performerService: performerService}
}

func (h *PerformerHandler) List(c *gin.Context) {
	performers, err := h.performerService.List()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to list performers")
		return
	}

	responses.Success(c, http.StatusOK, performers, "Performers retrieved successfully")
}

func (h *PerformerHandler) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name"         binding:"required"`
		CountryCode string `json:"country_code" binding:"required,len=2"`
		DebutYear   *int   `json:"debut_year"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide a name and a two-letter country code")
		return
	}

	performer, err := h.performerService.Create(req.Name, req.CountryCode, req.DebutYear)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not create performer")
		return
	}

	responses.Success(c, http.StatusCreated, performer, "Performer created successfully")
}

// Discography handles GET /api/v1/performers/:id
func (h *PerformerHandler) Discography(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid performer ID format")
		return
	}

	discography, err := h.performerService.Discography(id)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Performer not found")
		return
	}

	responses.Success(c, http.StatusOK, discography, "Performer retrieved successfully")
}

func (h *PerformerHandler) AddSong(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid performer ID format")
		return
	}

	var req struct {
		SongID uuid.UUID `json:"song_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide a song ID")
		return
	}

	if err := h.performerService.AddSong(id, req.SongID); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not add song to repertoire")
		return
	}

	responses.Success(c, http.StatusCreated, nil, "Song added to repertoire")
}

// Promotions handles GET /api/v1/performers/:id/promotions
func (h *PerformerHandler) Promotions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid performer ID format")
		return
	}

	profile, err := h.performerService.Promotions(id)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Performer not found")
		return
	}

	responses.Success(c, http.StatusOK, profile, "Promotion profile retrieved successfully")
}

func (h *PerformerHandler) AddPlatformPromotion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid performer ID format")
		return
	}

	var req struct {
		PlatformName string `json:"platform_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide a platform name")
		return
	}

	if err := h.performerService.AddPlatformPromotion(id, req.PlatformName); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not add platform promotion")
		return
	}

	responses.Success(c, http.StatusCreated, nil, "Platform promotion added")
}

func (h *PerformerHandler) AddCountryPromotion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid performer ID format")
		return
	}

	var req struct {
		CountryCode string `json:"country_code" binding:"required,len=2"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide a two-letter country code")
		return
	}

	if err := h.performerService.AddCountryPromotion(id, req.CountryCode); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not add country promotion")
		return
	}

	responses.Success(c, http.StatusCreated, nil, "Country promotion added")
}
