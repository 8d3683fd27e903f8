package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"melodybase/internal/responses"
	"melodybase/internal/services"
)

type SongHandler struct {
	songService *services.SongService
}

func NewSongHandler(songService *services.SongService) *SongHandler {
	return &SongHandler{songService: songService}
}

func (h *SongHandler) List(c *gin.Context) {
	songs, err := h.songService.List()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to list songs")
		return
	}

	responses.Success(c, http.StatusOK, songs, "Songs retrieved successfully")
}

func (h *SongHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid song ID format")
		return
	}

	song, err := h.songService.Get(id)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Song not found")
		return
	}

	responses.Success(c, http.StatusOK, song, "Song retrieved successfully")
}

func (h *SongHandler) Create(c *gin.Context) {
	var req struct {
		Title           string   `json:"title"            binding:"required"`
		DurationSeconds int      `json:"duration_seconds" binding:"required,gt=0"`
		LanguageCodes   []string `json:"language_codes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide a title and a positive duration")
		return
	}

	song, err := h.songService.Create(req.Title, req.DurationSeconds, req.LanguageCodes)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not create song")
		return
	}

	responses.Success(c, http.StatusCreated, song, "Song created successfully")
}

func (h *SongHandler) Languages(c *gin.Context) {
	languages, err := h.songService.ListLanguages()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to list languages")
		return
	}

	responses.Success(c, http.StatusOK, languages, "Languages retrieved successfully")
}
