package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"melodybase/internal/responses"
	"melodybase/internal/services"
)

type AlbumHandler struct {
	albumService *services.AlbumService
}

func NewAlbumHandler(albumService *services.AlbumService) *AlbumHandler {
	return &AlbumHandler{albumService: albumService}
}

func (h *AlbumHandler) List(c *gin.Context) {
	albums, err := h.albumService.List()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to list albums")
		return
	}

	responses.Success(c, http.StatusOK, albums, "Albums retrieved successfully")
}

func (h *AlbumHandler) Create(c *gin.Context) {
	var req struct {
		Title       string    `json:"title"        binding:"required"`
		PerformerID uuid.UUID `json:"performer_id" binding:"required"`
		FormatCode  string    `json:"format_code"  binding:"required"`
		ReleasedOn  string    `json:"released_on"` // YYYY-MM-DD, optional
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide a title, performer ID and format code")
		return
	}

	var releasedOn *time.Time
	if req.ReleasedOn != "" {
		parsed, err := time.Parse("2006-01-02", req.ReleasedOn)
		if err != nil {
			responses.Fail(c, http.StatusBadRequest, err, "Invalid released_on date, expected YYYY-MM-DD")
			return
		}
		releasedOn = &parsed
	}

	album, err := h.albumService.Create(req.Title, req.PerformerID, req.FormatCode, releasedOn)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not create album")
		return
	}

	responses.Success(c, http.StatusCreated, album, "Album created successfully")
}

func (h *AlbumHandler) Formats(c *gin.Context) {
	formats, err := h.albumService.ListFormats()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to list formats")
		return
	}

	responses.Success(c, http.StatusOK, formats, "Formats retrieved successfully")
}
