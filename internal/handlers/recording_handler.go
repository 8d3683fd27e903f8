package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"melodybase/internal/responses"
	"melodybase/internal/services"
)

type RecordingHandler struct {
	recordingService *services.RecordingService
}

func NewRecordingHandler(recordingService *services.RecordingService) *RecordingHandler {
	return &RecordingHandler{recordingService: recordingService}
}

func (h *RecordingHandler) List(c *gin.Context) {
	recordings, err := h.recordingService.List()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to list recordings")
		return
	}

	responses.Success(c, http.StatusOK, recordings, "Recordings retrieved successfully")
}

func (h *RecordingHandler) Engineers(c *gin.Context) {
	engineers, err := h.recordingService.ListEngineers()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to list engineers")
		return
	}

	responses.Success(c, http.StatusOK, engineers, "Engineers retrieved successfully")
}

func (h *RecordingHandler) Create(c *gin.Context) {
	var req struct {
		SongID       uuid.UUID `json:"song_id"       binding:"required"`
		EngineerName string    `json:"engineer_name" binding:"required"`
		StudioName   string    `json:"studio_name"   binding:"required"`
		RecordedOn   string    `json:"recorded_on"   binding:"required"` // YYYY-MM-DD
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide song, engineer, studio and date")
		return
	}

	recordedOn, err := time.Parse("2006-01-02", req.RecordedOn)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid recorded_on date, expected YYYY-MM-DD")
		return
	}

	recording, err := h.recordingService.Create(req.SongID, req.EngineerName, req.StudioName, recordedOn)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not create recording")
		return
	}

	responses.Success(c, http.StatusCreated, recording, "Recording created successfully")
}
