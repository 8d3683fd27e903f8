package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"melodybase/internal/responses"
	"melodybase/internal/services"
)

type WorkbenchHandler struct {
	workbenchService *services.WorkbenchService
}

func NewWorkbenchHandler(workbenchService *services.WorkbenchService) *WorkbenchHandler {
	return &WorkbenchHandler{workbenchService: workbenchService}
}

// Points handles GET /api/v1/workbench/points
func (h *WorkbenchHandler) Points(c *gin.Context) {
	responses.Success(c, http.StatusOK, h.workbenchService.Points(), "Points retrieved successfully")
}

// Point handles GET /api/v1/workbench/points/:number
func (h *WorkbenchHandler) Point(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid point number")
		return
	}

	point, err := h.workbenchService.Point(number)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Point not found")
		return
	}

	responses.Success(c, http.StatusOK, point, "Point retrieved successfully")
}

// Run handles POST /api/v1/workbench/points/:number/run. The response is
// the full report; a report with failing checks is still a completed run.
func (h *WorkbenchHandler) Run(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid point number")
		return
	}

	report, err := h.workbenchService.RunPoint(c.Request.Context(), number)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to run point")
		return
	}

	responses.Success(c, http.StatusOK, report, "Point executed successfully")
}

// Runs handles GET /api/v1/workbench/runs?point=N&limit=M
func (h *WorkbenchHandler) Runs(c *gin.Context) {
	pointNumber, _ := strconv.Atoi(c.DefaultQuery("point", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	runs, err := h.workbenchService.RunHistory(pointNumber, limit)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to list runs")
		return
	}

	responses.Success(c, http.StatusOK, runs, "Runs retrieved successfully")
}

// RunDetail handles GET /api/v1/workbench/runs/:id
func (h *WorkbenchHandler) RunDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid run ID format")
		return
	}

	run, report, err := h.workbenchService.RunDetail(id)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to load run")
		return
	}
	if run == nil {
		responses.Fail(c, http.StatusNotFound, nil, "Run not found")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"run":    run,
		"report": report,
	}, "Run retrieved successfully")
}
