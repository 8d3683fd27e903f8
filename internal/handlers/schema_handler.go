package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"melodybase/internal/responses"
	"melodybase/internal/services"
)

type SchemaHandler struct {
	schemaService *services.SchemaService
	verifyService *services.VerifyService
}

func NewSchemaHandler(schemaService *services.SchemaService, verifyService *services.VerifyService) *SchemaHandler {
	return &SchemaHandler{
		schemaService: schemaService,
		verifyService: verifyService,
	}
}

// Tables handles GET /api/v1/schema/tables
func (h *SchemaHandler) Tables(c *gin.Context) {
	tables, err := h.schemaService.Tables(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to introspect schema")
		return
	}

	responses.Success(c, http.StatusOK, tables, "Schema retrieved successfully")
}

// Diagram handles GET /api/v1/schema/diagram
func (h *SchemaHandler) Diagram(c *gin.Context) {
	diagram, err := h.schemaService.Diagram(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to generate schema diagram")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"mermaid": diagram,
	}, "Schema diagram generated successfully")
}

// Verify handles GET /api/v1/schema/verify. Pass ?refresh=true to bypass
// the cached report.
func (h *SchemaHandler) Verify(c *gin.Context) {
	refresh, _ := strconv.ParseBool(c.DefaultQuery("refresh", "false"))

	report, err := h.verifyService.Run(c.Request.Context(), refresh)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to verify schema")
		return
	}

	responses.Success(c, http.StatusOK, report, "Schema verification completed")
}
