// cases.go: sanitized case inspection endpoints for operators
package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/securebank/fraudflow/internal/workflow"
)

// initCaseRoutes registers the case inspection endpoints.
func (c *Controller) initCaseRoutes() {
	c.Group.GET("/cases", c.ListCases)
	c.Group.GET("/cases/:id", c.GetCase)
}

// CaseListResponse wraps the sanitized case list.
type CaseListResponse struct {
	Cases []workflow.CaseSummary `json:"cases"`
	Total int                    `json:"total"`
}

// ListCases returns every case in sanitized form.
func (c *Controller) ListCases(ctx echo.Context) error {
	cases, err := c.Service.ListCases()
	if err != nil {
		return c.handleError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, CaseListResponse{Cases: cases, Total: len(cases)})
}

// CaseDetailResponse is a single sanitized case plus its audit note.
type CaseDetailResponse struct {
	Case        workflow.CaseSummary `json:"case"`
	OutcomeNote string               `json:"outcome_note,omitempty"`
}

// GetCase returns one sanitized case by ID.
func (c *Controller) GetCase(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid case id"})
	}

	summary, note, err := c.Service.GetCase(uint(id))
	if err != nil {
		return c.handleError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, CaseDetailResponse{Case: *summary, OutcomeNote: note})
}
