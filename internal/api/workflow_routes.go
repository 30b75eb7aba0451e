// workflow_routes.go: the three workflow operations plus session handling
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// initWorkflowRoutes registers the conversational workflow endpoints.
func (c *Controller) initWorkflowRoutes() {
	c.Group.POST("/session", c.StartSession)
	c.Group.DELETE("/session/:id", c.EndSession)

	c.Group.POST("/workflow/fetch-case", c.FetchCase)
	c.Group.POST("/workflow/verify-security", c.VerifySecurity)
	c.Group.POST("/workflow/confirm-decision", c.ConfirmDecision)
}

// SessionResponse carries the opaque conversation handle.
type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// StartSession mints a conversation handle for the dialogue policy.
func (c *Controller) StartSession(ctx echo.Context) error {
	sessionID := c.Facade.NewSession()
	return ctx.JSON(http.StatusCreated, SessionResponse{SessionID: sessionID})
}

// EndSession drops a conversation handle.
func (c *Controller) EndSession(ctx echo.Context) error {
	c.Facade.EndSession(ctx.Param("id"))
	return ctx.NoContent(http.StatusNoContent)
}

// FetchCaseRequest is the lookup payload.
type FetchCaseRequest struct {
	SessionID string `json:"session_id"`
	Username  string `json:"username"`
}

// FetchCase resolves the caller's name to at most one pending case.
func (c *Controller) FetchCase(ctx echo.Context) error {
	req := &FetchCaseRequest{}
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request format"})
	}

	result, err := c.Facade.FetchCase(req.SessionID, req.Username)
	if err != nil {
		return c.handleError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, result)
}

// VerifySecurityRequest is the challenge-response payload.
type VerifySecurityRequest struct {
	SessionID string `json:"session_id"`
	CaseID    uint   `json:"case_id"`
	Answer    string `json:"answer"`
}

// VerifySecurity checks the caller's answer to the case's security question.
func (c *Controller) VerifySecurity(ctx echo.Context) error {
	req := &VerifySecurityRequest{}
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request format"})
	}

	result, err := c.Facade.VerifySecurity(req.SessionID, req.CaseID, req.Answer)
	if err != nil {
		return c.handleError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, result)
}

// ConfirmDecisionRequest is the decision payload.
type ConfirmDecisionRequest struct {
	SessionID string `json:"session_id"`
	CaseID    uint   `json:"case_id"`
	Decision  string `json:"decision"`
}

// ConfirmDecision commits the caller's authorize/deny response.
func (c *Controller) ConfirmDecision(ctx echo.Context) error {
	req := &ConfirmDecisionRequest{}
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request format"})
	}

	result, err := c.Facade.ConfirmDecision(req.SessionID, req.CaseID, req.Decision)
	if err != nil {
		return c.handleError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, result)
}
