package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/schnackhq/forum-api/internal/core/ports"
)

const defaultAuditLimit = 50

// AuditHandler exposes the auth audit trail to administrators.
type AuditHandler struct {
	repo ports.AuditRepository
}

func NewAuditHandler(repo ports.AuditRepository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

// List handles GET /v1/audit?subject=<email>&limit=<n>.
//
// @Summary      List auth audit events for a subject
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        subject  query     string  true   "Subject email"
// @Param        limit    query     int     false  "Maximum events to return"
// @Success      200      {array}   domain.AuthEvent
// @Failure      400      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Router       /v1/audit [get]
func (h *AuditHandler) List(c echo.Context) error {
	subject := c.QueryParam("subject")
	if subject == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "subject is required")
	}

	limit := int64(defaultAuditLimit)
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}

	events, err := h.repo.ListBySubject(c.Request().Context(), subject, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
