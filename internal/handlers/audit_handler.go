package handlers

import (
	"net/http"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// AuditHandler exposes the audit trail of statements, transactions and MSI purchases
type AuditHandler struct {
	audit services.AuditServiceInterface
}

func NewAuditHandler(audit services.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// GetEntityHistory
// @Summary Audit history of an entity
// @Tags Audit
// @Security BearerAuth
// @Produce json
// @Param entityType path string true "credit_card_statement, transaction or installment_purchase"
// @Param entityId path string true "Entity ID (UUID)"
// @Success 200 {object} SuccessResponse "Audit entries, oldest first"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Unknown entity type"
// @Router /audit/{entityType}/{entityId} [get]
func (h *AuditHandler) GetEntityHistory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	entityID, err := getUUIDParam(c, "entityId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid entity ID"))
	}

	entries, err := h.audit.GetEntityHistory(c.Request().Context(), userID, c.Param("entityType"), entityID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: entries,
		Meta: map[string]int{"total": len(entries)},
	})
}
