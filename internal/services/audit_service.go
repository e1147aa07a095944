package services

import (
	"context"
	"fmt"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
)

// AuditService reads the audit trail of ledger entities
type AuditService struct {
	uow repositories.UnitOfWork
}

// NewAuditService creates a new audit service
func NewAuditService(uow repositories.UnitOfWork) AuditServiceInterface {
	return &AuditService{
		uow: uow,
	}
}

// ValidateEntityType validates that the entity type is one the ledger audits
func ValidateEntityType(entityType string) error {
	validTypes := map[string]bool{
		models.AuditEntityStatement:   true,
		models.AuditEntityTransaction: true,
		models.AuditEntityInstallment: true,
	}

	if !validTypes[entityType] {
		return validationError("invalid entity type: %s", entityType)
	}
	return nil
}

// GetEntityHistory returns the user's audit entries for one entity, oldest
// first. Entries recorded for other users are never returned.
func (s *AuditService) GetEntityHistory(ctx context.Context, userID uuid.UUID, entityType string, entityID uuid.UUID) ([]*models.AuditLog, error) {
	if err := ValidateEntityType(entityType); err != nil {
		return nil, err
	}

	var history []*models.AuditLog
	err := s.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		logs, err := repos.AuditLogs().GetByEntity(entityType, entityID.String())
		if err != nil {
			return fmt.Errorf("failed to get audit history: %w", err)
		}

		history = make([]*models.AuditLog, 0, len(logs))
		for _, log := range logs {
			if log.UserID != nil && *log.UserID == userID {
				history = append(history, log)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}
