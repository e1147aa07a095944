package repositories

import (
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSnapshotExists = errors.New("snapshot already exists for day")

type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new account snapshot repository
func NewSnapshotRepository(db *gorm.DB) SnapshotRepositoryInterface {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Create(snapshot *models.AccountSnapshot) error {
	if err := r.db.Create(snapshot).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrSnapshotExists
		}
		return fmt.Errorf("failed to create account snapshot: %w", err)
	}
	return nil
}

// Exists reports whether the account already has a snapshot for the day
func (r *snapshotRepository) Exists(accountID uuid.UUID, snapshotDate time.Time) (bool, error) {
	var count int64
	if err := r.db.Model(&models.AccountSnapshot{}).
		Where("account_id = ? AND snapshot_date = ?", accountID, snapshotDate.UTC()).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check account snapshot: %w", err)
	}
	return count > 0, nil
}

// GetLatestOnOrBefore returns, per account of the user, the newest snapshot
// taken on or before date.
func (r *snapshotRepository) GetLatestOnOrBefore(userID uuid.UUID, date time.Time) ([]models.AccountSnapshot, error) {
	var snapshots []models.AccountSnapshot
	if err := r.db.Where("user_id = ? AND snapshot_date <= ?", userID, date.UTC()).
		Order("account_id ASC").Order("snapshot_date DESC").
		Find(&snapshots).Error; err != nil {
		return nil, fmt.Errorf("failed to get account snapshots: %w", err)
	}

	latest := make([]models.AccountSnapshot, 0, len(snapshots))
	seen := make(map[uuid.UUID]bool)
	for _, s := range snapshots {
		if seen[s.AccountID] {
			continue
		}
		seen[s.AccountID] = true
		latest = append(latest, s)
	}
	return latest, nil
}
