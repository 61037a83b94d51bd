// Package points provides database operations for user point balances.
//
// # Usage
//
//	repo := points.NewRepository(db)
//	err := repo.AdjustBalance(userID, 25, "points", "register")
package points

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/pointskeeper/internal/entities"
)

// Repository handles all balance database operations. Adjustments are
// written to the points log by default; callers migrating historical
// balances can suspend logging for the duration of their run.
type Repository struct {
	db      *gorm.DB
	logging bool
}

// NewRepository creates a new points repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db, logging: true}
}

// AdjustBalance applies an additive adjustment to the user's balance for
// the given points type, creating the balance row if needed. Unless logging
// is suspended, the adjustment is also recorded in the points log under the
// reason tag.
func (r *Repository) AdjustBalance(userID int64, delta int, pointsType, reason string) error {
	var balance entities.Balance
	result := r.db.Where("user_id = ? AND points_type = ?", userID, pointsType).First(&balance)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		balance = entities.Balance{
			UserID:     userID,
			PointsType: pointsType,
			Points:     delta,
		}
		if err := r.db.Create(&balance).Error; err != nil {
			return err
		}
	} else if result.Error != nil {
		return result.Error
	} else {
		balance.Points += delta
		if err := r.db.Save(&balance).Error; err != nil {
			return err
		}
	}

	if !r.logging {
		return nil
	}

	logEntry := entities.PointsLog{
		UserID:     userID,
		Points:     delta,
		PointsType: pointsType,
		LogType:    reason,
		Date:       time.Now(),
	}
	return r.db.Create(&logEntry).Error
}

// GetBalance returns the user's balance for the given points type. Users
// without a balance row have a balance of zero.
func (r *Repository) GetBalance(userID int64, pointsType string) (int, error) {
	var balance entities.Balance
	err := r.db.Where("user_id = ? AND points_type = ?", userID, pointsType).First(&balance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return balance.Points, nil
}

// SuspendLogging disables transaction logging for adjustments until the
// returned resume function is called.
func (r *Repository) SuspendLogging() (resume func()) {
	r.logging = false
	return func() { r.logging = true }
}
