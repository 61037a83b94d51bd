// Package rules provides database operations for points award rules.
//
// # Usage
//
//	repo := rules.NewRepository(db)
//	id, err := repo.CreateRule(map[string]any{"event": "user_register", "points": 50})
package rules

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/pointskeeper/internal/entities"
)

// Repository handles all award rule database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new rules repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateRule stores an award rule. The event and points_type keys are
// indexed; the full settings map is persisted as JSON.
func (r *Repository) CreateRule(settings map[string]any) (int64, error) {
	event, _ := settings["event"].(string)
	if event == "" {
		return 0, fmt.Errorf("rule settings missing event")
	}
	pointsType, _ := settings["points_type"].(string)

	raw, err := json.Marshal(settings)
	if err != nil {
		return 0, fmt.Errorf("failed to encode rule settings: %w", err)
	}

	rule := entities.AwardRule{
		Event:      event,
		PointsType: pointsType,
		Settings:   string(raw),
	}
	if err := r.db.Create(&rule).Error; err != nil {
		return 0, err
	}

	return int64(rule.ID), nil
}

// RulesForEvent returns the rules registered for an event, ordered by id.
func (r *Repository) RulesForEvent(event string) ([]entities.AwardRule, error) {
	var rules []entities.AwardRule
	err := r.db.Where("event = ?", event).Order("id").Find(&rules).Error
	return rules, err
}

// RuleSettings decodes a stored rule's settings map.
func RuleSettings(rule *entities.AwardRule) (map[string]any, error) {
	var settings map[string]any
	if err := json.Unmarshal([]byte(rule.Settings), &settings); err != nil {
		return nil, fmt.Errorf("failed to decode rule settings: %w", err)
	}
	return settings, nil
}
