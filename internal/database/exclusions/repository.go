// Package exclusions manages the global excluded-user list.
//
// Excluded users never gain or lose points. The list is stored as a JSON
// array of user ids in the settings table.
package exclusions

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/mrlokans/pointskeeper/internal/entities"
)

// Repository handles the excluded-user list.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new exclusions repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ExcludedUserIDs returns the current excluded-user ids, sorted ascending.
// An unset list is empty, not an error.
func (r *Repository) ExcludedUserIDs() ([]int64, error) {
	var setting entities.Setting
	err := r.db.Where("key = ?", entities.SettingKeyExcludedUsers).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []int64
	if err := json.Unmarshal([]byte(setting.Value), &ids); err != nil {
		return nil, fmt.Errorf("failed to decode excluded users: %w", err)
	}
	return ids, nil
}

// SetExcludedUserIDs replaces the excluded-user list. Duplicates are
// dropped and the stored list is sorted for stable reads.
func (r *Repository) SetExcludedUserIDs(ids []int64) error {
	seen := make(map[int64]bool, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })

	raw, err := json.Marshal(unique)
	if err != nil {
		return fmt.Errorf("failed to encode excluded users: %w", err)
	}

	var setting entities.Setting
	result := r.db.Where("key = ?", entities.SettingKeyExcludedUsers).First(&setting)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		setting = entities.Setting{
			Key:   entities.SettingKeyExcludedUsers,
			Value: string(raw),
		}
		return r.db.Create(&setting).Error
	} else if result.Error != nil {
		return result.Error
	}

	setting.Value = string(raw)
	return r.db.Save(&setting).Error
}
