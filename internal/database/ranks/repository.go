// Package ranks provides database operations for rank groups.
//
// A rank group is an ordered set of ranks for one points type. Position 0
// is the group's base rank, which exists as soon as the group does; the
// remaining ranks are ordered by ascending position.
package ranks

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/pointskeeper/internal/entities"
)

// Repository handles all rank database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new ranks repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateGroup creates a rank group by inserting its base rank at position 0.
// Creating an existing group is an error.
func (r *Repository) CreateGroup(group, kind, baseName string) (*entities.Rank, error) {
	existing, err := r.BaseRank(group)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("rank group %q already exists", group)
	}

	base := entities.Rank{
		Name:      baseName,
		Type:      entities.RankTypeBase,
		RankGroup: group,
		Position:  0,
	}
	if err := r.db.Create(&base).Error; err != nil {
		return nil, err
	}
	return &base, nil
}

// BaseRank returns the group's base rank, or nil if the group doesn't
// exist.
func (r *Repository) BaseRank(group string) (*entities.Rank, error) {
	var base entities.Rank
	err := r.db.Where("rank_group = ? AND position = 0", group).First(&base).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &base, nil
}

// UpdateRank rewrites an existing rank's name, kind, group, and position.
func (r *Repository) UpdateRank(id int64, name, kind, group string, position int) error {
	result := r.db.Model(&entities.Rank{}).Where("id = ?", id).Updates(map[string]any{
		"name":       name,
		"type":       kind,
		"rank_group": group,
		"position":   position,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("rank %d not found", id)
	}
	return nil
}

// AddRank appends a rank to a group at the given position and returns its
// new id.
func (r *Repository) AddRank(name, kind, group string, position int, config entities.RankConfig) (int64, error) {
	rank := entities.Rank{
		Name:       name,
		Type:       kind,
		RankGroup:  group,
		Position:   position,
		Points:     config.Points,
		PointsType: config.PointsType,
	}
	if err := r.db.Create(&rank).Error; err != nil {
		return 0, err
	}
	return int64(rank.ID), nil
}

// RanksInGroup returns a group's ranks ordered by position.
func (r *Repository) RanksInGroup(group string) ([]entities.Rank, error) {
	var ranks []entities.Rank
	err := r.db.Where("rank_group = ?", group).Order("position").Find(&ranks).Error
	return ranks, err
}

// CountRanks returns the number of ranks in a group.
func (r *Repository) CountRanks(group string) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Rank{}).Where("rank_group = ?", group).Count(&count).Error
	return count, err
}
