package entities

import (
	"time"

	"gorm.io/gorm"
)

// PointsType is a configured kind of points, e.g. "points" or "credits".
// Imports always target one points type.
type PointsType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Slug      string    `gorm:"uniqueIndex;size:100" json:"slug"`
	Name      string    `gorm:"size:100" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Login       string         `gorm:"uniqueIndex;size:100" json:"login"`
	DisplayName string         `gorm:"size:256" json:"display_name,omitempty"`
	Email       string         `gorm:"size:255" json:"email,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// Balance is a user's current total for one points type.
type Balance struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     int64     `gorm:"uniqueIndex:idx_balances_user_type" json:"user_id"`
	PointsType string    `gorm:"uniqueIndex:idx_balances_user_type;size:100" json:"points_type"`
	Points     int       `json:"points"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PointsLog is one entry in the points transaction history.
type PointsLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     int64     `gorm:"index" json:"user_id"`
	Points     int       `json:"points"`
	PointsType string    `gorm:"index;size:100" json:"points_type"`
	LogType    string    `gorm:"index;size:100" json:"log_type"`
	Text       string    `gorm:"type:text" json:"text"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"created_at"`

	Meta []LogMeta `gorm:"foreignKey:LogID" json:"meta,omitempty"`
}

// LogMeta is one metadata key/value pair attached to a points log entry.
// Meta can be added after the log is inserted, e.g. when a later entry turns
// out to reverse an earlier one.
type LogMeta struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	LogID int64  `gorm:"index" json:"log_id"`
	Key   string `gorm:"column:meta_key;index;size:191" json:"key"`
	Value string `gorm:"column:meta_value;type:text" json:"value"`
}

// AwardRule is a configuration object that grants points when its triggering
// event occurs. The full settings map is persisted as JSON.
type AwardRule struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Event      string    `gorm:"index;size:191" json:"event"`
	PointsType string    `gorm:"index;size:100" json:"points_type"`
	Settings   string    `gorm:"type:text" json:"settings"`
	CreatedAt  time.Time `json:"created_at"`
}

// Rank is one tier in an ordered rank group. The base rank of a group sits
// at position 0; the others are ordered by position.
type Rank struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:256" json:"name"`
	Type       string    `gorm:"size:100" json:"type"`
	RankGroup  string    `gorm:"column:rank_group;index;size:191" json:"rank_group"`
	Position   int       `json:"position"`
	Points     int       `json:"points"`
	PointsType string    `gorm:"size:100" json:"points_type,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RankTypeBase is the rank type of a group's base rank.
const RankTypeBase = "base"

// RankConfig carries the configuration of a non-base rank: the points
// threshold at which it is reached, under which points type.
type RankConfig struct {
	Points     int
	PointsType string
}
