// Package logs provides database operations for the points log.
//
// # Usage
//
//	repo := logs.NewRepository(db)
//	logID, err := repo.InsertLog(&record)
//	err = repo.AddLogMeta(logID, "legacy_type", "comment")
package logs

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/mrlokans/pointskeeper/internal/entities"
)

// Repository handles all points log database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new logs repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// InsertLog stores a points log entry and returns its new id.
func (r *Repository) InsertLog(record *entities.PointsLog) (int64, error) {
	if err := r.db.Create(record).Error; err != nil {
		return 0, err
	}
	return int64(record.ID), nil
}

// AddLogMeta attaches a metadata key/value pair to an existing log entry.
// Meta can be added at any time after the insert.
func (r *Repository) AddLogMeta(logID int64, key, value string) error {
	meta := entities.LogMeta{
		LogID: logID,
		Key:   key,
		Value: value,
	}
	return r.db.Create(&meta).Error
}

// AddLogMetaID is AddLogMeta for values that are log ids.
func (r *Repository) AddLogMetaID(logID int64, key string, value int64) error {
	return r.AddLogMeta(logID, key, strconv.FormatInt(value, 10))
}

// GetLogMeta returns the value stored under key for a log entry, and
// whether it exists.
func (r *Repository) GetLogMeta(logID int64, key string) (string, bool, error) {
	var meta entities.LogMeta
	err := r.db.Where("log_id = ? AND meta_key = ?", logID, key).First(&meta).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return meta.Value, true, nil
}

// GetLog returns a log entry by id.
func (r *Repository) GetLog(logID int64) (*entities.PointsLog, error) {
	var record entities.PointsLog
	err := r.db.First(&record, logID).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetLogsByType returns all log entries with the given log type, ordered by
// id.
func (r *Repository) GetLogsByType(logType string) ([]entities.PointsLog, error) {
	var records []entities.PointsLog
	err := r.db.Where("log_type = ?", logType).Order("id").Find(&records).Error
	return records, err
}

// CountLogs returns the number of log entries for a points type.
func (r *Repository) CountLogs(pointsType string) (int64, error) {
	var count int64
	err := r.db.Model(&entities.PointsLog{}).Where("points_type = ?", pointsType).Count(&count).Error
	return count, err
}
