package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/pointskeeper/internal/entities"
)

var defaultPointsTypes = []entities.PointsType{
	{Slug: "points", Name: "Points"},
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.PointsType{},
		&entities.User{},
		&entities.Balance{},
		&entities.PointsLog{},
		&entities.LogMeta{},
		&entities.AwardRule{},
		&entities.Rank{},
		&entities.Setting{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.seedPointsTypes(); err != nil {
		return nil, fmt.Errorf("failed to seed points types: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) seedPointsTypes() error {
	for _, pt := range defaultPointsTypes {
		var existing entities.PointsType
		result := d.DB.Where("slug = ?", pt.Slug).First(&existing)
		if result.Error == gorm.ErrRecordNotFound {
			if err := d.DB.Create(&pt).Error; err != nil {
				return fmt.Errorf("failed to create points type %s: %w", pt.Slug, err)
			}
			log.Printf("Created points type: %s", pt.Name)
		}
	}
	return nil
}

// GetPointsTypeBySlug returns the points type with the given slug.
func (d *Database) GetPointsTypeBySlug(slug string) (*entities.PointsType, error) {
	var pt entities.PointsType
	err := d.DB.Where("slug = ?", slug).First(&pt).Error
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

// HasPointsType reports whether a points type with the given slug exists.
func (d *Database) HasPointsType(slug string) bool {
	var count int64
	d.DB.Model(&entities.PointsType{}).Where("slug = ?", slug).Count(&count)
	return count > 0
}
