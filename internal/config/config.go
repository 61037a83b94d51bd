package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Legacy
		Import
	}

	Database struct {
		Path string
	}

	Legacy struct {
		DatabasePath string
	}

	Import struct {
		PointsType string // Target points type for imported data
		RankGroup  string // Target rank group for imported ranks
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("legacy_database_path", DefaultLegacyDatabasePath)
	v.SetDefault("import_points_type", "points")
	v.SetDefault("import_rank_group", "points_type-points")

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Legacy: Legacy{
			DatabasePath: v.GetString("LEGACY_DATABASE_PATH"),
		},
		Import: Import{
			PointsType: v.GetString("IMPORT_POINTS_TYPE"),
			RankGroup:  v.GetString("IMPORT_RANK_GROUP"),
		},
	}
}
