package config

// Default paths for databases
const (
	// DefaultDatabasePath is the default path for the main points database
	DefaultDatabasePath = "./pointskeeper.db"

	// DefaultLegacyDatabasePath is the default path for the exported
	// CubePoints database
	DefaultLegacyDatabasePath = "./cubepoints.db"
)
