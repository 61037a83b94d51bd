// Package database provides the data access layer for the target points
// store.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations, points type seeding
//	├── points/          # Balance reads and additive adjustments
//	├── logs/            # Points log inserts and log metadata
//	├── rules/           # Award rule creation
//	├── ranks/           # Rank group management
//	├── users/           # User lookup by login
//	└── exclusions/      # Global excluded-user list
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific
// operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./pointskeeper.db")
//
//	// Create domain-specific repositories
//	balances := points.NewRepository(db.DB)
//	logsRepo := logs.NewRepository(db.DB)
//
//	// Use repositories
//	err = balances.AdjustBalance(userID, 25, "points", "cubepoints_import")
//	logID, err := logsRepo.InsertLog(&record)
//
// # Interface Implementations
//
// The sub-packages implement the collaborator interfaces the importer core
// consumes (see internal/cubepoints/interfaces.go). Compile-time checks live
// in internal/interfaces/checks.go.
package database
