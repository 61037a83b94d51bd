package cli

import (
	"fmt"

	"github.com/mrlokans/pointskeeper/internal/cubepoints"
	"github.com/mrlokans/pointskeeper/internal/database"
	"github.com/mrlokans/pointskeeper/internal/database/exclusions"
	"github.com/mrlokans/pointskeeper/internal/database/logs"
	"github.com/mrlokans/pointskeeper/internal/database/points"
	"github.com/mrlokans/pointskeeper/internal/database/ranks"
	"github.com/mrlokans/pointskeeper/internal/database/rules"
	"github.com/mrlokans/pointskeeper/internal/database/users"
	"github.com/mrlokans/pointskeeper/internal/importer"
	"github.com/mrlokans/pointskeeper/internal/legacy"
)

// importEnv bundles everything an import run needs: both databases and a
// populated importer registry.
type importEnv struct {
	db       *database.Database
	legacyDB *legacy.Store
	registry *importer.Registry
}

// newImportEnv opens the target and legacy databases and wires the importer
// registry over them.
func newImportEnv(dbPath, legacyPath string) (*importEnv, error) {
	db, err := database.NewDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	store, err := legacy.NewStore(legacyPath)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open legacy database: %w", err)
	}

	ranksRepo := ranks.NewRepository(db.DB)

	validators := importer.NewValidators()
	cubepoints.RegisterValidators(validators, db, ranksRepo)

	host := importer.NewStaticHost(
		importer.Component{Slug: cubepoints.ComponentPoints, Name: "Points"},
		importer.Component{Slug: cubepoints.ComponentRanks, Name: "Ranks"},
	)

	deps := cubepoints.Deps{
		Legacy:       store,
		Balances:     points.NewRepository(db.DB),
		Logs:         logs.NewRepository(db.DB),
		Rules:        rules.NewRepository(db.DB),
		Ranks:        ranksRepo,
		Users:        users.NewRepository(db.DB),
		Exclusions:   exclusions.NewRepository(db.DB),
		ContentTypes: cubepoints.DefaultContentTypes,
	}

	registry := importer.NewRegistry()
	registry.OnRegister(func(r *importer.Registry) {
		cubepoints.Register(r, deps, host, validators)
	})

	return &importEnv{db: db, legacyDB: store, registry: registry}, nil
}

func (e *importEnv) Close() {
	e.legacyDB.Close()
	e.db.Close()
}
