// Package cubepoints implements the importer backend that migrates
// CubePoints data into the points system: excluded users, award-rule
// settings, user balances, the transaction log and ranks.
package cubepoints

import (
	"errors"
	"fmt"

	"github.com/mrlokans/pointskeeper/internal/importer"
)

const (
	// ImporterSlug identifies the backend in the registry.
	ImporterSlug = "cubepoints"

	// ImporterName is the display name shown in feedback.
	ImporterName = "CubePoints"
)

// Component and option slugs declared by the importer.
const (
	ComponentPoints = "points"
	ComponentRanks  = "ranks"

	OptionExcludedUsers = "excluded_users"
	OptionSettings      = "settings"
	OptionUserPoints    = "user_points"
	OptionLogs          = "logs"
	OptionRanks         = "ranks"
)

// Settings keys expected in a component's _data.
const (
	SettingPointsType = "points_type"
	SettingRankGroup  = "rank_group"
)

// Deps are the collaborators the importer reads from and writes to.
type Deps struct {
	Legacy       LegacySource
	Balances     BalanceStore
	Logs         LogStore
	Rules        RuleRegistry
	Ranks        RankStore
	Users        UserDirectory
	Exclusions   ExclusionStore
	ContentTypes ContentTypeProvider
}

// Importer migrates CubePoints data. It embeds the generic run-loop and
// declares two components: points (excluded_users, settings, user_points,
// logs) and ranks (ranks).
type Importer struct {
	*importer.Runner

	deps Deps
}

// New constructs the importer with the given display name and collaborators.
func New(name string, deps Deps, host importer.Host, validators *importer.Validators) *Importer {
	imp := &Importer{deps: deps}

	components := importer.ComponentMap{
		ComponentPoints: {
			OptionExcludedUsers: {
				Label:  "Excluded users",
				Import: imp.importExcludedUsers,
			},
			OptionSettings: {
				Label:  "Points settings",
				Import: imp.importPointsSettings,
			},
			OptionUserPoints: {
				Label:  "User points",
				Import: imp.importUserPoints,
			},
			OptionLogs: {
				Label:     "Points logs",
				Import:    imp.importPointsLogs,
				CanImport: imp.canImportPointsLogs,
			},
		},
		ComponentRanks: {
			OptionRanks: {
				Label:  "Ranks",
				Import: imp.importRanks,
			},
		},
	}

	imp.Runner = importer.NewRunner(name, components, host, validators)
	return imp
}

// IsAvailable implements importer.Importer. CubePoints leaves its schema
// version option behind even after deactivation, so its presence means there
// is data to import.
func (i *Importer) IsAvailable() error {
	installed, err := i.deps.Legacy.Installed()
	if err != nil {
		return fmt.Errorf("failed to check for CubePoints: %w", err)
	}
	if !installed {
		return errors.New("CubePoints is not installed")
	}
	return nil
}

// canImportPointsLogs gates the logs option on the legacy install still
// being active, since log text rendering reads back into its content tables.
func (i *Importer) canImportPointsLogs(importer.Settings) error {
	active, err := i.deps.Legacy.Active()
	if err != nil {
		return fmt.Errorf("failed to check CubePoints state: %w", err)
	}
	if !active {
		return errors.New("CubePoints must be active")
	}
	return nil
}

// Register adds the CubePoints importer to a registry.
func Register(registry *importer.Registry, deps Deps, host importer.Host, validators *importer.Validators) {
	registry.Register(ImporterSlug, importer.Descriptor{
		Name: ImporterName,
		Factory: func(name string) importer.Importer {
			return New(name, deps, host, validators)
		},
	})
}
