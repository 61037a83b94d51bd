package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/pointskeeper/internal/config"
	"github.com/mrlokans/pointskeeper/internal/cubepoints"
	"github.com/mrlokans/pointskeeper/internal/importer"
)

// CubePointsImportCommand migrates data from an exported CubePoints database
// into the points database.
type CubePointsImportCommand struct {
	DatabasePath       string
	LegacyDatabasePath string
	PointsType         string
	RankGroup          string

	ExcludedUsers bool
	Settings      bool
	UserPoints    bool
	Logs          bool
	Ranks         bool
	All           bool
}

func NewCubePointsImportCommand() *CubePointsImportCommand {
	return &CubePointsImportCommand{}
}

func (cmd *CubePointsImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("cubepoints-import", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the points database")
	fs.StringVar(&cmd.LegacyDatabasePath, "legacy-db", config.DefaultLegacyDatabasePath, "Path to the exported CubePoints database")
	fs.StringVar(&cmd.PointsType, "points-type", "points", "Points type to import into")
	fs.StringVar(&cmd.RankGroup, "rank-group", "points_type-points", "Rank group to import ranks into")

	fs.BoolVar(&cmd.ExcludedUsers, "excluded-users", false, "Import the excluded users list")
	fs.BoolVar(&cmd.Settings, "settings", false, "Import the award settings as award rules")
	fs.BoolVar(&cmd.UserPoints, "user-points", false, "Import the user balances")
	fs.BoolVar(&cmd.Logs, "logs", false, "Import the points transaction logs")
	fs.BoolVar(&cmd.Ranks, "ranks", false, "Import the rank thresholds")
	fs.BoolVar(&cmd.All, "all", false, "Import everything")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s cubepoints-import [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Migrate CubePoints data into the points database. The migration is\n")
		fmt.Fprintf(os.Stderr, "meant to run once per legacy database: balances import additively and\n")
		fmt.Fprintf(os.Stderr, "logs are not deduplicated, so re-running doubles them.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Import everything:\n")
		fmt.Fprintf(os.Stderr, "  %s cubepoints-import -legacy-db ./cubepoints.db -all\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Import only balances and logs:\n")
		fmt.Fprintf(os.Stderr, "  %s cubepoints-import -legacy-db ./cubepoints.db -user-points -logs\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.All {
		cmd.ExcludedUsers = true
		cmd.Settings = true
		cmd.UserPoints = true
		cmd.Logs = true
		cmd.Ranks = true
	}

	if !cmd.ExcludedUsers && !cmd.Settings && !cmd.UserPoints && !cmd.Logs && !cmd.Ranks {
		return fmt.Errorf("nothing selected to import, pass -all or one of the option flags")
	}

	return nil
}

func (cmd *CubePointsImportCommand) Run() error {
	env, err := newImportEnv(cmd.DatabasePath, cmd.LegacyDatabasePath)
	if err != nil {
		return err
	}
	defer env.Close()

	imp, ok := env.registry.GetImporter(cubepoints.ImporterSlug)
	if !ok {
		return fmt.Errorf("the %s importer is not registered", cubepoints.ImporterSlug)
	}

	if err := imp.IsAvailable(); err != nil {
		return fmt.Errorf("cannot import: %w", err)
	}

	imp.DoImport(cmd.settingsTree(), nil)
	return nil
}

// settingsTree assembles the run-loop input from the selected flags.
func (cmd *CubePointsImportCommand) settingsTree() importer.SettingsTree {
	tree := importer.SettingsTree{}

	pointsOptions := importer.Options{
		importer.SettingsDataKey: importer.Settings{
			cubepoints.SettingPointsType: cmd.PointsType,
		},
	}
	if cmd.ExcludedUsers {
		pointsOptions[cubepoints.OptionExcludedUsers] = "1"
	}
	if cmd.Settings {
		pointsOptions[cubepoints.OptionSettings] = "1"
	}
	if cmd.UserPoints {
		pointsOptions[cubepoints.OptionUserPoints] = "1"
	}
	if cmd.Logs {
		pointsOptions[cubepoints.OptionLogs] = "1"
	}
	if len(pointsOptions) > 1 {
		tree[cubepoints.ComponentPoints] = pointsOptions
	}

	if cmd.Ranks {
		tree[cubepoints.ComponentRanks] = importer.Options{
			cubepoints.OptionRanks: "1",
			importer.SettingsDataKey: importer.Settings{
				cubepoints.SettingRankGroup: cmd.RankGroup,
			},
		}
	}

	return tree
}
