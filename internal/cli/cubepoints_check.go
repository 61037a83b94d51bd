package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/pointskeeper/internal/config"
	"github.com/mrlokans/pointskeeper/internal/legacy"
)

// CubePointsCheckCommand inspects an exported CubePoints database and reports
// what an import would find, without touching the points database.
type CubePointsCheckCommand struct {
	LegacyDatabasePath string
}

func NewCubePointsCheckCommand() *CubePointsCheckCommand {
	return &CubePointsCheckCommand{}
}

func (cmd *CubePointsCheckCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("cubepoints-check", flag.ExitOnError)

	fs.StringVar(&cmd.LegacyDatabasePath, "legacy-db", config.DefaultLegacyDatabasePath, "Path to the exported CubePoints database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s cubepoints-check [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Report what a CubePoints import would find in the legacy database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *CubePointsCheckCommand) Run() error {
	if _, err := os.Stat(cmd.LegacyDatabasePath); os.IsNotExist(err) {
		return fmt.Errorf("legacy database not found: %s", cmd.LegacyDatabasePath)
	}

	store, err := legacy.NewStore(cmd.LegacyDatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	installed, err := store.Installed()
	if err != nil {
		return err
	}
	if !installed {
		fmt.Println("CubePoints is not installed in this database, nothing to import.")
		return nil
	}

	version, _, err := store.Option(legacy.OptionDBVersion)
	if err != nil {
		return err
	}
	fmt.Printf("CubePoints %s found.\n", version)

	active, err := store.Active()
	if err != nil {
		return err
	}
	if active {
		fmt.Println("Log table present, the logs option can be imported.")
	} else {
		fmt.Println("Log table missing, the logs option will be skipped.")
	}

	logins, err := store.ExcludedLogins()
	if err != nil {
		return err
	}
	fmt.Printf("Excluded users: %d\n", len(logins))

	thresholds, err := store.RanksData()
	if err != nil {
		return err
	}
	fmt.Printf("Rank thresholds: %d\n", len(thresholds))

	for _, module := range []string{legacy.ModulePostAuthorPoints, legacy.ModuleDailyPoints} {
		active, err := store.ModuleActive(module)
		if err != nil {
			return err
		}
		if active {
			fmt.Printf("Module active: %s\n", module)
		}
	}

	return nil
}
