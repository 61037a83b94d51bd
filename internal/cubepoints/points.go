package cubepoints

import (
	"fmt"

	"github.com/mrlokans/pointskeeper/internal/importer"
	"github.com/mrlokans/pointskeeper/internal/legacy"
)

// balanceAdjustReason tags the balance adjustments made during import. It
// exists for any listeners on the balance store; the adjustments themselves
// are not logged.
const balanceAdjustReason = "cubepoints_import"

// importUserPoints migrates the per-user balances in batches. Each legacy
// balance is applied as an additive adjustment, so re-running this option
// doubles balances; the migration is meant to run once.
func (i *Importer) importUserPoints(settings importer.Settings) {
	fb := i.Feedback()
	fb.Info("Importing users' points...")

	pointsType := settings[SettingPointsType]

	// Balances are migrated as-is, the history comes from the logs option.
	if control, ok := i.deps.Balances.(BalanceLogControl); ok {
		resume := control.SuspendLogging()
		defer resume()
	}

	total := 0
	for offset := 0; ; {
		rows, err := i.deps.Legacy.UserPointsBatch(offset)
		if err != nil {
			fb.Error("Unable to retrieve the user points from CubePoints.")
			break
		}

		for _, row := range rows {
			err := i.deps.Balances.AdjustBalance(row.UserID, row.Points, pointsType, balanceAdjustReason)
			if err != nil {
				fb.Warning(fmt.Sprintf("Failed to import points for user %d.", row.UserID))
			}
		}

		total += len(rows)
		offset += len(rows)

		if len(rows) < legacy.BatchSize {
			break
		}
	}

	fb.Success(fmt.Sprintf("Imported points for %d users.", total))
}
