package cubepoints

import (
	"fmt"
	"strings"

	"github.com/mrlokans/pointskeeper/internal/entities"
	"github.com/mrlokans/pointskeeper/internal/importer"
)

// rankGroupPrefix is the naming convention tying a rank group to its points
// type, e.g. "points_type-points".
const rankGroupPrefix = "points_type-"

// importRanks converts the legacy threshold map into the target rank group.
// A zero threshold renames the group's existing base rank; the remaining
// thresholds become new ranks at increasing positions after it.
func (i *Importer) importRanks(settings importer.Settings) {
	fb := i.Feedback()
	fb.Info("Importing ranks...")

	group := settings[SettingRankGroup]
	pointsType := strings.TrimPrefix(group, rankGroupPrefix)
	rankType := "points-" + pointsType

	thresholds, err := i.deps.Legacy.RanksData()
	if err != nil {
		fb.Error("Unable to retrieve the rank data from CubePoints.")
		return
	}
	if len(thresholds) == 0 {
		fb.Error("No rank data found in CubePoints.")
		return
	}

	imported := 0

	if thresholds[0].Points == 0 {
		name := thresholds[0].Name
		thresholds = thresholds[1:]

		base, err := i.deps.Ranks.BaseRank(group)
		if err != nil || base == nil {
			fb.Warning(fmt.Sprintf("Failed to update the base rank of the %s group.", group))
		} else if err := i.deps.Ranks.UpdateRank(int64(base.ID), name, entities.RankTypeBase, group, 0); err != nil {
			fb.Warning(fmt.Sprintf("Failed to update the base rank of the %s group.", group))
		} else {
			imported++
		}
	}

	for position, threshold := range thresholds {
		_, err := i.deps.Ranks.AddRank(threshold.Name, rankType, group, position+1, entities.RankConfig{
			Points:     threshold.Points,
			PointsType: pointsType,
		})
		if err != nil {
			fb.Warning(fmt.Sprintf("Failed to import the %s rank.", threshold.Name))
			continue
		}
		imported++
	}

	fb.Success(fmt.Sprintf("Imported %d ranks.", imported))
}
