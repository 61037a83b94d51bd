package cubepoints

import (
	"github.com/mrlokans/pointskeeper/internal/feedback"
	"github.com/mrlokans/pointskeeper/internal/importer"
)

// PointsTypeChecker reports whether a points type exists in the target.
type PointsTypeChecker interface {
	HasPointsType(slug string) bool
}

// RegisterValidators wires the component settings checks the importer needs:
// the points component must target an existing points type, and the ranks
// component must target a group that already has a base rank.
func RegisterValidators(validators *importer.Validators, points PointsTypeChecker, ranks RankStore) {
	validators.Register(ComponentPoints, func(valid bool, settings importer.Settings, fb *feedback.Feedback) bool {
		slug := settings[SettingPointsType]
		if slug == "" || !points.HasPointsType(slug) {
			fb.Warning("Skipping the points component import: invalid points type selected.")
			return false
		}
		return valid
	})

	validators.Register(ComponentRanks, func(valid bool, settings importer.Settings, fb *feedback.Feedback) bool {
		group := settings[SettingRankGroup]
		if group == "" {
			fb.Warning("Skipping the ranks component import: no rank group selected.")
			return false
		}

		base, err := ranks.BaseRank(group)
		if err != nil || base == nil {
			fb.Warning("Skipping the ranks component import: the selected rank group does not exist.")
			return false
		}
		return valid
	})
}
