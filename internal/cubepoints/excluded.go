package cubepoints

import (
	"fmt"

	"github.com/mrlokans/pointskeeper/internal/importer"
)

// importExcludedUsers unions the CubePoints leaderboard exclusion list into
// the target's global one. Legacy stores logins; unresolvable logins are
// skipped and the reported count covers only the resolved ids, not the union.
func (i *Importer) importExcludedUsers(importer.Settings) {
	fb := i.Feedback()
	fb.Info("Importing excluded users...")

	logins, err := i.deps.Legacy.ExcludedLogins()
	if err != nil {
		fb.Error("Unable to retrieve the excluded users from CubePoints.")
		return
	}
	if len(logins) == 0 {
		fb.Warning("No excluded users found.")
		return
	}

	var ids []int64
	for _, login := range logins {
		user, err := i.deps.Users.FindUserByLogin(login)
		if err != nil || user == nil {
			continue
		}
		ids = append(ids, int64(user.ID))
	}

	existing, err := i.deps.Exclusions.ExcludedUserIDs()
	if err != nil {
		fb.Error("Unable to read the existing excluded users.")
		return
	}

	if err := i.deps.Exclusions.SetExcludedUserIDs(append(existing, ids...)); err != nil {
		fb.Error("Unable to save the excluded users.")
		return
	}

	fb.Success(fmt.Sprintf("Imported %d excluded users.", len(ids)))
}
