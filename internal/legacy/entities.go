package legacy

// LogRow is one row of the CubePoints transaction log. Type is an open
// string tag ("misc", "post", "comment", "comment_remove", "register", ...)
// and Data carries either free text or a foreign entity id depending on the
// type.
type LogRow struct {
	ID        int64
	UserID    int64
	Points    int
	Type      string
	Data      string
	Timestamp int64
}

// BalanceRow is one per-user balance row from the CubePoints user meta.
type BalanceRow struct {
	UserID int64
	Points int
}

// Option names CubePoints stores its configuration under.
const (
	OptionDBVersion        = "cp_db_version"
	OptionExcludedUsers    = "cp_topfilter"
	OptionCommentPoints    = "cp_comment_points"
	OptionPostPoints       = "cp_post_points"
	OptionRegisterPoints   = "cp_reg_points"
	OptionPostAuthorPoints = "cp_post_author_points"
	OptionDailyPoints      = "cp_module_dailypoints_points"
	OptionDailyPointsTime  = "cp_module_dailypoints_time"
	OptionActiveModules    = "cp_modules"
	OptionRanksData        = "cp_module_ranks_data"
)

// Module names used with Store.ModuleActive.
const (
	ModulePostAuthorPoints = "post_author_points"
	ModuleDailyPoints      = "dailypoints"
)
