package cubepoints

import (
	"github.com/mrlokans/pointskeeper/internal/entities"
	"github.com/mrlokans/pointskeeper/internal/legacy"
)

// BalanceStore is the target ledger the balance import writes to.
type BalanceStore interface {
	AdjustBalance(userID int64, delta int, pointsType, reason string) error
	GetBalance(userID int64, pointsType string) (int, error)
}

// BalanceLogControl is an optional capability of a BalanceStore. The balance
// import is a balance-only migration, not a transaction replay, so it
// suspends the store's own adjustment logging for the duration of its run.
type BalanceLogControl interface {
	SuspendLogging() (resume func())
}

// LogStore is the target transaction history. Meta can be attached after the
// insert, which the reversal linking relies on.
type LogStore interface {
	InsertLog(record *entities.PointsLog) (int64, error)
	AddLogMeta(logID int64, key, value string) error
	AddLogMetaID(logID int64, key string, value int64) error
}

// RuleRegistry is the target award-rule store the settings import writes to.
type RuleRegistry interface {
	CreateRule(settings map[string]any) (int64, error)
}

// RankStore is the target rank subsystem. The base rank of the target group
// must already exist; the import updates it and appends the rest.
type RankStore interface {
	BaseRank(group string) (*entities.Rank, error)
	UpdateRank(id int64, name, kind, group string, position int) error
	AddRank(name, kind, group string, position int, config entities.RankConfig) (int64, error)
}

// UserDirectory resolves target-system users by login.
type UserDirectory interface {
	FindUserByLogin(login string) (*entities.User, error)
}

// ExclusionStore holds the target's global excluded-user list.
type ExclusionStore interface {
	ExcludedUserIDs() ([]int64, error)
	SetExcludedUserIDs(ids []int64) error
}

// LegacySource is the read-only view of the CubePoints storage the importer
// pulls from.
type LegacySource interface {
	Installed() (bool, error)
	Active() (bool, error)
	IntOption(name string) (int, bool, error)
	ModuleActive(name string) (bool, error)
	ExcludedLogins() ([]string, error)
	UserPointsBatch(offset int) ([]legacy.BalanceRow, error)
	LogsBatch(offset int) ([]legacy.LogRow, error)
	RanksData() ([]legacy.RankThreshold, error)
	RenderLogText(logType string, userID int64, points int, data string) string
}

// ContentType is one public content type of the host application. CubePoints
// award rules did not distinguish content types, so the settings import
// instantiates one rule per type.
type ContentType struct {
	Slug         string
	SingularName string
}

// ContentTypeProvider enumerates the host's public content types.
type ContentTypeProvider interface {
	PublicContentTypes() []ContentType
}

// StaticContentTypes is a fixed ContentTypeProvider.
type StaticContentTypes []ContentType

func (s StaticContentTypes) PublicContentTypes() []ContentType {
	return s
}

// DefaultContentTypes covers the content types a stock host ships with.
var DefaultContentTypes = StaticContentTypes{
	{Slug: "post", SingularName: "Post"},
	{Slug: "page", SingularName: "Page"},
	{Slug: "attachment", SingularName: "Media"},
}
