package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
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

// =============================================================================
// Data Access Layer
// =============================================================================

var _ cubepoints.BalanceStore = (*points.Repository)(nil)
var _ cubepoints.BalanceLogControl = (*points.Repository)(nil)
var _ cubepoints.LogStore = (*logs.Repository)(nil)
var _ cubepoints.RuleRegistry = (*rules.Repository)(nil)
var _ cubepoints.RankStore = (*ranks.Repository)(nil)
var _ cubepoints.UserDirectory = (*users.Repository)(nil)
var _ cubepoints.ExclusionStore = (*exclusions.Repository)(nil)
var _ cubepoints.PointsTypeChecker = (*database.Database)(nil)

// =============================================================================
// Legacy Storage
// =============================================================================

var _ cubepoints.LegacySource = (*legacy.Store)(nil)

// =============================================================================
// Import Pipeline
// =============================================================================

var _ importer.Importer = (*cubepoints.Importer)(nil)
var _ cubepoints.ContentTypeProvider = (cubepoints.StaticContentTypes)(nil)
