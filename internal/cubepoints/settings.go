package cubepoints

import (
	"fmt"

	"github.com/mrlokans/pointskeeper/internal/importer"
	"github.com/mrlokans/pointskeeper/internal/legacy"
)

// Award-rule settings keys shared by every imported rule. The reactor ties
// the rule to the legacy-compatible reaction handler, which knows how to
// match the legacy log type when reversing.
const (
	ruleReactor = "points_legacy"

	ruleKeyReversals     = "points_legacy_reversals"
	ruleKeyRepeatBlocker = "points_legacy_repeat_blocker"
	ruleKeyPeriods       = "points_legacy_periods"
	ruleKeyBlocker       = "blocker"
	ruleKeyLegacyLogType = "legacy_log_type"
	ruleKeyLegacyMetaKey = "legacy_meta_key"
)

// toggleReversals links a rule's award to its matching revocation event.
func toggleReversals() map[string]any {
	return map[string]any{"toggle_off": "toggle_on"}
}

// importPointsSettings converts the CubePoints award amounts into award
// rules. Legacy awards did not distinguish content types, so the comment and
// post awards become one rule per public content type. The post-author award
// only exists when its legacy module was active, likewise the daily award.
func (i *Importer) importPointsSettings(settings importer.Settings) {
	fb := i.Feedback()
	fb.Info("Importing points settings...")

	pointsType := settings[SettingPointsType]
	imported := 0

	if points, ok := i.intOption(legacy.OptionCommentPoints); ok && points > 0 {
		for _, ct := range i.deps.ContentTypes.PublicContentTypes() {
			imported += i.createRule(map[string]any{
				"event":              `comment_leave\` + ct.Slug,
				"target":             []string{`comment\` + ct.Slug, "author", "user"},
				"reactor":            ruleReactor,
				"points":             points,
				"points_type":        pointsType,
				"log_text":           fmt.Sprintf("Comment on a %s.", ct.SingularName),
				"description":        fmt.Sprintf("Commenting on a %s.", ct.SingularName),
				ruleKeyLegacyLogType: "legacy-comment",
				ruleKeyLegacyMetaKey: "comment",
				ruleKeyReversals:     toggleReversals(),
			})
		}
	}

	if points, ok := i.intOption(legacy.OptionPostPoints); ok && points > 0 {
		for _, ct := range i.deps.ContentTypes.PublicContentTypes() {
			imported += i.createRule(map[string]any{
				"event":       `post_publish\` + ct.Slug,
				"target":      []string{`post\` + ct.Slug, "author", "user"},
				"reactor":     ruleReactor,
				"points":      points,
				"points_type": pointsType,
				"log_text":    fmt.Sprintf("Published a %s.", ct.SingularName),
				"description": fmt.Sprintf("Publishing a %s.", ct.SingularName),
				// CubePoints never revoked points when a post was taken
				// down, so un-publishing must not fire the reversal, and
				// re-publishing must not award twice.
				ruleKeyBlocker:       map[string]any{"toggle_off": true},
				ruleKeyRepeatBlocker: map[string]any{"toggle_on": true},
				ruleKeyLegacyLogType: "legacy-post",
				ruleKeyLegacyMetaKey: "post",
				ruleKeyReversals:     toggleReversals(),
			})
		}
	}

	if points, ok := i.intOption(legacy.OptionRegisterPoints); ok && points > 0 {
		imported += i.createRule(map[string]any{
			"event":              "user_register",
			"target":             []string{"user"},
			"reactor":            ruleReactor,
			"points":             points,
			"points_type":        pointsType,
			"log_text":           "Registration.",
			"description":        "Registration.",
			ruleKeyLegacyLogType: "legacy-register",
			ruleKeyReversals:     toggleReversals(),
		})
	}

	imported += i.importPostAuthorRules(pointsType)
	imported += i.importDailyPointsRule(pointsType)

	fb.Success(fmt.Sprintf("Imported %d award rules.", imported))
}

func (i *Importer) importPostAuthorRules(pointsType string) int {
	active, err := i.deps.Legacy.ModuleActive(legacy.ModulePostAuthorPoints)
	if err != nil || !active {
		return 0
	}

	points, ok := i.intOption(legacy.OptionPostAuthorPoints)
	if !ok || points <= 0 {
		return 0
	}

	imported := 0
	for _, ct := range i.deps.ContentTypes.PublicContentTypes() {
		imported += i.createRule(map[string]any{
			"event":              `comment_leave\` + ct.Slug,
			"target":             []string{`comment\` + ct.Slug, `post\` + ct.Slug, "author", "user"},
			"reactor":            ruleReactor,
			"points":             points,
			"points_type":        pointsType,
			"log_text":           fmt.Sprintf("Received a comment on a %s.", ct.SingularName),
			"description":        fmt.Sprintf("Receiving a comment on a %s.", ct.SingularName),
			ruleKeyLegacyLogType: "legacy-post_author",
			ruleKeyLegacyMetaKey: "comment",
			ruleKeyReversals:     toggleReversals(),
		})
	}
	return imported
}

// importDailyPointsRule converts the daily points module into a relative
// recurring-fire rule. CubePoints awarded on visit, at most once per period.
func (i *Importer) importDailyPointsRule(pointsType string) int {
	active, err := i.deps.Legacy.ModuleActive(legacy.ModuleDailyPoints)
	if err != nil || !active {
		return 0
	}

	points, ok := i.intOption(legacy.OptionDailyPoints)
	if !ok || points <= 0 {
		return 0
	}

	period, ok := i.intOption(legacy.OptionDailyPointsTime)
	if !ok || period <= 0 {
		return 0
	}

	return i.createRule(map[string]any{
		"event":       "user_visit",
		"target":      []string{"current:user"},
		"reactor":     ruleReactor,
		"points":      points,
		"points_type": pointsType,
		"log_text":    "Visiting the site.",
		"description": "Visiting the site.",
		ruleKeyPeriods: map[string]any{
			"fire": []any{
				map[string]any{"length": period, "relative": true},
			},
		},
		ruleKeyReversals:     map[string]any{},
		ruleKeyLegacyLogType: "legacy-dailypoints",
	})
}

func (i *Importer) intOption(name string) (int, bool) {
	n, ok, err := i.deps.Legacy.IntOption(name)
	if err != nil || !ok {
		return 0, false
	}
	return n, true
}

// createRule creates one award rule and returns how many were created, so
// callers can sum directly. A failed creation warns and counts zero.
func (i *Importer) createRule(settings map[string]any) int {
	if _, err := i.deps.Rules.CreateRule(settings); err != nil {
		i.Feedback().Warning(fmt.Sprintf("Failed to import the award rule for the %v event.", settings["event"]))
		return 0
	}
	return 1
}
