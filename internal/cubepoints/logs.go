package cubepoints

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mrlokans/pointskeeper/internal/entities"
	"github.com/mrlokans/pointskeeper/internal/importer"
	"github.com/mrlokans/pointskeeper/internal/legacy"
)

// Meta keys attached to imported log records. Every record carries the
// legacy type/data pair; reversal pairs additionally link to each other.
const (
	MetaLegacyType    = "legacy_type"
	MetaLegacyData    = "legacy_data"
	MetaOriginalLogID = "original_log_id"
	MetaAutoReversed  = "auto_reversed"
)

// logTypePrefix namespaces imported log types, keeping distinct legacy types
// distinguishable in the target history.
const logTypePrefix = "legacy-"

// reversalOf maps a revoking legacy type to the awarding type it cancels.
var reversalOf = map[string]string{
	"comment_remove":      "comment",
	"post_comment_remove": "post_comment",
}

// reversible is the set of awarding types that can later be revoked.
var reversible = map[string]bool{
	"comment":      true,
	"post_comment": true,
}

// entityMetaKey maps legacy types whose data field holds an entity id to the
// semantic meta key that id is duplicated under.
var entityMetaKey = map[string]string{
	"comment":             "comment",
	"comment_remove":      "comment",
	"post_comment":        "comment",
	"post_comment_remove": "comment",
	"post":                "post",
}

// entityKey identifies the entity an award acted on. Awards and their
// reversals meet in the link table under the awarding type, so awards to
// different actors over the same entity (a comment awards both the commenter
// and the post author) never consume each other.
type entityKey struct {
	primaryType string
	entityID    int64
}

// importPointsLogs migrates the transaction history in batches, rebuilding
// the award/reversal relationships the legacy schema never stored. A
// reversal consumes its award's link table entry, so a second reversal of
// the same entity imports unlinked. When several awards precede one
// reversal, the most recently stored wins.
func (i *Importer) importPointsLogs(settings importer.Settings) {
	fb := i.Feedback()
	fb.Info("Importing points logs...")

	pointsType := settings[SettingPointsType]
	links := make(map[entityKey]int64)

	total := 0
	for offset := 0; ; {
		rows, err := i.deps.Legacy.LogsBatch(offset)
		if err != nil {
			fb.Error("Unable to retrieve the logs from CubePoints.")
			break
		}

		for _, row := range rows {
			i.importPointsLog(row, pointsType, links)
		}

		total += len(rows)
		offset += len(rows)

		if len(rows) < legacy.BatchSize {
			break
		}
	}

	fb.Success(fmt.Sprintf("Imported %d points log entries.", total))
}

func (i *Importer) importPointsLog(row legacy.LogRow, pointsType string, links map[entityKey]int64) {
	record := &entities.PointsLog{
		UserID:     row.UserID,
		Points:     row.Points,
		PointsType: pointsType,
		LogType:    logTypePrefix + row.Type,
		Text:       i.deps.Legacy.RenderLogText(row.Type, row.UserID, row.Points, row.Data),
		Date:       time.Unix(row.Timestamp, 0).UTC(),
	}

	logID, err := i.deps.Logs.InsertLog(record)
	if err != nil {
		i.Feedback().Warning(fmt.Sprintf("Failed to import log entry %d.", row.ID))
		return
	}

	i.deps.Logs.AddLogMeta(logID, MetaLegacyType, row.Type)
	i.deps.Logs.AddLogMeta(logID, MetaLegacyData, row.Data)

	metaKey, known := entityMetaKey[row.Type]
	entityID, parseErr := strconv.ParseInt(row.Data, 10, 64)
	if !known || parseErr != nil {
		return
	}

	i.deps.Logs.AddLogMetaID(logID, metaKey, entityID)

	if primary, isReversal := reversalOf[row.Type]; isReversal {
		key := entityKey{primaryType: primary, entityID: entityID}
		originalID, found := links[key]
		if !found {
			return
		}

		i.deps.Logs.AddLogMetaID(logID, MetaOriginalLogID, originalID)
		i.deps.Logs.AddLogMetaID(originalID, MetaAutoReversed, logID)
		delete(links, key)
		return
	}

	if reversible[row.Type] {
		links[entityKey{primaryType: row.Type, entityID: entityID}] = logID
	}
}
