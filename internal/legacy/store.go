package legacy

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// BatchSize is the number of rows fetched per paginated query.
const BatchSize = 500

// Store reads CubePoints data from an exported SQLite database. It never
// writes to it.
type Store struct {
	dbPath string
	db     *sql.DB
}

// NewStore opens the legacy database at the given path.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open legacy database: %w", err)
	}

	return &Store{dbPath: dbPath, db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Installed reports whether CubePoints ever ran against this database. The
// plugin writes its schema version on activation and never removes it.
func (s *Store) Installed() (bool, error) {
	_, ok, err := s.Option(OptionDBVersion)
	return ok, err
}

// Active reports whether the CubePoints log table is reachable. An installed
// but deactivated plugin leaves its options behind while the table may have
// been dropped.
func (s *Store) Active() (bool, error) {
	var name string
	err := s.db.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'cp_logs'`,
	).Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to probe log table: %w", err)
	}
	return true, nil
}

// Option returns the raw value of a CubePoints option. The second return
// distinguishes a missing option from an empty one.
func (s *Store) Option(name string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(
		`SELECT option_value FROM options WHERE option_name = ?`,
		name,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read option %s: %w", name, err)
	}
	return value, true, nil
}

// IntOption reads an option and parses it as an integer. A missing or
// unparseable option yields ok=false.
func (s *Store) IntOption(name string) (int, bool, error) {
	raw, ok, err := s.Option(name)
	if err != nil || !ok {
		return 0, false, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, nil
	}
	return n, true, nil
}

// ModuleActive reports whether a CubePoints module was switched on. The
// active set is stored as a JSON array of module names.
func (s *Store) ModuleActive(name string) (bool, error) {
	raw, ok, err := s.Option(OptionActiveModules)
	if err != nil || !ok {
		return false, err
	}

	var modules []string
	if err := json.Unmarshal([]byte(raw), &modules); err != nil {
		return false, fmt.Errorf("failed to decode module list: %w", err)
	}

	for _, m := range modules {
		if m == name {
			return true, nil
		}
	}
	return false, nil
}

// ExcludedLogins returns the user logins CubePoints hid from its leaderboard,
// stored as a JSON array under cp_topfilter.
func (s *Store) ExcludedLogins() ([]string, error) {
	raw, ok, err := s.Option(OptionExcludedUsers)
	if err != nil || !ok {
		return nil, err
	}

	var logins []string
	if err := json.Unmarshal([]byte(raw), &logins); err != nil {
		return nil, fmt.Errorf("failed to decode excluded users: %w", err)
	}
	return logins, nil
}

// UserPointsBatch returns up to BatchSize balance rows starting at the given
// offset, ordered by the meta row id so pagination is stable.
func (s *Store) UserPointsBatch(offset int) ([]BalanceRow, error) {
	rows, err := s.db.Query(`
		SELECT user_id, meta_value
		FROM usermeta
		WHERE meta_key = 'cpoints'
		ORDER BY umeta_id
		LIMIT ? OFFSET ?`,
		BatchSize, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query user points: %w", err)
	}
	defer rows.Close()

	var balances []BalanceRow
	for rows.Next() {
		var row BalanceRow
		var value string
		if err := rows.Scan(&row.UserID, &value); err != nil {
			return nil, fmt.Errorf("failed to scan balance row: %w", err)
		}
		// CubePoints stores balances as strings. Junk values count as zero.
		row.Points, _ = strconv.Atoi(value)
		balances = append(balances, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balance rows: %w", err)
	}
	return balances, nil
}

// LogsBatch returns up to BatchSize log rows starting at the given offset,
// ordered by the log id.
func (s *Store) LogsBatch(offset int) ([]LogRow, error) {
	rows, err := s.db.Query(`
		SELECT id, uid, points, type, data, timestamp
		FROM cp_logs
		ORDER BY id
		LIMIT ? OFFSET ?`,
		BatchSize, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query logs: %w", err)
	}
	defer rows.Close()

	var logs []LogRow
	for rows.Next() {
		var row LogRow
		var data sql.NullString
		if err := rows.Scan(&row.ID, &row.UserID, &row.Points, &row.Type, &data, &row.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan log row: %w", err)
		}
		row.Data = data.String
		logs = append(logs, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating log rows: %w", err)
	}
	return logs, nil
}

// RankThreshold pairs a points threshold with the rank name awarded at it.
type RankThreshold struct {
	Points int
	Name   string
}

// RanksData returns the ranks module configuration ordered by ascending
// threshold. The first entry is the rank every user starts with.
func (s *Store) RanksData() ([]RankThreshold, error) {
	raw, ok, err := s.Option(OptionRanksData)
	if err != nil || !ok {
		return nil, err
	}

	var byThreshold map[string]string
	if err := json.Unmarshal([]byte(raw), &byThreshold); err != nil {
		return nil, fmt.Errorf("failed to decode ranks data: %w", err)
	}

	thresholds := make([]RankThreshold, 0, len(byThreshold))
	for points, name := range byThreshold {
		n, err := strconv.Atoi(points)
		if err != nil {
			return nil, fmt.Errorf("invalid rank threshold %q", points)
		}
		thresholds = append(thresholds, RankThreshold{Points: n, Name: name})
	}

	sort.Slice(thresholds, func(i, j int) bool {
		return thresholds[i].Points < thresholds[j].Points
	})
	return thresholds, nil
}

// PostTitle resolves a post id to its title. Missing posts yield ok=false.
func (s *Store) PostTitle(postID int64) (string, bool, error) {
	var title string
	err := s.db.QueryRow(
		`SELECT post_title FROM posts WHERE id = ?`,
		postID,
	).Scan(&title)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read post %d: %w", postID, err)
	}
	return title, true, nil
}

// CommentPostID resolves a comment id to the post it was left on.
func (s *Store) CommentPostID(commentID int64) (int64, bool, error) {
	var postID int64
	err := s.db.QueryRow(
		`SELECT comment_post_id FROM comments WHERE comment_id = ?`,
		commentID,
	).Scan(&postID)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read comment %d: %w", commentID, err)
	}
	return postID, true, nil
}
