package legacy

import (
	"database/sql"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a throwaway legacy database with the CubePoints
// schema and returns a Store over it plus a handle for seeding fixtures.
func setupTestStore(t *testing.T) (*Store, *sql.DB, func()) {
	dbPath := "./test_legacy_" + t.Name() + ".db"

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)

	schemas := []string{
		`CREATE TABLE options (
			option_name TEXT PRIMARY KEY,
			option_value TEXT NOT NULL
		);`,
		`CREATE TABLE usermeta (
			umeta_id INTEGER PRIMARY KEY,
			user_id INTEGER NOT NULL,
			meta_key TEXT NOT NULL,
			meta_value TEXT
		);`,
		`CREATE TABLE cp_logs (
			id INTEGER PRIMARY KEY,
			uid INTEGER NOT NULL,
			points INTEGER NOT NULL,
			type TEXT NOT NULL,
			data TEXT,
			timestamp INTEGER NOT NULL
		);`,
		`CREATE TABLE posts (
			id INTEGER PRIMARY KEY,
			post_title TEXT NOT NULL
		);`,
		`CREATE TABLE comments (
			comment_id INTEGER PRIMARY KEY,
			comment_post_id INTEGER NOT NULL
		);`,
	}
	for _, schema := range schemas {
		_, err := db.Exec(schema)
		require.NoError(t, err)
	}

	store, err := NewStore(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		store.Close()
		db.Close()
		os.Remove(dbPath)
	}

	return store, db, cleanup
}

func setOption(t *testing.T, db *sql.DB, name, value string) {
	t.Helper()
	_, err := db.Exec(
		`INSERT OR REPLACE INTO options (option_name, option_value) VALUES (?, ?)`,
		name, value,
	)
	require.NoError(t, err)
}

func TestStore_Installed(t *testing.T) {
	store, db, cleanup := setupTestStore(t)
	defer cleanup()

	installed, err := store.Installed()
	require.NoError(t, err)
	assert.False(t, installed)

	setOption(t, db, OptionDBVersion, "1.2")

	installed, err = store.Installed()
	require.NoError(t, err)
	assert.True(t, installed)
}

func TestStore_Active(t *testing.T) {
	store, _, cleanup := setupTestStore(t)
	defer cleanup()

	active, err := store.Active()
	require.NoError(t, err)
	assert.True(t, active)
}

func TestStore_Active_NoLogTable(t *testing.T) {
	store, db, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := db.Exec(`DROP TABLE cp_logs`)
	require.NoError(t, err)

	active, err := store.Active()
	require.NoError(t, err)
	assert.False(t, active)
}

func TestStore_Option_Missing(t *testing.T) {
	store, _, cleanup := setupTestStore(t)
	defer cleanup()

	_, ok, err := store.Option("cp_nothing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_IntOption(t *testing.T) {
	store, db, cleanup := setupTestStore(t)
	defer cleanup()

	setOption(t, db, OptionCommentPoints, "10")

	n, ok, err := store.IntOption(OptionCommentPoints)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 10, n)
}

func TestStore_IntOption_Unparseable(t *testing.T) {
	store, db, cleanup := setupTestStore(t)
	defer cleanup()

	setOption(t, db, OptionCommentPoints, "lots")

	_, ok, err := store.IntOption(OptionCommentPoints)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_ModuleActive(t *testing.T) {
	store, db, cleanup := setupTestStore(t)
	defer cleanup()

	active, err := store.ModuleActive(ModuleDailyPoints)
	require.NoError(t, err)
	assert.False(t, active)

	setOption(t, db, OptionActiveModules, `["dailypoints","post_author_points"]`)

	active, err = store.ModuleActive(ModuleDailyPoints)
	require.NoError(t, err)
	assert.True(t, active)

	active, err = store.ModuleActive("ranks")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestStore_ExcludedLogins(t *testing.T) {
	store, db, cleanup := setupTestStore(t)
	defer cleanup()

	logins, err := store.ExcludedLogins()
	require.NoError(t, err)
	assert.Empty(t, logins)

	setOption(t, db, OptionExcludedUsers, `["admin","testbot"]`)

	logins, err = store.ExcludedLogins()
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "testbot"}, logins)
}

func TestStore_UserPointsBatch(t *testing.T) {
	store, db, cleanup := setupTestStore(t)
	defer cleanup()

	seed := []struct {
		userID int64
		value  string
	}{
		{3, "20"},
		{7, "10"},
		{9, "45"},
	}
	for _, row := range seed {
		_, err := db.Exec(
			`INSERT INTO usermeta (user_id, meta_key, meta_value) VALUES (?, 'cpoints', ?)`,
			row.userID, row.value,
		)
		require.NoError(t, err)
	}
	// Unrelated meta rows are not balances.
	_, err := db.Exec(
		`INSERT INTO usermeta (user_id, meta_key, meta_value) VALUES (3, 'nickname', 'Al')`,
	)
	require.NoError(t, err)

	rows, err := store.UserPointsBatch(0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, BalanceRow{UserID: 3, Points: 20}, rows[0])
	assert.Equal(t, BalanceRow{UserID: 7, Points: 10}, rows[1])
	assert.Equal(t, BalanceRow{UserID: 9, Points: 45}, rows[2])

	rows, err = store.UserPointsBatch(3)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStore_LogsBatch(t *testing.T) {
	store, db, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := db.Exec(`
		INSERT INTO cp_logs (id, uid, points, type, data, timestamp) VALUES
			(1, 3, 5, 'comment', '11', 1300000000),
			(2, 3, -5, 'comment_remove', '11', 1300000100)`,
	)
	require.NoError(t, err)

	logs, err := store.LogsBatch(0)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, LogRow{ID: 1, UserID: 3, Points: 5, Type: "comment", Data: "11", Timestamp: 1300000000}, logs[0])
	assert.Equal(t, "comment_remove", logs[1].Type)
}

func TestStore_RanksData_SortedByThreshold(t *testing.T) {
	store, db, cleanup := setupTestStore(t)
	defer cleanup()

	setOption(t, db, OptionRanksData, `{"5000":"Oldie","0":"Newbie","1000":"Biggie"}`)

	thresholds, err := store.RanksData()
	require.NoError(t, err)
	require.Len(t, thresholds, 3)
	assert.Equal(t, RankThreshold{Points: 0, Name: "Newbie"}, thresholds[0])
	assert.Equal(t, RankThreshold{Points: 1000, Name: "Biggie"}, thresholds[1])
	assert.Equal(t, RankThreshold{Points: 5000, Name: "Oldie"}, thresholds[2])
}

func TestStore_RanksData_Absent(t *testing.T) {
	store, _, cleanup := setupTestStore(t)
	defer cleanup()

	thresholds, err := store.RanksData()
	require.NoError(t, err)
	assert.Nil(t, thresholds)
}

func TestStore_RenderLogText(t *testing.T) {
	store, db, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := db.Exec(`INSERT INTO posts (id, post_title) VALUES (21, 'Hello World')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO comments (comment_id, comment_post_id) VALUES (11, 21)`)
	require.NoError(t, err)

	cases := []struct {
		logType string
		data    string
		want    string
	}{
		{"misc", "Admin adjustment", "Admin adjustment"},
		{"register", "", "Registration."},
		{"dailypoints", "", "Daily points."},
		{"post", "21", `Published "Hello World".`},
		{"post", "404", "Published post #404."},
		{"comment", "11", `Comment on "Hello World".`},
		{"comment_remove", "11", `Comment removed from "Hello World".`},
		{"post_comment", "11", `Received a comment on "Hello World".`},
		{"post_comment", "404", "Received a comment on a post."},
		{"custom_thing", "", "custom thing"},
	}

	for _, tc := range cases {
		got := store.RenderLogText(tc.logType, 3, 5, tc.data)
		assert.Equal(t, tc.want, got, "type %s", tc.logType)
	}
}
