package exclusions

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/pointskeeper/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_exclusions_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Setting{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_ExcludedUserIDs_Unset(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ids, err := repo.ExcludedUserIDs()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRepository_SetExcludedUserIDs(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.SetExcludedUserIDs([]int64{5, 3, 9}))

	ids, err := repo.ExcludedUserIDs()
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 5, 9}, ids)
}

func TestRepository_SetExcludedUserIDs_Deduplicates(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.SetExcludedUserIDs([]int64{5, 5, 3, 3, 9}))

	ids, err := repo.ExcludedUserIDs()
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 5, 9}, ids)
}

func TestRepository_SetExcludedUserIDs_Overwrites(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.SetExcludedUserIDs([]int64{1, 2}))
	require.NoError(t, repo.SetExcludedUserIDs([]int64{7}))

	ids, err := repo.ExcludedUserIDs()
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, ids)
}
