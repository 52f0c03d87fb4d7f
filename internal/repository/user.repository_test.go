package repository

import (
	"path/filepath"
	"testing"

	"soiladvisor/internal/apperrors"
	"soiladvisor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) UserRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return NewUserRepository(db)
}

func TestCreateAndGetUser(t *testing.T) {
	repo := newTestRepo(t)

	user := &models.User{Username: "alice", Password: "hashed"}
	require.NoError(t, repo.CreateUser(user))
	assert.NotZero(t, user.ID)

	got, err := repo.GetUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "hashed", got.Password)
}

func TestCreateUserDuplicate(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.CreateUser(&models.User{Username: "alice", Password: "a"}))

	err := repo.CreateUser(&models.User{Username: "alice", Password: "b"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUsername)
}

func TestGetUserMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
