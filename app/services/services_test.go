package services

import (
	"path/filepath"
	"testing"

	"csvvault/app/models"
	"csvvault/app/repo"
	"csvvault/app/storage"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.CSVFile{}))
	return gdb
}

func newServices(t *testing.T) (*UserService, *FileService) {
	t.Helper()
	gdb := newTestDB(t)
	blobs, err := storage.NewDisk(t.TempDir())
	require.NoError(t, err)
	fileSvc := NewFileService(repo.NewFileRepository(gdb), blobs, 0)
	userSvc := NewUserService(repo.NewUserRepository(gdb), fileSvc)
	return userSvc, fileSvc
}
